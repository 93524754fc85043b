package fdns

import (
	"bufio"
	"context"
	"io"
	"unicode/utf8"
)

// ctxCheckEvery is how many lines pass between context checks.
const ctxCheckEvery = 1024

// ScanLines reads r to the end and calls emit once per '\n'-delimited line,
// without the delimiter. The last line need not be terminated. Empty lines are
// emitted as empty slices. Lines may be of any length.
//
// The slice passed to emit is only valid until emit returns.
//
// A line that is not valid UTF-8 stops the scan with an *IOError. Errors from
// r and from emit are returned unchanged.
func ScanLines(ctx context.Context, r io.Reader, emit func(line []byte) error) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, readBufSize)
	}

	var (
		long []byte // accumulates lines longer than the buffer
		n    int
	)
	for {
		frag, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			long = append(long, frag...)
			continue
		}
		if err != nil && err != io.EOF {
			return err
		}

		line := frag
		if len(long) > 0 {
			long = append(long, frag...)
			line = long
		}
		if err == io.EOF && len(line) == 0 {
			return nil
		}

		n++
		if line[len(line)-1] == '\n' {
			line = line[:len(line)-1]
		}
		if !utf8.Valid(line) {
			return &IOError{Op: "decode", Line: n, Err: ErrInvalidUTF8}
		}
		if eerr := emit(line); eerr != nil {
			return eerr
		}
		long = long[:0]

		if err == io.EOF {
			return nil
		}
		if n%ctxCheckEvery == 0 {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
		}
	}
}
