// internal/fdns/open.go
package fdns

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies the compression of a dump.
type Format uint8

const (
	FormatPlain Format = iota
	FormatGzip
	FormatZstd
	FormatLZ4
)

func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	case FormatLZ4:
		return "lz4"
	default:
		return "plain"
	}
}

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// readBufSize is the read-ahead between the file and the decoder.
const readBufSize = 1 << 20

// DetectFormat picks a decoder from the leading bytes of a stream, falling
// back to the file extension when no magic number matches.
func DetectFormat(head []byte, path string) Format {
	switch {
	case bytes.HasPrefix(head, magicGzip):
		return FormatGzip
	case bytes.HasPrefix(head, magicZstd):
		return FormatZstd
	case bytes.HasPrefix(head, magicLZ4):
		return FormatLZ4
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		return FormatGzip
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		return FormatZstd
	case strings.HasSuffix(path, ".lz4"):
		return FormatLZ4
	}
	return FormatPlain
}

// Open opens a dump for streaming. "-" reads standard input.
// The returned reader yields decompressed bytes; its read errors are either
// *DecompressionError or *IOError.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return NewReader(os.Stdin, path)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Op: "open", Err: err}
	}
	rc, err := NewReader(fh, path)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

// NewReader wraps r with the decoder matching its content. path is used only
// for the extension fallback and for error messages. If r is an io.Closer it is
// closed together with the returned reader.
func NewReader(r io.Reader, path string) (io.ReadCloser, error) {
	src := &sourceReader{r: r}
	br := bufio.NewReaderSize(src, readBufSize)
	head, _ := br.Peek(len(magicZstd))
	if err := src.failure(); err != nil {
		return nil, &IOError{Path: path, Op: "read", Err: err}
	}

	d := &decodeReader{path: path, src: src, format: DetectFormat(head, path)}
	if c, ok := r.(io.Closer); ok && r != os.Stdin {
		d.closers = append(d.closers, c)
	}

	switch d.format {
	case FormatGzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, d.classify(err)
		}
		d.dec = gr
		d.closers = append([]io.Closer{gr}, d.closers...)
	case FormatZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, d.classify(err)
		}
		rc := zr.IOReadCloser()
		d.dec = rc
		d.closers = append([]io.Closer{rc}, d.closers...)
	case FormatLZ4:
		d.dec = lz4.NewReader(br)
	default:
		d.dec = br
	}
	return d, nil
}

// sourceReader remembers the first non-EOF error of the raw byte source so a
// decoder failure can be told apart from a failing disk or pipe. Decoders may
// read from their own goroutines, hence the lock.
type sourceReader struct {
	r   io.Reader
	mu  sync.Mutex
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		s.mu.Lock()
		if s.err == nil {
			s.err = err
		}
		s.mu.Unlock()
	}
	return n, err
}

func (s *sourceReader) failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type decodeReader struct {
	path    string
	format  Format
	src     *sourceReader
	dec     io.Reader
	closers []io.Closer
}

func (d *decodeReader) Read(p []byte) (int, error) {
	n, err := d.dec.Read(p)
	if err != nil && err != io.EOF {
		return n, d.classify(err)
	}
	return n, err
}

func (d *decodeReader) classify(err error) error {
	if serr := d.src.failure(); serr != nil {
		return &IOError{Path: d.path, Op: "read", Err: serr}
	}
	if d.format == FormatPlain {
		return &IOError{Path: d.path, Op: "read", Err: err}
	}
	if errors.Is(err, io.EOF) {
		// A decoder that hits EOF before its first frame has an empty or
		// truncated header.
		err = io.ErrUnexpectedEOF
	}
	return &DecompressionError{Path: d.path, Format: d.format, Err: err}
}

// Close closes the decoder and then the underlying source.
func (d *decodeReader) Close() error {
	var err error
	for _, c := range d.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
