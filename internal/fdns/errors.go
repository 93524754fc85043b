package fdns

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is wrapped by IOError when a line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// DecompressionError reports a malformed or truncated compressed stream.
// It can surface at open time (bad header) or on any later read.
type DecompressionError struct {
	Path   string
	Format Format
	Err    error
}

func (e *DecompressionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s stream: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("%s: %s stream: %v", e.Path, e.Format, e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// IOError reports a failure of the underlying byte source or a line that
// cannot be decoded as text. Line is 1-based and zero when not applicable.
type IOError struct {
	Path string
	Op   string
	Line int
	Err  error
}

func (e *IOError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s line %d", msg, e.Line)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
