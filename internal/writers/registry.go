// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"slices"

	"fdnsfilter/internal/fdns"
	"fdnsfilter/internal/output"
)

// Options are the presentation switches shared by all formats.
type Options struct {
	Sort   bool // order by name, value, type, timestamp
	Header bool // table header row
}

// RenderFunc writes a complete result set in one format.
type RenderFunc func(w io.Writer, list []fdns.Record, o Options) error

// Writer registry (format → handler). Register in init() blocks.
var recordWriters = map[string]RenderFunc{}

// Register adds or replaces the handler for format (last wins).
func Register(format string, fn RenderFunc) { recordWriters[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(recordWriters))
	for f := range recordWriters {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Write renders list to w. With o.Sort the slice is sorted in place.
// Broken pipes are not reported.
func Write(format string, w io.Writer, list []fdns.Record, o Options) error {
	fn, ok := recordWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	if o.Sort {
		output.SortRecords(list)
	}
	return IgnoreBrokenPipe(fn(w, list, o))
}

func init() {
	Register("table", func(w io.Writer, list []fdns.Record, o Options) error {
		return output.WriteTable(w, list, o.Header)
	})
	Register("json", func(w io.Writer, list []fdns.Record, _ Options) error {
		return output.WriteJSON(w, list)
	})
	Register("jsonl", func(w io.Writer, list []fdns.Record, _ Options) error {
		return output.WriteJSONL(w, list)
	})
}
