// internal/output/json.go
package output

import (
	"bufio"
	"io"

	json "github.com/goccy/go-json"

	"fdnsfilter/internal/fdns"
	"fdnsfilter/pkg/api"
)

// ToAPIRecord converts a domain Record to the stable wire schema (v1).
func ToAPIRecord(r fdns.Record) api.RecordV1 {
	return api.RecordV1{
		Timestamp: r.Timestamp,
		Name:      r.Name,
		Type:      r.Kind,
		Value:     r.Value,
	}
}

func toAPIRecords(list []fdns.Record) []api.RecordV1 {
	out := make([]api.RecordV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRecord(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
// An empty list is written as [].
func WriteJSON(w io.Writer, list []fdns.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIRecords(list))
}

// WriteJSONL writes one v1 record per line.
func WriteJSONL(w io.Writer, list []fdns.Record) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	for _, r := range list {
		if err := enc.Encode(ToAPIRecord(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
