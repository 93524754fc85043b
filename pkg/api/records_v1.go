// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for matched records. It uses the
// field names of the dumps themselves, so output can be fed back as input.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}
