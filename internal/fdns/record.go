package fdns

import json "github.com/goccy/go-json"

// Record is one observation of a forward-DNS dump.
type Record struct {
	Timestamp string
	Name      string
	Kind      string // DNS record type, "type" on the wire
	Value     string
}

// Wire keys of the dump schema. They match exactly; "Type" or "NAME" are
// foreign keys, not aliases.
const (
	keyTimestamp = "timestamp"
	keyName      = "name"
	keyKind      = "type"
	keyValue     = "value"
)

// ParseRecord decodes one dump line. It reports false for anything that is not
// a JSON object carrying all four fields as strings; extra fields are ignored.
//
// Struct tags would match keys case-insensitively, so the object is decoded
// into raw members and each field is looked up by its exact key.
func ParseRecord(line []byte) (Record, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(line, &obj); err != nil || obj == nil {
		return Record{}, false
	}
	var (
		r  Record
		ok = true
	)
	r.Timestamp, ok = stringMember(obj, keyTimestamp, ok)
	r.Name, ok = stringMember(obj, keyName, ok)
	r.Kind, ok = stringMember(obj, keyKind, ok)
	r.Value, ok = stringMember(obj, keyValue, ok)
	if !ok {
		return Record{}, false
	}
	return r, true
}

// stringMember returns obj[key] as a string. A missing, null or non-string
// member clears ok; once ok is false the lookup is skipped.
func stringMember(obj map[string]json.RawMessage, key string, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	raw, found := obj[key]
	if !found {
		return "", false
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}
