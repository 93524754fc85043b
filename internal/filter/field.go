package filter

import (
	"fmt"
	"strings"

	"fdnsfilter/internal/fdns"
)

// Field selects the record attribute the pattern and allow-list apply to.
type Field uint8

const (
	FieldName Field = iota
	FieldValue
)

// ParseField accepts "name" or "value" (case-insensitive).
func ParseField(s string) (Field, error) {
	switch strings.ToLower(s) {
	case "name":
		return FieldName, nil
	case "value":
		return FieldValue, nil
	}
	return 0, fmt.Errorf("unknown field %q (want name or value)", s)
}

// Select returns the selected attribute of r.
func (f Field) Select(r *fdns.Record) string {
	if f == FieldValue {
		return r.Value
	}
	return r.Name
}

func (f Field) String() string {
	if f == FieldValue {
		return "value"
	}
	return "name"
}
