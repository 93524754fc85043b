package output

import (
	"cmp"
	"slices"

	"fdnsfilter/internal/fdns"
)

// CompareRecords defines a stable order for records (for --sort):
// name, value, type, timestamp.
func CompareRecords(a, b fdns.Record) int {
	return cmp.Or(
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Value, b.Value),
		cmp.Compare(a.Kind, b.Kind),
		cmp.Compare(a.Timestamp, b.Timestamp),
	)
}

// SortRecords sorts list in place.
func SortRecords(list []fdns.Record) {
	slices.SortFunc(list, CompareRecords)
}
