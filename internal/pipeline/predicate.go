// internal/pipeline/predicate.go
package pipeline

import "fdnsfilter/internal/fdns"

// Predicate is the minimal capability the pipeline needs from a filter.
// Implementations are called from many goroutines at once and must be
// read-only.
type Predicate interface {
	Accepts(r *fdns.Record) bool
}
