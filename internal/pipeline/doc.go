// Package pipeline streams a dump through a Predicate on a pool of workers
// and merges what they keep.
//
// One goroutine decompresses and splits the input (that part is sequential)
// and hands out batches of lines; Workers goroutines parse and filter batches
// into worker-local slices, which are concatenated once the input is drained.
// The only contract to implement is Predicate.
package pipeline
