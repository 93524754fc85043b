// Package fdns reads forward-DNS dataset dumps: it opens (and transparently
// decompresses) a dump, splits it into lines and parses each line into a Record.
//
// It never imports filter, pipeline, writers, cli or app; keep it I/O and
// schema only.
package fdns
