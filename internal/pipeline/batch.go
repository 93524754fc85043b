package pipeline

import "fdnsfilter/internal/fdns"

// batch packs many lines into one buffer so a unit of work costs two
// allocations at most, and none once recycled.
type batch struct {
	buf  []byte
	ends []int // ends[i] is the end offset of line i in buf
}

func (b *batch) add(line []byte) {
	b.buf = append(b.buf, line...)
	b.ends = append(b.ends, len(b.buf))
}

func (b *batch) len() int { return len(b.ends) }

func (b *batch) line(i int) []byte {
	start := 0
	if i > 0 {
		start = b.ends[i-1]
	}
	return b.buf[start:b.ends[i]]
}

func (b *batch) reset() {
	b.buf = b.buf[:0]
	b.ends = b.ends[:0]
}

// filter appends the records of b accepted by pred to dst.
func (b *batch) filter(pred Predicate, dst []fdns.Record) []fdns.Record {
	for i := range b.ends {
		rec, ok := fdns.ParseRecord(b.line(i))
		if ok && pred.Accepts(&rec) {
			dst = append(dst, rec)
		}
	}
	return dst
}
