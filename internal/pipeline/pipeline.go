// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"fdnsfilter/internal/fdns"
)

// DefaultBatchSize is the number of lines handed to a worker at a time.
const DefaultBatchSize = 4096

// Config controls the filtering pipeline.
type Config struct {
	Workers   int // worker goroutines; <= 0 means runtime.NumCPU()
	BatchSize int // lines per unit of work; <= 0 means DefaultBatchSize
}

// Stats describes one run.
type Stats struct {
	Lines   int64 // raw lines read, including unparsable ones
	Batches int64
	Matched int
}

// Result is the unordered set of accepted records of one run. The same input
// and filter always give the same multiset; the order may differ between runs.
type Result struct {
	Records []fdns.Record
	Stats   Stats
}

// Pipeline owns the batch buffers reused across the runs it performs.
// It is safe for concurrent use; each Run starts and stops its own workers.
type Pipeline struct {
	workers   int
	batchSize int
	batches   sync.Pool
}

// New returns a Pipeline with defaults applied to cfg.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	p := &Pipeline{workers: cfg.Workers, batchSize: cfg.BatchSize}
	p.batches.New = func() any {
		return &batch{
			buf:  make([]byte, 0, p.batchSize*128),
			ends: make([]int, 0, p.batchSize),
		}
	}
	return p
}

// Workers is the effective number of worker goroutines per run.
func (p *Pipeline) Workers() int { return p.workers }

// BatchSize is the effective number of lines per unit of work.
func (p *Pipeline) BatchSize() int { return p.batchSize }

// RunFile opens path with fdns.Open and runs the pipeline over it.
func (p *Pipeline) RunFile(ctx context.Context, path string, pred Predicate) (Result, error) {
	rc, err := fdns.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = rc.Close() }()
	return p.Run(ctx, rc, pred)
}

// Run filters every line of r with pred. Lines that do not parse as records
// are skipped. It returns the first fatal error (read, decompression, line
// decoding or context cancellation). On error no records are returned, but
// Stats still counts what was read before the failure.
func (p *Pipeline) Run(ctx context.Context, r io.Reader, pred Predicate) (Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan *batch, p.workers*2)
	locals := make([][]fdns.Record, p.workers)

	var stats Stats

	// Producer: the only goroutine touching r.
	g.Go(func() error {
		defer close(jobs)
		b := p.getBatch()
		send := func() error {
			select {
			case jobs <- b:
				stats.Batches++
				b = p.getBatch()
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		err := fdns.ScanLines(gctx, r, func(line []byte) error {
			b.add(line)
			stats.Lines++
			if b.len() < p.batchSize {
				return nil
			}
			return send()
		})
		if err != nil {
			return err
		}
		if b.len() > 0 {
			return send()
		}
		p.putBatch(b)
		return nil
	})

	for w := 0; w < p.workers; w++ {
		g.Go(func() error {
			var local []fdns.Record
			for b := range jobs {
				if gctx.Err() == nil {
					local = b.filter(pred, local)
				}
				p.putBatch(b)
			}
			locals[w] = local
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{Stats: stats}, err
	}
	return merge(locals, stats), nil
}

// merge concatenates per-worker results. No dedup, no ordering.
func merge(locals [][]fdns.Record, stats Stats) Result {
	n := 0
	for _, l := range locals {
		n += len(l)
	}
	out := make([]fdns.Record, 0, n)
	for _, l := range locals {
		out = append(out, l...)
	}
	stats.Matched = len(out)
	return Result{Records: out, Stats: stats}
}

func (p *Pipeline) getBatch() *batch { return p.batches.Get().(*batch) }

func (p *Pipeline) putBatch(b *batch) {
	b.reset()
	p.batches.Put(b)
}
