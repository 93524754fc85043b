// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"fdnsfilter/internal/allowlist"
	"fdnsfilter/internal/fdns"
	"fdnsfilter/internal/filter"
	"fdnsfilter/internal/logging"
	"fdnsfilter/internal/options"
	"fdnsfilter/internal/pipeline"
	"fdnsfilter/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2 // bad flags, pattern, allow-list or unreadable input
	ExitRuntime     = 3 // corrupt stream, I/O failure, output failure
	ExitInterrupted = 130
)

// Run loads the allow-list, compiles the filter, streams the input through
// the pipeline and renders the result. It returns the process exit code; all
// diagnostics go to stderr through the structured logger.
func Run(ctx context.Context, o options.Options, stdout, stderr io.Writer) int {
	log, err := logging.New(stderr, o.LogLevel, o.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}
	log = log.WithPath(o.Path)

	// Setup: everything that can fail before streaming starts.
	var allow []string
	if o.AllowListPath != "" {
		if allow, err = allowlist.Load(o.AllowListPath); err != nil {
			log.ErrorContext(ctx, "cannot load allow-list", "error", err)
			return ExitUsage
		}
	}
	flt, err := filter.New(filter.Options{Kind: o.Kind, Pattern: o.Pattern, Field: o.Field, Allow: allow})
	if err != nil {
		log.ErrorContext(ctx, "invalid filter", "error", err)
		return ExitUsage
	}
	if !filter.KnownKind(o.Kind) {
		log.WarnContext(ctx, "unknown record type, matching it literally", "kind", o.Kind)
	}
	if o.AllowListPath != "" && len(flt.Allow()) == 0 {
		log.WarnContext(ctx, "allow-list is empty, not restricting matches", "allow_list", o.AllowListPath)
	}

	in, err := fdns.Open(o.Path)
	if err != nil {
		log.ErrorContext(ctx, "cannot open input", "error", err)
		if ctx.Err() != nil {
			return ExitInterrupted
		}
		var derr *fdns.DecompressionError
		if errors.As(err, &derr) {
			return ExitRuntime
		}
		return ExitUsage
	}
	defer func() { _ = in.Close() }()

	p := pipeline.New(pipeline.Config{Workers: o.Threads, BatchSize: o.BatchSize})
	log.LogRunStart(ctx, flt.Kind(), flt.Field().String(), flt.Pattern(), len(flt.Allow()), p.Workers(), p.BatchSize())

	start := time.Now()
	res, err := p.Run(ctx, in, flt)
	log.LogRunDone(ctx, res.Stats.Lines, res.Stats.Batches, res.Stats.Matched, time.Since(start), err)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitInterrupted
		}
		return ExitRuntime
	}

	outw := bufio.NewWriterSize(stdout, 64<<10)
	werr := writers.Write(o.Output, outw, res.Records, writers.Options{Sort: o.Sort, Header: o.Header})
	if werr == nil {
		werr = writers.IgnoreBrokenPipe(outw.Flush())
	}
	if werr != nil {
		log.ErrorContext(ctx, "cannot write output", "error", werr)
		return ExitRuntime
	}

	if len(res.Records) == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
