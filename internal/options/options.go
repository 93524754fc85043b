// internal/options/options.go
package options

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"fdnsfilter/internal/filter"
	"fdnsfilter/internal/logging"
	"fdnsfilter/internal/pipeline"
)

// Output formats understood by the writers.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputJSONL = "jsonl"
)

// Options holds all CLI flags after validation.
type Options struct {
	// Input
	Path          string
	AllowListPath string

	// Filter
	Kind    string // lower-cased
	Pattern string
	Field   filter.Field

	// Performance
	Threads   int
	BatchSize int

	// Output
	Output          string
	Sort            bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Logging
	LogLevel  slog.Level
	LogFormat string
}

func init() {
	// -v selects the value field, so version gets no shorthand.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print version and exit"}
}

// Flags returns the command's flag set. Input and filter flags can also be
// set through FDNS_* environment variables.
func Flags() []cli.Flag {
	return []cli.Flag{
		// Input
		&cli.StringFlag{Name: "path", Aliases: []string{"p"}, EnvVars: []string{"FDNS_PATH"}, Required: true,
			Usage: "path to the fdns dump (gzip, zstd, lz4 or plain; '-' for stdin)"},
		&cli.StringFlag{Name: "allow-list", Aliases: []string{"al"}, EnvVars: []string{"FDNS_ALLOW_LIST"},
			Usage: "file of allowed domain suffixes, one per line"},

		// Filter
		&cli.StringFlag{Name: "regex", Aliases: []string{"r"}, EnvVars: []string{"FDNS_REGEX"}, Required: true,
			Usage: "regex pattern to use as filter (unanchored)"},
		&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, EnvVars: []string{"FDNS_KIND"}, Required: true,
			Usage: "record type to keep: A, AAAA, CNAME, NS, PTR, TXT, MX, ..."},
		&cli.BoolFlag{Name: "value", Aliases: []string{"v"},
			Usage: "filter on the value field (default: name field)"},

		// Performance
		&cli.IntFlag{Name: "threads", Aliases: []string{"t"}, EnvVars: []string{"FDNS_THREADS"},
			Usage: "number of worker threads (0 = all CPUs)"},
		&cli.IntFlag{Name: "batch-size", Value: pipeline.DefaultBatchSize,
			Usage: "lines handed to a worker at a time"},

		// Output
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, EnvVars: []string{"FDNS_OUTPUT"}, Value: OutputTable,
			Usage: "output format: table | json | jsonl"},
		&cli.BoolFlag{Name: "sort", Usage: "sort output by name, value, type, timestamp"},
		&cli.BoolFlag{Name: "no-header", Usage: "suppress the table header"},
		&cli.IntFlag{Name: "no-match-exit-code", Usage: "exit code when nothing matched"},

		// Logging
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "log errors only"},
		&cli.BoolFlag{Name: "verbose", Usage: "log progress and statistics"},
		&cli.StringFlag{Name: "log-format", EnvVars: []string{"FDNS_LOG_FORMAT"}, Value: logging.FormatText,
			Usage: "log format: text | json"},
	}
}

// FromContext reads and validates the parsed flags.
func FromContext(c *cli.Context) (Options, error) {
	opt := Options{
		Path:            c.String("path"),
		AllowListPath:   c.String("allow-list"),
		Kind:            strings.ToLower(c.String("kind")),
		Pattern:         c.String("regex"),
		Field:           filter.FieldName,
		Threads:         c.Int("threads"),
		BatchSize:       c.Int("batch-size"),
		Output:          strings.ToLower(c.String("output")),
		Sort:            c.Bool("sort"),
		Header:          !c.Bool("no-header"),
		NoMatchExitCode: c.Int("no-match-exit-code"),
		LogLevel:        slog.LevelWarn,
		LogFormat:       strings.ToLower(c.String("log-format")),
	}
	if c.Bool("value") {
		opt.Field = filter.FieldValue
	}

	switch {
	case c.Bool("quiet") && c.Bool("verbose"):
		return opt, errors.New("--quiet conflicts with --verbose")
	case c.Bool("quiet"):
		opt.LogLevel = slog.LevelError
	case c.Bool("verbose"):
		opt.LogLevel = slog.LevelInfo
	}

	// Validation
	if opt.Path == "" {
		return opt, errors.New("--path must not be empty")
	}
	if opt.Kind == "" {
		return opt, errors.New("--kind must not be empty")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.BatchSize < 1 {
		return opt, errors.New("--batch-size must be ≥ 1")
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 125 {
		return opt, errors.New("--no-match-exit-code must be between 0 and 125")
	}
	switch opt.Output {
	case OutputTable, OutputJSON, OutputJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	switch opt.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return opt, fmt.Errorf("invalid --log-format %q", opt.LogFormat)
	}
	return opt, nil
}
