// Package filter decides which dump records are kept.
//
// A Config is built once and is read-only afterwards, so one *Config is shared
// by every pipeline worker without locking.
package filter

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/miekg/dns"

	"fdnsfilter/internal/fdns"
)

// ErrEmptyKind is returned by New when no record type is given.
var ErrEmptyKind = errors.New("record type filter is empty")

// PatternError reports a pattern that does not compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Options is the raw, uncompiled filter configuration.
type Options struct {
	Kind    string
	Pattern string
	Field   Field
	Allow   []string
}

// Config is the compiled filter.
type Config struct {
	kind    string
	pattern *regexp.Regexp
	field   Field
	allow   []string
}

// New compiles opts. Allow entries are taken literally: an empty list leaves
// the filter unrestricted, and an empty suffix matches every candidate.
func New(opts Options) (*Config, error) {
	if opts.Kind == "" {
		return nil, ErrEmptyKind
	}
	re, err := regexp.Compile(opts.Pattern)
	if err != nil {
		return nil, &PatternError{Pattern: opts.Pattern, Err: err}
	}
	allow := slices.Clone(opts.Allow)
	return &Config{kind: opts.Kind, pattern: re, field: opts.Field, allow: allow}, nil
}

// Accepts reports whether r passes the filter. Checks run cheapest first and
// stop at the first rejection:
//  1. exact record type
//  2. allow-list suffix on the selected field (skipped when the list is empty)
//  3. unanchored pattern search on the selected field
func (c *Config) Accepts(r *fdns.Record) bool {
	if r.Kind != c.kind {
		return false
	}
	candidate := c.field.Select(r)
	if !c.allowed(candidate) {
		return false
	}
	return c.pattern.MatchString(candidate)
}

func (c *Config) allowed(s string) bool {
	if len(c.allow) == 0 {
		return true
	}
	for _, suffix := range c.allow {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func (c *Config) Kind() string    { return c.kind }
func (c *Config) Field() Field    { return c.field }
func (c *Config) Pattern() string { return c.pattern.String() }

// Allow returns a copy of the effective allow-list.
func (c *Config) Allow() []string { return append([]string(nil), c.allow...) }

// KnownKind reports whether kind names a DNS resource record type. Kinds are
// free-form in dumps; this only backs a warning for likely typos.
func KnownKind(kind string) bool {
	_, ok := dns.StringToType[strings.ToUpper(kind)]
	return ok
}
