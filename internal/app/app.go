// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"fdnsfilter/internal/appcore"
	"fdnsfilter/internal/options"
	"fdnsfilter/internal/version"
)

// RunContext runs the command with argv (without the program name) and
// returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := appcore.ExitOK
	a := &cli.App{
		Name:            "fdns-filter",
		Usage:           "filter forward-DNS dataset dumps by record type, pattern and domain allow-list",
		Version:         version.Version,
		Flags:           options.Flags(),
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		ExitErrHandler:  func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			opts, err := options.FromContext(c)
			if err != nil {
				return err
			}
			code = appcore.Run(c.Context, opts, stdout, stderr)
			return nil
		},
	}
	if err := a.RunContext(parent, append([]string{a.Name}, argv...)); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return appcore.ExitUsage
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
