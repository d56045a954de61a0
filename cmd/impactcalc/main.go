// Command impactcalc calculates the environmental impact of switching to
// compostable plastics and serves the calculator over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/greenloop/impactcalc/internal/cli"
	"github.com/greenloop/impactcalc/pkg/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps command errors to process exit codes.
func exitCode(err error) int {
	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}
	return exitError
}
