// Package cli implements the benchkit command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/benchkit/internal/bench"
)

var version = "0.1.0"

// ErrFailures is returned by run when the suite completed but recorded
// failures.
var ErrFailures = errors.New("benchmark failures")

// CaseSource supplies the cases a command works on.
type CaseSource func() []bench.Case

type app struct {
	cases  CaseSource
	out    io.Writer
	errOut io.Writer
}

// NewRootCmd builds the command tree. Progress and reports go to out,
// logs and errors to errOut.
func NewRootCmd(cases CaseSource, out, errOut io.Writer) *cobra.Command {
	if cases == nil {
		cases = bench.Registered
	}
	a := &app{cases: cases, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:     "benchkit",
		Short:   "A micro-benchmark harness",
		Version: version,
		Long: `benchkit discovers benchmark cases, expands their parameter providers,
times every iteration sequentially and renders the results through
pluggable reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, print help
			return cmd.Help()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newListCmd(a))
	return root
}

// Execute runs the command line against the registered cases.
// This is called by main.main().
func Execute() error {
	return ExecuteArgs(os.Args[1:], bench.Registered, os.Stdout, os.Stderr)
}

// ExecuteArgs runs the command line with explicit arguments and writers.
func ExecuteArgs(args []string, cases CaseSource, out, errOut io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := NewRootCmd(cases, out, errOut)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return err
	}
	return nil
}
