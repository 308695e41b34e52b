// SPDX-License-Identifier: MIT

// Package cli implements the swalign command line: it reads a FASTA file,
// aligns its first two records with the Smith-Waterman aligner and prints
// every optimal local alignment.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swalign/internal/logger"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks a bad invocation (argument count, unknown flag).
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// flags holds the raw command-line values. Only flags the user actually
// set override the configuration.
type flags struct {
	configPath    string
	policy        string
	maxAlignments int
	format        string
	filler        string
	gap           string
	color         bool
	midline       bool
	matrix        bool
	verbose       bool
}

// Run executes swalign with args (without the program name) and returns
// the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)

	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	var ue *usageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n%s", err, root.UsageString())
		return ExitUsage
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

	return ExitError
}

// NewRootCommand builds a fresh command tree, so repeated runs never share
// flag state.
func NewRootCommand() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "swalign <fasta_file>",
		Short: "Find every optimal local alignment of two sequences",
		Long: `swalign reads a FASTA file and aligns its first two sequences with the
Smith-Waterman algorithm. It prints the optimal local score followed by
every distinct optimal local alignment, each shown against the full
sequences with '*' filling the unaligned parts.

Use "-" to read the FASTA data from standard input.`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, f, args[0])
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	fl := root.Flags()
	fl.StringVar(&f.configPath, "config", "", "path to a TOML config file")
	fl.StringVar(&f.policy, "policy", "all", "traceback policy: all (every optimal path) or first (one path per maximal cell)")
	fl.IntVar(&f.maxAlignments, "max-alignments", 0, "stop after this many distinct alignments (0 = unlimited)")
	fl.StringVarP(&f.format, "format", "o", "text", "output format: text, json or yaml")
	fl.StringVar(&f.filler, "filler", "*", "character shown outside the aligned region")
	fl.StringVar(&f.gap, "gap", "-", "character shown for gaps")
	fl.BoolVar(&f.color, "color", false, "highlight matches, mismatches and gaps")
	fl.BoolVar(&f.midline, "midline", false, "print a match line between the two sequences")
	fl.BoolVar(&f.matrix, "matrix", false, "dump the score matrix with traceback arrows")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCommand())

	return root
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("swalign version %s\n", version)
		},
	}
}
