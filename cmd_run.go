package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"nilan/expr"
)

// runCmd evaluates every non-blank line of a file in turn. Each line is
// one independent Evaluate call; -allow-newlines joins backslash-continued
// lines into one before that happens, the file-level analogue of the
// tokenizer's own newline-continuation handling.
type runCmd struct {
	verbose         bool
	legacyPrecision bool
	allowNewlines   bool
	allowComments   bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Evaluate every expression in a source file" }
func (*runCmd) Usage() string {
	return `run <file>:
  Evaluate every non-blank line of file as an expression, printing one
  result (or diagnostic set) per line.
`
}

func (cmd *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.verbose, "verbose", defaultVerbose(), "trace every token and AST node as the pipeline runs")
	f.BoolVar(&cmd.legacyPrecision, "legacy-precision", defaultLegacyPrecision(), "print with the original tool's 5-decimal-digit formatting")
	f.BoolVar(&cmd.allowNewlines, "allow-newlines", false, "join backslash-continued lines before evaluating")
	f.BoolVar(&cmd.allowComments, "allow-comments", false, "recognise // line comments")
}

func (cmd *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 file not provided")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	mode := defaultModeFlags()
	mode.CommentsAllowed = mode.CommentsAllowed || cmd.allowComments
	mode.NewlineContinuationsAllowed = cmd.allowNewlines
	trace := traceFor(cmd.verbose)

	failed := false
	for _, line := range stripContinuations(string(data), cmd.allowNewlines) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result, diags := expr.Evaluate(line, mode, trace)
		if len(diags) > 0 {
			printDiagnostics(os.Stderr, diags)
			failed = true
			continue
		}
		fmt.Println(formatValue(result.Value, cmd.legacyPrecision))
	}

	if failed {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
