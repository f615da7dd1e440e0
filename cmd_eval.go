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

// evalCmd is the simple one-shot evaluation mode: read one expression
// from the command line, evaluate it, print the result.
type evalCmd struct {
	verbose         bool
	legacyPrecision bool
	dumpAST         bool
	allowComments   bool
}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "Evaluate a single arithmetic expression" }
func (*evalCmd) Usage() string {
	return `eval <expression>:
  Evaluate a single arithmetic expression and print its result.
`
}

func (cmd *evalCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.verbose, "verbose", defaultVerbose(), "trace every token and AST node as the pipeline runs")
	f.BoolVar(&cmd.legacyPrecision, "legacy-precision", defaultLegacyPrecision(), "print with the original tool's 5-decimal-digit formatting")
	f.BoolVar(&cmd.dumpAST, "dump-ast", false, "print the parsed AST as JSON before evaluating")
	f.BoolVar(&cmd.allowComments, "allow-comments", false, "recognise // line comments")
}

func (cmd *evalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 expression not provided")
		return subcommands.ExitUsageError
	}
	source := strings.Join(args, " ")

	mode := defaultModeFlags()
	mode.CommentsAllowed = mode.CommentsAllowed || cmd.allowComments
	trace := traceFor(cmd.verbose)

	if cmd.dumpAST {
		raws, d := expr.Tokenize(source, mode, trace)
		if d != nil {
			fmt.Fprintln(os.Stderr, d.Error())
			return subcommands.ExitFailure
		}
		tokens, collector := expr.Lex(raws, mode, trace)
		if collector.HasErrors() {
			printDiagnostics(os.Stderr, collector.Diagnostics)
			return subcommands.ExitFailure
		}
		if v := expr.Validate(tokens, mode); v.HasErrors() {
			printDiagnostics(os.Stderr, v.Diagnostics)
			return subcommands.ExitFailure
		}
		arena, root, perr := expr.Parse(tokens, trace)
		if perr != nil {
			fmt.Fprintln(os.Stderr, perr.Error())
			return subcommands.ExitFailure
		}
		arena.Print(root)
		value, eerr := expr.EvaluateAST(arena, root, trace)
		arena.Release()
		if eerr != nil {
			fmt.Fprintln(os.Stderr, eerr.Error())
			return subcommands.ExitFailure
		}
		fmt.Println(formatValue(value, cmd.legacyPrecision))
		return subcommands.ExitSuccess
	}

	result, diags := expr.Evaluate(source, mode, trace)
	if len(diags) > 0 {
		printDiagnostics(os.Stderr, diags)
		return subcommands.ExitFailure
	}
	fmt.Println(formatValue(result.Value, cmd.legacyPrecision))
	return subcommands.ExitSuccess
}
