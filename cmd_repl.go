package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"nilan/expr"
	"nilan/token"
)

// replCmd implements the interactive REPL, one expr.Evaluate call per
// line. Line editing, history, and the prompt are delegated to
// chzyer/readline.
type replCmd struct {
	verbose         bool
	legacyPrecision bool
	mode            token.ModeFlags
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive expression evaluation session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive REPL. Type an expression per line.
  Meta-commands: :verbose on|off, :comments on|off, :exit
`
}

func (cmd *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.verbose, "verbose", defaultVerbose(), "trace every token and AST node as the pipeline runs")
	f.BoolVar(&cmd.legacyPrecision, "legacy-precision", defaultLegacyPrecision(), "print with the original tool's 5-decimal-digit formatting")
}

func (cmd *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println("Welcome to nilan. Type an expression, or :exit to quit.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Println("💥 failed to start REPL:", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	cmd.mode = defaultModeFlags()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Println("💥", err)
			return subcommands.ExitFailure
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":exit" {
			return subcommands.ExitSuccess
		}
		if strings.HasPrefix(line, ":") {
			cmd.handleMeta(line)
			continue
		}

		trace := traceFor(cmd.verbose)
		result, diags := expr.Evaluate(line, cmd.mode, trace)
		if len(diags) > 0 {
			for _, d := range diags {
				fmt.Println(d.Error())
			}
			continue
		}
		fmt.Println(formatValue(result.Value, cmd.legacyPrecision))
	}
}

// handleMeta interprets a ":name on|off" or ":name" REPL meta-command,
// toggling the mode flags or verbosity for subsequent lines.
func (cmd *replCmd) handleMeta(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name := strings.TrimPrefix(fields[0], ":")
	on := len(fields) < 2 || fields[1] != "off"

	switch name {
	case "verbose":
		cmd.verbose = on
	case "comments":
		cmd.mode.CommentsAllowed = on
	case "newlines":
		cmd.mode.NewlineContinuationsAllowed = on
	case "legacy-precision":
		cmd.legacyPrecision = on
	default:
		fmt.Println("💥 unknown meta-command:", line)
	}
}
