package main

import (
	"fmt"
	"io"
	"strings"

	"nilan/diagnostic"
	"nilan/token"

	"github.com/xyproto/env/v2"
)

// defaultModeFlags reads the process-wide defaults from the environment
// the way xyproto-style CLIs configure their front end without requiring
// flags on every invocation (NILAN_COMMENTS, NILAN_NEWLINE_CONTINUATIONS;
// NILAN_VERBOSE and NILAN_LEGACY_PRECISION are read by the helpers below).
// -allow-comments is combined with NILAN_COMMENTS by OR, so the flag can
// turn comments on but not off; run's -allow-newlines replaces the
// NILAN_NEWLINE_CONTINUATIONS value.
func defaultModeFlags() token.ModeFlags {
	mode := token.DefaultModeFlags()
	mode.CommentsAllowed = env.Bool("NILAN_COMMENTS", false)
	mode.NewlineContinuationsAllowed = env.Bool("NILAN_NEWLINE_CONTINUATIONS", false)
	return mode
}

func defaultVerbose() bool {
	return env.Bool("NILAN_VERBOSE", false)
}

func defaultLegacyPrecision() bool {
	return env.Bool("NILAN_LEGACY_PRECISION", false)
}

// traceFor returns diagnostic.PrintTrace when verbose is requested, the
// zero-cost NopTrace otherwise.
func traceFor(verbose bool) diagnostic.Trace {
	if verbose {
		return diagnostic.PrintTrace{}
	}
	return diagnostic.NopTrace{}
}

// formatValue renders a result the way the CLI's -legacy-precision flag
// asks for: the original C tool's "%.05lf" (program.h), fixed at five
// decimal digits and known to misbehave past that many, kept only so this
// tool's output can be diffed against the C original's; the default is
// full double precision via strconv's shortest round-tripping form.
func formatValue(value float64, legacyPrecision bool) string {
	if legacyPrecision {
		return fmt.Sprintf("%.05f", value)
	}
	return fmt.Sprintf("%g", value)
}

// printDiagnostics writes one line per diagnostic to out, in the order
// they were collected (source order within a stage).
func printDiagnostics(out io.Writer, diags []diagnostic.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(out, d.Error())
	}
}

// stripContinuations joins physical lines ending in a trailing backslash
// into one logical line, honored only when allow-newlines is set on the
// run command — this is the file-level twin of the tokenizer's
// mode.NewlineContinuationsAllowed handling, applied before the line is
// even split so blank-line skipping in runCmd.Execute still works line-by-line.
func stripContinuations(source string, allow bool) []string {
	if !allow {
		return strings.Split(source, "\n")
	}
	var out []string
	var pending strings.Builder
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSuffix(line, "\r")
		if strings.HasSuffix(trimmed, "\\") {
			pending.WriteString(strings.TrimSuffix(trimmed, "\\"))
			pending.WriteString("\n")
			continue
		}
		pending.WriteString(trimmed)
		out = append(out, pending.String())
		pending.Reset()
	}
	if pending.Len() > 0 {
		out = append(out, pending.String())
	}
	return out
}
