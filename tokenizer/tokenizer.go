// Package tokenizer splits a source string into raw, untyped lexical runs
// without inspecting their meaning. It tracks a character cursor
// (position) the way a hand-rolled scanner usually does, but stops one
// layer short of classification — it never decides a run is a number,
// identifier, or operator, it only decides symbol-vs-literal and records
// the cursor.
package tokenizer

import (
	"nilan/diagnostic"
	"nilan/token"
)

// tokenizer holds the scanning state for one Tokenize call.
type tokenizer struct {
	source       string
	position     int
	mode         token.ModeFlags
	trace        diagnostic.Trace
}

// Tokenize splits source into raw tokens. mode.ExpressionEvaluationAllowed
// gates the whole arithmetic grammar this package implements: when it is
// off, every source is rejected with FEATURE_DISABLED before a single
// byte is scanned, the same way a collaborator embedding this package
// alongside another, as-yet-unspecified grammar would keep this one from
// firing at all. Otherwise the only failure mode this stage has is an
// empty or whitespace-only source, which produces a NO_INPUT diagnostic
// and no tokens.
//
// When mode.CommentsAllowed is set, "// ... " runs to end of line are
// skipped like whitespace rather than becoming tokens. When
// mode.NewlineContinuationsAllowed is set, a trailing '\' immediately
// before a newline is skipped the same way, joining the two lines. Both
// are character-level concerns layered on top of the core whitespace-skip
// loop: recognised grammar extensions gated by an explicit configuration
// flag rather than a global.
func Tokenize(source string, mode token.ModeFlags, trace diagnostic.Trace) ([]token.RawToken, *diagnostic.Diagnostic) {
	if trace == nil {
		trace = diagnostic.NopTrace{}
	}
	tz := &tokenizer{source: source, mode: mode, trace: trace}

	if !mode.ExpressionEvaluationAllowed {
		d := diagnostic.New(diagnostic.StageTokenizer, 0, diagnostic.FeatureDisabled, "expression evaluation is disabled for this mode")
		return nil, &d
	}

	if isBlank(source) {
		d := diagnostic.New(diagnostic.StageTokenizer, 0, diagnostic.NoInput, "source is empty or contains only whitespace")
		return nil, &d
	}

	var tokens []token.RawToken
	for {
		tz.skipInert()
		if tz.atEnd() {
			break
		}
		tokens = append(tokens, tz.next())
	}
	return tokens, nil
}

func isBlank(source string) bool {
	for i := 0; i < len(source); i++ {
		if !isSpace(source[i]) {
			return false
		}
	}
	return true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func (tz *tokenizer) atEnd() bool {
	return tz.position >= len(tz.source)
}

func (tz *tokenizer) peekAt(offset int) byte {
	i := tz.position + offset
	if i >= len(tz.source) {
		return 0
	}
	return tz.source[i]
}

// skipInert advances past whitespace, and — when the corresponding mode
// flag is set — past comments and newline-continuation backslashes.
func (tz *tokenizer) skipInert() {
	for !tz.atEnd() {
		c := tz.source[tz.position]

		if isSpace(c) {
			tz.position++
			continue
		}

		if tz.mode.CommentsAllowed && c == '/' && tz.peekAt(1) == '/' {
			for !tz.atEnd() && tz.source[tz.position] != '\n' {
				tz.position++
			}
			continue
		}

		if tz.mode.NewlineContinuationsAllowed && c == '\\' && tz.peekAt(1) == '\n' {
			tz.position += 2
			continue
		}

		break
	}
}

// next consumes and returns exactly one raw token starting at the current
// position, which skipInert has already positioned on a non-inert byte.
func (tz *tokenizer) next() token.RawToken {
	start := tz.position
	c := tz.source[tz.position]

	if token.LiteralBytes[c] {
		tz.position++
		return token.RawToken{Text: tz.source[start:tz.position], Cursor: token.Cursor(start)}
	}

	for !tz.atEnd() {
		c := tz.source[tz.position]
		if isSpace(c) || token.LiteralBytes[c] {
			break
		}
		tz.position++
	}
	return token.RawToken{Text: tz.source[start:tz.position], Cursor: token.Cursor(start)}
}
