// Package expr is the single entry point for the pipeline: Evaluate runs
// every stage in order (tokenizer, lexer, validator, parser, evaluator)
// and halts at the first one that reports an error. Each stage is also
// exported individually — Tokenize/Lex/Validate/Parse/EvaluateAST — so a
// caller or test can run (and inspect) one stage at a time without going
// through Evaluate.
package expr

import (
	"nilan/ast"
	"nilan/diagnostic"
	"nilan/evaluator"
	"nilan/lexer"
	"nilan/parser"
	"nilan/token"
	"nilan/tokenizer"
	"nilan/validator"
)

// Result is the value one Evaluate call produces.
type Result struct {
	Value float64
}

// Tokenize runs the tokenizer stage alone.
func Tokenize(source string, mode token.ModeFlags, trace diagnostic.Trace) ([]token.RawToken, *diagnostic.Diagnostic) {
	return tokenizer.Tokenize(source, mode, trace)
}

// Lex runs the lexer stage alone.
func Lex(raws []token.RawToken, mode token.ModeFlags, trace diagnostic.Trace) ([]token.Token, *diagnostic.Collector) {
	return lexer.Lex(raws, mode, trace)
}

// Validate runs the validator stage alone.
func Validate(tokens []token.Token, mode token.ModeFlags) *diagnostic.Collector {
	return validator.Validate(tokens, mode)
}

// Parse runs the parser stage alone. The returned Arena owns every node
// reachable from the returned Handle and must be released once the caller
// is done with the tree.
func Parse(tokens []token.Token, trace diagnostic.Trace) (*ast.Arena, ast.Handle, *diagnostic.Diagnostic) {
	return parser.Parse(tokens, trace)
}

// EvaluateAST runs the evaluator stage alone over an already-parsed tree.
func EvaluateAST(arena *ast.Arena, root ast.Handle, trace diagnostic.Trace) (float64, *diagnostic.Diagnostic) {
	return evaluator.Evaluate(arena, root, trace)
}

// Evaluate runs the full pipeline over source and returns either a Result
// or the complete set of diagnostics the first failing stage produced.
// Tokenizer and parser failures are single diagnostics; lexer and
// validator failures may be many, collected in source order.
func Evaluate(source string, mode token.ModeFlags, trace diagnostic.Trace) (Result, []diagnostic.Diagnostic) {
	raws, d := Tokenize(source, mode, trace)
	if d != nil {
		return Result{}, []diagnostic.Diagnostic{*d}
	}

	tokens, collector := Lex(raws, mode, trace)
	if collector.HasErrors() {
		return Result{}, collector.Diagnostics
	}

	validation := Validate(tokens, mode)
	if validation.HasErrors() {
		return Result{}, validation.Diagnostics
	}

	arena, root, perr := Parse(tokens, trace)
	if perr != nil {
		return Result{}, []diagnostic.Diagnostic{*perr}
	}
	defer arena.Release()

	value, eerr := EvaluateAST(arena, root, trace)
	if eerr != nil {
		return Result{}, []diagnostic.Diagnostic{*eerr}
	}

	return Result{Value: value}, nil
}
