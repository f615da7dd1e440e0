// Package diagnostic defines the shared error-reporting vocabulary every
// pipeline stage emits into: a severity, the stage that raised it, the
// source cursor it points at, a stable code, and a short message. This
// keeps every stage's errors in one uniform shape instead of each stage
// inventing its own ad-hoc error struct, so a collaborator can collect,
// sort, and print them uniformly.
package diagnostic

import (
	"fmt"

	"nilan/token"
)

// Severity classifies how serious a Diagnostic is. Every diagnostic this
// module raises today is Error; Warning is reserved for future soft
// complaints (e.g. a redundant parenthesis) that don't halt the pipeline.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Stage names the pipeline stage that raised a Diagnostic.
type Stage string

const (
	StageTokenizer Stage = "tokenizer"
	StageLexer     Stage = "lexer"
	StageValidator Stage = "validator"
	StageParser    Stage = "parser"
	StageEvaluator Stage = "evaluator"
)

// Code is a stable identifier for the kind of problem a Diagnostic
// reports.
type Code string

const (
	NoInput                    Code = "NO_INPUT"
	NumberMultipleDecimalPoints Code = "NUMBER_MULTIPLE_DECIMAL_POINTS"
	InvalidToken                Code = "INVALID_TOKEN"
	UnexpectedToken              Code = "UNEXPECTED_TOKEN"
	ExpectedOperator             Code = "EXPECTED_OPERATOR"
	ExpectedOperand              Code = "EXPECTED_OPERAND"
	EmptyParentheses             Code = "EMPTY_PARENTHESES"
	FunctionRequiresArgument     Code = "FUNCTION_REQUIRES_ARGUMENT"
	UnbalancedParentheses        Code = "UNBALANCED_PARENTHESES"
	Internal                     Code = "INTERNAL"
	DivideByZero                 Code = "DIVIDE_BY_ZERO"
	FeatureDisabled              Code = "FEATURE_DISABLED"
	// FunctionArgumentCount is raised by the evaluator when a function call
	// arrives with a different argument count than its arity (token.Arity).
	FunctionArgumentCount Code = "FUNCTION_ARGUMENT_COUNT"
)

// Diagnostic is one reported problem. Every stage reports in this one
// shape; there are no stage-local error types.
type Diagnostic struct {
	Severity Severity
	Stage    Stage
	Cursor   token.Cursor
	Code     Code
	Message  string
}

// New constructs an Error-severity Diagnostic.
func New(stage Stage, cursor token.Cursor, code Code, message string) Diagnostic {
	return Diagnostic{Severity: Error, Stage: stage, Cursor: cursor, Code: code, Message: message}
}

// Error satisfies the standard error interface so a Diagnostic can be
// returned and compared anywhere a Go error is expected.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("💥 %s %s [%s] cursor:%d - %s", d.Stage, d.Severity, d.Code, d.Cursor, d.Message)
}

// Sink accepts diagnostics as a stage produces them. A stage that reports
// through a Sink (the lexer, and the validator via Collector) never stops
// at the first diagnostic: it keeps scanning and reports every violation
// it finds before the pipeline decides whether to halt. The tokenizer and
// parser return a single diagnostic instead.
type Sink interface {
	Report(d Diagnostic)
}

// Collector is the default Sink: it appends every reported Diagnostic, in
// the order reported, which is source order within a stage.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report appends d to the collector.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// HasErrors reports whether any Error-severity diagnostic was collected.
// A stage halts the pipeline exactly when this is true.
func (c *Collector) HasErrors() bool {
	for _, d := range c.Diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
