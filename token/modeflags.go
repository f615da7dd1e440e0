package token

// ModeFlags is the explicit configuration record threaded into every
// pipeline stage in place of a process-wide global. It enumerates
// grammar features that are recognised but not always on.
//
// Only ExpressionEvaluationAllowed has a fully specified grammar today.
// CommentsAllowed and NewlineContinuationsAllowed gate extra syntax in the
// tokenizer; with them off, that syntax is not skipped and the lexer or
// validator rejects it like any other malformed input. When
// VariableDefinitionsAllowed or FunctionDefinitionsAllowed is on, the
// validator reports '=' as FEATURE_DISABLED, since definitions are not
// implemented; with both off, '=' is an UNEXPECTED_TOKEN.
type ModeFlags struct {
	// ExpressionEvaluationAllowed gates the entire arithmetic grammar this
	// package implements. Disabling it is only meaningful for collaborators
	// embedding this package alongside other, as-yet-unspecified grammars
	// (e.g. a "linker file" mode that only declares variables).
	ExpressionEvaluationAllowed bool

	// CommentsAllowed gates "// ... " to end of line.
	CommentsAllowed bool

	// NewlineContinuationsAllowed gates a trailing '\' joining a line to
	// the next one, so a single expression can be split across lines.
	NewlineContinuationsAllowed bool

	// VariableDefinitionsAllowed gates persistent user-defined variables.
	// No symbol environment for resolving them is implemented here.
	VariableDefinitionsAllowed bool

	// FunctionDefinitionsAllowed gates persistent user-defined functions,
	// the parameterised-template counterpart of VariableDefinitionsAllowed.
	FunctionDefinitionsAllowed bool
}

// DefaultModeFlags returns the mode flags for standalone expression
// evaluation: only expression evaluation is on, every optional extension
// is off.
func DefaultModeFlags() ModeFlags {
	return ModeFlags{ExpressionEvaluationAllowed: true}
}
