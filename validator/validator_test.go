package validator

import (
	"testing"

	"nilan/diagnostic"
	"nilan/token"
)

func num(v float64, c token.Cursor) token.Token    { return token.NewNumber(v, c) }
func op(o token.OperatorKind, c token.Cursor) token.Token { return token.NewOperator(o, c) }
func paren(s token.ParenSide, c token.Cursor) token.Token { return token.NewParen(s, c) }
func fn(f token.FunctionID, c token.Cursor) token.Token   { return token.NewFunction(f, c) }
func punct(k token.PunctKind, c token.Cursor) token.Token { return token.NewPunct(k, c) }

func TestValidateAcceptsSimpleExpression(t *testing.T) {
	// "1 + 2"
	tokens := []token.Token{num(1, 0), op(token.Add, 2), num(2, 4)}
	c := Validate(tokens, token.DefaultModeFlags())
	if c.HasErrors() {
		t.Errorf("unexpected errors: %v", c.Diagnostics)
	}
}

func TestValidateRejectsTwoAdjacentOperands(t *testing.T) {
	// "1 2"
	tokens := []token.Token{num(1, 0), num(2, 2)}
	c := Validate(tokens, token.DefaultModeFlags())
	if !c.HasErrors() {
		t.Fatal("expected an EXPECTED_OPERATOR diagnostic")
	}
	if c.Diagnostics[0].Code != diagnostic.ExpectedOperator {
		t.Errorf("Code = %v, want EXPECTED_OPERATOR", c.Diagnostics[0].Code)
	}
}

func TestValidateRejectsTrailingOperator(t *testing.T) {
	// "1 +"
	tokens := []token.Token{num(1, 0), op(token.Add, 2)}
	c := Validate(tokens, token.DefaultModeFlags())
	if !c.HasErrors() {
		t.Fatal("expected an EXPECTED_OPERAND diagnostic")
	}
	if c.Diagnostics[0].Code != diagnostic.ExpectedOperand {
		t.Errorf("Code = %v, want EXPECTED_OPERAND", c.Diagnostics[0].Code)
	}
}

func TestValidateAcceptsSignPrefixAfterOperator(t *testing.T) {
	// "5 * -3"
	tokens := []token.Token{num(5, 0), op(token.Mul, 2), op(token.Sub, 4), num(3, 5)}
	c := Validate(tokens, token.DefaultModeFlags())
	if c.HasErrors() {
		t.Errorf("unexpected errors: %v", c.Diagnostics)
	}
}

func TestValidateRejectsDoubleNonSignOperator(t *testing.T) {
	// "5 * * 3"
	tokens := []token.Token{num(5, 0), op(token.Mul, 2), op(token.Mul, 4), num(3, 6)}
	c := Validate(tokens, token.DefaultModeFlags())
	if !c.HasErrors() {
		t.Fatal("expected an EXPECTED_OPERAND diagnostic")
	}
}

func TestValidateDetectsEmptyParentheses(t *testing.T) {
	// "()"
	tokens := []token.Token{paren(token.Open, 0), paren(token.Close, 1)}
	c := Validate(tokens, token.DefaultModeFlags())
	if len(c.Diagnostics) != 1 || c.Diagnostics[0].Code != diagnostic.EmptyParentheses {
		t.Fatalf("got %+v, want exactly one EMPTY_PARENTHESES diagnostic", c.Diagnostics)
	}
}

func TestValidateDetectsFunctionRequiresArgument(t *testing.T) {
	// "sqrt()"
	tokens := []token.Token{fn(token.Sqrt, 0), paren(token.Open, 4), paren(token.Close, 5)}
	c := Validate(tokens, token.DefaultModeFlags())
	if len(c.Diagnostics) != 1 || c.Diagnostics[0].Code != diagnostic.FunctionRequiresArgument {
		t.Fatalf("got %+v, want exactly one FUNCTION_REQUIRES_ARGUMENT diagnostic", c.Diagnostics)
	}
}

func TestValidateEmptyGroupInsideBalancedExpressionDoesNotLeakDepth(t *testing.T) {
	// "(sqrt())" — the empty-group '(' must still count against the outer
	// depth, or the final balance check spuriously fires on top of the
	// correct FUNCTION_REQUIRES_ARGUMENT diagnostic.
	tokens := []token.Token{
		paren(token.Open, 0), fn(token.Sqrt, 1), paren(token.Open, 5), paren(token.Close, 6), paren(token.Close, 7),
	}
	c := Validate(tokens, token.DefaultModeFlags())
	if len(c.Diagnostics) != 1 || c.Diagnostics[0].Code != diagnostic.FunctionRequiresArgument {
		t.Fatalf("got %+v, want exactly one FUNCTION_REQUIRES_ARGUMENT diagnostic", c.Diagnostics)
	}
}

func TestValidateAcceptsLeadingUnaryMinus(t *testing.T) {
	// "-4 + 2": a sign prefix at the very start of the token stream.
	tokens := []token.Token{op(token.Sub, 0), num(4, 1), op(token.Add, 3), num(2, 5)}
	c := Validate(tokens, token.DefaultModeFlags())
	if c.HasErrors() {
		t.Errorf("unexpected errors: %v", c.Diagnostics)
	}
}

func TestValidateAcceptsLeadingUnaryPlus(t *testing.T) {
	// "+4"
	tokens := []token.Token{op(token.Add, 0), num(4, 1)}
	c := Validate(tokens, token.DefaultModeFlags())
	if c.HasErrors() {
		t.Errorf("unexpected errors: %v", c.Diagnostics)
	}
}

func TestValidateDetectsUnbalancedParentheses(t *testing.T) {
	// "(1 + 2"
	tokens := []token.Token{paren(token.Open, 0), num(1, 1), op(token.Add, 3), num(2, 5)}
	c := Validate(tokens, token.DefaultModeFlags())
	if !c.HasErrors() {
		t.Fatal("expected an UNBALANCED_PARENTHESES diagnostic")
	}
	found := false
	for _, d := range c.Diagnostics {
		if d.Code == diagnostic.UnbalancedParentheses {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics %+v do not include UNBALANCED_PARENTHESES", c.Diagnostics)
	}
}

func TestValidateDetectsExtraClosingParenthesis(t *testing.T) {
	// "1)"
	tokens := []token.Token{num(1, 0), paren(token.Close, 1)}
	c := Validate(tokens, token.DefaultModeFlags())
	if !c.HasErrors() {
		t.Fatal("expected an UNBALANCED_PARENTHESES diagnostic")
	}
}

func TestValidateAggregatesEveryViolation(t *testing.T) {
	// "1 2 3" has two adjacency violations, both should be reported.
	tokens := []token.Token{num(1, 0), num(2, 2), num(3, 4)}
	c := Validate(tokens, token.DefaultModeFlags())
	if len(c.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %+v", len(c.Diagnostics), c.Diagnostics)
	}
}

func TestValidateCommaIsAlwaysUnexpected(t *testing.T) {
	tokens := []token.Token{num(1, 0), punct(token.Comma, 1), num(2, 2)}
	c := Validate(tokens, token.DefaultModeFlags())
	if !c.HasErrors() || c.Diagnostics[0].Code != diagnostic.UnexpectedToken {
		t.Fatalf("got %+v, want UNEXPECTED_TOKEN for comma", c.Diagnostics)
	}
}

func TestValidateEqualsIsFeatureDisabledWhenDefinitionsAllowed(t *testing.T) {
	tokens := []token.Token{num(1, 0), punct(token.Equals, 1), num(2, 2)}
	mode := token.DefaultModeFlags()
	mode.VariableDefinitionsAllowed = true
	c := Validate(tokens, mode)
	if !c.HasErrors() || c.Diagnostics[0].Code != diagnostic.FeatureDisabled {
		t.Fatalf("got %+v, want FEATURE_DISABLED for '=' with definitions allowed", c.Diagnostics)
	}
}
