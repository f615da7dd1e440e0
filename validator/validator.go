// Package validator runs a single forward pass over the typed-token
// stream that checks local adjacency rules and global parenthesis
// balance, aggregating every violation instead of stopping at the first
// one: collect everything, decide once.
package validator

import (
	"fmt"

	"nilan/diagnostic"
	"nilan/token"
)

// Validate walks tokens once and reports every adjacency or balance
// violation it finds. The caller should not attempt to parse when the
// returned collector has any error-severity diagnostic.
func Validate(tokens []token.Token, mode token.ModeFlags) *diagnostic.Collector {
	collector := &diagnostic.Collector{}
	depth := 0

	for i, tok := range tokens {
		switch tok.Kind {
		case token.Number, token.Constant:
			validateOperand(tokens, i, collector)

		case token.Operator:
			validateOperator(tokens, i, collector)

		case token.Function:
			validateFunction(tokens, i, collector)

		case token.Paren:
			if tok.ParenV == token.Open {
				validateOpenParen(tokens, i, collector)
				depth++
			} else {
				if emptyGroup(tokens, i, collector) {
					if depth > 0 {
						depth--
					}
					continue
				}
				validateCloseParen(tokens, i, collector)
				if depth == 0 {
					collector.Report(diagnostic.New(diagnostic.StageValidator, tok.Cursor, diagnostic.UnbalancedParentheses,
						"closing parenthesis has no matching opening parenthesis"))
				} else {
					depth--
				}
			}

		case token.Punct:
			validatePunct(tokens, i, mode, collector)
		}
	}

	if depth != 0 && len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		collector.Report(diagnostic.New(diagnostic.StageValidator, last.Cursor, diagnostic.UnbalancedParentheses,
			"unbalanced parentheses"))
	}

	return collector
}

// isOperandStart reports whether tokens[i] can begin an operand: a number,
// a constant, a function call, or a parenthesised group.
func isOperandStart(tokens []token.Token, i int) bool {
	if i < 0 || i >= len(tokens) {
		return false
	}
	t := tokens[i]
	switch t.Kind {
	case token.Number, token.Constant, token.Function:
		return true
	case token.Paren:
		return t.ParenV == token.Open
	default:
		return false
	}
}

func isOperator(tokens []token.Token, i int) bool {
	return i >= 0 && i < len(tokens) && tokens[i].Kind == token.Operator
}

func isCloseParen(tokens []token.Token, i int) bool {
	return i >= 0 && i < len(tokens) && tokens[i].Kind == token.Paren && tokens[i].ParenV == token.Close
}

func isOpenParen(tokens []token.Token, i int) bool {
	return i >= 0 && i < len(tokens) && tokens[i].Kind == token.Paren && tokens[i].ParenV == token.Open
}

func isOperand(tokens []token.Token, i int) bool {
	return i >= 0 && i < len(tokens) && (tokens[i].Kind == token.Number || tokens[i].Kind == token.Constant)
}

func isFunction(tokens []token.Token, i int) bool {
	return i >= 0 && i < len(tokens) && tokens[i].Kind == token.Function
}

// validateOperand checks the legal-predecessor rule for Number/Constant:
// none (start of stream), an Operator, or '('.
func validateOperand(tokens []token.Token, i int, collector *diagnostic.Collector) {
	if i == 0 || isOperator(tokens, i-1) || isOpenParen(tokens, i-1) {
		return
	}
	collector.Report(diagnostic.New(diagnostic.StageValidator, tokens[i].Cursor, diagnostic.ExpectedOperator,
		"expected an operator before this value"))
}

// validateOperator checks that an operator is not the final token and has
// a legal left operand: a Number/Constant, a ')', or — for '+'/'-' only —
// an Operator or '(' immediately to its left or the start of the stream,
// provided it is itself
// followed by something that can start an operand (the "sign prefix"
// reading).
func validateOperator(tokens []token.Token, i int, collector *diagnostic.Collector) {
	tok := tokens[i]

	if i == len(tokens)-1 {
		collector.Report(diagnostic.New(diagnostic.StageValidator, tok.Cursor, diagnostic.ExpectedOperand,
			"expected an operand after this operator"))
		return
	}

	if isOperand(tokens, i-1) || isCloseParen(tokens, i-1) {
		return
	}

	isSign := tok.OpV == token.Add || tok.OpV == token.Sub
	if isSign && (i == 0 || isOperator(tokens, i-1) || isOpenParen(tokens, i-1)) && isOperandStart(tokens, i+1) {
		return
	}

	collector.Report(diagnostic.New(diagnostic.StageValidator, tok.Cursor, diagnostic.ExpectedOperand,
		"expected an operand before this operator"))
}

// validateFunction checks the legal-predecessor rule for a function
// identifier (none, Operator, or '(') and that it is immediately followed
// by '(' to open its argument list.
func validateFunction(tokens []token.Token, i int, collector *diagnostic.Collector) {
	tok := tokens[i]

	if !(i == 0 || isOperator(tokens, i-1) || isOpenParen(tokens, i-1)) {
		collector.Report(diagnostic.New(diagnostic.StageValidator, tok.Cursor, diagnostic.ExpectedOperator,
			"expected an operator before this function call"))
		return
	}

	if !isOpenParen(tokens, i+1) {
		collector.Report(diagnostic.New(diagnostic.StageValidator, tok.Cursor, diagnostic.UnexpectedToken,
			fmt.Sprintf("function %q must be followed by '('", token.FunctionNames[tok.FuncV])))
	}
}

// validateOpenParen checks the legal-predecessor rule for '(': none,
// Operator, or Function.
func validateOpenParen(tokens []token.Token, i int, collector *diagnostic.Collector) {
	if i == 0 || isOperator(tokens, i-1) || isFunction(tokens, i-1) {
		return
	}
	collector.Report(diagnostic.New(diagnostic.StageValidator, tokens[i].Cursor, diagnostic.ExpectedOperator,
		"expected an operator before this parenthesis"))
}

// validateCloseParen checks the legal-predecessor rule for ')' once the
// immediately-empty-group case has already been handled by emptyGroup:
// Number, Constant, or ')'.
func validateCloseParen(tokens []token.Token, i int, collector *diagnostic.Collector) {
	if isOperand(tokens, i-1) || isCloseParen(tokens, i-1) {
		return
	}
	collector.Report(diagnostic.New(diagnostic.StageValidator, tokens[i].Cursor, diagnostic.ExpectedOperand,
		"expected an operand before this closing parenthesis"))
}

// emptyGroup detects ')' immediately following '(' with nothing between
// them, reporting FUNCTION_REQUIRES_ARGUMENT when the open paren belongs
// to a function call and EMPTY_PARENTHESES for a bare grouping. It returns
// true when it reported (and thus the caller should skip the generic
// close-paren adjacency check, which would otherwise also fire).
func emptyGroup(tokens []token.Token, i int, collector *diagnostic.Collector) bool {
	if !isOpenParen(tokens, i-1) {
		return false
	}
	if isFunction(tokens, i-2) {
		collector.Report(diagnostic.New(diagnostic.StageValidator, tokens[i].Cursor, diagnostic.FunctionRequiresArgument,
			fmt.Sprintf("function %q requires an argument", token.FunctionNames[tokens[i-2].FuncV])))
	} else {
		collector.Report(diagnostic.New(diagnostic.StageValidator, tokens[i].Cursor, diagnostic.EmptyParentheses,
			"empty parentheses are not a valid expression"))
	}
	return true
}

// validatePunct handles ',' and '=', both reserved and currently always
// an error: comma because multi-argument functions are not implemented
// by the validator yet even though the parser's grammar already admits
// them, equals because persistent variable/function definitions are out
// of scope for this core.
func validatePunct(tokens []token.Token, i int, mode token.ModeFlags, collector *diagnostic.Collector) {
	tok := tokens[i]
	if tok.PunctV == token.Comma {
		collector.Report(diagnostic.New(diagnostic.StageValidator, tok.Cursor, diagnostic.UnexpectedToken,
			"comma is reserved for multi-argument functions and is not implemented"))
		return
	}

	if mode.VariableDefinitionsAllowed || mode.FunctionDefinitionsAllowed {
		collector.Report(diagnostic.New(diagnostic.StageValidator, tok.Cursor, diagnostic.FeatureDisabled,
			"variable and function definitions are not implemented by this core"))
		return
	}
	collector.Report(diagnostic.New(diagnostic.StageValidator, tok.Cursor, diagnostic.UnexpectedToken,
		"'=' is reserved and not valid in expression-evaluation mode"))
}
