// Package parser turns a typed-token stream into a tree of arena-owned
// nodes via recursive-descent, precedence-climbing parsing. It keeps the
// Make/Parser naming; position indexes the current (next unconsumed)
// token. The grammar itself is new:
//
//	Expr   := AddExpr
//	AddExpr:= MulExpr (('+'|'-') MulExpr)*
//	MulExpr:= PowExpr (('*'|'/') PowExpr)*
//	PowExpr:= Unary ('^' PowExpr)?        // right-associative
//	Unary  := ('+'|'-') Unary | Primary
//	Primary:= Number | Constant
//	        | Function '(' (Expr (',' Expr)*)? ')'
//	        | '(' Expr ')'
//
// A unary +/- desugars into BinaryOp(op, Constant(0, cursor), operand) at
// parse time, so the evaluator only ever sees binary operators.
// Function-call argument lists accept any number of comma-separated
// expressions — including zero or more than one — even though the
// validator stage does not yet admit commas into a full pipeline run;
// this is deliberate forward compatibility, and lets the parser be
// exercised directly, bypassing the validator, by tests that build a
// multi-argument token stream by hand.
package parser

import (
	"fmt"

	"nilan/ast"
	"nilan/diagnostic"
	"nilan/token"
)

// Parser holds the scanning state for one Parse call.
type Parser struct {
	tokens   []token.Token
	position int
	arena    *ast.Arena
	trace    diagnostic.Trace
}

// Make initializes and returns a new Parser instance over tokens.
func Make(tokens []token.Token, trace diagnostic.Trace) *Parser {
	if trace == nil {
		trace = diagnostic.NopTrace{}
	}
	return &Parser{tokens: tokens, arena: ast.NewArena(), trace: trace}
}

// Parse parses the full token stream as a single expression. Unlike the
// earlier stages it does not try to aggregate every problem: there is only
// one expression tree to build, so parsing stops at the first structural
// error and reports it alone. On success the returned Handle is the root
// of the arena-owned tree; the Arena must be released by the caller once
// evaluation is done.
func Parse(tokens []token.Token, trace diagnostic.Trace) (*ast.Arena, ast.Handle, *diagnostic.Diagnostic) {
	p := Make(tokens, trace)

	if len(tokens) == 0 {
		d := diagnostic.New(diagnostic.StageParser, 0, diagnostic.ExpectedOperand, "expected an expression")
		return p.arena, ast.Nil, &d
	}

	root, err := p.expression()
	if err != nil {
		return p.arena, ast.Nil, err
	}

	if !p.atEnd() {
		tok := p.current()
		d := diagnostic.New(diagnostic.StageParser, tok.Cursor, diagnostic.UnexpectedToken,
			fmt.Sprintf("unexpected %s after expression", tok))
		return p.arena, ast.Nil, &d
	}

	p.trace.Node("parser", p.arena.Cursor(root), "root")
	return p.arena, root, nil
}

// --- token stream helpers -------------------------------------------------

func (p *Parser) atEnd() bool {
	return p.position >= len(p.tokens)
}

func (p *Parser) current() token.Token {
	return p.tokens[p.position]
}

// cursorAtEnd returns the cursor one past the last token, for diagnostics
// raised when a production needed a token but the stream had none left.
func (p *Parser) cursorAtEnd() token.Cursor {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].Cursor + 1
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	p.position++
	return tok
}

func (p *Parser) checkOperator(ops ...token.OperatorKind) bool {
	if p.atEnd() || p.current().Kind != token.Operator {
		return false
	}
	for _, op := range ops {
		if p.current().OpV == op {
			return true
		}
	}
	return false
}

func (p *Parser) checkParen(side token.ParenSide) bool {
	return !p.atEnd() && p.current().Kind == token.Paren && p.current().ParenV == side
}

func (p *Parser) checkPunct(kind token.PunctKind) bool {
	return !p.atEnd() && p.current().Kind == token.Punct && p.current().PunctV == kind
}

// --- grammar ---------------------------------------------------------------

func (p *Parser) expression() (ast.Handle, *diagnostic.Diagnostic) {
	return p.addExpr()
}

func (p *Parser) addExpr() (ast.Handle, *diagnostic.Diagnostic) {
	left, err := p.mulExpr()
	if err != nil {
		return ast.Nil, err
	}
	for p.checkOperator(token.Add, token.Sub) {
		opTok := p.advance()
		right, err := p.mulExpr()
		if err != nil {
			return ast.Nil, err
		}
		left = p.arena.AllocateBinaryOp(opTok.OpV, left, right, opTok.Cursor)
		p.trace.Node("parser", opTok.Cursor, "BinaryOp "+opTok.OpV.String())
	}
	return left, nil
}

func (p *Parser) mulExpr() (ast.Handle, *diagnostic.Diagnostic) {
	left, err := p.powExpr()
	if err != nil {
		return ast.Nil, err
	}
	for p.checkOperator(token.Mul, token.Div) {
		opTok := p.advance()
		right, err := p.powExpr()
		if err != nil {
			return ast.Nil, err
		}
		left = p.arena.AllocateBinaryOp(opTok.OpV, left, right, opTok.Cursor)
		p.trace.Node("parser", opTok.Cursor, "BinaryOp "+opTok.OpV.String())
	}
	return left, nil
}

// powExpr is right-associative: 2^3^2 parses as 2^(3^2).
func (p *Parser) powExpr() (ast.Handle, *diagnostic.Diagnostic) {
	left, err := p.unary()
	if err != nil {
		return ast.Nil, err
	}
	if p.checkOperator(token.Pow) {
		opTok := p.advance()
		right, err := p.powExpr()
		if err != nil {
			return ast.Nil, err
		}
		left = p.arena.AllocateBinaryOp(token.Pow, left, right, opTok.Cursor)
		p.trace.Node("parser", opTok.Cursor, "BinaryOp ^")
	}
	return left, nil
}

func (p *Parser) unary() (ast.Handle, *diagnostic.Diagnostic) {
	if p.checkOperator(token.Add, token.Sub) {
		opTok := p.advance()
		operand, err := p.unary()
		if err != nil {
			return ast.Nil, err
		}
		zero := p.arena.AllocateConstant(0, opTok.Cursor)
		node := p.arena.AllocateBinaryOp(opTok.OpV, zero, operand, opTok.Cursor)
		p.trace.Node("parser", opTok.Cursor, "unary "+opTok.OpV.String())
		return node, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Handle, *diagnostic.Diagnostic) {
	if p.atEnd() {
		d := diagnostic.New(diagnostic.StageParser, p.cursorAtEnd(), diagnostic.ExpectedOperand, "expected an expression")
		return ast.Nil, &d
	}

	tok := p.current()
	switch tok.Kind {
	case token.Number:
		p.advance()
		h := p.arena.AllocateConstant(tok.NumberV, tok.Cursor)
		p.trace.Node("parser", tok.Cursor, "Constant")
		return h, nil

	case token.Constant:
		p.advance()
		h := p.arena.AllocateConstant(token.ConstantValues[tok.ConstV], tok.Cursor)
		p.trace.Node("parser", tok.Cursor, "Constant "+token.ConstantNames[tok.ConstV])
		return h, nil

	case token.Function:
		return p.functionCall()

	case token.Paren:
		if tok.ParenV == token.Open {
			return p.grouping()
		}
	}

	d := diagnostic.New(diagnostic.StageParser, tok.Cursor, diagnostic.UnexpectedToken, fmt.Sprintf("unexpected %s", tok))
	return ast.Nil, &d
}

func (p *Parser) grouping() (ast.Handle, *diagnostic.Diagnostic) {
	openTok := p.advance() // '('
	inner, err := p.expression()
	if err != nil {
		return ast.Nil, err
	}
	if !p.checkParen(token.Close) {
		d := diagnostic.New(diagnostic.StageParser, p.closeCursor(), diagnostic.UnbalancedParentheses, "expected ')'")
		return ast.Nil, &d
	}
	p.advance()
	h := p.arena.AllocateParenthesised(inner, openTok.Cursor)
	p.trace.Node("parser", openTok.Cursor, "Parenthesised")
	return h, nil
}

func (p *Parser) functionCall() (ast.Handle, *diagnostic.Diagnostic) {
	fnTok := p.advance()

	if !p.checkParen(token.Open) {
		d := diagnostic.New(diagnostic.StageParser, p.closeCursor(), diagnostic.UnexpectedToken,
			fmt.Sprintf("function %q must be followed by '('", token.FunctionNames[fnTok.FuncV]))
		return ast.Nil, &d
	}
	p.advance() // '('

	var args []ast.Handle
	if !p.checkParen(token.Close) {
		for {
			arg, err := p.expression()
			if err != nil {
				return ast.Nil, err
			}
			args = append(args, arg)
			if !p.checkPunct(token.Comma) {
				break
			}
			p.advance() // ','
		}
	}

	if !p.checkParen(token.Close) {
		d := diagnostic.New(diagnostic.StageParser, p.closeCursor(), diagnostic.UnbalancedParentheses, "expected ')'")
		return ast.Nil, &d
	}
	p.advance()

	h := p.arena.AllocateFunctionCall(fnTok.FuncV, args, fnTok.Cursor)
	p.trace.Node("parser", fnTok.Cursor, "FunctionCall "+token.FunctionNames[fnTok.FuncV])
	return h, nil
}

func (p *Parser) closeCursor() token.Cursor {
	if p.atEnd() {
		return p.cursorAtEnd()
	}
	return p.current().Cursor
}
