// Package evaluator walks an arena-owned tree in post order and produces
// one IEEE-754 double, or a Diagnostic describing why it couldn't. Every
// failure path returns an explicit *diagnostic.Diagnostic rather than
// panicking with a runtime error. A single recover does remain at the
// top of Evaluate, but only to convert a genuinely unexpected failure (a
// programming bug, not a user-input problem) into an INTERNAL diagnostic
// instead of crashing the process.
package evaluator

import (
	"fmt"
	"math"

	"nilan/ast"
	"nilan/diagnostic"
	"nilan/token"
)

// Evaluate walks the tree rooted at root and returns its value. trace may
// be nil.
func Evaluate(arena *ast.Arena, root ast.Handle, trace diagnostic.Trace) (result float64, diag *diagnostic.Diagnostic) {
	if trace == nil {
		trace = diagnostic.NopTrace{}
	}
	if root.IsNil() {
		d := diagnostic.New(diagnostic.StageEvaluator, 0, diagnostic.Internal, "nothing to evaluate")
		return 0, &d
	}

	defer func() {
		if r := recover(); r != nil {
			d := diagnostic.New(diagnostic.StageEvaluator, arena.Cursor(root), diagnostic.Internal,
				fmt.Sprintf("internal evaluator error: %v", r))
			result, diag = 0, &d
		}
	}()

	return eval(arena, root, trace)
}

func eval(arena *ast.Arena, h ast.Handle, trace diagnostic.Trace) (float64, *diagnostic.Diagnostic) {
	switch h.Kind {
	case ast.KindConstant:
		value, cursor := arena.Constant(h)
		trace.Node("evaluator", cursor, fmt.Sprintf("Constant -> %g", value))
		return value, nil

	case ast.KindParenthesised:
		inner, _ := arena.Parenthesised(h)
		return eval(arena, inner, trace)

	case ast.KindBinaryOp:
		return evalBinaryOp(arena, h, trace)

	case ast.KindFunctionCall:
		return evalFunctionCall(arena, h, trace)

	default:
		d := diagnostic.New(diagnostic.StageEvaluator, 0, diagnostic.Internal, "unknown node kind")
		return 0, &d
	}
}

func evalBinaryOp(arena *ast.Arena, h ast.Handle, trace diagnostic.Trace) (float64, *diagnostic.Diagnostic) {
	op, leftH, rightH, cursor := arena.BinaryOp(h)

	left, err := eval(arena, leftH, trace)
	if err != nil {
		return 0, err
	}
	right, err := eval(arena, rightH, trace)
	if err != nil {
		return 0, err
	}

	var value float64
	switch op {
	case token.Add:
		value = left + right
	case token.Sub:
		value = left - right
	case token.Mul:
		value = left * right
	case token.Div:
		if right == 0 {
			d := diagnostic.New(diagnostic.StageEvaluator, cursor, diagnostic.DivideByZero, "division by zero")
			return 0, &d
		}
		value = left / right
	case token.Pow:
		value = math.Pow(left, right)
	default:
		d := diagnostic.New(diagnostic.StageEvaluator, cursor, diagnostic.Internal, "unknown operator")
		return 0, &d
	}

	trace.Node("evaluator", cursor, fmt.Sprintf("BinaryOp %s -> %g", op, value))
	return value, nil
}

func evalFunctionCall(arena *ast.Arena, h ast.Handle, trace diagnostic.Trace) (float64, *diagnostic.Diagnostic) {
	fn, argHandles, cursor := arena.FunctionCall(h)

	wantArity := token.Arity(fn)
	if len(argHandles) != wantArity {
		d := diagnostic.New(diagnostic.StageEvaluator, cursor, diagnostic.FunctionArgumentCount,
			fmt.Sprintf("%s expects %d argument(s), got %d", token.FunctionNames[fn], wantArity, len(argHandles)))
		return 0, &d
	}

	args := make([]float64, len(argHandles))
	for i, argH := range argHandles {
		v, err := eval(arena, argH, trace)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	value, err := applyFunction(fn, args, cursor)
	if err != nil {
		return 0, err
	}
	trace.Node("evaluator", cursor, fmt.Sprintf("FunctionCall %s -> %g", token.FunctionNames[fn], value))
	return value, nil
}

// applyFunction dispatches to the math package for each of the 13
// recognised functions (token/tables.go). Every one of them is unary
// today (token.Arity always returns 1); the switch stays exhaustive over
// FunctionID rather than keyed by arity so adding a new function is a
// one-case change.
func applyFunction(fn token.FunctionID, args []float64, cursor token.Cursor) (float64, *diagnostic.Diagnostic) {
	x := args[0]
	switch fn {
	case token.Sqrt:
		return math.Sqrt(x), nil
	case token.Exp:
		return math.Exp(x), nil
	case token.Sin:
		return math.Sin(x), nil
	case token.Asin:
		return math.Asin(x), nil
	case token.Sinh:
		return math.Sinh(x), nil
	case token.Cos:
		return math.Cos(x), nil
	case token.Acos:
		return math.Acos(x), nil
	case token.Cosh:
		return math.Cosh(x), nil
	case token.Tan:
		return math.Tan(x), nil
	case token.Atan:
		return math.Atan(x), nil
	case token.Tanh:
		return math.Tanh(x), nil
	case token.Ln:
		return math.Log(x), nil
	case token.Log10:
		return math.Log10(x), nil
	default:
		d := diagnostic.New(diagnostic.StageEvaluator, cursor, diagnostic.Internal, "unknown function")
		return 0, &d
	}
}
