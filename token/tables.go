package token

import "math"

// Constants maps an identifier to the ConstantID it names. This and
// ConstantValues are the two halves of the identifier-to-constant-value
// table: a set-backed lookup from text to a tag, and a tag to a
// pre-computed double.
var Constants = map[string]ConstantID{
	"PI":  PI,
	"TAU": TAU,
	"PHI": PHI,
	"EN":  EN,
	"EC":  EC,
	"OC":  OC,
	"GC":  GC,
}

// ConstantNames is the inverse of Constants, used for diagnostics and
// -verbose tracing.
var ConstantNames = map[ConstantID]string{
	PI:  "PI",
	TAU: "TAU",
	PHI: "PHI",
	EN:  "EN",
	EC:  "EC",
	OC:  "OC",
	GC:  "GC",
}

// ConstantValues is the immutable identifier→value table. Values follow the
// naming the original C source's e_math_constant_type table used
// (MC_PI, MC_EULERS_NUMBER, MC_EULERS_CONSTANT, ...); the Omega constant and
// Catalan's constant fill out OC and GC, the two entries the filtered
// original source didn't retain literal values for.
var ConstantValues = map[ConstantID]float64{
	PI:  math.Pi,
	TAU: 2 * math.Pi,
	PHI: 1.6180339887498948482, // golden ratio
	EN:  math.E,                // Euler's number
	EC:  0.5772156649015328606, // Euler-Mascheroni constant
	OC:  0.5671432904097838730, // Omega constant, W(1)
	GC:  0.9159655941772190151, // Catalan's constant
}

// Functions maps an identifier to the FunctionID it names.
var Functions = map[string]FunctionID{
	"sqrt":  Sqrt,
	"exp":   Exp,
	"sin":   Sin,
	"asin":  Asin,
	"sinh":  Sinh,
	"cos":   Cos,
	"acos":  Acos,
	"cosh":  Cosh,
	"tan":   Tan,
	"atan":  Atan,
	"tanh":  Tanh,
	"ln":    Ln,
	"log10": Log10,
}

// FunctionNames is the inverse of Functions, used for diagnostics and
// -verbose tracing.
var FunctionNames = map[FunctionID]string{
	Sqrt:  "sqrt",
	Exp:   "exp",
	Sin:   "sin",
	Asin:  "asin",
	Sinh:  "sinh",
	Cos:   "cos",
	Acos:  "acos",
	Cosh:  "cosh",
	Tan:   "tan",
	Atan:  "atan",
	Tanh:  "tanh",
	Ln:    "ln",
	Log10: "log10",
}

// Arity returns the number of arguments the function expects. Every entry
// is arity one today; the parser and evaluator still carry an ordered
// argument list rather than a single expression so a future function with
// higher arity only requires adding an entry here.
func Arity(id FunctionID) int {
	return 1
}

// LiteralBytes is the set of single-character literal bytes the tokenizer
// recognises. Operators, parentheses and punctuation share this set; the
// lexer (not the tokenizer) is what decides which.
var LiteralBytes = map[byte]bool{
	'+': true,
	'-': true,
	'*': true,
	'/': true,
	'^': true,
	'(': true,
	')': true,
	',': true,
	'=': true,
}
