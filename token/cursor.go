// Package token defines the lexical vocabulary shared by every stage of the
// expression pipeline: the raw byte cursor, the untyped token the tokenizer
// produces, the typed token the lexer produces, the pre-defined constant and
// function tables, and the mode flags that gate optional grammar.
package token

// Cursor is an absolute byte offset into the original source. It is carried
// on every raw token, typed token, and AST node so diagnostics can always
// point back at the exact byte that caused them.
type Cursor int
