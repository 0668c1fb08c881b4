// Package lang implements the rpn expression language: a minimal infix
// grammar compiled to postfix (reverse-Polish) notation with a top-down
// operator-precedence parser.
//
// All tokens are one ASCII character long and whitespace between tokens is
// not allowed, so the package has no lexical analyzer. The parser reads the
// input left to right exactly once and emits each operand as it is consumed
// and each operator after both of its operands, so output length never
// exceeds input length.
//
// # Grammar
//
// Informal EBNF:
//
//	Program  → Expr EOF
//	Expr     → Primary | Expr BinaryOp Expr    (precedence climbed)
//	Primary  → Variable | UnaryOp Primary | '(' Expr ')'
//	Variable → 'A'..'Z' | 'a'..'z'
//	BinaryOp → '+' | '-' | '*' | '/' | '='
//	UnaryOp  → '~'
//
// Binary operators bind according to the fixed table in [OperatorInfo]:
// assignment ('=') binds loosest and groups right to left, additive
// ('+', '-') and multiplicative ('*', '/') operators group left to right.
//
// # Example
//
//	out, err := lang.ParseString(ctx, "a=b+c*~d")
//	// out == "abcd~*+="
package lang
