package lang

// Operator describes the binding characteristics of a binary operator.
type Operator struct {
	// Precedence is the binding strength; larger values bind tighter.
	Precedence int
	// RightAssoc is true when equal-precedence chains group right to left.
	RightAssoc bool
}

// Prefix is the unary prefix operator symbol.
// It binds to a single primary expression and has no table entry.
const Prefix = '~'

// Operator precedence classes.
//
// Precedences are assigned with gaps between tiers because parsing a
// right-associative operator recurses with its precedence minus one, which
// must not collide with the next lower tier.
var (
	assignmentOp     = Operator{Precedence: 1, RightAssoc: true}
	additiveOp       = Operator{Precedence: 10}
	multiplicativeOp = Operator{Precedence: 20}
)

// OperatorInfo returns the descriptor for the given binary operator symbol.
// The second return value is false when ch is not a binary operator.
func OperatorInfo(ch byte) (Operator, bool) {
	switch ch {
	case '=':
		return assignmentOp, true

	case '+', '-':
		return additiveOp, true

	case '*', '/':
		return multiplicativeOp, true
	}

	return Operator{}, false
}

// isVariable reports whether ch names a variable ('A'..'Z' or 'a'..'z').
func isVariable(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}
