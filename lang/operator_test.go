package lang

import "testing"

func TestOperatorInfo(t *testing.T) {
	tests := []struct {
		symbol     byte
		precedence int
		rightAssoc bool
	}{
		{'=', 1, true},
		{'+', 10, false},
		{'-', 10, false},
		{'*', 20, false},
		{'/', 20, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.symbol), func(t *testing.T) {
			op, ok := OperatorInfo(tt.symbol)
			if !ok {
				t.Fatalf("OperatorInfo(%q) not found", tt.symbol)
			}

			if op.Precedence != tt.precedence {
				t.Errorf("precedence = %d, expected %d",
					op.Precedence, tt.precedence)
			}

			if op.RightAssoc != tt.rightAssoc {
				t.Errorf("right-associative = %v, expected %v",
					op.RightAssoc, tt.rightAssoc)
			}
		})
	}
}

func TestOperatorInfo_NotAnOperator(t *testing.T) {
	for _, ch := range []byte{'a', 'Z', Prefix, '(', ')', ' ', '%', 0} {
		if _, ok := OperatorInfo(ch); ok {
			t.Errorf("OperatorInfo(%q) = true, expected false", ch)
		}
	}
}

// TestOperatorInfo_PrecedenceGaps verifies that no right-associative
// operator's precedence minus one lands on another precedence class, which
// would make right-associative chaining stop one level early.
func TestOperatorInfo_PrecedenceGaps(t *testing.T) {
	classes := make(map[int]bool)

	for ch := byte(0); ch < 128; ch++ {
		if op, ok := OperatorInfo(ch); ok {
			classes[op.Precedence] = true
		}
	}

	for ch := byte(0); ch < 128; ch++ {
		op, ok := OperatorInfo(ch)
		if !ok || !op.RightAssoc {
			continue
		}

		if floor := op.Precedence - 1; classes[floor] {
			t.Errorf(
				"operator %q recursion floor %d collides with a precedence class",
				ch, floor,
			)
		}
	}
}

func TestIsVariable(t *testing.T) {
	for _, ch := range []byte{'a', 'z', 'A', 'Z', 'm'} {
		if !isVariable(ch) {
			t.Errorf("isVariable(%q) = false, expected true", ch)
		}
	}

	for _, ch := range []byte{'0', '9', '~', '(', ' ', '_', 0, 128} {
		if isVariable(ch) {
			t.Errorf("isVariable(%q) = true, expected false", ch)
		}
	}
}
