package lang

import (
	"context"
	"strings"
	"testing"
)

func BenchmarkParseString_Chain(b *testing.B) {
	input := "a" + strings.Repeat("+b*c", 64)

	b.ReportAllocs()

	for b.Loop() {
		_, err := ParseString(context.Background(), input)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseString_Nested(b *testing.B) {
	input := strings.Repeat("(", 64) + "a" + strings.Repeat(")", 64)

	b.ReportAllocs()

	for b.Loop() {
		_, err := ParseString(context.Background(), input)
		if err != nil {
			b.Fatal(err)
		}
	}
}
