// SPDX-License-Identifier: MIT
package exprlang

import (
	"errors"
	"testing"

	"github.com/katalvlaran/isomesher/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestParseRejections(t *testing.T) {
	cases := []struct {
		name   string
		source string
		target error
	}{
		{"empty", "", ErrEmptyExpression},
		{"lone_left_bracket", "(", ErrUnexpectedToken},
		{"trailing_operator", "1+", ErrUnexpectedToken},
		{"value_followed_by_value", "1 2", ErrUnexpectedToken},
		{"dangling_function", "sin+1", ErrDanglingFunction},
		{"unclosed_bracket", "(1+2", ErrMismatchedBrackets},
		{"unopened_bracket", "1+2)", ErrMismatchedBrackets},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.source, 64)
			if err == nil {
				t.Fatalf("Parse(%q) = nil error, want %v", tc.source, tc.target)
			}
			if !errors.Is(err, tc.target) {
				t.Fatalf("Parse(%q) error = %v, want wrapping %v", tc.source, err, tc.target)
			}
		})
	}
}

func TestParseDanglingFunctionAtEnd(t *testing.T) {
	_, err := Parse("sin", 64)
	// A function name at the very end is reported as a bad expression end
	// ("must not end with a function name"), which takes priority over the
	// dangling-function diagnostic in classPairError.
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("Parse(sin) error = %v, want ErrUnexpectedToken", err)
	}
}

func TestParsePostfixOrder(t *testing.T) {
	tokens, err := Parse("2+3*4", 64)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got := kinds(tokens)
	want := []token.Kind{token.KindLiteral, token.KindLiteral, token.KindLiteral, token.KindMul, token.KindAdd, token.KindEnd}
	if len(got) != len(want) {
		t.Fatalf("Parse(2+3*4) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Parse(2+3*4)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseOutputOverflow(t *testing.T) {
	_, err := Parse("1+1+1+1", 2)
	if !errors.Is(err, ErrOutputOverflow) {
		t.Fatalf("Parse with tiny capacity error = %v, want ErrOutputOverflow", err)
	}
}

func TestParseFunctionCall(t *testing.T) {
	tokens, err := Parse("atan2(1,1)", 64)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got := kinds(tokens)
	want := []token.Kind{token.KindLiteral, token.KindLiteral, token.KindATan2, token.KindEnd}
	if len(got) != len(want) {
		t.Fatalf("Parse(atan2(1,1)) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Parse(atan2(1,1))[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
