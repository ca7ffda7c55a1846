// SPDX-License-Identifier: MIT
package exprlang

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/isomesher/token"
)

// keyword pairs a reserved identifier with the Kind it produces. Order
// matters: longer identifiers that share a prefix with a shorter one (only
// atan2/atan in this grammar) must be listed before the shorter form, or
// the shorter form will shadow it.
var keywords = []struct {
	text string
	kind token.Kind
}{
	{"pi", token.KindPi},
	{"e", token.KindE},
	{"abs", token.KindAbs},
	{"min", token.KindMin},
	{"max", token.KindMax},
	{"floor", token.KindFloor},
	{"sin", token.KindSin},
	{"cos", token.KindCos},
	{"tan", token.KindTan},
	{"asin", token.KindASin},
	{"acos", token.KindACos},
	{"atan2", token.KindATan2},
	{"atan", token.KindATan},
	{"ln", token.KindLn},
	{"log", token.KindLog},
	{"sqrt", token.KindSqrt},
	{"nroot", token.KindNRoot},
	{"noise", token.KindNoise},
}

// singleChars maps one-character tokens with no special-casing.
var singleChars = map[byte]token.Kind{
	'x': token.KindX,
	'y': token.KindY,
	'z': token.KindZ,
	'+': token.KindAdd,
	'*': token.KindMul,
	'^': token.KindPow,
	'%': token.KindMod,
	'(': token.KindLBracket,
	')': token.KindRBracket,
	',': token.KindComma,
}

// lexer walks a source string producing one token.Token at a time.
type lexer struct {
	src    string
	cursor int
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

func (l *lexer) skipWhitespace() {
	for l.cursor < len(l.src) {
		switch l.src[l.cursor] {
		case ' ', '\t', '\n':
			l.cursor++
		default:
			return
		}
	}
}

// scanNumber finds the longest prefix of l.src[l.cursor:] that parses as an
// unsigned decimal float literal (optionally with an exponent), mirroring
// strtof's greedy consumption. It returns ok=false if no digit is present.
func (l *lexer) scanNumber() (value float64, ok bool) {
	s := l.src[l.cursor:]
	i := 0
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > i+1 {
			i = j
		}
	}
	if i == start {
		return 0, false
	}
	// Optional exponent, only consumed if it is well-formed; otherwise the
	// mantissa alone is the literal.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	l.cursor += i
	return v, true
}

func (l *lexer) matchKeyword() (token.Kind, bool) {
	rest := l.src[l.cursor:]
	for _, kw := range keywords {
		if strings.HasPrefix(rest, kw.text) {
			l.cursor += len(kw.text)
			return kw.kind, true
		}
	}
	return 0, false
}

// next returns the next raw token given the previous token (needed to
// disambiguate unary '-' from binary '-').
// It does not perform class-pair validation; see checkClassPair.
func (l *lexer) next(previous token.Token) token.Token {
	l.skipWhitespace()

	if l.cursor >= len(l.src) {
		return token.Simple(token.KindEnd)
	}

	// A numeric literal is attempted unconditionally (not gated on the
	// previous token's class): two adjacent values such as "1 2" must
	// tokenize as two separate Value tokens so the class-pair check can
	// reject the "value followed by a value" sequence, rather than letting
	// the second literal vanish into an unmatched, silently-ignored
	// character.
	if v, ok := l.scanNumber(); ok {
		return token.Literal(v)
	}

	if k, ok := l.matchKeyword(); ok {
		return token.Simple(k)
	}

	c := l.src[l.cursor]
	l.cursor++
	if k, ok := singleChars[c]; ok {
		return token.Simple(k)
	}
	switch c {
	case '-':
		if token.IsStartPosition(previous.Kind) {
			return token.Simple(token.KindNeg)
		}
		return token.Simple(token.KindSub)
	case '/':
		if l.cursor < len(l.src) && l.src[l.cursor] == '/' {
			l.cursor++
			return token.Simple(token.KindFloorDiv)
		}
		return token.Simple(token.KindDiv)
	}
	return token.Simple(token.KindEnd)
}
