// SPDX-License-Identifier: MIT
package exprlang

import (
	"math"

	"github.com/katalvlaran/isomesher/noise"
	"github.com/katalvlaran/isomesher/token"
	"gonum.org/v1/gonum/spatial/r3"
)

// stack is a fixed-capacity float64 stack, avoiding any heap allocation
// beyond the single backing array for the hot per-sample evaluation path.
type stack struct {
	data [MaxStackDepth]float64
	top  int
}

func (s *stack) push(v float64) {
	s.data[s.top] = v
	s.top++
}

func (s *stack) pop() float64 {
	s.top--
	return s.data[s.top]
}

func (s *stack) top1() float64 {
	return s.data[s.top-1]
}

// Eval evaluates a postfix token sequence produced by Parse (and accepted
// by Validate) at point, returning the scalar field value. Domain errors
// (division by zero, log of a non-positive number, sqrt of a negative
// number, asin/acos outside [-1,1]) are not trapped: they produce the
// platform's IEEE-754 NaN/±Inf result, which propagates through the rest
// of the expression exactly as any other float64 would.
//
// tokens must already be Validate-accepted; Eval does not re-check stack
// balance, and a token sequence that advances past a balanced program is a
// caller bug, not a runtime error — Eval panics in that case.
func Eval(tokens []token.Token, point r3.Vec) float64 {
	var s stack
	for _, t := range tokens {
		switch t.Kind {
		case token.KindEnd:
			return s.pop()
		case token.KindLiteral:
			s.push(t.Value)
		case token.KindPi:
			s.push(math.Pi)
		case token.KindE:
			s.push(math.E)
		case token.KindX:
			s.push(point.X)
		case token.KindY:
			s.push(point.Y)
		case token.KindZ:
			s.push(point.Z)
		case token.KindAdd:
			b, a := s.pop(), s.pop()
			s.push(a + b)
		case token.KindSub:
			b, a := s.pop(), s.pop()
			s.push(a - b)
		case token.KindMul:
			b, a := s.pop(), s.pop()
			s.push(a * b)
		case token.KindDiv:
			b, a := s.pop(), s.pop()
			s.push(a / b)
		case token.KindFloorDiv:
			b, a := s.pop(), s.pop()
			s.push(math.Floor(a / b))
		case token.KindMod:
			b, a := s.pop(), s.pop()
			s.push(math.Remainder(a, b))
		case token.KindPow:
			b, a := s.pop(), s.pop()
			s.push(math.Pow(a, b))
		case token.KindNeg:
			s.data[s.top-1] = -s.top1()
		case token.KindAbs:
			s.data[s.top-1] = math.Abs(s.top1())
		case token.KindMin:
			b, a := s.pop(), s.pop()
			s.push(math.Min(a, b))
		case token.KindMax:
			b, a := s.pop(), s.pop()
			s.push(math.Max(a, b))
		case token.KindFloor:
			s.data[s.top-1] = math.Floor(s.top1())
		case token.KindSin:
			s.data[s.top-1] = math.Sin(s.top1())
		case token.KindCos:
			s.data[s.top-1] = math.Cos(s.top1())
		case token.KindTan:
			s.data[s.top-1] = math.Tan(s.top1())
		case token.KindASin:
			s.data[s.top-1] = math.Asin(s.top1())
		case token.KindACos:
			s.data[s.top-1] = math.Acos(s.top1())
		case token.KindATan:
			s.data[s.top-1] = math.Atan(s.top1())
		case token.KindATan2:
			x, y := s.pop(), s.pop()
			s.push(math.Atan2(y, x))
		case token.KindLn:
			s.data[s.top-1] = math.Log(s.top1())
		case token.KindLog:
			x, base := s.pop(), s.pop()
			s.push(math.Log(x) / math.Log(base))
		case token.KindSqrt:
			s.data[s.top-1] = math.Sqrt(s.top1())
		case token.KindNRoot:
			x, n := s.pop(), s.pop()
			s.push(math.Pow(x, 1/n))
		case token.KindNoise:
			z, y, x := s.pop(), s.pop(), s.pop()
			s.push(noise.Noise3(x, y, z))
		default:
			// A parser/validator that accepted this sequence would never
			// leave a bracket, comma, or Start token in it; reaching one
			// here means a caller fed Eval an un-Validate-d or hand-built
			// sequence.
			panic("exprlang: Eval encountered a non-evaluable token")
		}
	}
	// A Validate-accepted sequence always terminates on KindEnd above; a
	// sequence that runs off the end without one is malformed input that
	// bypassed Validate.
	panic("exprlang: token sequence missing End")
}
