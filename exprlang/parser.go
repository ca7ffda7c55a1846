// SPDX-License-Identifier: MIT
package exprlang

import (
	"github.com/katalvlaran/isomesher/token"
)

// classPairError builds the diagnostic for an illegal (prev, curr) class
// transition, mirroring the original program's formatError priority order:
// a token following Start is reported as a bad start, then a dangling
// expression end is reported naming the previous class, then a function
// not followed by '(' gets its own message, and everything else falls back
// to the generic "X must not be followed by Y".
func classPairError(prev, curr token.Class) error {
	switch {
	case prev == token.ClassStart:
		return errStartsWith(curr)
	case curr == token.ClassEnd:
		return errEndsWith(prev)
	case prev == token.ClassFunction:
		return ErrDanglingFunction
	default:
		return errFollowedBy(prev, curr)
	}
}

// checkClassPair enforces the grammar's class-pair rules, returning the
// matching diagnostic on violation. prev/curr are the classes of the
// previous and current tokens.
func checkClassPair(prev, curr token.Class) error {
	switch prev {
	case token.ClassValue, token.ClassRBracket:
		switch curr {
		case token.ClassValue, token.ClassUnaryOp, token.ClassFunction, token.ClassLBracket:
			return classPairError(prev, curr)
		}
	case token.ClassBinaryOp, token.ClassUnaryOp, token.ClassLBracket, token.ClassDelimiter, token.ClassStart:
		switch curr {
		case token.ClassBinaryOp, token.ClassRBracket, token.ClassDelimiter, token.ClassEnd:
			if prev == token.ClassStart && curr == token.ClassEnd {
				return ErrEmptyExpression
			}
			return classPairError(prev, curr)
		}
	case token.ClassFunction:
		if curr != token.ClassLBracket {
			return classPairError(prev, curr)
		}
	default:
		// Reaching here means a token was produced following something that
		// already terminated the expression (ClassEnd) — a parser bug, not
		// a user-input error.
		panic("exprlang: class-pair check reached past End")
	}
	return nil
}

// Parse tokenizes source and rearranges it into postfix (RPN) order via
// shunting-yard, validating class-pair transitions as it goes. capacity
// bounds both the output slice and the scratch operator stack, since each
// input token contributes at most one entry to either. The returned slice
// always ends with a KindEnd token.
func Parse(source string, capacity int) ([]token.Token, error) {
	lx := newLexer(source)
	out := make([]token.Token, 0, capacity)
	operators := make([]token.Token, 0, capacity)

	previous := token.Simple(token.KindStart)
	for {
		current := lx.next(previous)

		if err := checkClassPair(token.ClassOf(previous.Kind), token.ClassOf(current.Kind)); err != nil {
			return nil, err
		}

		switch token.ClassOf(current.Kind) {
		case token.ClassValue:
			if len(out) >= capacity {
				return nil, ErrOutputOverflow
			}
			out = append(out, current)

		case token.ClassLBracket, token.ClassFunction:
			if len(operators) >= capacity {
				return nil, ErrOutputOverflow
			}
			operators = append(operators, current)

		case token.ClassBinaryOp, token.ClassUnaryOp:
			precedence := token.Precedence(current.Kind)
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.Kind == token.KindLBracket {
					break
				}
				topPrecedence := token.Precedence(top.Kind)
				if topPrecedence > precedence ||
					(topPrecedence == precedence && token.Associativity(top.Kind) == token.AssocLeft) {
					out = append(out, top)
					operators = operators[:len(operators)-1]
				} else {
					break
				}
			}
			if len(operators) >= capacity {
				return nil, ErrOutputOverflow
			}
			operators = append(operators, current)

		case token.ClassRBracket:
			foundLBracket := false
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top.Kind == token.KindLBracket {
					foundLBracket = true
					if len(operators) > 0 && token.ClassOf(operators[len(operators)-1].Kind) == token.ClassFunction {
						out = append(out, operators[len(operators)-1])
						operators = operators[:len(operators)-1]
					}
					break
				}
				out = append(out, top)
			}
			if !foundLBracket {
				return nil, ErrMismatchedBrackets
			}

		case token.ClassDelimiter:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.Kind == token.KindLBracket {
					break
				}
				out = append(out, top)
				operators = operators[:len(operators)-1]
			}
		}

		previous = current
		if current.Kind == token.KindEnd {
			break
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.Kind == token.KindLBracket {
			return nil, ErrMismatchedBrackets
		}
		out = append(out, top)
	}
	out = append(out, token.Simple(token.KindEnd))
	if len(out) > capacity {
		return nil, ErrOutputOverflow
	}

	return out, nil
}
