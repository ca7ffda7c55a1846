// SPDX-License-Identifier: MIT
package exprlang

import "github.com/katalvlaran/isomesher/token"

// MaxStackDepth bounds both the validator's simulated stack depth and the
// evaluator's physical stack.
const MaxStackDepth = 64

// Validate simulates the stack effect of each token in a postfix sequence
// produced by Parse, confirming the depth never goes negative or exceeds
// MaxStackDepth and settles at exactly 1 once KindEnd is reached.
func Validate(tokens []token.Token) error {
	depth := 0
	for _, t := range tokens {
		if t.Kind == token.KindEnd {
			break
		}
		depth += token.StackEffect(t.Kind)
		if depth < 0 || depth > MaxStackDepth {
			return ErrInvalidExpression
		}
	}
	if depth != 1 {
		return ErrInvalidExpression
	}
	return nil
}
