// SPDX-License-Identifier: MIT
package exprlang

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isomesher/token"
)

// Sentinel errors for the expression pipeline. Callers should compare with
// errors.Is rather than the formatted message, since ErrUnexpectedToken is
// always wrapped with the offending class names.
var (
	// ErrEmptyExpression indicates the input produced no tokens at all.
	ErrEmptyExpression = errors.New("exprlang: must enter an expression")
	// ErrUnexpectedToken indicates an illegal class-pair transition.
	ErrUnexpectedToken = errors.New("exprlang: unexpected token")
	// ErrDanglingFunction indicates a function name not followed by '('.
	ErrDanglingFunction = errors.New("exprlang: a function name must be followed by a left bracket")
	// ErrMismatchedBrackets indicates unbalanced '(' / ')'.
	ErrMismatchedBrackets = errors.New("exprlang: mismatched brackets")
	// ErrInvalidExpression indicates the postfix sequence is not stack-balanced.
	ErrInvalidExpression = errors.New("exprlang: invalid expression")
	// ErrOutputOverflow indicates the expression is longer than the caller's
	// requested output capacity.
	ErrOutputOverflow = errors.New("exprlang: expression exceeds output capacity")
)

// errStartsWith reports the spec's "expression must not start with <class>"
// diagnostic.
func errStartsWith(c token.Class) error {
	return fmt.Errorf("%w: expression must not start with %s", ErrUnexpectedToken, token.ClassName(c))
}

// errEndsWith reports the spec's "expression must not end with <class>"
// diagnostic.
func errEndsWith(c token.Class) error {
	return fmt.Errorf("%w: expression must not end with %s", ErrUnexpectedToken, token.ClassName(c))
}

// errFollowedBy reports the spec's "<prev> must not be followed by <curr>"
// diagnostic.
func errFollowedBy(prev, curr token.Class) error {
	return fmt.Errorf("%w: %s must not be followed by %s", ErrUnexpectedToken, token.ClassName(prev), token.ClassName(curr))
}
