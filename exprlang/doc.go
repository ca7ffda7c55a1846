// SPDX-License-Identifier: MIT

// Package exprlang implements the scalar-field expression pipeline: a
// shunting-yard parser that turns an infix arithmetic/function expression
// into a postfix token sequence, a validator that proves the sequence is
// stack-balanced, and a stack-machine evaluator that computes the
// expression's value at a point in ℝ³.
//
// The three stages are deliberately independent functions rather than a
// stateful object: Parse produces a []token.Token, Validate checks it once,
// and Eval may then be called any number of times (once per sample point)
// without repeating validation work.
//
// Grammar:
//
//	constants: pi, e
//	variables: x, y, z
//	operators: + - * / // % ^  (unary -)
//	functions: abs, min, max, floor, sin, cos, tan, asin, acos, atan,
//	           atan2, ln, log, sqrt, nroot, noise
//
// Errors:
//
//	ErrEmptyExpression, ErrUnexpectedToken, ErrDanglingFunction,
//	ErrMismatchedBrackets, ErrInvalidExpression, ErrOutputOverflow
package exprlang
