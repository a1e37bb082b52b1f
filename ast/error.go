package ast

import (
	"errors"
	"fmt"
)

// Common construction errors, in the style of nfa.ErrInvalidState:
// sentinel values callers can compare against with errors.Is.
var (
	// ErrInvalidCharRange indicates a CharRange was constructed with
	// Start >= End.
	ErrInvalidCharRange = errors.New("ast: invalid char range")

	// ErrInvalidCharClass indicates a CharClass member was not a
	// single code point or a CharRange.
	ErrInvalidCharClass = errors.New("ast: invalid char class member")

	// ErrUnrepresentableRegex indicates ToPattern(Null) was called;
	// Null has no surface-syntax representation.
	ErrUnrepresentableRegex = errors.New("ast: regex has no pattern representation")
)

// ConstructError wraps a construction-time failure with the name of
// the operation that failed, following the *nfa.BuildError shape.
type ConstructError struct {
	Op  string // constructor that failed, e.g. "NewCharRange"
	Err error
}

// Error implements the error interface.
func (e *ConstructError) Error() string {
	return fmt.Sprintf("ast: %s: %v", e.Op, e.Err)
}

// Unwrap allows errors.Is/errors.As to see through to Err.
func (e *ConstructError) Unwrap() error {
	return e.Err
}
