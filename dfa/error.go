package dfa

import "errors"

// ErrInternalInvariant indicates subset construction attempted to
// install two enumerated edges for the same character on the same
// source DFA state. The moves map construction guarantees a single
// successor set per character, so this should be unreachable outside
// of a defect in
// Build itself.
var ErrInternalInvariant = errors.New("dfa: internal invariant violated")

// BuildError wraps a subset-construction failure that isn't the
// ErrInternalInvariant case, such as a configured state-count limit
// being exceeded.
type BuildError struct {
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return "dfa: build error: " + e.Message
}
