package nfa

import (
	"errors"
	"fmt"
)

// ErrInvalidState indicates a StateID outside the NFA's arena was
// referenced, in the style of coregex's nfa.ErrInvalidState.
var ErrInvalidState = errors.New("nfa: invalid state")

// BuildError wraps a construction-time failure, following the
// *nfa.BuildError shape from coregex.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("nfa: build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("nfa: build error: %s", e.Message)
}
