// Package nfa implements Thompson-style construction of an ε-NFA from
// a regex AST (package ast), and a depth-first matcher with a
// loop-breaking visited guard.
//
// The arena + StateID model here is adapted from coregex's byte-level
// Thompson NFA (nfa.StateID, nfa.State, nfa.Builder): states live in a
// single flat arena, identified by a package-local integer index, so
// cycles introduced by ZeroOrMore back-edges need no special
// ownership handling.
package nfa

import "fmt"

// StateID identifies an NFA state by its index in the owning NFA's
// arena.
type StateID uint32

// InvalidState is a StateID that never refers to a real state.
const InvalidState StateID = 0xFFFFFFFF

// State is a single NFA state.
type State struct {
	Accepting bool

	// OnChar maps a code point to the list of successor states
	// reachable by consuming exactly that code point.
	OnChar map[rune][]StateID

	// Default holds the successors reached by consuming any code
	// point not present as a key in OnChar, used to encode AnyChar and
	// inverted CharClass transitions without enumerating the alphabet. Nil
	// means there is no default transition.
	Default []StateID

	// OnEpsilon holds successors reachable without consuming input.
	OnEpsilon []StateID
}

// NFA is a compiled ε-NFA together with its designated entry and exit
// states. Built once by Compile, read-only thereafter: the zero value
// is not usable.
type NFA struct {
	states []State
	entry  StateID
	exit   StateID
}

// Entry returns the NFA's start state.
func (n *NFA) Entry() StateID { return n.entry }

// Exit returns the NFA's designated accepting state.
func (n *NFA) Exit() StateID { return n.exit }

// NumStates returns the number of states in the NFA's arena.
func (n *NFA) NumStates() int { return len(n.states) }

// State returns a pointer to the state with the given ID. Panics if
// id is out of range, matching the arena-index contract: callers
// only ever hold StateIDs handed back by this package.
func (n *NFA) State(id StateID) *State {
	return &n.states[id]
}

// String renders a compact summary, in the spirit of coregex's
// nfa.NFA.String().
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, entry: %d, exit: %d}", len(n.states), n.entry, n.exit)
}
