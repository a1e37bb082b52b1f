package nfa

import (
	"fmt"

	"github.com/coregx/trimatch/ast"
)

// trapCapacityHint bounds nothing at compile time; it exists purely
// as a documented constant for readers, since the shared "NFA trap
// state" is only used during DFA subset construction (package dfa),
// not during Thompson compilation itself.
const trapCapacityHint = 0

// compileConfig holds the options a BuildOption may set, applied
// after Thompson construction completes.
type compileConfig struct {
	maxStates int
}

// BuildOption configures Compile, following the functional-option
// shape of coregex's nfa.BuildOption.
type BuildOption func(*compileConfig)

// WithMaxStates rejects a compilation that would produce more than n
// states, surfacing a *BuildError instead of silently building an
// arbitrarily large NFA. n <= 0 means unlimited, the default.
func WithMaxStates(n int) BuildOption {
	return func(c *compileConfig) {
		c.maxStates = n
	}
}

// Compile translates an AST into an ε-NFA by Thompson-style
// construction. Each
// sub-build allocates fresh states in a shared arena (Builder);
// Or/Sequence clear the accepting flag on the sub-exits they splice
// together, restoring it only on the final composed exit.
func Compile(n *ast.Node, opts ...BuildOption) (*NFA, error) {
	if n == nil {
		return nil, &BuildError{Message: "cannot compile nil AST", StateID: InvalidState}
	}
	var cfg compileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b := NewBuilder()
	entry, exit := build(b, n)
	b.SetAccepting(exit, true)

	if cfg.maxStates > 0 && len(b.states) > cfg.maxStates {
		return nil, &BuildError{
			Message: fmt.Sprintf("compiled NFA has %d states, exceeding the limit of %d", len(b.states), cfg.maxStates),
			StateID: InvalidState,
		}
	}
	return b.Build(entry, exit), nil
}

// build recursively compiles n into fresh states in b, returning the
// sub-NFA's (entry, exit) pair. The returned exit is NOT marked
// accepting by build itself except where a variant's own rule says
// so (Epsilon, Char, AnyChar, CharClass); composing variants
// (Or, Sequence, ZeroOrMore, Optional) are responsible for clearing
// or restoring the accepting flag on the states they splice.
func build(b *Builder, n *ast.Node) (entry, exit StateID) {
	switch n.Kind {
	case ast.KindEpsilon:
		entry = b.AddState()
		exit = b.AddState()
		b.AddEpsilonEdge(entry, exit)
		b.SetAccepting(exit, true)
		return entry, exit

	case ast.KindNull:
		// Null matches nothing: entry has no transitions at all, so
		// no input, however long, ever reaches an accepting state.
		entry = b.AddState()
		exit = b.AddState()
		return entry, exit

	case ast.KindChar:
		entry = b.AddState()
		exit = b.AddState()
		b.AddCharEdge(entry, n.Char, exit)
		b.SetAccepting(exit, true)
		return entry, exit

	case ast.KindAnyChar:
		entry = b.AddState()
		exit = b.AddState()
		b.AddDefaultEdge(entry, exit)
		b.SetAccepting(exit, true)
		return entry, exit

	case ast.KindCharClass:
		return buildCharClass(b, n)

	case ast.KindOr:
		return buildOr(b, n)

	case ast.KindSequence:
		return buildSequence(b, n)

	case ast.KindZeroOrMore:
		return buildZeroOrMore(b, n)

	case ast.KindOptional:
		return buildOptional(b, n)

	default:
		entry = b.AddState()
		exit = entry
		return entry, exit
	}
}

// classChars expands a CharClass's Members into the explicit set of
// code points it lists; ranges are expanded to their member code
// points.
func classChars(n *ast.Node) []rune {
	var chars []rune
	for _, m := range n.Members {
		if m.Range != nil {
			for c := m.Range.Start; c <= m.Range.End; c++ {
				chars = append(chars, c)
			}
		} else {
			chars = append(chars, m.Char)
		}
	}
	return chars
}

func buildCharClass(b *Builder, n *ast.Node) (entry, exit StateID) {
	entry = b.AddState()
	exit = b.AddState()
	b.SetAccepting(exit, true)

	chars := classChars(n)
	if !n.Invert {
		for _, c := range chars {
			b.AddCharEdge(entry, c, exit)
		}
		return entry, exit
	}

	// CharClass{invert=true, M}: entry has default successor [exit];
	// for every c in M, explicitly override with an empty successor
	// list so those specific characters are excluded from the
	// default.
	b.AddDefaultEdge(entry, exit)
	for _, c := range chars {
		b.SetCharEdgeEmpty(entry, c)
	}
	return entry, exit
}

func buildOr(b *Builder, n *ast.Node) (entry, exit StateID) {
	aEntry, aExit := build(b, n.Left)
	b.SetAccepting(aExit, false)
	bEntry, bExit := build(b, n.Right)
	b.SetAccepting(bExit, false)

	entry = b.AddState()
	b.AddEpsilonEdge(entry, aEntry)
	b.AddEpsilonEdge(entry, bEntry)

	exit = b.AddState()
	b.SetAccepting(exit, true)
	b.AddEpsilonEdge(aExit, exit)
	b.AddEpsilonEdge(bExit, exit)

	return entry, exit
}

func buildSequence(b *Builder, n *ast.Node) (entry, exit StateID) {
	aEntry, aExit := build(b, n.Left)
	b.SetAccepting(aExit, false)
	bEntry, bExit := build(b, n.Right)

	b.AddEpsilonEdge(aExit, bEntry)
	return aEntry, bExit
}

func buildZeroOrMore(b *Builder, n *ast.Node) (entry, exit StateID) {
	rEntry, rExit := build(b, n.Left)
	b.AddEpsilonEdge(rExit, rEntry)
	b.AddEpsilonEdge(rEntry, rExit)
	return rEntry, rExit
}

func buildOptional(b *Builder, n *ast.Node) (entry, exit StateID) {
	rEntry, rExit := build(b, n.Left)
	b.AddEpsilonEdge(rEntry, rExit)
	return rEntry, rExit
}
