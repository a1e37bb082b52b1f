// Package prefilter builds an Aho-Corasick automaton over the
// required literals extracted from a pattern (package literal), and
// uses it to rule out subjects that contain none of those literals
// before the DFA runs (trimatch.Regex.MatchString).
//
// This plays the same "prefilter ahead of the automaton" role the
// teacher's prefilter package plays, scoped down to the one case that
// matters here: cheaply ruling out whole subjects, not full
// prefilter-strategy selection.
package prefilter

import "github.com/coregx/ahocorasick"

// Prefilter finds candidate scan-start positions using a set of
// required literals, ahead of a full DFA walk.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// New builds a Prefilter over literals. Returns nil if literals is
// empty: a prefilter has nothing to offer a pattern with no required
// substring, and callers should skip straight to scanning every
// position.
func New(literals []string) (*Prefilter, error) {
	if len(literals) == 0 {
		return nil, nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{automaton: automaton}, nil
}

// IsMatch reports whether any required literal occurs anywhere in
// haystack. A caller scanning haystack for a full match can skip the
// whole subject the moment this returns false.
func (p *Prefilter) IsMatch(haystack []byte) bool {
	if p == nil {
		return true
	}
	return p.automaton.IsMatch(haystack)
}

// NextCandidate returns the start offset of the first required
// literal occurrence at or after at, or -1 if none remains. A nil
// Prefilter returns at unchanged. The DFA scan (dfa.FindSubsetMatches)
// does not use it; it tries every offset in turn.
func (p *Prefilter) NextCandidate(haystack []byte, at int) int {
	if p == nil {
		return at
	}
	m := p.automaton.Find(haystack, at)
	if m == nil {
		return -1
	}
	return m.Start
}
