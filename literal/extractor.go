// Package literal extracts required literal substrings from a regex
// AST, for use as a prefilter (package prefilter) ahead of the full
// DFA scan.
//
// A literal is "required" for a pattern if every string the pattern
// matches contains that literal as a substring somewhere. A required
// literal lets a caller skip a subject string (or a scan start
// position) immediately on an Aho-Corasick mismatch, without running
// the slower automaton at all.
package literal

import "github.com/coregx/trimatch/ast"

// Config limits how much work and memory literal extraction spends on
// a single pattern.
type Config struct {
	// MaxLiterals caps how many alternative literals Extract returns.
	// Patterns like (a|b|c|...|z) would otherwise grow the set
	// without bound; a pattern whose set exceeds the cap is reported
	// as unfilterable.
	MaxLiterals int

	// MaxLiteralLen caps the length of each literal. Longer literals
	// are truncated to their prefix, which stays sound: if the full
	// literal is required, so is its prefix.
	MaxLiteralLen int

	// MaxClassSize caps how large a non-inverted CharClass can be
	// before Extract gives up on expanding it into per-character
	// alternatives.
	MaxClassSize int

	// CrossProductLimit caps the number of literals Sequence
	// combination may produce while taking the cross product of two
	// child literal sets.
	CrossProductLimit int
}

// DefaultConfig returns extraction limits tuned the same way as the
// teacher's literal.DefaultConfig.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:       64,
		MaxLiteralLen:     64,
		MaxClassSize:      10,
		CrossProductLimit: 250,
	}
}

// Extractor extracts required literal substrings from an ast.Node.
type Extractor struct {
	config Config
}

// New creates an Extractor with the given limits.
func New(config Config) *Extractor {
	return &Extractor{config: config}
}

// result is the internal extraction outcome for a subtree: a set of
// alternative literals, at least one of which is required, together
// with whether the set is exact (safe to combine further) or has
// already hit a limit and should not be combined with a sibling.
type result struct {
	literals []string
	exact    bool
}

func none() result { return result{} }

// Extract returns the set of literal substrings such that every
// string r matches contains at least one of them, and ok reports
// whether any such set could be derived at all. ok == false means
// Extract found no usable required literal (e.g. r can match the
// empty string, or is unbounded like AnyChar/inverted classes at the
// top level) — callers should treat that pattern as unfilterable and
// fall back to scanning every position.
func (e *Extractor) Extract(r *ast.Node) (literals []string, ok bool) {
	res := e.extract(r)
	if len(res.literals) == 0 {
		return nil, false
	}
	if len(res.literals) > e.config.MaxLiterals {
		// Dropping alternatives would leave matches that contain none
		// of the returned literals, so an oversized set is unusable.
		return nil, false
	}
	return res.literals, true
}

func (e *Extractor) extract(n *ast.Node) result {
	switch n.Kind {
	case ast.KindChar:
		return result{literals: []string{string(n.Char)}, exact: true}

	case ast.KindCharClass:
		return e.extractCharClass(n)

	case ast.KindSequence:
		return e.extractSequence(n)

	case ast.KindOr:
		return e.extractOr(n)

	// Epsilon, Null, AnyChar, ZeroOrMore, Optional can all match
	// without contributing any required character at this position,
	// so no literal can be derived from them alone.
	default:
		return none()
	}
}

func (e *Extractor) extractCharClass(n *ast.Node) result {
	if n.Invert {
		return none()
	}
	chars := expandMembers(n.Members, e.config.MaxClassSize)
	if chars == nil {
		return none()
	}
	lits := make([]string, len(chars))
	for i, c := range chars {
		lits[i] = string(c)
	}
	return result{literals: lits, exact: true}
}

// expandMembers expands a CharClass's members into individual code
// points, or returns nil if doing so would exceed maxSize.
func expandMembers(members []ast.Atom, maxSize int) []rune {
	var chars []rune
	for _, m := range members {
		if m.Range != nil {
			for c := m.Range.Start; c <= m.Range.End; c++ {
				chars = append(chars, c)
				if len(chars) > maxSize {
					return nil
				}
			}
		} else {
			chars = append(chars, m.Char)
			if len(chars) > maxSize {
				return nil
			}
		}
	}
	return chars
}

func (e *Extractor) extractOr(n *ast.Node) result {
	left := e.extract(n.Left)
	right := e.extract(n.Right)
	// A branch with no required literal (e.g. it can match without
	// any fixed character) means the alternation as a whole cannot
	// guarantee any single required literal: a match could always
	// take that branch and avoid every literal the other branch
	// offers.
	if !left.exact || !right.exact || len(left.literals) == 0 || len(right.literals) == 0 {
		return none()
	}
	combined := append(append([]string{}, left.literals...), right.literals...)
	if len(combined) > e.config.MaxLiterals {
		return result{literals: combined, exact: false}
	}
	return result{literals: combined, exact: true}
}

func (e *Extractor) extractSequence(n *ast.Node) result {
	left := e.extract(n.Left)
	right := e.extract(n.Right)

	switch {
	case left.exact && len(left.literals) > 0 && right.exact && len(right.literals) > 0:
		return e.crossProduct(left.literals, right.literals)
	case left.exact && len(left.literals) > 0:
		return left
	case right.exact && len(right.literals) > 0:
		return right
	default:
		return none()
	}
}

// crossProduct concatenates every combination of a left and right
// literal, truncating each result to MaxLiteralLen and bailing out to
// an inexact-but-present result if the product would exceed
// CrossProductLimit.
func (e *Extractor) crossProduct(left, right []string) result {
	if len(left)*len(right) > e.config.CrossProductLimit {
		return result{literals: append([]string{}, left...), exact: false}
	}
	out := make([]string, 0, len(left)*len(right))
	for _, a := range left {
		for _, b := range right {
			combined := a + b
			if e.config.MaxLiteralLen > 0 && len(combined) > e.config.MaxLiteralLen {
				combined = combined[:e.config.MaxLiteralLen]
			}
			out = append(out, combined)
		}
	}
	return result{literals: out, exact: true}
}
