// Package trimatch compiles a small regex surface syntax down to
// three independently verifiable matchers over the same AST — a
// Brzozowski derivative walk, a Thompson NFA with a loop-breaking
// visited guard, and a subset-constructed DFA with an optional
// literal prefilter — so that the three can be checked against each
// other, not just trusted.
//
// Basic usage:
//
//	re, err := trimatch.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("555-1234") {
//	    fmt.Println("matched!")
//	}
//
// No capture groups, back-references, anchors, lookaround, or
// Unicode-category classes are supported.
package trimatch

import (
	"fmt"

	"github.com/coregx/trimatch/ast"
	"github.com/coregx/trimatch/dfa"
	"github.com/coregx/trimatch/literal"
	"github.com/coregx/trimatch/nfa"
	"github.com/coregx/trimatch/parser"
	"github.com/coregx/trimatch/prefilter"
)

// Regex is a compiled pattern: one AST, backing all three matchers.
//
// A Regex is immutable after Compile returns and is safe to use
// concurrently from multiple goroutines.
type Regex struct {
	pattern   string
	tree      *ast.Node
	nfa       *nfa.NFA
	dfa       *dfa.DFA
	prefilter *prefilter.Prefilter
}

// Compile parses pattern and builds all three matchers, using
// DefaultConfig's limits.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error, for patterns known
// to be valid at init time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("trimatch: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig parses pattern and builds all three matchers
// under the given Config's limits.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(pattern) > config.MaxPatternLength {
		return nil, &ConfigError{
			Field:   "MaxPatternLength",
			Message: fmt.Sprintf("pattern of length %d exceeds the configured limit of %d", len(pattern), config.MaxPatternLength),
		}
	}

	tree, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}

	n, err := nfa.Compile(tree, nfa.WithMaxStates(config.MaxNFAStates))
	if err != nil {
		return nil, err
	}

	d, err := dfa.Build(n, dfa.WithMaxStates(config.MaxDFAStates))
	if err != nil {
		return nil, err
	}

	var pf *prefilter.Prefilter
	if config.EnablePrefilter {
		if literals, ok := literal.New(literal.DefaultConfig()).Extract(tree); ok {
			pf, err = prefilter.New(literals)
			if err != nil {
				return nil, err
			}
		}
	}

	return &Regex{pattern: pattern, tree: tree, nfa: n, dfa: d, prefilter: pf}, nil
}

// String returns the pattern re was compiled from.
func (re *Regex) String() string {
	return re.pattern
}

// AST exposes the compiled pattern's AST, for tooling (the CLI's
// constructor dump and English rendering) that needs to inspect the
// tree rather than just match with it.
func (re *Regex) AST() *ast.Node {
	return re.tree
}

// MatchString reports whether s matches re, using the DFA plus its
// prefilter when one is available. This is the matcher callers should
// use; MatchDerivative, MatchNFA, and MatchDFA exist for
// cross-checking and diagnostics, not everyday matching.
func (re *Regex) MatchString(s string) bool {
	if re.prefilter != nil && !re.prefilter.IsMatch([]byte(s)) {
		return false
	}
	return dfa.Matches(re.dfa, s)
}

// MatchDerivative matches s by repeated Brzozowski differentiation of
// the AST, bypassing the NFA and DFA entirely.
func (re *Regex) MatchDerivative(s string) bool {
	return ast.Matches(re.tree, s)
}

// MatchNFA matches s by depth-first search over the compiled ε-NFA.
func (re *Regex) MatchNFA(s string) bool {
	return nfa.Matches(re.nfa, s)
}

// MatchDFA matches s against the subset-constructed DFA directly,
// without consulting the prefilter.
func (re *Regex) MatchDFA(s string) bool {
	return dfa.Matches(re.dfa, s)
}

// FindLongestMatch returns the longest prefix of s the DFA accepts,
// and whether any such prefix exists (including the empty one).
func (re *Regex) FindLongestMatch(s string) (string, bool) {
	return dfa.FindLongestMatch(re.dfa, s)
}

// FindSubsetMatches tries every start offset of s left to right, takes
// the longest non-empty match the DFA finds there, and keeps it unless
// it is a substring of a match already kept. Kept matches may overlap;
// the prefilter is not consulted.
func (re *Regex) FindSubsetMatches(s string) []string {
	return dfa.FindSubsetMatches(re.dfa, s)
}
