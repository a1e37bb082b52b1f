// Package astgen generates random regex ASTs and sample subjects for
// property tests (three-way agreement, derivative correctness, and
// friends). There is no property-testing library anywhere in the
// example pack this repo is grounded on, so this is a small
// hand-rolled generator built directly on math/rand, not an
// adaptation of a third-party quickcheck-style tool.
package astgen

import (
	"math/rand"

	"github.com/coregx/trimatch/ast"
)

// Config bounds the trees Generator produces.
type Config struct {
	// MaxSize caps the node budget handed to the top-level Node call;
	// recursive calls subdivide it, so the actual tree is usually
	// smaller than MaxSize, never much larger.
	MaxSize int

	// Alphabet is the pool of code points literal nodes (Char,
	// AnyChar, CharClass members) are drawn from. Kept small so
	// generated subjects have a realistic chance of matching.
	Alphabet []rune
}

// DefaultConfig returns a Config with a small alphabet and a modest
// size cap, suitable for property tests that run many iterations.
func DefaultConfig() Config {
	return Config{
		MaxSize:  24,
		Alphabet: []rune("ab01"),
	}
}

// Generator produces random ast.Node trees and sample strings from a
// caller-supplied, caller-seeded *rand.Rand: seeding is the caller's
// responsibility so test failures are reproducible.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New builds a Generator. Passing a Config with a nil Alphabet or a
// non-positive MaxSize is a programmer error; callers should start
// from DefaultConfig.
func New(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Node generates one random AST within the generator's size budget.
func (g *Generator) Node() *ast.Node {
	return g.node(g.cfg.MaxSize)
}

// node recursively builds a tree, spending down budget as it
// descends so recursion terminates even for the least favorable
// random choices.
func (g *Generator) node(budget int) *ast.Node {
	if budget <= 1 {
		return g.leaf()
	}
	switch g.rng.Intn(6) {
	case 0:
		return g.leaf()
	case 1:
		return ast.NewOr(g.node(budget/2), g.node(budget/2))
	case 2:
		return ast.NewSequence(g.node(budget/2), g.node(budget/2))
	case 3:
		return ast.NewZeroOrMore(g.node(budget - 1))
	case 4:
		return ast.NewOptional(g.node(budget - 1))
	default:
		return g.charClass()
	}
}

func (g *Generator) leaf() *ast.Node {
	switch g.rng.Intn(4) {
	case 0:
		return ast.Epsilon
	case 1:
		return ast.Null
	case 2:
		return ast.AnyChar
	default:
		return ast.NewChar(g.randChar())
	}
}

func (g *Generator) randChar() rune {
	return g.cfg.Alphabet[g.rng.Intn(len(g.cfg.Alphabet))]
}

// charClass builds a small CharClass over the alphabet, never empty:
// a CharClass with a sole non-inverted member is degenerate (the
// smart constructor collapses it to Char), which is fine, it just
// means this branch occasionally produces the same shape as leaf's
// Char case.
func (g *Generator) charClass() *ast.Node {
	invert := g.rng.Intn(2) == 0
	n := 1 + g.rng.Intn(len(g.cfg.Alphabet))

	seen := make(map[rune]bool, n)
	var members []ast.Atom
	for i := 0; i < n; i++ {
		c := g.randChar()
		if seen[c] {
			continue
		}
		seen[c] = true
		members = append(members, ast.AtomChar(c))
	}
	if len(members) == 0 {
		members = append(members, ast.AtomChar(g.randChar()))
	}

	node, err := ast.NewCharClass(invert, members)
	if err != nil {
		// members are always lone AtomChars here, which NewCharClass
		// never rejects; this is unreachable, but a leaf is a safe
		// fallback if the invariant ever changes underneath us.
		return g.leaf()
	}
	return node
}

// RandomString returns a random string of length n drawn from the
// generator's alphabet, used as a subject when a property test just
// needs "some string", matching or not.
func (g *Generator) RandomString(n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = g.randChar()
	}
	return string(runes)
}

// SampleMatch returns a string in r's language, or ok=false if r is
// Null (the only variant with an empty language). Star bodies are
// repeated a small random number of times (0-3) rather than
// expanding unboundedly.
func (g *Generator) SampleMatch(r *ast.Node) (string, bool) {
	switch r.Kind {
	case ast.KindEpsilon:
		return "", true
	case ast.KindNull:
		return "", false
	case ast.KindChar:
		return string(r.Char), true
	case ast.KindAnyChar:
		return string(g.randChar()), true
	case ast.KindCharClass:
		return g.sampleCharClass(r), true
	case ast.KindOr:
		left, lok := g.SampleMatch(r.Left)
		right, rok := g.SampleMatch(r.Right)
		switch {
		case lok && rok:
			if g.rng.Intn(2) == 0 {
				return left, true
			}
			return right, true
		case lok:
			return left, true
		case rok:
			return right, true
		default:
			return "", false
		}
	case ast.KindSequence:
		left, lok := g.SampleMatch(r.Left)
		if !lok {
			return "", false
		}
		right, rok := g.SampleMatch(r.Right)
		if !rok {
			return "", false
		}
		return left + right, true
	case ast.KindZeroOrMore:
		count := g.rng.Intn(4)
		var b []byte
		for i := 0; i < count; i++ {
			part, ok := g.SampleMatch(r.Left)
			if !ok {
				break
			}
			b = append(b, part...)
		}
		return string(b), true
	case ast.KindOptional:
		if g.rng.Intn(2) == 0 {
			return "", true
		}
		part, ok := g.SampleMatch(r.Left)
		if !ok {
			return "", true
		}
		return part, true
	default:
		return "", false
	}
}

// sampleCharClass returns a code point in n's member set (non-invert)
// or a code point from the alphabet outside it (invert), falling
// back to U+10000 if every alphabet character happens to be excluded.
func (g *Generator) sampleCharClass(n *ast.Node) string {
	if !n.Invert {
		m := n.Members[g.rng.Intn(len(n.Members))]
		if m.Range != nil {
			span := int(m.Range.End-m.Range.Start) + 1
			return string(m.Range.Start + rune(g.rng.Intn(span)))
		}
		return string(m.Char)
	}

	candidates := append([]rune(nil), g.cfg.Alphabet...)
	g.rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	for _, c := range candidates {
		excluded := false
		for _, m := range n.Members {
			if m.Contains(c) {
				excluded = true
				break
			}
		}
		if !excluded {
			return string(c)
		}
	}
	return string(rune(0x10000))
}
