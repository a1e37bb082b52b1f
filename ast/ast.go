// Package ast implements the value-typed abstract syntax tree for the
// regex core: a closed set of node variants, structural equality, and
// the smart constructors that keep every tree in normal form.
//
// Nodes are immutable after construction. Two nodes are equal iff they
// have the same Kind and structurally equal fields; Epsilon, Null, and
// AnyChar are singleton values and compare equal to themselves by kind
// alone.
package ast

import "fmt"

// Kind identifies which regex AST variant a Node holds. It determines
// which of Node's fields are meaningful, the same way coregex's
// nfa.StateKind determines which State fields apply.
type Kind uint8

const (
	// KindEpsilon matches the empty string only.
	KindEpsilon Kind = iota
	// KindNull matches nothing.
	KindNull
	// KindChar matches exactly one code point, held in Node.Char.
	KindChar
	// KindAnyChar matches exactly one arbitrary code point.
	KindAnyChar
	// KindCharClass matches one code point in or out of a member set.
	KindCharClass
	// KindOr is alternation over Node.Left and Node.Right.
	KindOr
	// KindSequence is concatenation of Node.Left then Node.Right.
	KindSequence
	// KindZeroOrMore is the Kleene star of Node.Left.
	KindZeroOrMore
	// KindOptional is zero-or-one of Node.Left.
	KindOptional
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindEpsilon:
		return "Epsilon"
	case KindNull:
		return "Null"
	case KindChar:
		return "Char"
	case KindAnyChar:
		return "AnyChar"
	case KindCharClass:
		return "CharClass"
	case KindOr:
		return "Or"
	case KindSequence:
		return "Sequence"
	case KindZeroOrMore:
		return "ZeroOrMore"
	case KindOptional:
		return "Optional"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Atom is a single member of a CharClass: either a lone code point
// (Range == nil) or an inclusive CharRange.
type Atom struct {
	Char  rune
	Range *CharRange
}

// CharRange is the inclusive set {c : Start <= c <= End}. Constructed
// only through NewCharRange, which enforces Start < End strictly.
type CharRange struct {
	Start, End rune
}

// AtomChar builds an Atom holding a single code point.
func AtomChar(c rune) Atom {
	return Atom{Char: c}
}

// AtomRange builds an Atom holding a CharRange.
func AtomRange(r CharRange) Atom {
	return Atom{Range: &r}
}

// Contains reports whether c is a member of the atom's set.
func (a Atom) Contains(c rune) bool {
	if a.Range != nil {
		return c >= a.Range.Start && c <= a.Range.End
	}
	return c == a.Char
}

// Equal reports whether two atoms denote the same set member.
func (a Atom) Equal(b Atom) bool {
	if (a.Range == nil) != (b.Range == nil) {
		return false
	}
	if a.Range != nil {
		return *a.Range == *b.Range
	}
	return a.Char == b.Char
}

// Node is a value-typed regex AST node. Build one only through the
// package-level smart constructors (New*) or the singleton values
// Epsilon, Null, AnyChar: these are the only ways to guarantee the
// normalization invariants in construct.go hold.
type Node struct {
	Kind Kind

	// Char holds the code point for KindChar.
	Char rune

	// Invert and Members hold the class definition for KindCharClass.
	Invert  bool
	Members []Atom

	// Left and Right hold children for KindOr, KindSequence.
	// Left alone holds the child for KindZeroOrMore, KindOptional.
	Left, Right *Node
}

// Singleton values. All references compare equal by Kind; there is no
// process-wide interning table, just shared read-only values.
var (
	Epsilon = &Node{Kind: KindEpsilon}
	Null    = &Node{Kind: KindNull}
	AnyChar = &Node{Kind: KindAnyChar}
)

// Equal reports whether n and other are structurally equal: same
// Kind, and recursively equal fields for that Kind.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case KindEpsilon, KindNull, KindAnyChar:
		return true
	case KindChar:
		return n.Char == other.Char
	case KindCharClass:
		if n.Invert != other.Invert || len(n.Members) != len(other.Members) {
			return false
		}
		for i, m := range n.Members {
			if !m.Equal(other.Members[i]) {
				return false
			}
		}
		return true
	case KindOr, KindSequence:
		return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
	case KindZeroOrMore, KindOptional:
		return n.Left.Equal(other.Left)
	default:
		return false
	}
}

// String renders a compact debug form of n, e.g. "Sequence(Char('a'),
// ZeroOrMore(Char('a')))". For the full Go constructor-call
// reconstruction, see internal/astdump.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindEpsilon, KindNull, KindAnyChar:
		return n.Kind.String()
	case KindChar:
		return fmt.Sprintf("Char(%q)", n.Char)
	case KindCharClass:
		return fmt.Sprintf("CharClass(invert=%v, members=%d)", n.Invert, len(n.Members))
	case KindOr:
		return fmt.Sprintf("Or(%s, %s)", n.Left, n.Right)
	case KindSequence:
		return fmt.Sprintf("Sequence(%s, %s)", n.Left, n.Right)
	case KindZeroOrMore:
		return fmt.Sprintf("ZeroOrMore(%s)", n.Left)
	case KindOptional:
		return fmt.Sprintf("Optional(%s)", n.Left)
	default:
		return "<invalid>"
	}
}

// Size returns the number of nodes in the tree rooted at n. Every
// reference to a singleton counts as one node.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindEpsilon, KindNull, KindChar, KindAnyChar, KindCharClass:
		return 1
	case KindOr, KindSequence:
		return 1 + n.Left.Size() + n.Right.Size()
	case KindZeroOrMore, KindOptional:
		return 1 + n.Left.Size()
	default:
		return 1
	}
}
