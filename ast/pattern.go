package ast

import "strings"

// metachars are escaped when they appear as literal characters in a
// rendered pattern.
const metachars = `()\.|*+[]`

func escapeLiteral(c rune) string {
	if strings.ContainsRune(metachars, c) {
		return `\` + string(c)
	}
	return string(c)
}

// Precedence levels used to decide when ToPattern needs parentheses,
// lowest-binding first.
const (
	precOr = iota
	precSequence
	precPostfix
	precAtom
)

// ToPattern round-trips r to a surface pattern matching the parser's
// grammar. Parentheses are emitted exactly when associativity
// or precedence would otherwise change the parse; metacharacters are
// escaped when literal. ToPattern(Null) returns a ConstructError
// wrapping ErrUnrepresentableRegex: Null has no pattern
// representation.
//
// Sequence(a, ZeroOrMore(a)) is special-cased to emit "a+" rather
// than "aa*", since the AST has no first-class Plus variant.
func ToPattern(r *Node) (string, error) {
	if containsNull(r) {
		return "", &ConstructError{Op: "ToPattern", Err: ErrUnrepresentableRegex}
	}
	return writeExpr(r, precOr), nil
}

// containsNull reports whether r is, or contains as a proper
// subterm, a Null node. Null only ever survives smart-constructor
// normalization at the root (Or/Sequence/ZeroOrMore/Optional all fold
// a Null child away), so in practice this is just "r.Kind ==
// KindNull", but walking defensively costs nothing and protects
// against any Node built by hand outside the constructors.
func containsNull(r *Node) bool {
	switch r.Kind {
	case KindNull:
		return true
	case KindOr, KindSequence:
		return containsNull(r.Left) || containsNull(r.Right)
	case KindZeroOrMore, KindOptional:
		return containsNull(r.Left)
	default:
		return false
	}
}

// asPlus reports whether n is the Sequence(a, ZeroOrMore(a))
// representation of "a+", returning a if so.
func asPlus(n *Node) (*Node, bool) {
	if n.Kind == KindSequence && n.Right.Kind == KindZeroOrMore && n.Left.Equal(n.Right.Left) {
		return n.Left, true
	}
	return nil, false
}

// writeExpr renders n as it should appear in a context that binds at
// least as tightly as minPrec, wrapping in parentheses only when n's
// own precedence is lower than that.
func writeExpr(n *Node, minPrec int) string {
	if base, ok := asPlus(n); ok {
		return wrapIf(writeExpr(base, precPostfix)+"+", precPostfix, minPrec)
	}

	switch n.Kind {
	case KindEpsilon:
		return ""
	case KindChar:
		return escapeLiteral(n.Char)
	case KindAnyChar:
		return "."
	case KindCharClass:
		return charClassString(n)
	case KindOr:
		s := writeExpr(n.Left, precOr) + "|" + writeExpr(n.Right, precOr)
		return wrapIf(s, precOr, minPrec)
	case KindSequence:
		s := writeExpr(n.Left, precSequence) + writeExpr(n.Right, precSequence)
		return wrapIf(s, precSequence, minPrec)
	case KindZeroOrMore:
		return wrapIf(writeExpr(n.Left, precPostfix)+"*", precPostfix, minPrec)
	case KindOptional:
		return wrapIf(writeExpr(n.Left, precPostfix)+"?", precPostfix, minPrec)
	default:
		return ""
	}
}

func wrapIf(s string, ownPrec, minPrec int) string {
	if ownPrec < minPrec {
		return "(" + s + ")"
	}
	return s
}

func charClassString(n *Node) string {
	var b strings.Builder
	b.WriteByte('[')
	if n.Invert {
		b.WriteByte('^')
	}
	for _, m := range n.Members {
		if m.Range != nil {
			b.WriteString(classLiteral(m.Range.Start))
			b.WriteByte('-')
			b.WriteString(classLiteral(m.Range.End))
		} else {
			b.WriteString(classLiteral(m.Char))
		}
	}
	b.WriteByte(']')
	return b.String()
}

// classLiteral escapes a code point for use inside a char class: '-',
// ']' and '^' need escaping there even outside the general
// metacharacter set, since the class grammar treats them specially.
func classLiteral(c rune) string {
	switch c {
	case '-', ']', '^', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}
