package ast

// Derivative returns the Brzozowski derivative of r with respect to
// the code point c: the regex matching exactly those suffixes s such
// that c followed by s is in the language of r. Defined structurally:
//
//	D_c(Epsilon) = D_c(Null)        = Null
//	D_c(Char c')                    = Epsilon if c=c' else Null
//	D_c(AnyChar)                    = Epsilon
//	D_c(CharClass{invert, M})       = Epsilon if (c in M) XOR invert else Null
//	D_c(Or(a,b))                    = Or(D_c a, D_c b)
//	D_c(Sequence(a,b))              = Or(Sequence(Nullable(a), D_c b), Sequence(D_c a, b))
//	D_c(ZeroOrMore r)                = Sequence(D_c r, ZeroOrMore r)
//	D_c(Optional r)                  = D_c r
//
// Every compound result passes back through the smart constructors,
// so the tree stays in normal form after every step; this is what
// keeps repeated derivation from growing without bound on common
// patterns.
func Derivative(r *Node, c rune) *Node {
	switch r.Kind {
	case KindEpsilon, KindNull:
		return Null
	case KindChar:
		if r.Char == c {
			return Epsilon
		}
		return Null
	case KindAnyChar:
		return Epsilon
	case KindCharClass:
		if classContains(r, c) != r.Invert {
			return Epsilon
		}
		return Null
	case KindOr:
		return NewOr(Derivative(r.Left, c), Derivative(r.Right, c))
	case KindSequence:
		return NewOr(
			NewSequence(Nullable(r.Left), Derivative(r.Right, c)),
			NewSequence(Derivative(r.Left, c), r.Right),
		)
	case KindZeroOrMore:
		return NewSequence(Derivative(r.Left, c), r)
	case KindOptional:
		return Derivative(r.Left, c)
	default:
		return Null
	}
}

// classContains reports whether c is one of the class's literal
// members, ignoring Invert (Derivative applies the XOR itself).
func classContains(class *Node, c rune) bool {
	for _, m := range class.Members {
		if m.Contains(c) {
			return true
		}
	}
	return false
}

// Matches reports whether s is in the language of r. Defined
// recursively: if s is empty, true iff Nullable(r) is Epsilon; else
// Matches(Derivative(r, s[0]), s[1:]).
//
// This is the canonical matching semantics the NFA and DFA matchers
// are required to agree with.
func Matches(r *Node, s string) bool {
	for _, c := range s {
		r = Derivative(r, c)
	}
	return IsNullable(r)
}
