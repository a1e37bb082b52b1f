package ast

// Nullable returns Epsilon if r matches the empty string, else Null.
// Defined structurally:
//
//	Nullable(Epsilon)       = Epsilon
//	Nullable(Null)          = Null
//	Nullable(Char _)        = Null
//	Nullable(AnyChar)       = Null
//	Nullable(CharClass _)   = Null
//	Nullable(Or(a,b))       = Or(Nullable(a), Nullable(b))
//	Nullable(Sequence(a,b)) = Sequence(Nullable(a), Nullable(b))
//	Nullable(ZeroOrMore _)  = Epsilon
//	Nullable(Optional _)    = Epsilon
func Nullable(r *Node) *Node {
	switch r.Kind {
	case KindEpsilon:
		return Epsilon
	case KindNull, KindChar, KindAnyChar, KindCharClass:
		return Null
	case KindOr:
		return NewOr(Nullable(r.Left), Nullable(r.Right))
	case KindSequence:
		return NewSequence(Nullable(r.Left), Nullable(r.Right))
	case KindZeroOrMore, KindOptional:
		return Epsilon
	default:
		return Null
	}
}

// IsNullable reports whether r matches the empty string, i.e. whether
// Nullable(r) is Epsilon. This is the boolean form used by nfa/dfa
// accepting-state checks: Nullable(r) = Epsilon iff Matches(r, "").
func IsNullable(r *Node) bool {
	return Nullable(r).Kind == KindEpsilon
}
