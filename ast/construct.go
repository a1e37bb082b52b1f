package ast

// NewChar returns a node matching exactly c.
func NewChar(c rune) *Node {
	return &Node{Kind: KindChar, Char: c}
}

// NewCharRange builds a CharRange{Start, End}. Start must be strictly
// less than End; construction with Start >= End fails with
// ErrInvalidCharRange. A range denotes the inclusive set
// {c : start <= c <= end}.
func NewCharRange(start, end rune) (CharRange, error) {
	if start >= end {
		return CharRange{}, &ConstructError{Op: "NewCharRange", Err: ErrInvalidCharRange}
	}
	return CharRange{Start: start, End: end}, nil
}

// NewCharClass builds a character class matching one code point in
// (invert=false) or out of (invert=true) the member set.
//
// Normalization: CharClass(invert=false, [single_char]) collapses to
// Char(single_char).
//
// members must each be either a single code point or a CharRange;
// any other Atom shape is rejected with ErrInvalidCharClass (this can
// only happen if a caller hand-builds an Atom outside AtomChar/
// AtomRange, which NewCharRange already guards against for ranges).
func NewCharClass(invert bool, members []Atom) (*Node, error) {
	for _, m := range members {
		if m.Range != nil && m.Range.Start >= m.Range.End {
			return nil, &ConstructError{Op: "NewCharClass", Err: ErrInvalidCharClass}
		}
	}

	if !invert && len(members) == 1 && members[0].Range == nil {
		return NewChar(members[0].Char), nil
	}

	cp := make([]Atom, len(members))
	copy(cp, members)
	return &Node{Kind: KindCharClass, Invert: invert, Members: cp}, nil
}

// NewOr builds an alternation, applying:
//
//	Or(Null, r) = Or(r, Null) = r
//	Or(r, r)    = r
func NewOr(a, b *Node) *Node {
	if a.Kind == KindNull {
		return b
	}
	if b.Kind == KindNull {
		return a
	}
	if a.Equal(b) {
		return a
	}
	return &Node{Kind: KindOr, Left: a, Right: b}
}

// NewSequence builds a concatenation, applying:
//
//	Sequence(Null, _) = Sequence(_, Null) = Null
//	Sequence(Epsilon, r) = Sequence(r, Epsilon) = r
//	Sequence(a, ZeroOrMore(a)) collapses to a+'s representation is
//	handled by the caller (ast itself has no Plus node; see
//	pattern.go for the to_pattern special case that re-emits '+').
func NewSequence(a, b *Node) *Node {
	if a.Kind == KindNull || b.Kind == KindNull {
		return Null
	}
	if a.Kind == KindEpsilon {
		return b
	}
	if b.Kind == KindEpsilon {
		return a
	}
	return &Node{Kind: KindSequence, Left: a, Right: b}
}

// NewZeroOrMore builds a Kleene star, applying:
//
//	ZeroOrMore(Null) = ZeroOrMore(Epsilon) = Epsilon
//	ZeroOrMore(ZeroOrMore(r)) = ZeroOrMore(r)
//	ZeroOrMore(Optional(r)) = ZeroOrMore(r)
func NewZeroOrMore(r *Node) *Node {
	switch r.Kind {
	case KindNull, KindEpsilon:
		return Epsilon
	case KindZeroOrMore:
		return r
	case KindOptional:
		return NewZeroOrMore(r.Left)
	default:
		return &Node{Kind: KindZeroOrMore, Left: r}
	}
}

// NewOptional builds a zero-or-one node, applying:
//
//	Optional(Null) = Optional(Epsilon) = Epsilon
//	Optional(Optional(r)) = Optional(r)
//	Optional(ZeroOrMore(r)) = ZeroOrMore(r)
//
// The last identity is lossless, not lossy: ZeroOrMore already
// accepts the empty string, so wrapping it in Optional adds nothing
// to the language it denotes.
func NewOptional(r *Node) *Node {
	switch r.Kind {
	case KindNull, KindEpsilon:
		return Epsilon
	case KindOptional:
		return r
	case KindZeroOrMore:
		return r
	default:
		return &Node{Kind: KindOptional, Left: r}
	}
}
