package ast

import "testing"

func TestSingletonsEqual(t *testing.T) {
	if !Epsilon.Equal(Epsilon) {
		t.Fatal("Epsilon should equal itself")
	}
	if !Null.Equal(Null) {
		t.Fatal("Null should equal itself")
	}
	if !AnyChar.Equal(AnyChar) {
		t.Fatal("AnyChar should equal itself")
	}
	if Epsilon.Equal(Null) {
		t.Fatal("Epsilon should not equal Null")
	}
}

func TestNodeEqualStructural(t *testing.T) {
	a := NewSequence(NewChar('a'), NewChar('b'))
	b := NewSequence(NewChar('a'), NewChar('b'))
	c := NewSequence(NewChar('a'), NewChar('c'))

	if !a.Equal(b) {
		t.Errorf("expected structurally identical sequences to be equal")
	}
	if a.Equal(c) {
		t.Errorf("expected different sequences to be unequal")
	}
}

func TestCharClassEqualityIgnoresConstruction(t *testing.T) {
	rng, err := NewCharRange('a', 'z')
	if err != nil {
		t.Fatal(err)
	}
	cc1, err := NewCharClass(false, []Atom{AtomRange(rng), AtomChar('_')})
	if err != nil {
		t.Fatal(err)
	}
	cc2, err := NewCharClass(false, []Atom{AtomRange(rng), AtomChar('_')})
	if err != nil {
		t.Fatal(err)
	}
	if !cc1.Equal(cc2) {
		t.Fatal("expected identically built char classes to be equal")
	}
}

func TestSizeCountsNodes(t *testing.T) {
	n := NewSequence(NewChar('a'), NewZeroOrMore(NewChar('b')))
	// Sequence + Char + ZeroOrMore + Char = 4
	if got := n.Size(); got != 4 {
		t.Errorf("Size() = %d, want 4", got)
	}
}

func TestStringDoesNotPanic(t *testing.T) {
	nodes := []*Node{
		Epsilon, Null, AnyChar,
		NewChar('x'),
		NewOr(NewChar('a'), NewChar('b')),
		NewSequence(NewChar('a'), NewChar('b')),
		NewZeroOrMore(NewChar('a')),
		NewOptional(NewChar('a')),
	}
	for _, n := range nodes {
		if n.String() == "" {
			t.Errorf("String() unexpectedly empty for %v", n.Kind)
		}
	}
}
