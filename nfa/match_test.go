package nfa

import (
	"testing"

	"github.com/coregx/trimatch/ast"
)

// TestMatchesAgreesWithDerivative checks the NFA matcher against the
// same "a(bcd)?e" scenario the derivative matcher is tested with,
// confirming both execution strategies agree.
func TestMatchesAgreesWithDerivative(t *testing.T) {
	// a(bcd)?e
	r := ast.NewSequence(
		ast.NewSequence(ast.NewChar('a'), ast.NewOptional(
			ast.NewSequence(ast.NewChar('b'), ast.NewSequence(ast.NewChar('c'), ast.NewChar('d'))),
		)),
		ast.NewChar('e'),
	)
	n, err := Compile(r)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	yes := []string{"ae", "abcde"}
	no := []string{"a", "abce", "abcd", "abcdee"}

	for _, s := range yes {
		if !Matches(n, s) {
			t.Errorf("Matches(%q) = false, want true", s)
		}
		if !ast.Matches(r, s) {
			t.Errorf("ast.Matches(%q) = false, want true", s)
		}
	}
	for _, s := range no {
		if Matches(n, s) {
			t.Errorf("Matches(%q) = true, want false", s)
		}
		if ast.Matches(r, s) {
			t.Errorf("ast.Matches(%q) = true, want false", s)
		}
	}
}

// TestMatchesTerminatesOnEpsilonCycle guards against the hazard of
// ZeroOrMore's back-edge: it creates an ε-cycle that an unguarded DFS
// would loop on forever.
func TestMatchesTerminatesOnEpsilonCycle(t *testing.T) {
	r := ast.NewZeroOrMore(ast.NewZeroOrMore(ast.NewChar('a')))
	n, err := Compile(r)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !Matches(n, "aaaaa") {
		t.Error("expected (a*)* to match \"aaaaa\"")
	}
	if !Matches(n, "") {
		t.Error("expected (a*)* to match empty string")
	}
	if Matches(n, "aaab") {
		t.Error("expected (a*)* to reject \"aaab\"")
	}
}

func TestMatchesEmptyNFA(t *testing.T) {
	n, err := Compile(ast.Null)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if Matches(n, "") {
		t.Error("expected Null to reject the empty string")
	}
}
