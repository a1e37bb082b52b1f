package dfa

import (
	"testing"

	"github.com/coregx/trimatch/ast"
	"github.com/coregx/trimatch/nfa"
)

func mustCompile(t *testing.T, n *ast.Node) *DFA {
	t.Helper()
	nf, err := nfa.Compile(n)
	if err != nil {
		t.Fatalf("nfa.Compile: %v", err)
	}
	d, err := Build(nf)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return d
}

func TestBuildChar(t *testing.T) {
	d := mustCompile(t, ast.NewChar('a'))
	if !Matches(d, "a") {
		t.Error("expected a to match")
	}
	if Matches(d, "b") || Matches(d, "") || Matches(d, "aa") {
		t.Error("expected non-a inputs to be rejected")
	}
}

func TestBuildAnyChar(t *testing.T) {
	d := mustCompile(t, ast.AnyChar)
	for _, s := range []string{"a", "9", "€"} {
		if !Matches(d, s) {
			t.Errorf("expected AnyChar to match %q", s)
		}
	}
	if Matches(d, "") || Matches(d, "ab") {
		t.Error("expected AnyChar to reject empty/multi-char input")
	}
}

func TestBuildStar(t *testing.T) {
	d := mustCompile(t, ast.NewZeroOrMore(ast.NewChar('a')))
	for _, s := range []string{"", "a", "aaaa"} {
		if !Matches(d, s) {
			t.Errorf("expected a* to match %q", s)
		}
	}
	if Matches(d, "aab") {
		t.Error("expected a* to reject aab")
	}
}

func TestBuildInvertedCharClassOverlap(t *testing.T) {
	// [^ab]c: an inverted class followed by a literal. Exercises the
	// trap-routing and default-inheritance rules (steps 3-4) since the
	// inverted state's default successor must still reach the 'c'
	// state on every non-a/b character, while 'a' and 'b' must dead-end.
	class, err := ast.NewCharClass(true, []ast.Atom{ast.AtomChar('a'), ast.AtomChar('b')})
	if err != nil {
		t.Fatalf("NewCharClass: %v", err)
	}
	r := ast.NewSequence(class, ast.NewChar('c'))
	d := mustCompile(t, r)

	if !Matches(d, "xc") || !Matches(d, "9c") {
		t.Error("expected [^ab]c to match non-ab followed by c")
	}
	if Matches(d, "ac") || Matches(d, "bc") {
		t.Error("expected [^ab]c to reject a/b followed by c")
	}
	if Matches(d, "xc c") || Matches(d, "x") {
		t.Error("expected [^ab]c to reject malformed/partial input")
	}
}

func TestBuildOverlappingCharClasses(t *testing.T) {
	// \w+[0-9]+ style overlap: digits are members of both parts, the
	// textbook composite-DFA scenario.
	word, err := ast.NewCharRange('a', 'z')
	if err != nil {
		t.Fatalf("NewCharRange: %v", err)
	}
	digit, err := ast.NewCharRange('0', '9')
	if err != nil {
		t.Fatalf("NewCharRange: %v", err)
	}
	wordClass, err := ast.NewCharClass(false, []ast.Atom{ast.AtomRange(word), ast.AtomRange(digit)})
	if err != nil {
		t.Fatalf("NewCharClass: %v", err)
	}
	digitClass, err := ast.NewCharClass(false, []ast.Atom{ast.AtomRange(digit)})
	if err != nil {
		t.Fatalf("NewCharClass: %v", err)
	}
	plusWord := ast.NewSequence(wordClass, ast.NewZeroOrMore(wordClass))
	plusDigit := ast.NewSequence(digitClass, ast.NewZeroOrMore(digitClass))
	r := ast.NewSequence(plusWord, plusDigit)

	d := mustCompile(t, r)
	if !Matches(d, "abc123") {
		t.Error("expected \\w+[0-9]+ to match abc123")
	}
	if !Matches(d, "123") {
		// an all-digit string still matches: digits are members of
		// both classes, so \w+ can consume "12" and leave "3" for
		// [0-9]+ — exactly the overlap the subset construction must
		// resolve correctly.
		t.Error("expected \\w+[0-9]+ to match an all-digit string split across both parts")
	}
	if Matches(d, "1") {
		t.Error("expected \\w+[0-9]+ to reject a single digit (nothing left for [0-9]+)")
	}
}

func TestIsTrapOnNullPattern(t *testing.T) {
	d := mustCompile(t, ast.Null)
	if !IsTrap(d, d.Entry()) {
		t.Error("expected Null's entry state to be a trap")
	}
	if Matches(d, "") || Matches(d, "a") {
		t.Error("expected Null to reject everything")
	}
}

func TestBuildWithMaxStatesRejectsOversizedDFA(t *testing.T) {
	pattern := ast.NewChar('a')
	for _, c := range "bcdefghij" {
		pattern = ast.NewSequence(pattern, ast.NewChar(c))
	}
	n, err := nfa.Compile(pattern)
	if err != nil {
		t.Fatalf("nfa.Compile: %v", err)
	}
	if _, err := Build(n, WithMaxStates(2)); err == nil {
		t.Error("expected WithMaxStates(2) to reject a 10-char literal sequence's DFA")
	}
	if _, err := Build(n, WithMaxStates(0)); err != nil {
		t.Errorf("expected WithMaxStates(0) to mean unlimited, got %v", err)
	}
}
