package parser

import (
	"testing"

	"github.com/coregx/trimatch/ast"
)

func mustParse(t *testing.T, pattern string) *ast.Node {
	t.Helper()
	n, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return n
}

func TestParseLiteralSequence(t *testing.T) {
	n := mustParse(t, "abc")
	if !ast.Matches(n, "abc") || ast.Matches(n, "ab") || ast.Matches(n, "abcd") {
		t.Error("expected \"abc\" to parse to an exact literal sequence")
	}
}

func TestParseAlternation(t *testing.T) {
	n := mustParse(t, "cat|dog")
	for _, s := range []string{"cat", "dog"} {
		if !ast.Matches(n, s) {
			t.Errorf("expected cat|dog to match %q", s)
		}
	}
	if ast.Matches(n, "bird") {
		t.Error("expected cat|dog to reject bird")
	}
}

func TestParseStarPlusOptional(t *testing.T) {
	tests := []struct {
		pattern string
		yes     []string
		no      []string
	}{
		{"a*", []string{"", "a", "aaa"}, []string{"b"}},
		{"a+", []string{"a", "aaa"}, []string{"", "b"}},
		{"a?", []string{"", "a"}, []string{"aa"}},
	}
	for _, tt := range tests {
		n := mustParse(t, tt.pattern)
		for _, s := range tt.yes {
			if !ast.Matches(n, s) {
				t.Errorf("%s: expected match on %q", tt.pattern, s)
			}
		}
		for _, s := range tt.no {
			if ast.Matches(n, s) {
				t.Errorf("%s: expected rejection of %q", tt.pattern, s)
			}
		}
	}
}

func TestParseGroup(t *testing.T) {
	n := mustParse(t, "a(bcd)?e")
	yes := []string{"ae", "abcde"}
	no := []string{"a", "abce", "abcd", "abcdee"}
	for _, s := range yes {
		if !ast.Matches(n, s) {
			t.Errorf("expected match on %q", s)
		}
	}
	for _, s := range no {
		if ast.Matches(n, s) {
			t.Errorf("expected rejection of %q", s)
		}
	}
}

func TestParseShorthandClasses(t *testing.T) {
	tests := []struct {
		pattern string
		yes     []string
		no      []string
	}{
		{`\d`, []string{"5"}, []string{"a", ""}},
		{`\D`, []string{"a"}, []string{"5"}},
		{`\s`, []string{" ", "\t"}, []string{"a"}},
		{`\w+`, []string{"abc_123"}, []string{"-"}},
		{`\W`, []string{"-"}, []string{"a"}},
	}
	for _, tt := range tests {
		n := mustParse(t, tt.pattern)
		for _, s := range tt.yes {
			if !ast.Matches(n, s) {
				t.Errorf("%s: expected match on %q", tt.pattern, s)
			}
		}
		for _, s := range tt.no {
			if ast.Matches(n, s) {
				t.Errorf("%s: expected rejection of %q", tt.pattern, s)
			}
		}
	}
}

func TestParseCharClassRangeAndLiteralDash(t *testing.T) {
	n := mustParse(t, `[a-z]`)
	if !ast.Matches(n, "m") || ast.Matches(n, "M") {
		t.Error("expected [a-z] to match lowercase only")
	}

	leadingDash := mustParse(t, `[-az]`)
	for _, s := range []string{"-", "a", "z"} {
		if !ast.Matches(leadingDash, s) {
			t.Errorf("[-az]: expected match on %q", s)
		}
	}

	trailingDash := mustParse(t, `[az-]`)
	for _, s := range []string{"-", "a", "z"} {
		if !ast.Matches(trailingDash, s) {
			t.Errorf("[az-]: expected match on %q", s)
		}
	}
}

func TestParseCharClassInvertAndCaretLiteral(t *testing.T) {
	n := mustParse(t, `[^a^]`)
	if ast.Matches(n, "a") || ast.Matches(n, "^") {
		t.Error("expected [^a^] to reject 'a' and '^'")
	}
	if !ast.Matches(n, "b") {
		t.Error("expected [^a^] to match 'b'")
	}
}

func TestParseQuantifierExact(t *testing.T) {
	n := mustParse(t, "a{3}")
	if !ast.Matches(n, "aaa") {
		t.Error("expected a{3} to match aaa")
	}
	if ast.Matches(n, "aa") || ast.Matches(n, "aaaa") {
		t.Error("expected a{3} to reject aa and aaaa")
	}
}

func TestParseQuantifierAtLeast(t *testing.T) {
	n := mustParse(t, "a{2,}")
	if ast.Matches(n, "a") {
		t.Error("expected a{2,} to reject a single a")
	}
	if !ast.Matches(n, "aa") || !ast.Matches(n, "aaaaa") {
		t.Error("expected a{2,} to match aa and aaaaa")
	}
}

func TestParseQuantifierRange(t *testing.T) {
	n := mustParse(t, "a{2,4}")
	if ast.Matches(n, "a") || ast.Matches(n, "aaaaa") {
		t.Error("expected a{2,4} to reject a and aaaaa")
	}
	for _, s := range []string{"aa", "aaa", "aaaa"} {
		if !ast.Matches(n, s) {
			t.Errorf("expected a{2,4} to match %q", s)
		}
	}
}

func TestParsePhoneLikePattern(t *testing.T) {
	n := mustParse(t, `\d{3}-\d{3}-\d{4}`)
	if !ast.Matches(n, "555-123-4567") {
		t.Error("expected phone pattern to match")
	}
	if ast.Matches(n, "555-123-456") {
		t.Error("expected phone pattern to reject a short final group")
	}
}

func TestParseUnbalancedParenIsSyntaxError(t *testing.T) {
	_, err := Parse("(abc")
	if err == nil {
		t.Fatal("expected an error for unbalanced '('")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Errorf("expected *SyntaxError, got %T", err)
	}
}

func TestParseUnterminatedCharClassIsSyntaxError(t *testing.T) {
	if _, err := Parse("[abc"); err == nil {
		t.Fatal("expected an error for unterminated char class")
	}
}

func TestParseTrailingJunkIsSyntaxError(t *testing.T) {
	if _, err := Parse("abc)"); err == nil {
		t.Fatal("expected an error for an unmatched trailing ')'")
	}
}

func TestParseInvalidQuantifierRangeIsSyntaxError(t *testing.T) {
	if _, err := Parse("a{4,2}"); err == nil {
		t.Fatal("expected an error for a{4,2}")
	}
}
