package dfa

import (
	"reflect"
	"testing"

	"github.com/coregx/trimatch/ast"
)

func TestFindLongestMatch(t *testing.T) {
	// a+
	r := ast.NewSequence(ast.NewChar('a'), ast.NewZeroOrMore(ast.NewChar('a')))
	d := mustCompile(t, r)

	m, ok := FindLongestMatch(d, "aaab")
	if !ok || m != "aaa" {
		t.Errorf("FindLongestMatch(aaab) = %q, %v, want \"aaa\", true", m, ok)
	}

	if _, ok := FindLongestMatch(d, "bbb"); ok {
		t.Error("expected no match on bbb")
	}
}

func TestFindLongestMatchEmptyIsDistinctFromNone(t *testing.T) {
	d := mustCompile(t, ast.NewOptional(ast.NewChar('a')))
	m, ok := FindLongestMatch(d, "bbb")
	if !ok || m != "" {
		t.Errorf("FindLongestMatch(bbb) against a? = %q, %v, want \"\", true", m, ok)
	}

	d2 := mustCompile(t, ast.NewChar('a'))
	if _, ok := FindLongestMatch(d2, "bbb"); ok {
		t.Error("expected a to report no match at all against bbb, not an empty match")
	}
}

func TestFindSubsetMatches(t *testing.T) {
	// a+
	r := ast.NewSequence(ast.NewChar('a'), ast.NewZeroOrMore(ast.NewChar('a')))
	d := mustCompile(t, r)

	// Every shorter run starting inside or after "aaa" (at offsets
	// 2, 3, 5) is a substring of the maximal "aaa" already recorded,
	// so only the one maximal match survives.
	got := FindSubsetMatches(d, "xaaayaz")
	want := []string{"aaa"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindSubsetMatches = %v, want %v", got, want)
	}
}

func TestFindSubsetMatchesDiscardsContainedMatches(t *testing.T) {
	// a+, scanning "aaa" should record just the one maximal match, not
	// the shorter matches starting at later offsets within it.
	r := ast.NewSequence(ast.NewChar('a'), ast.NewZeroOrMore(ast.NewChar('a')))
	d := mustCompile(t, r)

	got := FindSubsetMatches(d, "aaa")
	want := []string{"aaa"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindSubsetMatches(aaa) = %v, want %v", got, want)
	}
}
