package dfa

import "strings"

// FindLongestMatch walks s one code point at a time from d's entry
// state, tracking the longest prefix that ever lands on an accepting
// state. It stops early once the current state is a trap (per
// IsTrap), since no further input from a trap can ever reach an
// accepting state again.
//
// Returns ("", false) if no accepting state was ever visited, and
// (prefix, true) otherwise — including ("", true) when the entry
// state itself is accepting, which is distinct from "no match".
func FindLongestMatch(d *DFA, s string) (string, bool) {
	runes := []rune(s)
	state := d.entry
	biggest := -1
	if d.states[state].Accepting {
		biggest = 0
	}

	for i, c := range runes {
		if IsTrap(d, state) {
			break
		}
		next, ok := d.step(state, c)
		if !ok {
			break
		}
		state = next
		if d.states[state].Accepting {
			biggest = i + 1
		}
	}

	if biggest < 0 {
		return "", false
	}
	return string(runes[:biggest]), true
}

// FindSubsetMatches finds every non-overlapping-by-containment match
// of d in s: for each start offset, the longest match beginning there
// (via FindLongestMatch), skipping empty matches and matches that are
// already a substring of one already recorded, in discovery order.
func FindSubsetMatches(d *DFA, s string) []string {
	runes := []rune(s)
	var results []string
	for start := 0; start <= len(runes); start++ {
		m, ok := FindLongestMatch(d, string(runes[start:]))
		if !ok || m == "" {
			continue
		}
		if containedInAny(results, m) {
			continue
		}
		results = append(results, m)
	}
	return results
}

func containedInAny(results []string, m string) bool {
	for _, existing := range results {
		if strings.Contains(existing, m) {
			return true
		}
	}
	return false
}
