package nfa

import "github.com/coregx/trimatch/internal/sparseset"

// Matches reports whether the NFA accepts s in full: starting at the
// entry state, some depth-first traversal that consumes every code
// point of s ends in an accepting state.
//
// ε-cycles (introduced by ZeroOrMore's back-edge) make an unguarded
// DFS non-terminating, so the search carries a visited set keyed by
// (state, remaining code points still to consume); revisiting the
// same pair is treated as failure for that branch. That's sound,
// since a second visit to the same state with the same remaining
// input can only repeat whatever that branch already tried.
func Matches(n *NFA, s string) bool {
	runes := []rune(s)
	maxRemaining := uint32(len(runes))
	visited := sparseset.New(uint32(n.NumStates()) * (maxRemaining + 1))
	return search(n, n.entry, runes, visited, maxRemaining)
}

func search(n *NFA, state StateID, remaining []rune, visited *sparseset.Set, maxRemaining uint32) bool {
	key := sparseset.Pack(uint32(state), uint32(len(remaining)), maxRemaining)
	if visited.Contains(key) {
		return false
	}
	visited.Insert(key)

	if len(remaining) == 0 {
		if n.states[state].Accepting {
			return true
		}
	} else {
		c := remaining[0]
		rest := remaining[1:]
		st := &n.states[state]
		if succs, ok := st.OnChar[c]; ok {
			for _, to := range succs {
				if search(n, to, rest, visited, maxRemaining) {
					return true
				}
			}
		} else {
			for _, to := range st.Default {
				if search(n, to, rest, visited, maxRemaining) {
					return true
				}
			}
		}
	}

	for _, to := range n.states[state].OnEpsilon {
		if search(n, to, remaining, visited, maxRemaining) {
			return true
		}
	}
	return false
}
