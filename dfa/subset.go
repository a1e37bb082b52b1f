package dfa

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/trimatch/nfa"
)

// trapMarker is the designated "NFA trap state": a state outside the
// NFA's own arena, with no outgoing transitions of any kind, used
// purely as a subset-construction bookkeeping
// value so an inverted CharClass state always has somewhere to send
// characters it doesn't recognize.
const trapMarker = ^uint32(0)

// nfaSet is an ε-closed set of NFA state indices (uint32, possibly
// including trapMarker), canonicalized for use as a work-queue/
// discovered-set key.
type nfaSet map[uint32]bool

func (s nfaSet) sortedKey() string {
	ids := make([]uint32, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(strconv.FormatUint(uint64(id), 10))
		b.WriteByte(',')
	}
	return b.String()
}

// closure computes the ε-closure of seeds under n's ε-transitions.
// trapMarker has no ε-edges, so it closes to itself alone.
func closure(n *nfa.NFA, seeds []uint32) nfaSet {
	set := make(nfaSet, len(seeds))
	stack := make([]uint32, 0, len(seeds))
	for _, s := range seeds {
		if !set[s] {
			set[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == trapMarker {
			continue
		}
		st := n.State(nfa.StateID(id))
		for _, to := range st.OnEpsilon {
			tid := uint32(to)
			if !set[tid] {
				set[tid] = true
				stack = append(stack, tid)
			}
		}
	}
	return set
}

func closeSet(n *nfa.NFA, s nfaSet) nfaSet {
	seeds := make([]uint32, 0, len(s))
	for id := range s {
		seeds = append(seeds, id)
	}
	return closure(n, seeds)
}

// anyAccepting reports whether s contains an accepting NFA state.
func anyAccepting(n *nfa.NFA, s nfaSet) bool {
	for id := range s {
		if id == trapMarker {
			continue
		}
		if n.State(nfa.StateID(id)).Accepting {
			return true
		}
	}
	return false
}

// buildConfig holds the options a BuildOption may set.
type buildConfig struct {
	maxStates int
}

// BuildOption configures Build, following the functional-option shape
// of coregex's nfa.BuildOption (and nfa.WithMaxStates here).
type BuildOption func(*buildConfig)

// WithMaxStates rejects a subset construction that would produce more
// than n DFA states, guarding against the state-count blowup subset
// construction is prone to on pathological patterns. n <= 0 means
// unlimited, the default.
func WithMaxStates(n int) BuildOption {
	return func(c *buildConfig) {
		c.maxStates = n
	}
}

// Build performs NFA→DFA subset construction: each discovered closed
// set of NFA states becomes one DFA state, with
// transitions computed by the five-step moves procedure (non-inverted
// states contribute enumerated edges directly; inverted states route
// the characters they exclude to the trap and contribute their default
// successor both to the default move and to every already-enumerated
// character they don't explicitly exclude).
func Build(n *nfa.NFA, opts ...BuildOption) (*DFA, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	start := closure(n, []uint32{uint32(n.Entry())})

	discovered := map[string]StateID{start.sortedKey(): 0}
	order := []nfaSet{start}
	queue := []nfaSet{start}

	type pendingEdges struct {
		onChar map[rune]StateID
		def    StateID
		hasDef bool
	}
	edgesByState := map[StateID]*pendingEdges{}

	resolve := func(s nfaSet) StateID {
		key := s.sortedKey()
		if id, ok := discovered[key]; ok {
			return id
		}
		id := StateID(len(order))
		discovered[key] = id
		order = append(order, s)
		queue = append(queue, s)
		return id
	}

	for len(queue) > 0 {
		S := queue[0]
		queue = queue[1:]
		srcID := discovered[S.sortedKey()]

		var noninverted, inverted []uint32
		for id := range S {
			if id == trapMarker {
				continue
			}
			st := n.State(nfa.StateID(id))
			if len(st.Default) > 0 {
				inverted = append(inverted, id)
			} else {
				noninverted = append(noninverted, id)
			}
		}

		moves := map[rune]nfaSet{}
		var defaultMove nfaSet

		// Step 2: non-inverted states contribute their enumerated edges.
		for _, id := range noninverted {
			st := n.State(nfa.StateID(id))
			for c, succs := range st.OnChar {
				dst := moves[c]
				if dst == nil {
					dst = nfaSet{}
					moves[c] = dst
				}
				for _, to := range succs {
					dst[uint32(to)] = true
				}
			}
		}

		// Step 3: inverted states route their own excluded characters
		// (the keys of their OnChar, which an inverted state only ever
		// uses to record exclusions, never real successors) to the
		// trap, unless a sibling state already supplies a real move
		// for that character.
		for _, q := range inverted {
			st := n.State(nfa.StateID(q))
			for c := range st.OnChar {
				if _, covered := moves[c]; covered {
					continue
				}
				dst := nfaSet{trapMarker: true}
				moves[c] = dst
			}
		}

		// Step 4: inverted states contribute their default successor
		// to the default move, and to every already-enumerated
		// character they haven't explicitly excluded.
		for _, q := range inverted {
			st := n.State(nfa.StateID(q))
			for _, d := range st.Default {
				if defaultMove == nil {
					defaultMove = nfaSet{}
				}
				defaultMove[uint32(d)] = true
			}
			for c, dst := range moves {
				if succs, excluded := st.OnChar[c]; excluded && len(succs) == 0 {
					continue
				}
				for _, d := range st.Default {
					dst[uint32(d)] = true
				}
			}
		}

		// Steps 5-6: ε-close every destination and enqueue new sets.
		pe := &pendingEdges{onChar: map[rune]StateID{}}
		for c, dst := range moves {
			closed := closeSet(n, dst)
			pe.onChar[c] = resolve(closed)
		}
		if defaultMove != nil {
			closed := closeSet(n, defaultMove)
			pe.def = resolve(closed)
			pe.hasDef = true
		}
		edgesByState[srcID] = pe
	}

	if cfg.maxStates > 0 && len(order) > cfg.maxStates {
		return nil, &BuildError{
			Message: fmt.Sprintf("subset construction produced %d states, exceeding the limit of %d", len(order), cfg.maxStates),
		}
	}

	states := make([]State, len(order))
	for id, set := range order {
		states[id].Accepting = anyAccepting(n, set)
		pe := edgesByState[StateID(id)]
		if pe == nil {
			continue
		}
		states[id].OnChar = make(map[rune]StateID, len(pe.onChar))
		for c, to := range pe.onChar {
			if _, dup := states[id].OnChar[c]; dup {
				return nil, ErrInternalInvariant
			}
			states[id].OnChar[c] = to
		}
		states[id].Default = pe.def
		states[id].HasDefault = pe.hasDef
	}

	return &DFA{states: states, entry: 0}, nil
}
