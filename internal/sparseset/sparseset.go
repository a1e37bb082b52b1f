// Package sparseset provides a sparse set data structure for
// efficient membership testing, adapted from coregex's internal/sparse
// for a composite key domain.
//
// The NFA matcher's visited guard (package nfa) needs membership
// testing over (state, remaining-length) pairs, not bare state IDs:
// the same state can be legitimately revisited at a different
// remaining-input length without looping, so guarding on state alone
// would reject valid paths. Set packs each pair into a single uint32
// key (state*(maxRemaining+1) + remaining) and otherwise keeps
// coregex's sparse/dense array design unchanged.
package sparseset

// Set is a set of uint32-packed keys that supports O(1) insertion and
// membership testing, backed by a sparse array (for membership) and a
// dense array (for iteration and O(1) Clear).
type Set struct {
	sparse []uint32 // maps key -> index in dense
	dense  []uint32 // the actual keys present
	size   uint32
}

// New creates a Set over the key range [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds key to the set. No-op if already present. Panics if key
// is out of the capacity given to New.
func (s *Set) Insert(key uint32) {
	if s.Contains(key) {
		return
	}
	s.dense = append(s.dense, key)
	s.sparse[key] = s.size
	s.size++
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key uint32) bool {
	if key >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[key]
	return idx < s.size && s.dense[idx] == key
}

// Clear empties the set in O(1) time, without zeroing sparse.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of keys currently in the set.
func (s *Set) Len() int {
	return int(s.size)
}

// Pack combines a state index and a remaining-length count into a
// single key for Set. maxRemaining must be the largest remaining
// value that will ever be packed (typically len(input)).
func Pack(state, remaining, maxRemaining uint32) uint32 {
	return state*(maxRemaining+1) + remaining
}
