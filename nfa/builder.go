package nfa

// Builder constructs an NFA incrementally, state by state, following
// the arena shape of coregex's nfa.Builder. AddState appends a fresh,
// blank state and returns its StateID; edges are then wired in with
// AddEpsilonEdge/AddCharEdge/AddDefaultEdge/SetCharEdgeEmpty.
type Builder struct {
	states []State
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// AddState allocates a fresh state with no transitions and returns
// its ID.
func (b *Builder) AddState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{})
	return id
}

// SetAccepting marks the given state as accepting.
func (b *Builder) SetAccepting(id StateID, accepting bool) {
	b.states[id].Accepting = accepting
}

// AddEpsilonEdge adds an ε-transition from -> to.
func (b *Builder) AddEpsilonEdge(from, to StateID) {
	s := &b.states[from]
	s.OnEpsilon = append(s.OnEpsilon, to)
}

// AddCharEdge adds a transition from -> to on code point c.
func (b *Builder) AddCharEdge(from StateID, c rune, to StateID) {
	s := &b.states[from]
	if s.OnChar == nil {
		s.OnChar = make(map[rune][]StateID)
	}
	s.OnChar[c] = append(s.OnChar[c], to)
}

// SetCharEdgeEmpty installs an explicit, empty successor list for c
// at from: this overrides any default transition for that specific
// character: entry.on_char[c] becomes an empty successor list,
// overriding the default for just that character.
func (b *Builder) SetCharEdgeEmpty(from StateID, c rune) {
	s := &b.states[from]
	if s.OnChar == nil {
		s.OnChar = make(map[rune][]StateID)
	}
	if _, ok := s.OnChar[c]; !ok {
		s.OnChar[c] = []StateID{}
	}
}

// AddDefaultEdge adds to to the default-successor list of from.
func (b *Builder) AddDefaultEdge(from, to StateID) {
	s := &b.states[from]
	s.Default = append(s.Default, to)
}

// Build finalizes the arena into an NFA with the given entry and
// exit states.
func (b *Builder) Build(entry, exit StateID) *NFA {
	return &NFA{states: b.states, entry: entry, exit: exit}
}
