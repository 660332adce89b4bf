package nfa

import "fmt"

// Fragment is a partially or fully composed automaton: one start state
// and one accept state, both indices into the owning Builder's arena.
//
// Every primitive keeps the single-accept invariant: when a fragment
// is consumed by a composition, its accept flag is cleared before the
// new fragment-level accept state is produced.
type Fragment struct {
	Start StateID
	End   StateID
}

// Builder constructs automata incrementally. It owns the state arena;
// primitives allocate fresh states and never mutate an already
// composed fragment's internals except to clear accept flags at
// composition boundaries.
type Builder struct {
	states []State
}

// NewBuilder creates a new builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
	}
}

// States returns the current number of states in the arena.
func (b *Builder) States() int {
	return len(b.states)
}

// add allocates a fresh state and returns its ID.
func (b *Builder) add(accept bool) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{accept: accept})
	return id
}

// addEpsilon inserts an epsilon edge from -> to.
func (b *Builder) addEpsilon(from, to StateID) {
	s := &b.states[from]
	s.epsilons = append(s.epsilons, to)
}

// addSymbol inserts the symbol edge from -c-> to. A state holds at
// most one target per symbol; the construction rules never write the
// same symbol twice on one state.
func (b *Builder) addSymbol(from StateID, c byte, to StateID) {
	s := &b.states[from]
	if s.trans == nil {
		s.trans = make(map[byte]StateID, 1)
	}
	s.trans[c] = to
}

// clearAccept transfers accept ownership away from a consumed
// fragment's end state.
func (b *Builder) clearAccept(id StateID) {
	b.states[id].accept = false
}

// Epsilon returns a fragment recognizing exactly the empty string:
// a new start state epsilon-linked to a new accept state.
func (b *Builder) Epsilon() Fragment {
	start := b.add(false)
	end := b.add(true)
	b.addEpsilon(start, end)
	return Fragment{Start: start, End: end}
}

// Symbol returns a fragment recognizing exactly the one-character
// string c.
func (b *Builder) Symbol(c byte) Fragment {
	start := b.add(false)
	end := b.add(true)
	b.addSymbol(start, c, end)
	return Fragment{Start: start, End: end}
}

// Concat links a's accept state to c's start state with an epsilon
// edge. The result recognizes strings splittable into a prefix in
// L(a) and a suffix in L(c).
func (b *Builder) Concat(a, c Fragment) Fragment {
	b.clearAccept(a.End)
	b.addEpsilon(a.End, c.Start)
	return Fragment{Start: a.Start, End: c.End}
}

// Union returns a fragment recognizing L(a) ∪ L(c): a new start state
// epsilon-linked to both starts, and a new accept state epsilon-linked
// from both (now non-accepting) ends.
func (b *Builder) Union(a, c Fragment) Fragment {
	start := b.add(false)
	end := b.add(true)
	b.addEpsilon(start, a.Start)
	b.addEpsilon(start, c.Start)
	b.clearAccept(a.End)
	b.addEpsilon(a.End, end)
	b.clearAccept(c.End)
	b.addEpsilon(c.End, end)
	return Fragment{Start: start, End: end}
}

// Closure returns a fragment recognizing L(a)* (Kleene star). The new
// start links to the new accept (zero repetitions) and to a's start;
// a's end links back to a's start (repeat) and forward to the new
// accept.
func (b *Builder) Closure(a Fragment) Fragment {
	start := b.add(false)
	end := b.add(true)
	b.addEpsilon(start, end)
	b.addEpsilon(start, a.Start)
	b.clearAccept(a.End)
	b.addEpsilon(a.End, a.Start)
	b.addEpsilon(a.End, end)
	return Fragment{Start: start, End: end}
}

// ZeroOrOne returns a fragment recognizing L(a) ∪ {ε}.
func (b *Builder) ZeroOrOne(a Fragment) Fragment {
	start := b.add(false)
	end := b.add(true)
	b.addEpsilon(start, end)
	b.addEpsilon(start, a.Start)
	b.clearAccept(a.End)
	b.addEpsilon(a.End, end)
	return Fragment{Start: start, End: end}
}

// OneOrMore returns a fragment recognizing L(a)+: like Closure but
// without the zero-repetition shortcut from start to accept.
func (b *Builder) OneOrMore(a Fragment) Fragment {
	start := b.add(false)
	end := b.add(true)
	b.addEpsilon(start, a.Start)
	b.clearAccept(a.End)
	b.addEpsilon(a.End, end)
	b.addEpsilon(a.End, a.Start)
	return Fragment{Start: start, End: end}
}

// Validate checks that the arena is well-formed for the fragment f:
// start/end in bounds, every edge target in bounds, and exactly one
// accept state which is f.End.
func (b *Builder) Validate(f Fragment) error {
	if int(f.Start) >= len(b.states) {
		return &BuildError{Message: "start state out of bounds", StateID: f.Start}
	}
	if int(f.End) >= len(b.states) {
		return &BuildError{Message: "end state out of bounds", StateID: f.End}
	}

	accepts := 0
	for i := range b.states {
		id := StateID(i)
		s := &b.states[i]
		if s.accept {
			accepts++
			if id != f.End {
				return &BuildError{Message: "accept flag on non-end state", StateID: id}
			}
		}
		for c, t := range s.trans {
			if int(t) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid target %d on symbol %q", t, c),
					StateID: id,
				}
			}
		}
		for _, t := range s.epsilons {
			if int(t) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid epsilon target %d", t),
					StateID: id,
				}
			}
		}
	}
	if accepts != 1 {
		return &BuildError{
			Message: fmt.Sprintf("expected exactly one accept state, found %d", accepts),
			StateID: InvalidState,
		}
	}
	return nil
}

// Build finalizes the arena into an immutable NFA rooted at fragment
// f. The builder must not be used after Build returns successfully.
func (b *Builder) Build(f Fragment) (*NFA, error) {
	if err := b.Validate(f); err != nil {
		return nil, err
	}
	return &NFA{
		states: b.states,
		start:  f.Start,
		end:    f.End,
	}, nil
}
