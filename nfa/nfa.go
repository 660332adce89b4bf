package nfa

import (
	"fmt"
	"sort"
	"strings"
)

// StateID uniquely identifies a state in the automaton arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// State is a node in the automaton graph. All targets are indices into
// the owning arena, so cyclic epsilon structures (from Closure and
// OneOrMore) are traversed safely without reference cycles.
//
// A state carries at most one symbol transition per symbol; the
// epsilon fan-out is 0, 1 or 2 by construction, though the type does
// not cap it.
type State struct {
	accept   bool
	trans    map[byte]StateID
	epsilons []StateID
}

// Accept returns true if this is the accept state of its fragment.
func (s *State) Accept() bool {
	return s.accept
}

// Target returns the state reached on symbol c, if any.
func (s *State) Target(c byte) (StateID, bool) {
	id, ok := s.trans[c]
	return id, ok
}

// Epsilons returns the epsilon-transition targets.
// The returned slice is shared and must not be modified.
func (s *State) Epsilons() []StateID {
	return s.epsilons
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	var parts []string
	if s.accept {
		parts = append(parts, "accept")
	}
	// Deterministic order for tests and CLI output.
	syms := make([]int, 0, len(s.trans))
	for c := range s.trans {
		syms = append(syms, int(c))
	}
	sort.Ints(syms)
	for _, c := range syms {
		parts = append(parts, fmt.Sprintf("%q -> %d", byte(c), s.trans[byte(c)]))
	}
	if len(s.epsilons) > 0 {
		targets := make([]string, len(s.epsilons))
		for i, t := range s.epsilons {
			targets[i] = fmt.Sprintf("%d", t)
		}
		parts = append(parts, "eps -> "+strings.Join(targets, " "))
	}
	if len(parts) == 0 {
		return "dead"
	}
	return strings.Join(parts, ", ")
}

// NFA is a compiled automaton: a state arena plus the entry and accept
// points of the outermost fragment. Exactly one state has the accept
// flag set.
//
// An NFA is frozen once a compiler returns it and is safe for
// concurrent read-only matching from multiple goroutines.
type NFA struct {
	states []State
	start  StateID
	end    StateID
}

// Start returns the entry state ID.
func (n *NFA) Start() StateID {
	return n.start
}

// End returns the accept state ID.
func (n *NFA) End() StateID {
	return n.end
}

// States returns the total number of states in the automaton.
func (n *NFA) States() int {
	return len(n.states)
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// String renders the whole arena, one state per line. Intended for
// debugging and the CLI.
func (n *NFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "NFA{states: %d, start: %d, end: %d}\n", len(n.states), n.start, n.end)
	for i := range n.states {
		fmt.Fprintf(&sb, "  %d: %s\n", i, n.states[i].String())
	}
	return sb.String()
}
