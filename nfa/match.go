package nfa

import (
	"github.com/coregx/thompson/internal/sparse"
)

// matchState holds the scratch storage for one simulation: the current
// and next active-state sets plus the worklist used by epsilon
// closure. It is allocated per call, so a frozen NFA can be matched
// from any number of goroutines at once.
type matchState struct {
	current *sparse.Set
	next    *sparse.Set
	work    []StateID
}

func (n *NFA) newMatchState() *matchState {
	return &matchState{
		current: sparse.New(len(n.states)),
		next:    sparse.New(len(n.states)),
		work:    make([]StateID, 0, len(n.states)),
	}
}

// addClosure folds the epsilon-closure of id into set: id itself plus
// every state reachable through epsilon edges alone. It walks an
// explicit worklist with the set doubling as the visited record, so
// epsilon cycles (from Closure/OneOrMore) terminate and deep epsilon
// chains (from long concatenations) cannot overflow the goroutine
// stack.
func (n *NFA) addClosure(id StateID, set *sparse.Set, work []StateID) []StateID {
	work = work[:0]
	work = append(work, id)
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		if set.Contains(uint32(id)) {
			continue
		}
		set.Insert(uint32(id))
		for _, t := range n.states[id].epsilons {
			work = append(work, t)
		}
	}
	return work
}

// Closure returns the epsilon-closure of the given state: the state
// itself plus every state reachable through zero or more epsilon
// transitions, in discovery order. A state with no epsilon transitions
// is the sole member of its own closure.
func (n *NFA) Closure(id StateID) []StateID {
	if n.State(id) == nil {
		return nil
	}
	set := sparse.New(len(n.states))
	n.addClosure(id, set, make([]StateID, 0, len(n.states)))
	out := make([]StateID, 0, set.Len())
	for _, v := range set.Values() {
		out = append(out, StateID(v))
	}
	return out
}

// MatchString reports whether the automaton accepts exactly the given
// word (whole-word acceptance, not substring search).
func (n *NFA) MatchString(word string) bool {
	return n.match(word)
}

// Match reports whether the automaton accepts exactly the given bytes.
func (n *NFA) Match(b []byte) bool {
	return n.match(string(b))
}

// match runs the active-state-set simulation. The active set starts as
// the epsilon-closure of the start state; each input symbol advances
// every active state that has a transition for it (states without one
// contribute nothing) and folds in the closure of each target. After
// the final symbol the word is accepted iff the active set holds the
// accept state. Cost is O(len(word) * states * out-degree); there is
// no backtracking and no exponential blow-up for any pattern shape.
func (n *NFA) match(word string) bool {
	st := n.newMatchState()
	st.work = n.addClosure(n.start, st.current, st.work)

	for i := 0; i < len(word); i++ {
		c := word[i]
		st.next.Clear()
		for _, v := range st.current.Values() {
			if t, ok := n.states[v].Target(c); ok {
				st.work = n.addClosure(t, st.next, st.work)
			}
		}
		st.current, st.next = st.next, st.current
		if st.current.IsEmpty() {
			return false
		}
	}

	for _, v := range st.current.Values() {
		if n.states[v].accept {
			return true
		}
	}
	return false
}
