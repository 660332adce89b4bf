// Package sparse provides a sparse set over a bounded universe of
// uint32 values, with O(1) insert, membership test and clear.
//
// The matching engine uses it for active-state sets and visited-state
// tracking during epsilon-closure: the universe is the automaton's
// state count, which is known at match time.
package sparse

// Set maintains a sparse array (membership) and a dense array
// (iteration). The sparse array maps a value to its index in the dense
// array; a value is a member when that slot round-trips.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// New creates a set able to hold values in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set. A repeated insert is a no-op.
// The value must be below the capacity the set was created with.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains returns true if the value is in the set.
func (s *Set) Contains(value uint32) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear empties the set in O(1) without releasing storage.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty returns true if the set has no members.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the members in insertion order.
// The slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
