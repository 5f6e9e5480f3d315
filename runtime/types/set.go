package types

import "slices"

// Set is an unordered collection of distinct Values.
// The zero value is not usable; create one with NewSet.
type Set struct {
	m map[Value]struct{}
}

// NewSet returns an empty set with room for size values.
func NewSet(size int) Set {
	return Set{m: make(map[Value]struct{}, size)}
}

// SetOf returns a set holding the given values.
func SetOf(values ...Value) Set {
	s := NewSet(len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s Set) Add(v Value) bool {
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

// Contains reports whether v is in the set.
func (s Set) Contains(v Value) bool {
	_, ok := s.m[v]
	return ok
}

// Len returns the number of distinct values.
func (s Set) Len() int { return len(s.m) }

// Values returns the members sorted with Value.Compare.
func (s Set) Values() []Value {
	out := make([]Value, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	slices.SortFunc(out, Value.Compare)
	return out
}

// Equal reports whether both sets hold exactly the same values.
func (s Set) Equal(o Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for v := range s.m {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}
