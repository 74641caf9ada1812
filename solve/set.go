package solve

import (
	"iter"
	"maps"
)

// Pair is a candidate solution (X, Y).
type Pair[T comparable] struct {
	X, Y T
}

// SolutionSet is an immutable, unordered set of pairs.
type SolutionSet[T comparable] struct {
	pairs map[Pair[T]]struct{}
}

// New returns the set of the given pairs. Duplicates collapse.
func New[T comparable](pairs ...Pair[T]) *SolutionSet[T] {
	s := &SolutionSet[T]{pairs: make(map[Pair[T]]struct{}, len(pairs))}
	for _, p := range pairs {
		s.pairs[p] = struct{}{}
	}
	return s
}

// FromMap returns a set holding the keys of m. The map is copied.
func FromMap[T comparable](m map[Pair[T]]struct{}) *SolutionSet[T] {
	return &SolutionSet[T]{pairs: maps.Clone(m)}
}

// Size returns the number of pairs.
func (s *SolutionSet[T]) Size() int {
	return len(s.pairs)
}

// Contains reports whether p is in the set.
func (s *SolutionSet[T]) Contains(p Pair[T]) bool {
	_, ok := s.pairs[p]
	return ok
}

// All yields every pair in unspecified order.
func (s *SolutionSet[T]) All() iter.Seq[Pair[T]] {
	return maps.Keys(s.pairs)
}

// Unwrap returns a copy of the underlying set.
func (s *SolutionSet[T]) Unwrap() map[Pair[T]]struct{} {
	return maps.Clone(s.pairs)
}

// Equal reports whether s and o hold the same pairs.
func (s *SolutionSet[T]) Equal(o *SolutionSet[T]) bool {
	if len(s.pairs) != len(o.pairs) {
		return false
	}
	for p := range s.pairs {
		if _, ok := o.pairs[p]; !ok {
			return false
		}
	}
	return true
}
