package set

import (
	"cmp"
	"slices"
)

type (
	// Sorted is an ordered set kept as a sorted slice.
	// Memory is proportional to the number of keys, not to their values.
	// Zero value is an empty set.
	Sorted[K cmp.Ordered] struct {
		l []K
	}
)

func (s *Sorted[K]) Set(k K) {
	i, ok := slices.BinarySearch(s.l, k)
	if ok {
		return
	}

	s.l = slices.Insert(s.l, i, k)
}

func (s *Sorted[K]) Clear(k K) {
	i, ok := slices.BinarySearch(s.l, k)
	if !ok {
		return
	}

	s.l = slices.Delete(s.l, i, i+1)
}

func (s *Sorted[K]) IsSet(k K) bool {
	_, ok := slices.BinarySearch(s.l, k)
	return ok
}

func (s *Sorted[K]) Size() int { return len(s.l) }

// Range calls f for each key in ascending order until f returns false.
func (s *Sorted[K]) Range(f func(k K) bool) {
	for _, k := range s.l {
		if !f(k) {
			return
		}
	}
}

// Slice returns a copy of keys in ascending order.
func (s *Sorted[K]) Slice() []K {
	if len(s.l) == 0 {
		return nil
	}

	return slices.Clone(s.l)
}
