package wswor

import "math"

// Single samples exactly one value from a stream of weighted items. It
// behaves like a Reservoir with capacity 1 but tracks a single slot
// instead of a heap. Not safe for concurrent use.
type Single[T any] struct {
	val T
	key float64
	ok  bool
}

// NewSingle returns an empty single-item sampler.
func NewSingle[T any]() *Single[T] {
	return &Single[T]{}
}

// Feed offers one value with the given weight. The key derivation and
// draw consumption match Reservoir.Feed exactly, so a Single and a
// capacity-1 Reservoir fed the same stream see the same draw sequence.
func (s *Single[T]) Feed(val T, weight float64, src Source) error {
	if err := CheckWeight(weight); err != nil {
		return err
	}

	key := math.MaxFloat64
	if weight != 0 {
		key = src.ExpFloat64() / weight
	}

	if !s.ok || key < s.key {
		s.val = val
		s.key = key
		s.ok = true
	}
	return nil
}

// FeedAll feeds items in order, stopping at the first invalid weight.
func (s *Single[T]) FeedAll(items []Weighted[T], src Source) error {
	for _, it := range items {
		if err := s.Feed(it.Value, it.Weight, src); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the currently selected value, if any item has been fed.
func (s *Single[T]) Get() (T, bool) {
	return s.val, s.ok
}

// Take returns the selected value and resets the sampler to empty.
func (s *Single[T]) Take() (T, bool) {
	val, ok := s.val, s.ok
	var zero T
	s.val, s.key, s.ok = zero, 0, false
	return val, ok
}
