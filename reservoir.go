package wswor

import (
	"math"

	"github.com/go-kratos/wswor/internal/maxheap"
)

// Source draws Exponential(1) distributed variates. *math/rand.Rand
// satisfies it; so does rand.New(frand.NewSource()) for callers that
// want a cryptographic generator. A reservoir never stores or seeds
// its source, only advances it by one draw per positive-weight item.
type Source interface {
	ExpFloat64() float64
}

// Reservoir samples up to k values from a stream of weighted items in
// one pass. It keeps the k entries with the smallest priority keys seen
// so far; the entry with the worst key sits at the root of a max-heap
// and is the first evicted. A Reservoir is not safe for concurrent use.
type Reservoir[T any] struct {
	k    int
	heap *maxheap.Heap[T]
}

// New returns an empty reservoir with capacity k. A non-positive k
// yields a reservoir that retains nothing.
func New[T any](k int) *Reservoir[T] {
	if k < 0 {
		k = 0
	}
	return &Reservoir[T]{
		k: k,
		// one extra slot for the transient overflow in Feed
		heap: maxheap.New[T](k + 1),
	}
}

// Feed offers one value with the given weight. An invalid weight is
// reported before any randomness is consumed, leaving the reservoir and
// the source untouched. A zero weight takes the sentinel key
// math.MaxFloat64 without consuming a draw, so the item stays eligible
// only while better-weighted competitors don't fill the capacity.
func (r *Reservoir[T]) Feed(val T, weight float64, src Source) error {
	if err := CheckWeight(weight); err != nil {
		return err
	}

	key := math.MaxFloat64
	if weight != 0 {
		key = src.ExpFloat64() / weight
	}

	// insert then evict; handles k == 0 and a not-yet-full heap alike
	r.heap.Push(maxheap.Node[T]{Key: key, Val: val})
	if r.heap.Len() > r.k {
		r.heap.Pop()
	}
	return nil
}

// FeedAll feeds items in order, stopping at the first invalid weight.
// On error the reservoir reflects only the items before the invalid
// one; the rest are never observed.
func (r *Reservoir[T]) FeedAll(items []Weighted[T], src Source) error {
	for _, it := range items {
		if err := r.Feed(it.Value, it.Weight, src); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of values currently held, which is the smaller
// of the capacity and the number of items fed so far.
func (r *Reservoir[T]) Len() int {
	return r.heap.Len()
}

// Values returns the currently held values without consuming the
// reservoir. The order is unspecified. The returned slice is a fresh
// copy; mutating it does not affect the reservoir.
func (r *Reservoir[T]) Values() []T {
	vals := make([]T, 0, r.heap.Len())
	for _, n := range r.heap.Nodes {
		vals = append(vals, n.Val)
	}
	return vals
}

// Take drains the reservoir, returning the held values in unspecified
// order. The reservoir is empty afterwards.
func (r *Reservoir[T]) Take() []T {
	vals := make([]T, 0, r.heap.Len())
	for _, n := range r.heap.Nodes {
		vals = append(vals, n.Val)
	}
	r.heap.Nodes = r.heap.Nodes[:0]
	return vals
}
