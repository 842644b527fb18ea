// Package wswor implements one-pass weighted random sampling without
// replacement, based on the section "One-pass sampling" from Müller (2016),
// Accelerating weighted random sampling without replacement
// (https://www.research-collection.ethz.ch/mapping/view/pub:176429).
//
// Each item fed into a reservoir receives a priority key drawn as
// Exponential(1)/weight; the reservoir keeps the k smallest keys seen so
// far, which selects items with probability proportional to their weight.
// A single pass over the stream costs O(n log k) time and O(k) memory.
package wswor

// Weighted pairs a sampling weight with the value it applies to.
type Weighted[T any] struct {
	Weight float64
	Value  T
}

// Sample draws up to k values from items without replacement, each with
// probability proportional to its weight. It returns fewer than k values
// only when items has fewer than k entries. On an invalid weight the
// error is returned and no values are produced.
func Sample[T any](items []Weighted[T], src Source, k int) ([]T, error) {
	r := New[T](k)
	if err := r.FeedAll(items, src); err != nil {
		return nil, err
	}
	return r.Take(), nil
}
