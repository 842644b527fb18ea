package maxheap

import "container/heap"

// Heap is a bounded max-heap keyed by float64. The root is the node
// with the largest key, so the worst candidate is always at index 0.
type Heap[T any] struct {
	Nodes Nodes[T]
}

func New[T any](capacity int) *Heap[T] {
	return &Heap[T]{Nodes: make(Nodes[T], 0, capacity)}
}

func (h *Heap[T]) Push(n Node[T]) {
	heap.Push(&h.Nodes, n)
}

// Pop removes and returns the node with the largest key.
func (h *Heap[T]) Pop() Node[T] {
	return heap.Pop(&h.Nodes).(Node[T])
}

// Max returns the largest key, or 0 if the heap is empty.
func (h *Heap[T]) Max() float64 {
	if len(h.Nodes) == 0 {
		return 0
	}
	return h.Nodes[0].Key
}

func (h *Heap[T]) Len() int {
	return len(h.Nodes)
}

type Nodes[T any] []Node[T]

type Node[T any] struct {
	Key float64
	Val T
}

func (n Nodes[T]) Len() int {
	return len(n)
}

// Less orders by key only; equal keys sift in arbitrary order.
func (n Nodes[T]) Less(i, j int) bool {
	return n[i].Key > n[j].Key
}

func (n Nodes[T]) Swap(i, j int) {
	n[i], n[j] = n[j], n[i]
}

func (n *Nodes[T]) Push(val interface{}) {
	*n = append(*n, val.(Node[T]))
}

func (n *Nodes[T]) Pop() interface{} {
	var val Node[T]
	val, *n = (*n)[len(*n)-1], (*n)[:len(*n)-1]
	return val
}
