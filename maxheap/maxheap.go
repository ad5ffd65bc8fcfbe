package maxheap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// From builds a heap over a copy of values using bottom-up heapify.
// Time: O(n)
func From[T constraints.Ordered](values []T, opts ...Option) *Heap[T] {
	h := New[T](opts...)
	h.data = make([]T, len(values))
	copy(h.data, values)
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

// Insert adds v and restores the heap property by sifting it up.
// Time: O(log n)
func (h *Heap[T]) Insert(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// ExtractMax removes and returns the largest value; ok is false when empty.
// Time: O(log n)
func (h *Heap[T]) ExtractMax() (v T, ok bool) {
	n := len(h.data)
	switch n {
	case 0:
		return v, false
	case 1:
		v = h.data[0]
		h.data = h.pop()

		return v, true
	}

	h.swap(0, n-1)
	v = h.data[n-1]
	h.data = h.pop()
	h.down(0)

	return v, true
}

// Peek returns the largest value without removing it; ok is false when empty.
// Time: O(1)
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}

	return h.data[0], true
}

// FindMax is an alias of Peek.
func (h *Heap[T]) FindMax() (T, bool) { return h.Peek() }

// Validate reports the first position whose value exceeds its parent's.
// Time: O(n)
func (h *Heap[T]) Validate() error {
	for i := 1; i < len(h.data); i++ {
		if p := parent(i); h.data[p] < h.data[i] {
			return fmt.Errorf("%w: position %d (%v) > parent %d (%v)", ErrHeapProperty, i, h.data[i], p, h.data[p])
		}
	}

	return nil
}

// pop drops the last element, zeroing its slot so the backing array does
// not retain it.
func (h *Heap[T]) pop() []T {
	var zero T
	n := len(h.data) - 1
	h.data[n] = zero

	return h.data[:n]
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

// up sifts position i toward the root while its parent is strictly smaller.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !(h.data[p] < h.data[i]) {
			return
		}
		h.swap(i, p)
		h.opts.OnSwap(i, p)
		i = p
	}
}

// down sifts position i toward the leaves, swapping with the larger child
// while that child is strictly greater.
func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		l := left(i)
		if l >= n {
			return
		}
		c := l
		if r := right(i); r < n && h.data[r] > h.data[l] {
			c = r
		}
		if !(h.data[c] > h.data[i]) {
			return
		}
		h.swap(c, i)
		h.opts.OnSwap(c, i)
		i = c
	}
}
