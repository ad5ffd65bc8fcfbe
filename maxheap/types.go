// Package maxheap defines the Heap type, its options and sentinel errors.
package maxheap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrHeapProperty indicates a child that is greater than its parent.
var ErrHeapProperty = errors.New("maxheap: heap property violated")

// Option configures a Heap via functional arguments.
type Option func(*Options)

// Options holds the trace hooks of a Heap.
type Options struct {
	// OnSwap is called for every swap performed while sifting, with the two
	// 0-indexed positions involved (child first, then parent).
	OnSwap func(i, j int)
}

// DefaultOptions returns a no-op OnSwap hook.
func DefaultOptions() Options {
	return Options{OnSwap: func(int, int) {}}
}

// WithOnSwap registers a hook fired on every sift swap.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// Heap is a binary max-heap of ordered values.
type Heap[T constraints.Ordered] struct {
	data []T
	opts Options
}

// New returns an empty heap configured by opts.
func New[T constraints.Ordered](opts ...Option) *Heap[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[T]{opts: o}
}

// Len returns the number of stored values.
func (h *Heap[T]) Len() int { return len(h.data) }

// Values returns a copy of the backing sequence in position order.
func (h *Heap[T]) Values() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)

	return out
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
