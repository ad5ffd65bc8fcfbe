// Package bfs provides tunable options and error definitions
// for breadth-first search over a bst tree.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilRoot is returned when the walk starts from a nil node.
	ErrNilRoot = errors.New("bfs: root is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the walk is invoked.
type Option[T constraints.Ordered] func(*BFSOptions[T])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[T constraints.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives the node value and its depth from the root.
	OnEnqueue func(v T, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(v T, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[T constraints.Ordered]() BFSOptions[T] {
	return BFSOptions[T]{
		Ctx:       context.Background(),
		OnEnqueue: func(T, int) {},
		OnDequeue: func(T, int) {},
		OnVisit:   func(T, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T constraints.Ordered](ctx context.Context) Option[T] {
	return func(o *BFSOptions[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[T constraints.Ordered](fn func(v T, depth int)) Option[T] {
	return func(o *BFSOptions[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[T constraints.Ordered](fn func(v T, depth int)) Option[T] {
	return func(o *BFSOptions[T]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T constraints.Ordered](fn func(v T, depth int) error) Option[T] {
	return func(o *BFSOptions[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T constraints.Ordered](d int) Option[T] {
	return func(o *BFSOptions[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: values visited, in visit sequence.
//   - Depth: map from value to its distance (in edges) from the root.
type BFSResult[T constraints.Ordered] struct {
	Order []T
	Depth map[T]int
}

// Levels groups Order by depth: Levels()[d] lists the values at depth d
// left to right.
func (r *BFSResult[T]) Levels() [][]T {
	var levels [][]T
	for _, v := range r.Order {
		d := r.Depth[v]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], v)
	}

	return levels
}
