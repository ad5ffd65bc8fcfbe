// Package dfs defines types and options for depth-first tree traversal,
// including cancellation, discovery/exit hooks and depth limiting.
package dfs

import (
	"context"
	"errors"

	"golang.org/x/exp/constraints"
)

// Order selects where a node is recorded relative to its subtrees.
type Order int

const (
	PreOrder  Order = iota // PreOrder: node, then left subtree, then right subtree.
	InOrder                // InOrder: left subtree, node, right subtree.
	PostOrder              // PostOrder: left subtree, right subtree, then node.
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	default:
		return "unknown"
	}
}

var (
	// ErrNilRoot is returned when Walk is given a nil root.
	ErrNilRoot = errors.New("dfs: root is nil")

	// ErrBadOrder is returned for an Order outside PreOrder..PostOrder.
	ErrBadOrder = errors.New("dfs: unknown traversal order")
)

// Option configures optional behavior of DFS traversal.
// Use with Walk(root, order, opts...).
type Option[T constraints.Ordered] func(*DFSOptions[T])

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions[T constraints.Ordered] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node.
	// Returning an error aborts traversal with that error.
	OnVisit func(v T, depth int) error

	// OnExit, if non-nil, is invoked after both subtrees of a node
	// have been explored. Returning an error aborts traversal.
	OnExit func(v T, depth int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No discovery/exit hooks
//   - No depth limit (MaxDepth = -1)
func DefaultOptions[T constraints.Ordered]() DFSOptions[T] {
	return DFSOptions[T]{
		Ctx:      context.Background(),
		OnVisit:  nil,
		OnExit:   nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[T constraints.Ordered](ctx context.Context) Option[T] {
	return func(o *DFSOptions[T]) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a discovery hook.
func WithOnVisit[T constraints.Ordered](fn func(v T, depth int) error) Option[T] {
	return func(o *DFSOptions[T]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as an exit hook.
// The hook is called after a node's subtrees have been fully explored.
func WithOnExit[T constraints.Ordered](fn func(v T, depth int) error) Option[T] {
	return func(o *DFSOptions[T]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the root is visited.
func WithMaxDepth[T constraints.Ordered](limit int) Option[T] {
	return func(o *DFSOptions[T]) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[T constraints.Ordered] struct {
	// Order records values in the sequence selected by the traversal Order.
	Order []T

	// Depth maps each visited value to its distance (#edges) from the root.
	Depth map[T]int
}
