// Package bst defines the node and tree types, removal cases, hook options
// and sentinel errors of the binary search tree.
package bst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for tree contracts.
var (
	// ErrNilNode is the panic value used when a navigation helper is handed a nil node.
	ErrNilNode = errors.New("bst: nil node")

	// ErrOrderViolation indicates a node whose value breaks the left < node < right ordering.
	ErrOrderViolation = errors.New("bst: ordering invariant violated")

	// ErrParentLink indicates a child whose parent back-reference does not point at its parent.
	ErrParentLink = errors.New("bst: parent link mismatch")

	// ErrSizeMismatch indicates that the tracked node count differs from the reachable node count.
	ErrSizeMismatch = errors.New("bst: size mismatch")
)

// RemoveCase names the structural case Remove resolved.
type RemoveCase int

const (
	// RemoveLeaf: the target had no children and was simply detached.
	RemoveLeaf RemoveCase = iota
	// RemoveOneChild: the target's only child took its place.
	RemoveOneChild
	// RemoveTwoChildren: the target's in-order successor was spliced out and moved into its place.
	RemoveTwoChildren
)

// String returns the case name.
func (c RemoveCase) String() string {
	switch c {
	case RemoveLeaf:
		return "leaf"
	case RemoveOneChild:
		return "one-child"
	case RemoveTwoChildren:
		return "two-children"
	default:
		return "unknown"
	}
}

// Node is a tree vertex. Left and Right are owned by the node; Parent is a
// navigation-only back-reference. Fields are unexported so callers can read
// the shape but never rewire it.
type Node[T constraints.Ordered] struct {
	value  T
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// Value returns the value stored at n.
func (n *Node[T]) Value() T { return n.value }

// Left returns the left child or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Parent returns the parent or nil for the root (and for detached nodes).
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Option configures a Tree via functional arguments.
type Option[T constraints.Ordered] func(*Options[T])

// Options holds the trace hooks of a Tree.
type Options[T constraints.Ordered] struct {
	// OnInsert is called after every Insert with the value and whether a node was attached.
	OnInsert func(v T, inserted bool)

	// OnRemove is called after a successful Remove with the case that applied.
	OnRemove func(v T, c RemoveCase)
}

// DefaultOptions returns no-op hooks.
func DefaultOptions[T constraints.Ordered]() Options[T] {
	return Options[T]{
		OnInsert: func(T, bool) {},
		OnRemove: func(T, RemoveCase) {},
	}
}

// WithOnInsert registers a hook fired after each Insert.
func WithOnInsert[T constraints.Ordered](fn func(v T, inserted bool)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}

// WithOnRemove registers a hook fired after each successful Remove.
func WithOnRemove[T constraints.Ordered](fn func(v T, c RemoveCase)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnRemove = fn
		}
	}
}

// Tree is an unbalanced binary search tree without duplicates.
// An empty tree has a nil root.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
	size int
	opts Options[T]
}

// New returns an empty tree configured by opts.
func New[T constraints.Ordered](opts ...Option[T]) *Tree[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[T]{opts: o}
}

// Build returns a tree holding values, inserted in the given order.
func Build[T constraints.Ordered](values ...T) *Tree[T] {
	t := New[T]()
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Root returns the root node or nil when the tree is empty.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Len returns the number of stored values.
func (t *Tree[T]) Len() int { return t.size }
