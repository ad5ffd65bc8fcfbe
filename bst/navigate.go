package bst

import (
	"golang.org/x/exp/constraints"
)

// FindMin follows left links from n and returns the leftmost node of its subtree.
// Panics with ErrNilNode when n is nil.
// Time: O(h); Space: O(1)
func FindMin[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		panic(ErrNilNode)
	}
	for n.left != nil {
		n = n.left
	}

	return n
}

// FindMax follows right links from n and returns the rightmost node of its subtree.
// Panics with ErrNilNode when n is nil.
// Time: O(h); Space: O(1)
func FindMax[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		panic(ErrNilNode)
	}
	for n.right != nil {
		n = n.right
	}

	return n
}

// Successor returns the node holding the smallest value greater than n's, or
// nil when n holds the maximum. If n has a right subtree the answer is its
// minimum; otherwise climb while the current node is a right child, and the
// first parent reached from a left child is the answer.
// Panics with ErrNilNode when n is nil.
// Time: O(h); Space: O(1)
func Successor[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		panic(ErrNilNode)
	}
	if n.right != nil {
		return FindMin(n.right)
	}
	cur, p := n, n.parent
	for p != nil && cur == p.right {
		cur, p = p, p.parent
	}

	return p // nil once the root was climbed past
}

// Predecessor mirrors Successor: the node holding the greatest value less
// than n's, or nil when n holds the minimum.
// Panics with ErrNilNode when n is nil.
// Time: O(h); Space: O(1)
func Predecessor[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		panic(ErrNilNode)
	}
	if n.left != nil {
		return FindMax(n.left)
	}
	cur, p := n, n.parent
	for p != nil && cur == p.left {
		cur, p = p, p.parent
	}

	return p
}

// Min returns the smallest stored value; ok is false on an empty tree.
func (t *Tree[T]) Min() (v T, ok bool) {
	if t.root == nil {
		return v, false
	}

	return FindMin(t.root).value, true
}

// Max returns the largest stored value; ok is false on an empty tree.
func (t *Tree[T]) Max() (v T, ok bool) {
	if t.root == nil {
		return v, false
	}

	return FindMax(t.root).value, true
}
