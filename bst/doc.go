// Package bst provides an unbalanced binary search tree whose nodes keep a
// back-reference to their parent.
//
// What
//
//   - Insert, Lookup and Contains walk from the root comparing values.
//   - FindMin, FindMax, Successor and Predecessor navigate from any node,
//     climbing parent links when a subtree is exhausted.
//   - Remove handles the three structural cases (leaf, one child, two
//     children) and reports which one applied through the OnRemove hook.
//   - Shape, InOrder and Validate expose the tree for assertions.
//
// Invariants
//
//	For every node n: values in n.Left() < n.Value() < values in n.Right().
//	n.Left() == m implies m.Parent() == n (same for Right).
//	Root().Parent() == nil.
//	Duplicate values are never stored; inserting one is a no-op.
//
// Two-children removal
//
//	The in-order successor S of the target X has no left child. S is first
//	spliced out of its own position (its right child, if any, takes its
//	place), then S is moved into X's position: S adopts X's parent, left and
//	right, and those neighbours are re-pointed at S. X is fully detached.
//	Node identity is preserved: values never move between nodes, so a
//	*Node obtained from Lookup stays valid for the value it holds.
//
// Complexity (h = height)
//
//   - Insert, Lookup, Remove, Successor, Predecessor: O(h)
//   - InOrder, Shape, Validate: O(n)
//
// Errors
//
//   - ErrNilNode         panic value when FindMin/FindMax/Successor/Predecessor get nil.
//   - ErrOrderViolation  from Validate when the ordering invariant is broken.
//   - ErrParentLink      from Validate when a parent back-reference disagrees.
//   - ErrSizeMismatch    from Validate when the node count drifts.
//
// The tree is not safe for concurrent use.
package bst
