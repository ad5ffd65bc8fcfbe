// Package dfs implements depth-first traversals (pre-order, in-order and
// post-order) over a binary search tree built by package bst.
//
// Key features:
//   - Walk(root, order, opts...): visit every node reachable from root
//   - Orders: PreOrder (node, left, right), InOrder (left, node, right),
//     PostOrder (left, right, node)
//   - Hooks: OnVisit (on discovery) & OnExit (after both subtrees) with error aborts
//   - Limits: MaxDepth prunes subtrees below the given depth
//   - Cancellation via context.Context
//
// An InOrder walk of a bst tree yields its values in ascending order.
//
// Complexity:
//
//   - Time:   O(n) for traversal, plus overhead of hooks.
//   - Memory: O(h) recursion stack (h = height) plus O(n) for the result.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           hook on node discovery; error aborts traversal.
//   - WithOnExit(fn)            hook after exploring both subtrees.
//   - WithMaxDepth(limit)       stops recursion beyond given depth (>=0).
//
// Errors:
//
//   - ErrNilRoot                if root is nil.
//   - ErrBadOrder               if order is not one of PreOrder, InOrder, PostOrder.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit (wrapped).
package dfs
