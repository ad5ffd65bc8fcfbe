// Package bfs provides breadth-first (level-order) search over a binary
// search tree built by package bst, returning the visit order and the depth
// of every visited value.
//
// What
//
//   - Walk visits every node level by level, left child before right child.
//   - Search stops at the first node whose value equals the target.
//   - SearchRecursive is the queue-carrying recursive formulation; it keeps
//     no state besides the queue handed to it.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is added to the queue)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Only Value, Left and Right of each node are read; parent links are never
// followed, so any tree shape the bst package produces is walkable.
//
// Complexity (n = nodes)
//
//   - Time:   O(n)
//   - Memory: O(w) for the queue (w = widest level) plus O(n) for the result.
//
// Usage
//
//	tr := bst.Build(9, 4, 20, 1, 6, 15, 170)
//	res, err := bfs.Walk(tr.Root())
//	// res.Order == [9 4 20 1 6 15 170]
//
//	n, err := bfs.Search(tr.Root(), 15,
//	    bfs.WithOnVisit(func(v int, depth int) error { ...; return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):     set a custom context for cancellation.
//   - WithMaxDepth(d):      stop exploring beyond depth d (>0).
//   - WithOnEnqueue(fn):    hook when a node is enqueued.
//   - WithOnDequeue(fn):    hook immediately before visiting a node.
//   - WithOnVisit(fn):      hook during visit; returning error aborts.
//
// Errors
//
//   - ErrNilRoot          if the root is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context is cancelled.
package bfs
