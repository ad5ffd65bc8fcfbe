// Package dfs implements recursive depth-first traversal of a bst tree.
package dfs

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvds/bst"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[T constraints.Ordered] struct {
	order Order         // where nodes are recorded
	opts  DFSOptions[T] // traversal options
	res   *DFSResult[T] // result collector
}

// Walk performs a depth-first traversal from root and records values in the
// given order. Returns the partial result together with the error when
// aborted by context or hook.
func Walk[T constraints.Ordered](root *bst.Node[T], order Order, opts ...Option[T]) (*DFSResult[T], error) {
	// 1. Validate input
	if root == nil {
		return nil, ErrNilRoot
	}
	if order < PreOrder || order > PostOrder {
		return nil, fmt.Errorf("%w: %d", ErrBadOrder, order)
	}

	// 2. Apply options
	dopts := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result and traverse
	res := &DFSResult[T]{
		Order: make([]T, 0, 8),
		Depth: make(map[T]int),
	}
	walker := &dfsWalker[T]{order: order, opts: dopts, res: res}
	if err := walker.traverse(root, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits n at the given depth, recursing into both children.
func (w *dfsWalker[T]) traverse(n *bst.Node[T], depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if n == nil || (w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth) {
		return nil
	}

	// 3. Record depth and fire discovery hook
	v := n.Value()
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	// 4. Record and recurse in the requested order
	if w.order == PreOrder {
		w.res.Order = append(w.res.Order, v)
	}
	if err := w.traverse(n.Left(), depth+1); err != nil {
		return err
	}
	if w.order == InOrder {
		w.res.Order = append(w.res.Order, v)
	}
	if err := w.traverse(n.Right(), depth+1); err != nil {
		return err
	}

	// 5. Exit hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	if w.order == PostOrder {
		w.res.Order = append(w.res.Order, v)
	}

	return nil
}
