// Package bfs provides breadth-first search over a bst tree,
// returning the level-order visit sequence and per-value depths.
//
// BFS explores nodes in increasing distance from the root, left child
// before right child, with optional hooks and depth limiting.
package bfs

import (
	"context"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvds/bst"
)

// queueItem pairs a node with its BFS depth.
type queueItem[T constraints.Ordered] struct {
	node  *bst.Node[T]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T constraints.Ordered] struct {
	opts   BFSOptions[T]
	ctx    context.Context
	queue  []queueItem[T]
	res    *BFSResult[T]
	target *T // nil for a full walk
	found  *bst.Node[T]
}

// Walk runs breadth-first search from root, applying any number of
// functional Options, and returns every visited value in level order.
// Returns ErrNilRoot for a nil root, ErrOptionViolation for bad options,
// ctx.Err() on cancellation, or any user-supplied hook error.
func Walk[T constraints.Ordered](root *bst.Node[T], opts ...Option[T]) (*BFSResult[T], error) {
	w, err := newWalker(root, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// Search runs breadth-first search from root and returns the first node
// whose value equals target, or nil when no visited node holds it.
// Errors follow Walk.
func Search[T constraints.Ordered](root *bst.Node[T], target T, opts ...Option[T]) (*bst.Node[T], error) {
	w, err := newWalker(root, opts)
	if err != nil {
		return nil, err
	}
	w.target = &target
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.found, nil
}

// SearchRecursive dequeues one node per call, returns it if it holds
// target, and otherwise enqueues its children and recurses on the rest of
// the queue. An empty queue means target is absent.
// Seed it with []*bst.Node[T]{root}. Nil entries are skipped.
func SearchRecursive[T constraints.Ordered](queue []*bst.Node[T], target T) *bst.Node[T] {
	if len(queue) == 0 {
		return nil
	}
	n, rest := queue[0], queue[1:]
	if n == nil {
		return SearchRecursive(rest, target)
	}
	if n.Value() == target {
		return n
	}
	if l := n.Left(); l != nil {
		rest = append(rest, l)
	}
	if r := n.Right(); r != nil {
		rest = append(rest, r)
	}

	return SearchRecursive(rest, target)
}

func newWalker[T constraints.Ordered](root *bst.Node[T], opts []Option[T]) (*walker[T], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if root == nil {
		return nil, ErrNilRoot
	}

	w := &walker[T]{
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[T], 0, 8),
		res: &BFSResult[T]{
			Order: make([]T, 0, 8),
			Depth: make(map[T]int),
		},
	}
	// Seed queue with the root at depth 0
	w.enqueue(root, 0)

	return w, nil
}

// enqueue records n's depth, calls OnEnqueue and adds it to the queue.
func (w *walker[T]) enqueue(n *bst.Node[T], d int) {
	w.res.Depth[n.Value()] = d
	w.opts.OnEnqueue(n.Value(), d)
	w.queue = append(w.queue, queueItem[T]{node: n, depth: d})
}

// loop processes the queue until empty, match, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.target != nil && item.node.Value() == *w.target {
			w.found = item.node
			return nil
		}
		w.enqueueChildren(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node.Value(), item.depth)

	return item
}

// visit records the value in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.Order = append(w.res.Order, item.node.Value())
	if err := w.opts.OnVisit(item.node.Value(), item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node.Value(), err)
	}

	return nil
}

// enqueueChildren adds the left then right child, honoring MaxDepth.
// A tree has no cycles, so no visited set is needed.
func (w *walker[T]) enqueueChildren(item queueItem[T]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	if l := item.node.Left(); l != nil {
		w.enqueue(l, nextDepth)
	}
	if r := item.node.Right(); r != nil {
		w.enqueue(r, nextDepth)
	}
}
