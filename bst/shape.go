// Package bst exposes read-only views of a Tree: the canonical recursive
// Shape, the in-order value sequence, the height, and a full invariant check.
package bst

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Shape is the canonical recursive form {value, left, right} of a subtree.
// A nil *Shape stands for an absent child. It marshals to JSON as
// {"value":..,"left":..,"right":..} with null for absent children.
type Shape[T constraints.Ordered] struct {
	Value T         `json:"value"`
	Left  *Shape[T] `json:"left"`
	Right *Shape[T] `json:"right"`
}

// ShapeOf builds the Shape of the subtree rooted at n; nil for a nil node.
func ShapeOf[T constraints.Ordered](n *Node[T]) *Shape[T] {
	if n == nil {
		return nil
	}

	return &Shape[T]{Value: n.value, Left: ShapeOf(n.left), Right: ShapeOf(n.right)}
}

// Shape returns the Shape of the whole tree, nil when empty.
func (t *Tree[T]) Shape() *Shape[T] {
	return ShapeOf(t.root)
}

// String renders s compactly: a leaf is {v}, any other node is {v,L,R}
// with nil in place of an absent child.
//
//	   9
//	 4   20
//	1 6 15 170   →   {9,{4,{1},{6}},{20,{15},{170}}}
func (s *Shape[T]) String() string {
	var sb strings.Builder
	s.write(&sb)

	return sb.String()
}

func (s *Shape[T]) write(sb *strings.Builder) {
	if s == nil {
		sb.WriteString("nil")
		return
	}
	fmt.Fprintf(sb, "{%v", s.Value)
	if s.Left != nil || s.Right != nil {
		sb.WriteByte(',')
		s.Left.write(sb)
		sb.WriteByte(',')
		s.Right.write(sb)
	}
	sb.WriteByte('}')
}

// InOrder returns the stored values in ascending order.
// Time: O(n); Space: O(h) for the explicit stack
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	stack := make([]*Node[T], 0)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur, stack = stack[len(stack)-1], stack[:len(stack)-1]
		out = append(out, cur.value)
		cur = cur.right
	}

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path;
// 0 for an empty tree.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// Validate checks every structural invariant: strict ordering across each
// subtree, parent back-references on every edge, a parentless root, and
// that the tracked size equals the reachable node count.
// Time: O(n)
func (t *Tree[T]) Validate() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrParentLink, t.root.value, t.root.parent.value)
	}
	count := 0
	if err := validate(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: tracked %d, reachable %d", ErrSizeMismatch, t.size, count)
	}

	return nil
}

// validate walks n's subtree requiring every value to lie strictly between
// lo and hi (nil bound = unbounded).
func validate[T constraints.Ordered](n *Node[T], lo, hi *T, count *int) error {
	if n == nil {
		return nil
	}
	*count++
	if (lo != nil && n.value <= *lo) || (hi != nil && n.value >= *hi) {
		return fmt.Errorf("%w: value %v out of bounds", ErrOrderViolation, n.value)
	}
	for _, c := range [2]*Node[T]{n.left, n.right} {
		if c != nil && c.parent != n {
			return fmt.Errorf("%w: child %v of %v", ErrParentLink, c.value, n.value)
		}
	}
	if err := validate(n.left, lo, &n.value, count); err != nil {
		return err
	}

	return validate(n.right, &n.value, hi, count)
}
