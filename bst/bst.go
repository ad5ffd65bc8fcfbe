// Package bst implements insertion, lookup and removal on Tree.
//
// Insert and Lookup share the same comparison walk from the root:
// greater goes right, smaller goes left, equal stops. Remove locates the
// target with Lookup and dispatches on its child count.
package bst

// Insert attaches v as a new leaf and reports whether a node was created.
// Inserting a value already present leaves the tree untouched and returns false.
// Time: O(h); Space: O(1)
func (t *Tree[T]) Insert(v T) bool {
	inserted := t.insert(v)
	t.opts.OnInsert(v, inserted)

	return inserted
}

func (t *Tree[T]) insert(v T) bool {
	// 1) Empty tree: the new node becomes the root with no parent.
	if t.root == nil {
		t.root = &Node[T]{value: v}
		t.size++

		return true
	}

	// 2) Walk down until an empty child slot on the comparison path.
	cur := t.root
	for {
		switch {
		case v > cur.value:
			if cur.right == nil {
				cur.right = &Node[T]{value: v, parent: cur}
				t.size++

				return true
			}
			cur = cur.right
		case v < cur.value:
			if cur.left == nil {
				cur.left = &Node[T]{value: v, parent: cur}
				t.size++

				return true
			}
			cur = cur.left
		default:
			return false // already stored
		}
	}
}

// Lookup returns the node holding v, or nil if v is not stored.
// Time: O(h); Space: O(1)
func (t *Tree[T]) Lookup(v T) *Node[T] {
	cur := t.root
	for cur != nil {
		switch {
		case v > cur.value:
			cur = cur.right
		case v < cur.value:
			cur = cur.left
		default:
			return cur
		}
	}

	return nil
}

// Contains reports whether v is stored in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.Lookup(v) != nil
}

// Remove deletes v and reports whether it was present. Removing a missing
// value, or removing from an empty tree, is a no-op returning false.
// The removed node is fully detached (left, right and parent cleared).
// Time: O(h); Space: O(1)
func (t *Tree[T]) Remove(v T) bool {
	target := t.Lookup(v)
	if target == nil {
		return false
	}

	var c RemoveCase
	switch {
	case target.left == nil && target.right == nil:
		c = RemoveLeaf
		t.replaceChild(target.parent, target, nil)
	case target.left == nil || target.right == nil:
		c = RemoveOneChild
		child := target.left
		if child == nil {
			child = target.right
		}
		t.replaceChild(target.parent, target, child)
	default:
		c = RemoveTwoChildren
		t.relocateSuccessor(target)
	}

	target.detach()
	t.size--
	t.opts.OnRemove(v, c)

	return true
}

// relocateSuccessor moves the in-order successor of target into target's
// position. target must have two children, so the successor is the minimum
// of target.right and has no left child.
//
// Roles:
//
//	target      the node being removed
//	succ        Successor(target)
//	succParent  succ.parent before the splice (may be target itself)
//	succRight   succ.right before the splice (may be nil)
func (t *Tree[T]) relocateSuccessor(target *Node[T]) {
	succ := Successor(target)
	succParent, succRight := succ.parent, succ.right

	// 1) Splice succ out: succRight takes succ's slot under succParent.
	//    When succ == target.right this rewrites target.right to succRight.
	if succParent.left == succ {
		succParent.left = succRight
	} else {
		succParent.right = succRight
	}
	if succRight != nil {
		succRight.parent = succParent
	}

	// 2) succ adopts target's children; they point back at succ.
	succ.left, succ.right = target.left, target.right
	if succ.left != nil {
		succ.left.parent = succ
	}
	if succ.right != nil {
		succ.right.parent = succ
	}

	// 3) succ takes target's slot under target's parent (or becomes root).
	t.replaceChild(target.parent, target, succ)
}

// replaceChild puts repl where old hangs under parent and fixes repl's
// back-reference. A nil parent means old is the root.
func (t *Tree[T]) replaceChild(parent, old, repl *Node[T]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		parent.right = repl
	}
	if repl != nil {
		repl.parent = parent
	}
}

// detach clears every link of n so it no longer references the tree.
func (n *Node[T]) detach() {
	n.left, n.right, n.parent = nil, nil, nil
}
