package mtree

// Remove deletes the key equal to el from the tree and returns it. Absence
// is not an error: removing from an empty tree, or removing a key that is
// not present, returns the zero value and false and leaves the tree
// untouched. The key count decrements only on successful removal.
func (t *Tree[T]) Remove(el T) (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}
	out, ok := t.delete(t.root, el)
	if !ok {
		return zero, false
	}
	t.count--
	if len(t.root.keys) == 0 {
		if 0 < len(t.root.children) {
			// root underflow: the root has no sibling to merge with, so it
			// collapses into its single remaining child
			t.root = t.root.children[0]
			t.height--
			tracer().Debugf("mtree: root collapse, height is now %d", t.height)
		} else {
			t.root = nil
			t.height = 0
		}
	}
	return out, true
}

// delete removes el from the subtree rooted at n. For a match in an internal
// node the key's value is overwritten with its inorder successor (the
// minimum of the right-bracketing child subtree) and the successor is then
// removed from that subtree. Underflow of the affected child is resolved
// during the unwind on every level, since a merge may in turn make the
// parent underflow.
func (t *Tree[T]) delete(n *node[T], el T) (T, bool) {
	var zero T
	i, found := n.keys.find(el, t.cfg.Compare)
	if n.isLeaf() {
		if !found {
			return zero, false
		}
		return n.keys.removeAt(i), true
	}
	if found {
		out := n.keys[i]
		succ := n.children[i+1].minKey()
		n.keys[i] = succ
		_, ok := t.delete(n.children[i+1], succ)
		assert(ok, "inorder successor must exist in right-bracketing subtree")
		t.fixUnderflow(n, i+1)
		return out, true
	}
	out, ok := t.delete(n.children[i], el)
	if !ok {
		return zero, false
	}
	t.fixUnderflow(n, i)
	return out, true
}

// fixUnderflow rebalances child i of n after a removal. A rotation from a
// sibling with spare capacity is always preferred over a merge, because it
// keeps node utilization higher; the left sibling is probed before the
// right. Merging is the fallback and prefers the left sibling as partner.
func (t *Tree[T]) fixUnderflow(n *node[T], i int) {
	if !t.underflows(n.children[i]) {
		return
	}
	switch {
	case t.canRotateRight(n, i-1): // borrow from left sibling
		t.rotateRight(n, i-1)
	case t.canRotateLeft(n, i+1): // borrow from right sibling
		t.rotateLeft(n, i+1)
	case 0 < i:
		t.mergeChildren(n, i-1)
	default:
		t.mergeChildren(n, i)
	}
}

// mergeChildren concatenates child j, separator key j and child j+1 into a
// single node. The parent loses one key and one child slot, which may leave
// it underflowing in turn; the caller's unwind takes care of that.
func (t *Tree[T]) mergeChildren(n *node[T], j int) {
	left, right := n.children[j], n.children[j+1]
	left.keys = append(left.keys, n.keys.removeAt(j))
	left.keys = append(left.keys, right.keys...)
	left.children = append(left.children, right.children...)
	n.children.removeAt(j + 1)
}
