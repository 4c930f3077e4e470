package mtree

// Add inserts el into the tree. If an equal key is already present, it is
// replaced in place and the key count stays unchanged, so keys remain unique
// across the whole tree.
//
// Rebalancing happens on the way back up the recursive descent: a parent
// that finds its child overflowing first tries to rotate a key into an
// adjacent sibling with spare capacity (left sibling first, then right) and
// only splits the child when neither rotation is legal. Splitting the root
// is the one place where the tree grows in height.
func (t *Tree[T]) Add(el T) {
	if t.root == nil {
		t.root = &node[T]{keys: keylist[T]{el}}
		t.height = 1
		t.count = 1
		return
	}
	replaced := t.insert(t.root, el)
	if t.overflows(t.root) {
		t.splitRoot()
	}
	if !replaced {
		t.count++
	}
}

// insert descends to a leaf, inserts there, and resolves child overflow
// during the unwind. Returns true if an equal key was replaced instead of
// inserted.
func (t *Tree[T]) insert(n *node[T], el T) bool {
	i, found := n.keys.find(el, t.cfg.Compare)
	if found {
		n.keys[i] = el
		return true
	}
	if n.isLeaf() {
		n.keys.insertAt(i, el)
		return false
	}
	replaced := t.insert(n.children[i], el)
	if !replaced && t.overflows(n.children[i]) {
		switch {
		case t.canRotateLeft(n, i):
			t.rotateLeft(n, i)
		case t.canRotateRight(n, i):
			t.rotateRight(n, i)
		default:
			t.splitChild(n, i)
		}
	}
	return replaced
}

// canRotateLeft reports whether one key of child j can travel through
// separator j-1 into the left sibling.
func (t *Tree[T]) canRotateLeft(n *node[T], j int) bool {
	return 0 < j && j < len(n.children) &&
		!t.atMinimum(n.children[j]) && !t.isFull(n.children[j-1])
}

// canRotateRight reports whether one key of child j can travel through
// separator j into the right sibling.
func (t *Tree[T]) canRotateRight(n *node[T], j int) bool {
	return 0 <= j && j < len(n.children)-1 &&
		!t.atMinimum(n.children[j]) && !t.isFull(n.children[j+1])
}

// rotateLeft moves separator key j-1 to the end of the left sibling and
// promotes the first key of child j into the separator slot. For internal
// children the first child pointer of child j travels along. Subtree heights
// never change.
func (t *Tree[T]) rotateLeft(n *node[T], j int) {
	src, dst := n.children[j], n.children[j-1]
	dst.keys = append(dst.keys, n.keys[j-1])
	n.keys[j-1] = src.keys.removeAt(0)
	if !src.isLeaf() {
		dst.children = append(dst.children, src.children.removeAt(0))
	}
}

// rotateRight moves separator key j to the front of the right sibling and
// promotes the last key of child j into the separator slot, mirroring
// rotateLeft.
func (t *Tree[T]) rotateRight(n *node[T], j int) {
	src, dst := n.children[j], n.children[j+1]
	dst.keys.insertAt(0, n.keys[j])
	n.keys[j] = src.keys.pop()
	if !src.isLeaf() {
		dst.children.insertAt(0, src.children.pop())
	}
}

// splitChild splits the overflowing child i around its middle key. The child
// shrinks to the smaller half, a new node takes the larger half, and the
// middle key plus the new child pointer move up into n.
func (t *Tree[T]) splitChild(n *node[T], i int) {
	child := n.children[i]
	mid := len(child.keys) / 2
	midKey := child.keys[mid]
	larger := &node[T]{}
	larger.keys = append(larger.keys, child.keys[mid+1:]...)
	child.keys.truncate(mid)
	if !child.isLeaf() {
		larger.children = append(larger.children, child.children[mid+1:]...)
		child.children.truncate(mid + 1)
	}
	n.keys.insertAt(i, midKey)
	n.children.insertAt(i+1, larger)
}

// splitRoot grows the tree by one level: the old root's middle key becomes
// the single key of a brand-new two-child root.
func (t *Tree[T]) splitRoot() {
	old := t.root
	t.root = &node[T]{children: childlist[T]{old}}
	t.splitChild(t.root, 0)
	t.height++
	tracer().Debugf("mtree: root split, height is now %d", t.height)
}
