package mtree

import "fmt"

// Check validates the structural tree invariants: strictly ascending keys,
// child counts, occupancy bounds for both root and non-root nodes, multiway
// search-tree ordering across separators, uniform leaf depth, and the cached
// height and key count.
//
// This checker is intentionally strict and meant for tests; every public
// mutating operation must leave the tree in a state that passes it.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 || t.count != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and count=0", ErrInvalidConfig)
		}
		return nil
	}
	if len(t.root.keys) < 1 || t.maxKeys() < len(t.root.keys) {
		return fmt.Errorf("%w: root key count %d outside [1, %d]",
			ErrInvalidConfig, len(t.root.keys), t.maxKeys())
	}
	count, height, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: key count mismatch (%d != %d)", ErrInvalidConfig, count, t.count)
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidConfig, height, t.height)
	}
	return nil
}

// checkNode walks the subtree rooted at n. lower and upper bracket the
// permitted key range, nil meaning unbounded on that side.
func (t *Tree[T]) checkNode(n *node[T], isRoot bool, lower, upper *T) (count int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalidConfig)
	}
	if !isRoot {
		if len(n.keys) < t.minKeys() || t.maxKeys() < len(n.keys) {
			return 0, 0, fmt.Errorf("%w: node key count %d outside [%d, %d]",
				ErrInvalidConfig, len(n.keys), t.minKeys(), t.maxKeys())
		}
	}
	cmp := t.cfg.Compare
	for i, key := range n.keys {
		if 0 < i && cmp(n.keys[i-1], key) >= 0 {
			return 0, 0, fmt.Errorf("%w: keys not strictly ascending at index %d", ErrInvalidConfig, i)
		}
		if lower != nil && cmp(key, *lower) <= 0 {
			return 0, 0, fmt.Errorf("%w: key below subtree lower bound", ErrInvalidConfig)
		}
		if upper != nil && cmp(key, *upper) >= 0 {
			return 0, 0, fmt.Errorf("%w: key above subtree upper bound", ErrInvalidConfig)
		}
	}
	if n.isLeaf() {
		return len(n.keys), 1, nil
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, 0, fmt.Errorf("%w: internal node has %d children for %d keys",
			ErrInvalidConfig, len(n.children), len(n.keys))
	}
	count = len(n.keys)
	childHeight := 0
	for i, child := range n.children {
		lo, hi := lower, upper
		if 0 < i {
			lo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			hi = &n.keys[i]
		}
		cCount, cHeight, cErr := t.checkNode(child, false, lo, hi)
		if cErr != nil {
			return 0, 0, cErr
		}
		count += cCount
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: leaves at non-uniform depth", ErrInvalidConfig)
		}
	}
	return count, childHeight + 1, nil
}
