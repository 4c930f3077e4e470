package mtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
)

// Tree is a balanced M-ary search tree over keys of type T.
//
// The zero value is not usable; create trees with New or NewWith. A tree
// exclusively owns its node graph: no node is shared between trees and no
// live reference into node storage is ever handed out, only key copies.
//
// Trees are not safe for concurrent mutation.
type Tree[T any] struct {
	cfg    Config[T]
	root   *node[T]
	count  int
	height int // number of node levels, 0 for the empty tree
}

// New creates an empty search tree of the given order for naturally ordered
// key types. An order of 0 selects DefaultOrder; orders below 3 are rejected
// with ErrInvalidOrder.
func New[T cmp.Ordered](order int) (*Tree[T], error) {
	return NewWith(Config[T]{Order: order, Compare: cmp.Compare[T]})
}

// NewWith creates an empty search tree with validated configuration.
func NewWith[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg}, nil
}

// FromTree creates a defensive copy of other: a fully independent node graph
// with no storage shared between copy and source. Size, height and key set of
// the copy always equal the source's, so a copy compares Equals to its
// source. Re-inserting the keys one by one would not give that guarantee:
// deletions may leave source nodes underfilled, and a re-insertion copy of
// such a tree can come out shorter.
func FromTree[T any](other *Tree[T]) (*Tree[T], error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	tree := &Tree[T]{cfg: other.cfg, count: other.count, height: other.height}
	if other.root != nil {
		tree.root = other.root.clone()
	}
	return tree, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Order returns M, the maximum number of children per node.
func (t *Tree[T]) Order() int {
	return t.cfg.Order
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the number of node levels from root to leaf, 0 for the
// empty tree. The counter is maintained incrementally: only a root split or
// a root collapse changes it.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Contains reports whether the tree holds a key equal to el. A query against
// the empty tree simply reports false.
func (t *Tree[T]) Contains(el T) bool {
	if t.IsEmpty() {
		return false
	}
	_, found := t.root.search(el, t.cfg.Compare)
	return found
}

// Find retrieves the key equal to el. Absence of the key is not an error;
// querying an empty tree is (ErrEmptyTree).
func (t *Tree[T]) Find(el T) (T, bool, error) {
	var zero T
	if t.IsEmpty() {
		return zero, false, fmt.Errorf("%w: nothing to find", ErrEmptyTree)
	}
	out, found := t.root.search(el, t.cfg.Compare)
	return out, found, nil
}

// Min returns the smallest key in the tree, descending to the leftmost leaf.
func (t *Tree[T]) Min() (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, fmt.Errorf("%w: no minimum", ErrEmptyTree)
	}
	return t.root.minKey(), nil
}

// Max returns the largest key in the tree, descending to the rightmost leaf.
func (t *Tree[T]) Max() (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, fmt.Errorf("%w: no maximum", ErrEmptyTree)
	}
	return t.root.maxKey(), nil
}

// Root returns the middle key of the root node. The root of a B-tree may
// legitimately hold anything between 1 and M-1 keys; by convention Root
// reports the middle one.
func (t *Tree[T]) Root() (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, fmt.Errorf("%w: no root", ErrEmptyTree)
	}
	return t.root.middleKey(), nil
}

// Clear resets the tree to the empty state, releasing the entire node graph.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
	t.height = 0
}

// Equals reports whether two trees hold the same keys in the same shape
// class: equal size, equal height, equal order, and identical level-order
// key sequences. The concrete node shape is deliberately not part of the
// contract.
func (t *Tree[T]) Equals(other *Tree[T]) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.count != other.count || t.height != other.height || t.cfg.Order != other.cfg.Order {
		return false
	}
	if t.count == 0 {
		return true
	}
	mine, err := t.LevelOrder()
	assert(err == nil, "level-order on non-empty tree failed")
	theirs, err := other.LevelOrder()
	assert(err == nil, "level-order on non-empty tree failed")
	next, stop := iter.Pull(theirs)
	defer stop()
	for key := range mine {
		otherKey, ok := next()
		if !ok || t.cfg.Compare(key, otherKey) != 0 {
			return false
		}
	}
	return true
}

// --- Occupancy bounds ------------------------------------------------------

// maxKeys returns the maximum number of keys per node, M-1.
func (t *Tree[T]) maxKeys() int {
	return t.cfg.Order - 1
}

// minKeys returns the minimum number of keys per non-root node,
// ceil(M/2) - 1. The single formula covers both parities of M.
func (t *Tree[T]) minKeys() int {
	return (t.cfg.Order+1)/2 - 1
}

// overflows reports the transient post-insertion state with M keys.
func (t *Tree[T]) overflows(n *node[T]) bool {
	return len(n.keys) > t.maxKeys()
}

// underflows reports the transient post-deletion state below the minimum.
func (t *Tree[T]) underflows(n *node[T]) bool {
	return len(n.keys) < t.minKeys()
}

func (t *Tree[T]) isFull(n *node[T]) bool {
	return len(n.keys) == t.maxKeys()
}

func (t *Tree[T]) atMinimum(n *node[T]) bool {
	return len(n.keys) == t.minKeys()
}

// --- Node walk for diagnostics ---------------------------------------------

// EachNode visits every node in level order, passing the node's depth
// (root = 0), a copy of its keys and its child count. Iteration stops early
// if fn returns false.
//
// EachNode never leaks node references; callers get key copies only. It is
// the hook packages like mtree/stats and mtree/render build on.
func (t *Tree[T]) EachNode(fn func(depth int, keys []T, nchildren int) bool) {
	if t == nil || fn == nil {
		return
	}
	t.eachNode(fn)
}

func (t *Tree[T]) eachNode(fn func(depth int, keys []T, nchildren int) bool) {
	if t.root == nil {
		return
	}
	type item struct {
		n     *node[T]
		depth int
	}
	queue := []item{{t.root, 0}}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		keys := make([]T, len(head.n.keys))
		copy(keys, head.n.keys)
		if !fn(head.depth, keys, len(head.n.children)) {
			return
		}
		for _, child := range head.n.children {
			queue = append(queue, item{child, head.depth + 1})
		}
	}
}
