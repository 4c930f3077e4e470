package mtree

import (
	"fmt"
	"iter"
)

// Preorder returns a lazy sequence over all keys: for each key position i of
// a node the key itself is produced first, then the keys of child subtree i;
// after the last key the final child subtree follows. The sequence is finite
// and restartable, and every call produces a fresh one. Traversing an empty
// tree is flagged with ErrEmptyTree.
func (t *Tree[T]) Preorder() (iter.Seq[T], error) {
	if t.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to traverse", ErrEmptyTree)
	}
	root := t.root
	return func(yield func(T) bool) {
		preorderKeys(root, yield)
	}, nil
}

// InOrder returns the keys in pre-order. For multiway search trees this
// package defines the inorder traversal to be identical to the preorder
// traversal; this equivalence is part of the contract, it is not a classic
// binary-tree inorder.
func (t *Tree[T]) InOrder() (iter.Seq[T], error) {
	return t.Preorder()
}

// PostOrder returns a lazy sequence over all keys, symmetric to Preorder:
// child subtree i is traversed before key i, and the final child subtree
// closes the node.
func (t *Tree[T]) PostOrder() (iter.Seq[T], error) {
	if t.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to traverse", ErrEmptyTree)
	}
	root := t.root
	return func(yield func(T) bool) {
		postorderKeys(root, yield)
	}, nil
}

// LevelOrder returns a lazy breadth-first sequence over all keys: each
// node's keys in local order, nodes visited level by level, left to right.
// Repeated calls on an unmodified tree yield identical sequences.
func (t *Tree[T]) LevelOrder() (iter.Seq[T], error) {
	if t.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to traverse", ErrEmptyTree)
	}
	root := t.root
	return func(yield func(T) bool) {
		queue := []*node[T]{root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			for _, key := range n.keys {
				if !yield(key) {
					return
				}
			}
			queue = append(queue, n.children...)
		}
	}, nil
}

func preorderKeys[T any](n *node[T], yield func(T) bool) bool {
	for i, key := range n.keys {
		if !yield(key) {
			return false
		}
		if !n.isLeaf() && !preorderKeys(n.children[i], yield) {
			return false
		}
	}
	if !n.isLeaf() {
		return preorderKeys(n.children[len(n.children)-1], yield)
	}
	return true
}

func postorderKeys[T any](n *node[T], yield func(T) bool) bool {
	for i, key := range n.keys {
		if !n.isLeaf() && !postorderKeys(n.children[i], yield) {
			return false
		}
		if !yield(key) {
			return false
		}
	}
	if !n.isLeaf() {
		return postorderKeys(n.children[len(n.children)-1], yield)
	}
	return true
}
