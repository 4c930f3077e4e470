package mtree

import "sort"

// keylist stores the ordered keys of a node.
type keylist[T any] []T

// insertAt inserts a key at the given index, pushing all subsequent keys
// forward.
func (s *keylist[T]) insertAt(index int, key T) {
	var zero T
	*s = append(*s, zero)
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = key
}

// removeAt removes the key at the given index, pulling all subsequent keys
// back.
func (s *keylist[T]) removeAt(index int) T {
	key := (*s)[index]
	copy((*s)[index:], (*s)[index+1:])
	var zero T
	(*s)[len(*s)-1] = zero
	*s = (*s)[:len(*s)-1]
	return key
}

// pop removes and returns the last key in the list.
func (s *keylist[T]) pop() (out T) {
	index := len(*s) - 1
	out = (*s)[index]
	var zero T
	(*s)[index] = zero
	*s = (*s)[:index]
	return
}

// truncate truncates this instance at index so that it contains only the
// first index keys. index must be less than or equal to length.
func (s *keylist[T]) truncate(index int) {
	var toClear keylist[T]
	*s, toClear = (*s)[:index], (*s)[index:]
	var zero T
	for i := 0; i < len(toClear); i++ {
		toClear[i] = zero
	}
}

// find returns the index where the given key should be inserted into this
// list. 'found' is true if the key already exists in the list at the given
// index. When the key is absent, the returned index is also the index of the
// child subtree whose range brackets the key.
func (s keylist[T]) find(key T, cmp Compare[T]) (index int, found bool) {
	i := sort.Search(len(s), func(i int) bool {
		return cmp(key, s[i]) < 0
	})
	if 0 < i && cmp(key, s[i-1]) == 0 {
		return i - 1, true
	}
	return i, false
}

// childlist stores the child nodes of a node.
type childlist[T any] []*node[T]

// insertAt inserts a child at the given index, pushing all subsequent
// children forward.
func (c *childlist[T]) insertAt(index int, n *node[T]) {
	*c = append(*c, nil)
	if index < len(*c) {
		copy((*c)[index+1:], (*c)[index:])
	}
	(*c)[index] = n
}

// removeAt removes the child at the given index, pulling all subsequent
// children back.
func (c *childlist[T]) removeAt(index int) *node[T] {
	n := (*c)[index]
	copy((*c)[index:], (*c)[index+1:])
	(*c)[len(*c)-1] = nil
	*c = (*c)[:len(*c)-1]
	return n
}

// pop removes and returns the last child in the list.
func (c *childlist[T]) pop() (out *node[T]) {
	index := len(*c) - 1
	out = (*c)[index]
	(*c)[index] = nil
	*c = (*c)[:index]
	return
}

// truncate truncates this instance at index so that it contains only the
// first index children. index must be less than or equal to length.
func (c *childlist[T]) truncate(index int) {
	var toClear childlist[T]
	*c, toClear = (*c)[:index], (*c)[index:]
	for i := 0; i < len(toClear); i++ {
		toClear[i] = nil
	}
}

// node is a node of an M-ary search tree.
//
// It must at all times (observable between public calls) maintain the
// invariant that either
//   - len(children) == 0 (leaf), or
//   - len(children) == len(keys) + 1 (internal node).
type node[T any] struct {
	keys     keylist[T]
	children childlist[T]
}

func (n *node[T]) isLeaf() bool {
	return len(n.children) == 0
}

// clone copies the subtree rooted at n. The copy shares no storage with the
// original.
func (n *node[T]) clone() *node[T] {
	c := &node[T]{keys: make(keylist[T], len(n.keys))}
	copy(c.keys, n.keys)
	if !n.isLeaf() {
		c.children = make(childlist[T], len(n.children))
		for i, child := range n.children {
			c.children[i] = child.clone()
		}
	}
	return c
}

// middleKey returns the key at position len(keys)/2. The root may hold more
// than one key; by convention the container reports its middle key.
func (n *node[T]) middleKey() T {
	return n.keys[len(n.keys)/2]
}

// search descends the subtree rooted at n looking for an exact match.
func (n *node[T]) search(key T, cmp Compare[T]) (T, bool) {
	i, found := n.keys.find(key, cmp)
	if found {
		return n.keys[i], true
	}
	if n.isLeaf() {
		var zero T
		return zero, false
	}
	return n.children[i].search(key, cmp)
}

// minKey returns the first key of the leftmost leaf in the subtree.
func (n *node[T]) minKey() T {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n.keys[0]
}

// maxKey returns the last key of the rightmost leaf in the subtree.
func (n *node[T]) maxKey() T {
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1]
}
