package mtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// TreeToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func TreeToDot[T any](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if tree == nil || tree.root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	queue := []*node[T]{tree.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		ID := ids.alloc(n)
		labels := make([]string, len(n.keys))
		for i, key := range n.keys {
			labels[i] = fmt.Sprintf("%v", key)
		}
		label := strings.Join(labels, " | ")
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n.isLeaf()))
		for _, child := range n.children {
			childID := ids.alloc(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, childID)
			queue = append(queue, child)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=record"
	}
	return s
}
