package stats

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mtree"
)

// Report holds aggregate shape and occupancy figures for one tree, computed
// in a single level-order walk.
type Report struct {
	Order    int // M, maximum children per node
	Keys     int
	Height   int
	Nodes    int
	Leaves   int
	Internal int
	// KeysPerLevel and NodesPerLevel are indexed by depth, root = 0.
	KeysPerLevel  []int
	NodesPerLevel []int
	// MinOccupancy and MaxOccupancy are the extreme key counts observed in
	// non-root nodes. Both are 0 for trees of a single node.
	MinOccupancy int
	MaxOccupancy int
}

// Collect walks the tree and gathers a Report. An empty tree yields a zero
// Report (with the order filled in).
func Collect[T any](tree *mtree.Tree[T]) Report {
	report := Report{
		Order:  tree.Order(),
		Keys:   tree.Len(),
		Height: tree.Height(),
	}
	tree.EachNode(func(depth int, keys []T, nchildren int) bool {
		report.Nodes++
		if nchildren == 0 {
			report.Leaves++
		} else {
			report.Internal++
		}
		for len(report.KeysPerLevel) <= depth {
			report.KeysPerLevel = append(report.KeysPerLevel, 0)
			report.NodesPerLevel = append(report.NodesPerLevel, 0)
		}
		report.KeysPerLevel[depth] += len(keys)
		report.NodesPerLevel[depth]++
		if depth > 0 {
			if report.MinOccupancy == 0 || len(keys) < report.MinOccupancy {
				report.MinOccupancy = len(keys)
			}
			if len(keys) > report.MaxOccupancy {
				report.MaxOccupancy = len(keys)
			}
		}
		return true
	})
	tracer().Debugf("stats: %d nodes, %d keys, height %d", report.Nodes, report.Keys, report.Height)
	return report
}

// FillRatio is the fraction of used key slots, keys / (nodes * (M-1)).
// It is 0 for an empty tree.
func (r Report) FillRatio() float64 {
	if r.Nodes == 0 {
		return 0
	}
	return float64(r.Keys) / float64(r.Nodes*(r.Order-1))
}

// String formats the report for diagnostics, one level per line.
func (r Report) String() string {
	var bf strings.Builder
	fmt.Fprintf(&bf, "mtree(M=%d): %d keys in %d nodes, height %d, fill %.2f",
		r.Order, r.Keys, r.Nodes, r.Height, r.FillRatio())
	for depth, n := range r.NodesPerLevel {
		fmt.Fprintf(&bf, "\n  level %d: %d nodes, %d keys", depth, n, r.KeysPerLevel[depth])
	}
	return bf.String()
}
