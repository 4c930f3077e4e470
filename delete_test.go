package mtree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildFanTree creates the 3-tree with level-order [12 30 | 10 11 | 20 | 40],
// the shape produced by inserting [12, 20, 10, 30, 11, 40].
func buildFanTree(t *testing.T) *Tree[int] {
	t.Helper()
	tree, _ := New[int](3)
	for _, k := range []int{12, 20, 10, 30, 11, 40} {
		tree.Add(k)
	}
	assertLevelOrder(t, tree, []int{12, 30, 10, 11, 20, 40})
	return tree
}

func TestRemoveFromLeafWithoutUnderflow(t *testing.T) {
	tree := buildFanTree(t)
	out, ok := tree.Remove(11)
	if !ok || out != 11 {
		t.Errorf("expected to remove 11, got (%d, %v)", out, ok)
	}
	if tree.Len() != 5 {
		t.Errorf("unexpected size %d", tree.Len())
	}
	assertLevelOrder(t, tree, []int{12, 30, 10, 20, 40})
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

// Removing an internal key overwrites it with its inorder successor and
// removes the successor from the right-bracketing subtree; the resulting
// leaf underflow is resolved by borrowing from the left sibling.
func TestRemoveInternalKeyBorrowsFromLeftSibling(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := buildFanTree(t)
	out, ok := tree.Remove(12)
	if !ok || out != 12 {
		t.Errorf("expected to remove 12, got (%d, %v)", out, ok)
	}
	assertLevelOrder(t, tree, []int{11, 30, 10, 20, 40})
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

// When no sibling has spare capacity the underflowing child merges with a
// sibling and the separating parent key.
func TestRemoveInternalKeyMergesSiblings(t *testing.T) {
	tree := buildFanTree(t)
	tree.Remove(12)
	out, ok := tree.Remove(30)
	if !ok || out != 30 {
		t.Errorf("expected to remove 30, got (%d, %v)", out, ok)
	}
	assertLevelOrder(t, tree, []int{11, 10, 20, 40})
	if tree.Height() != 2 {
		t.Errorf("unexpected height %d", tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

// A merge that drains the root's last key collapses the root into its single
// remaining child and decrements the height.
func TestRootCollapseDecrementsHeight(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := buildFanTree(t)
	tree.Remove(12)
	tree.Remove(30)
	tree.Remove(11)
	assertLevelOrder(t, tree, []int{20, 10, 40})
	out, ok := tree.Remove(10)
	if !ok || out != 10 {
		t.Errorf("expected to remove 10, got (%d, %v)", out, ok)
	}
	if tree.Height() != 1 {
		t.Errorf("expected root collapse to height 1, got %d", tree.Height())
	}
	assertLevelOrder(t, tree, []int{20, 40})
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveAbsentKey(t *testing.T) {
	tree, _ := New[int](3)
	if _, ok := tree.Remove(1); ok {
		t.Error("removal from empty tree must report absence")
	}
	for _, k := range []int{5, 2, 8} {
		tree.Add(k)
	}
	out, ok := tree.Remove(3)
	if ok || out != 0 {
		t.Errorf("absent key: got (%d, %v)", out, ok)
	}
	if tree.Len() != 3 {
		t.Errorf("size changed on absent removal: %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveLastKeyEmptiesTree(t *testing.T) {
	tree, _ := New[int](3)
	tree.Add(1)
	out, ok := tree.Remove(1)
	if !ok || out != 1 {
		t.Errorf("expected to remove 1, got (%d, %v)", out, ok)
	}
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("tree not empty after last removal: len=%d height=%d", tree.Len(), tree.Height())
	}
	if _, err := tree.Min(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
}

// add(e) followed by remove(e) hands e back and leaves the level-order key
// sequence untouched.
func TestAddRemoveRoundTrip(t *testing.T) {
	tree, _ := New[int](4)
	for _, k := range []int{10, 4, 17, 52, 8, 31} {
		tree.Add(k)
	}
	before := collectLevelOrder(t, tree)
	tree.Add(99)
	out, ok := tree.Remove(99)
	if !ok || out != 99 {
		t.Errorf("round trip lost the key: (%d, %v)", out, ok)
	}
	assertLevelOrder(t, tree, before)
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

// Mixed insert/remove churn across both parities of M, with the validator
// run after every operation and sizes mirrored against a reference set.
func TestChurnKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, order := range []int{3, 4, 5, 6} {
		tree, _ := New[int](order)
		ref := make(map[int]bool)
		for i := 0; i < 2000; i++ {
			k := rng.Intn(300)
			if rng.Intn(2) == 0 {
				tree.Add(k)
				ref[k] = true
			} else {
				_, ok := tree.Remove(k)
				if ok != ref[k] {
					t.Fatalf("order %d, step %d: removal of %d reported %v, reference %v",
						order, i, k, ok, ref[k])
				}
				delete(ref, k)
			}
			if tree.Len() != len(ref) {
				t.Fatalf("order %d, step %d: size %d, reference %d", order, i, tree.Len(), len(ref))
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("order %d, step %d: %v", order, i, err)
			}
		}
		for k := range ref {
			if _, ok := tree.Remove(k); !ok {
				t.Fatalf("order %d: draining lost key %d", order, k)
			}
		}
		if !tree.IsEmpty() {
			t.Fatalf("order %d: tree not empty after drain", order)
		}
	}
}

// Stress: insert and remove a large batch of pseudo-random keys (fixed
// seed); the tree must end up empty with no unexpected errors.
func TestStressInsertRemoveMillion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large stress test in short mode")
	}
	rng := rand.New(rand.NewSource(1234))
	tree, _ := New[int](DefaultOrder)
	keys := make([]int, 0, 1<<20)
	seen := make(map[int]bool, 1<<20)
	for len(keys) < 1<<20 {
		k := rng.Int()
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	for i, k := range keys {
		tree.Add(k)
		if i%65536 == 0 {
			if err := tree.Check(); err != nil {
				t.Fatalf("insert phase, step %d: %v", i, err)
			}
		}
	}
	if tree.Len() != 1<<20 {
		t.Fatalf("expected %d keys, got %d", 1<<20, tree.Len())
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		if _, ok := tree.Remove(k); !ok {
			t.Fatalf("remove phase lost key %d", k)
		}
		if i%65536 == 0 {
			if err := tree.Check(); err != nil {
				t.Fatalf("remove phase, step %d: %v", i, err)
			}
		}
	}
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("tree not empty after stress: len=%d height=%d", tree.Len(), tree.Height())
	}
}

func collectLevelOrder(t *testing.T, tree *Tree[int]) []int {
	t.Helper()
	seq, err := tree.LevelOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out []int
	for key := range seq {
		out = append(out, key)
	}
	return out
}
