package mtree

import (
	"math/rand"
	"testing"
)

// The minimum key count per non-root node is ceil(M/2) - 1; the single
// formula must cover both parities of M.
func TestMinKeysBothParities(t *testing.T) {
	expected := map[int]int{3: 1, 4: 1, 5: 2, 6: 2, 7: 3, 8: 3, 12: 5}
	for order, want := range expected {
		tree, _ := New[int](order)
		if got := tree.minKeys(); got != want {
			t.Errorf("order %d: minKeys %d, want %d", order, got, want)
		}
		if got := tree.maxKeys(); got != order-1 {
			t.Errorf("order %d: maxKeys %d, want %d", order, got, order-1)
		}
	}
}

// Rotation eligibility must agree with the occupancy formula: a sibling at
// exactly minKeys cannot give a key away, one above can.
func TestRotationEligibilityMatchesBounds(t *testing.T) {
	for _, order := range []int{3, 4, 5, 6} {
		tree, _ := New[int](order)
		atMin := &node[int]{keys: make(keylist[int], tree.minKeys())}
		above := &node[int]{keys: make(keylist[int], tree.minKeys()+1)}
		full := &node[int]{keys: make(keylist[int], tree.maxKeys())}
		parent := &node[int]{
			keys:     make(keylist[int], 2),
			children: childlist[int]{above, atMin, full},
		}
		if !tree.canRotateRight(parent, 0) {
			t.Errorf("order %d: node above minimum must be able to rotate", order)
		}
		if tree.canRotateRight(parent, 1) {
			t.Errorf("order %d: node at minimum must not rotate into a full sibling", order)
		}
		if tree.canRotateLeft(parent, 1) {
			t.Errorf("order %d: node at minimum must not give a key away", order)
		}
		if !tree.canRotateLeft(parent, 2) {
			t.Errorf("order %d: full node must be able to rotate into sibling with room", order)
		}
	}
}

// The validator itself must flag corrupted trees.
func TestCheckDetectsCorruption(t *testing.T) {
	tree, _ := New[int](3)
	for _, k := range []int{9, 3, 4} {
		tree.Add(k)
	}
	tree.root.keys[0] = 100 // violates separator ordering
	if err := tree.Check(); err == nil {
		t.Error("expected Check to flag separator violation")
	}
	tree, _ = New[int](3)
	tree.Add(1)
	tree.count = 5
	if err := tree.Check(); err == nil {
		t.Error("expected Check to flag count mismatch")
	}
	tree, _ = New[int](3)
	tree.Add(1)
	tree.height = 3
	if err := tree.Check(); err == nil {
		t.Error("expected Check to flag height mismatch")
	}
}

// Level-order snapshots between mutations must show only balanced nodes:
// the transient overflow/underflow states never escape a public call.
func TestNoTransientStateEscapes(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree, _ := New[int](5)
	for i := 0; i < 400; i++ {
		k := rng.Intn(200)
		if rng.Intn(3) == 0 {
			tree.Remove(k)
		} else {
			tree.Add(k)
		}
		if tree.IsEmpty() {
			continue
		}
		tree.EachNode(func(depth int, keys []int, nchildren int) bool {
			if len(keys) > tree.maxKeys() {
				t.Fatalf("step %d: overflowing node with %d keys observed", i, len(keys))
			}
			if depth > 0 && len(keys) < tree.minKeys() {
				t.Fatalf("step %d: underflowing node with %d keys observed", i, len(keys))
			}
			if nchildren != 0 && nchildren != len(keys)+1 {
				t.Fatalf("step %d: node with %d keys has %d children", i, len(keys), nchildren)
			}
			return true
		})
	}
}
