// Command mtree-bench compares M-ary search trees of varying order against
// google/btree on insert, lookup and mixed workloads. Results go to a CSV
// file for offline analysis and to a PNG chart of insert latency per order.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	gbtree "github.com/google/btree"
	"github.com/npillmayer/mtree"
	"github.com/npillmayer/mtree/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var (
	scale   = flag.Int("scale", 1000000, "number of keys per suite")
	csvPath = flag.String("csv", "mtree_bench.csv", "CSV output file")
	pngPath = flag.String("png", "mtree_bench.png", "chart output file (empty to skip)")
	seed    = flag.Int64("seed", 42, "random seed for workloads")
)

func main() {
	flag.Parse()
	f, err := os.Create(*csvPath)
	if err != nil {
		log.Fatalf("cannot create %s: %v", *csvPath, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"Structure", "Order", "TestType", "LatencyNs", "MemMB", "HeapObjects"})

	orders := []int{3, 5, 9, 17, 33}

	insertLatency := map[string]plotter.XYs{}
	for _, m := range orders {
		mix := newMtreeIndex(m)
		lat := runSuite(w, mix, "mtree", m, *scale)
		insertLatency["mtree"] = append(insertLatency["mtree"], plotter.XY{X: float64(m), Y: float64(lat)})
		fmt.Println(stats.Collect(mix.tree))
		lat = runSuite(w, newGoogleIndex(m), "google/btree", m, *scale)
		insertLatency["google/btree"] = append(insertLatency["google/btree"], plotter.XY{X: float64(m), Y: float64(lat)})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("cannot write %s: %v", *csvPath, err)
	}
	if *pngPath != "" {
		if err := plotLatency(insertLatency, *pngPath); err != nil {
			log.Fatalf("cannot plot chart: %v", err)
		}
	}
	fmt.Println("Benchmark complete. Data ready for analysis.")
}

// runSuite loads n keys into idx, samples the memory footprint and runs the
// mixed workloads. It returns the per-key insert latency in nanoseconds.
func runSuite(w *csv.Writer, idx keyIndex, name string, order, n int) int64 {
	fmt.Printf("Testing %s (order %d)\n", name, order)
	rng := rand.New(rand.NewSource(*seed))

	start := time.Now()
	for k := 0; k < n; k++ {
		idx.Insert(k)
	}
	insertLatency := time.Since(start).Nanoseconds() / int64(n)

	stats := sampleMem()
	record(w, benchResult{
		Structure: name,
		Order:     order,
		Operation: "Footprint_SteadyState",
		LatencyNs: insertLatency,
		AllocMB:   stats.AllocMB,
		Objects:   stats.HeapObjects,
	})

	start = time.Now()
	executeWorkload(idx, readHeavy, n/2, rng)
	record(w, benchResult{name, order, "Workload_ReadHeavy", time.Since(start).Nanoseconds() / int64(n/2), sampleMem().AllocMB, 0})

	start = time.Now()
	executeWorkload(idx, writeHeavy, n/2, rng)
	record(w, benchResult{name, order, "Workload_WriteHeavy", time.Since(start).Nanoseconds() / int64(n/2), sampleMem().AllocMB, 0})

	start = time.Now()
	executeWorkload(idx, churn, n/2, rng)
	record(w, benchResult{name, order, "Workload_Churn", time.Since(start).Nanoseconds() / int64(n/2), sampleMem().AllocMB, 0})

	return insertLatency
}

func plotLatency(series map[string]plotter.XYs, name string) error {
	p := plot.New()
	p.Title.Text = "Insert latency by tree order"
	p.X.Label.Text = "order (max children per node)"
	p.Y.Label.Text = "ns per insert"
	err := plotutil.AddLinePoints(p,
		"mtree", series["mtree"],
		"google/btree", series["google/btree"])
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, name)
}

// --- Index adapters --------------------------------------------------------

type mtreeIndex struct {
	tree *mtree.Tree[int]
}

func newMtreeIndex(order int) *mtreeIndex {
	tree, err := mtree.New[int](order)
	if err != nil {
		log.Fatalf("cannot create tree of order %d: %v", order, err)
	}
	return &mtreeIndex{tree: tree}
}

func (ix *mtreeIndex) Insert(k int)      { ix.tree.Add(k) }
func (ix *mtreeIndex) Lookup(k int) bool { return ix.tree.Contains(k) }
func (ix *mtreeIndex) Len() int          { return ix.tree.Len() }

func (ix *mtreeIndex) Delete(k int) bool {
	_, ok := ix.tree.Remove(k)
	return ok
}

type googleIndex struct {
	tree *gbtree.BTreeG[int]
}

func newGoogleIndex(order int) *googleIndex {
	// degree d holds up to 2d-1 keys per node, closest match to order-1
	degree := (order + 1) / 2
	if degree < 2 {
		degree = 2
	}
	return &googleIndex{tree: gbtree.NewOrderedG[int](degree)}
}

func (ix *googleIndex) Insert(k int) { ix.tree.ReplaceOrInsert(k) }
func (ix *googleIndex) Lookup(k int) bool {
	_, ok := ix.tree.Get(k)
	return ok
}
func (ix *googleIndex) Delete(k int) bool {
	_, ok := ix.tree.Delete(k)
	return ok
}
func (ix *googleIndex) Len() int { return ix.tree.Len() }
