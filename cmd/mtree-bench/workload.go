package main

import "math/rand"

// keyIndex is the surface both contestants are benchmarked through.
type keyIndex interface {
	Insert(k int)
	Lookup(k int) bool
	Delete(k int) bool
	Len() int
}

type workloadType string

const (
	readHeavy  workloadType = "ReadHeavy (90/10)"
	writeHeavy workloadType = "WriteHeavy (10/90)"
	churn      workloadType = "Churn (insert/delete)"
)

// executeWorkload runs a mixed distribution of ops against idx.
func executeWorkload(idx keyIndex, wType workloadType, ops int, rng *rand.Rand) {
	for i := 0; i < ops; i++ {
		choice := rng.Intn(100)
		key := rng.Intn(ops)

		switch wType {
		case readHeavy:
			if choice < 90 {
				idx.Lookup(key)
			} else {
				idx.Insert(key)
			}
		case writeHeavy:
			if choice < 10 {
				idx.Lookup(key)
			} else {
				idx.Insert(key)
			}
		case churn:
			if choice < 50 {
				idx.Insert(key)
			} else {
				idx.Delete(key)
			}
		}
	}
}
