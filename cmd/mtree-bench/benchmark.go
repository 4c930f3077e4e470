package main

import (
	"encoding/csv"
	"runtime"
	"strconv"
)

// benchResult is one CSV row of measurements.
type benchResult struct {
	Structure string
	Order     int
	Operation string
	LatencyNs int64
	AllocMB   uint64
	Objects   uint64
}

type memoryStats struct {
	AllocMB      uint64
	TotalAllocMB uint64
	HeapObjects  uint64
}

// sampleMem forces a GC so we measure live data, not garbage.
func sampleMem() memoryStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return memoryStats{
		AllocMB:      m.Alloc / 1024 / 1024,
		TotalAllocMB: m.TotalAlloc / 1024 / 1024,
		HeapObjects:  m.HeapObjects,
	}
}

func record(w *csv.Writer, res benchResult) {
	w.Write([]string{
		res.Structure,
		strconv.Itoa(res.Order),
		res.Operation,
		strconv.FormatInt(res.LatencyNs, 10),
		strconv.FormatUint(res.AllocMB, 10),
		strconv.FormatUint(res.Objects, 10),
	})
}
