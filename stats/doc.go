/*
Package stats provides shape and occupancy statistics for M-ary search trees.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package stats

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mtree'
func tracer() tracing.Trace {
	return tracing.Select("mtree")
}
