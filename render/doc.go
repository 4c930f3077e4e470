/*
Package render draws M-ary search trees on terminals with fixed-width fonts.
Think of this package in terms of `fmt.Println` for trees.

Trees are rendered level by level, top to bottom, with every node printed
as a bracketed group of its keys. If stdout is an interactive terminal,
rendering adapts to the terminal's width and colorizes internal nodes and
leaves differently. Output to non-terminal writers is plain text, suitable
for logs and golden files.

This package does not constitute a graph layouter. Sibling relations are
conveyed by ordering and grouping only, not by edges. For a picture with
edges, export the tree to GraphViz DOT instead.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mtree'
func tracer() tracing.Trace {
	return tracing.Select("mtree")
}
