/*
Package mtree implements balanced M-ary search trees (B-trees) as an
in-memory ordered container.

M-ary Search Trees

B-trees are parameterized by an integer M, the order of the tree, which
dictates the maximum number of children per node (and thus M-1, the maximum
number of keys per node). They generalize binary search trees and are
guaranteed to stay balanced: every leaf lives at the same depth at all times.
Key rotations, node splits and node merges are used to maintain this balance
while keys are added and removed.

From Wikipedia:
In computer science, a B-tree is a self-balancing tree data structure that
maintains sorted data and allows searches, sequential access, insertions,
and deletions in logarithmic time. The B-tree generalizes the binary search
tree, allowing for nodes with more than two children. […] B-trees are well
suited for storage systems that read and write relatively large blocks of
data.

This package targets the in-memory case: a flat, wide tree has friendlier
cache behaviour than an equivalent binary tree, and rebalancing touches only
a handful of nodes per operation. Nodes keep their keys in small ordered
sequences; local maintenance is plain array shifting, the global shape is
maintained by the recursive descent with backtracking rebalance.

What this package is not: a paged on-disk structure, a concurrent container,
or a persistence layer. Trees own their node graph exclusively and are meant
for single-writer use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package mtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
