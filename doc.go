/*
Package segtree implements a fixed-capacity segment tree, generic over a
monoid.

Segment Trees

A segment tree stores a sequence of elements and answers aggregate queries
over arbitrary contiguous ranges of the sequence in logarithmic time, while
still allowing point updates in logarithmic time. The aggregate may be
anything that forms a monoid, i.e., a type with a neutral element and an
associative combine operation: sums, minima, maxima, concatenated strings,
bitmasks, or compound summaries such as byte/word/line counts over text
fragments.

	Operation   |  Segment tree  |  Plain slice
	------------+----------------+--------------
	Build       |   O(n)         |   O(n)
	Get         |   O(1)         |   O(1)
	Set         |   O(log n)     |   O(1)
	Query(l,r)  |   O(log n)     |   O(r-l)

The tree is laid out as a flat array holding a perfect binary tree: the root
lives at index 0 and the children of node ix live at 2·ix+1 and 2·ix+2. Leaf
capacity is rounded up to the next power of two; surplus leaves are padded
with the monoid's neutral element and never touched afterwards. This
arena-style layout avoids per-node allocations and pointer chasing.

The capacity of a tree is fixed at construction time. There is no resizing,
no element deletion (overwrite a position with the neutral element instead)
and no lazy propagation; only point updates are supported.

Trees provide no internal synchronization. A tree that is not being mutated
may be read from multiple goroutines; interleaving reads with writes requires
external locking.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

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
package segtree

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
