// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"bufio"
	"fmt"
	"io"
)

// PrintDot - write the tree as a Graphviz digraph
//
// nodes are named by their value so values should be distinct; leaves
// are drawn as rectangles and each node is labelled with its height.
// When a node has only one child the missing side gets an invisible
// placeholder so that left and right stay distinguishable
func (tree *Tree[T]) PrintDot(w io.Writer) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "digraph G {\n  forcelabels=true;\n")
	if nil != tree.root {
		empties := 0
		dotSubTree(b, tree.root, &empties)
	}
	fmt.Fprintf(b, "}\n")
	return b.Flush()
}

func dotSubTree[T any](w io.Writer, p *Node[T], empties *int) {
	if nil == p.left && nil == p.right {
		fmt.Fprintf(w, "  \"%v\" [shape=rectangle,xlabel=%d];\n", p.value, p.height)
		return
	}
	fmt.Fprintf(w, "  \"%v\" [xlabel=%d];\n", p.value, p.height)

	if nil != p.left {
		fmt.Fprintf(w, "  \"%v\" -> \"%v\"\n", p.value, p.left.value)
		dotSubTree(w, p.left, empties)
	} else {
		dotEmpty(w, p, empties)
	}

	if nil != p.right {
		fmt.Fprintf(w, "  \"%v\" -> \"%v\"\n", p.value, p.right.value)
		dotSubTree(w, p.right, empties)
	} else {
		dotEmpty(w, p, empties)
	}
}

func dotEmpty[T any](w io.Writer, p *Node[T], empties *int) {
	fmt.Fprintf(w, "  empty%d [label=\"\", style=invis];\n", *empties)
	fmt.Fprintf(w, "  \"%v\" -> empty%d\n", p.value, *empties)
	*empties += 1
}
