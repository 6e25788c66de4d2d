// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	up     *Node[T] // points to parent node
	value  T        // never changed after insert
	height int      // 1 for a leaf
	size   int      // number of nodes in this sub-tree
}

// allocate a new leaf below parent (nil for the root)
func newNode[T any](value T, parent *Node[T]) *Node[T] {
	return &Node[T]{
		up:     parent,
		value:  value,
		height: 1,
		size:   1,
	}
}

// height of a possibly absent sub-tree
func (p *Node[T]) getHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// size of a possibly absent sub-tree
func (p *Node[T]) getSize() int {
	if nil == p {
		return 0
	}
	return p.size
}

// recompute cached values from the children
func (p *Node[T]) update() {
	p.height = 1 + max(p.left.getHeight(), p.right.getHeight())
	p.size = 1 + p.left.getSize() + p.right.getSize()
}

// left height minus right height
func (p *Node[T]) balance() int {
	return p.left.getHeight() - p.right.getHeight()
}

func (p *Node[T]) isUnbalanced() bool {
	b := p.balance()
	return b > 1 || b < -1
}
