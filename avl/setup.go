// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// CompareFunc - three way comparison returning negative when a < b,
// zero when a == b and positive when a > b
//
// it must be a strict total order that does not change while the tree
// holds any values
type CompareFunc[T any] func(a, b T) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *Node[T]
	count   int
	compare CompareFunc[T]
}

// New - create an initially empty tree using the natural ordering
func New[T cmp.Ordered]() *Tree[T] {
	return NewWithCompare(cmp.Compare[T])
}

// NewWithCompare - create an initially empty tree ordered by compare
func NewWithCompare[T any](compare CompareFunc[T]) *Tree[T] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[T]) Height() int {
	return tree.root.getHeight()
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - return the left child, nil if none
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - return the right child, nil if none
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	return p.up
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[T]) Height() int {
	return p.height
}

// Size - number of nodes in the sub-tree rooted at this node
func (p *Node[T]) Size() int {
	return p.size
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
