// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - remove one node holding a value equal to the given one and
// return the stored value
//
// a node with two children is replaced by its in-order successor node
// (relinked, not copied) so other nodes keep their identity
func (tree *Tree[T]) Delete(value T) (T, error) {
	var zero T
	if nil == tree.root {
		return zero, fault.ErrEmptyTree
	}
	p := find(value, tree.root, tree.compare)
	if nil == p {
		return zero, fault.ErrNotFound
	}

	start := tree.unlink(p)
	tree.count -= 1
	if nil != start {
		tree.root = rebalanceDelete(start)
	}

	p.up = nil
	p.left = nil
	p.right = nil
	return p.value, nil
}

// internal: detach p from the tree and return the lowest node whose
// sub-tree lost a level, nil if p was the root and had no parent to
// repair
func (tree *Tree[T]) unlink(p *Node[T]) *Node[T] {
	if nil == p.left || nil == p.right {
		child := p.left
		if nil == child {
			child = p.right
		}
		tree.replace(p, child)
		return p.up
	}

	s := p.right.first()
	if s.up == p {
		// successor is the immediate right child
		s.left = p.left
		s.left.up = s
		tree.replace(p, s)
		return s
	}

	// successor is deeper: lift its right sub-tree into its slot
	sp := s.up
	sp.left = s.right
	if nil != s.right {
		s.right.up = sp
	}
	s.left = p.left
	s.left.up = s
	s.right = p.right
	s.right.up = s
	tree.replace(p, s)
	return sp
}

// internal: put n into old's position under old's parent
func (tree *Tree[T]) replace(old *Node[T], n *Node[T]) {
	parent := old.up
	switch {
	case nil == parent:
		tree.root = n
	case old == parent.left:
		parent.left = n
	default:
		parent.right = n
	}
	if nil != n {
		n.up = parent
	}
}

// internal: walk to the root restructuring every unbalanced node
//
// unlike insert a removal can need a rotation at each level
func rebalanceDelete[T any](p *Node[T]) *Node[T] {
	top := p
	for nil != p {
		if p.isUnbalanced() {
			p = restructure(p)
		}
		p.update()
		top = p
		p = p.up
	}
	return top
}
