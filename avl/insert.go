// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// the count always increases; a value equal to one already present
// is added as a further node to the right of the existing one
func (tree *Tree[T]) Insert(value T) {
	tree.count += 1
	if nil == tree.root {
		tree.root = newNode(value, nil)
		return
	}

	p := tree.root
	for {
		if tree.compare(value, p.value) < 0 {
			if nil == p.left {
				p.left = newNode(value, p)
				break
			}
			p = p.left
		} else {
			if nil == p.right {
				p.right = newNode(value, p)
				break
			}
			p = p.right
		}
	}
	tree.root = rebalanceInsert(p)
}

// internal: walk from the parent of a new leaf to the root repairing
// the cached values; returns the top-most node, i.e. the root
//
// only the lowest unbalanced ancestor needs a restructure, after that
// the sub-tree has its original height again
func rebalanceInsert[T any](p *Node[T]) *Node[T] {
	top := p
	restructured := false
	for nil != p {
		if !restructured && p.isUnbalanced() {
			p = restructure(p)
			restructured = true
		}
		p.update()
		top = p
		p = p.up
	}
	return top
}
