// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Find - find a node holding a value equal to the one given
//
// with duplicates the first one met on the path from the root is
// returned
func (tree *Tree[T]) Find(value T) (*Node[T], error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	p := find(value, tree.root, tree.compare)
	if nil == p {
		return nil, fault.ErrNotFound
	}
	return p, nil
}

func find[T any](value T, p *Node[T], compare CompareFunc[T]) *Node[T] {
	for nil != p {
		c := compare(p.value, value)
		switch {
		case c > 0: // p.value > value
			p = p.left
		case c < 0: // p.value < value
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Search - find a specific value and its zero based index in sort
// order, returns nil and -1 if it is not present
func (tree *Tree[T]) Search(value T) (*Node[T], int) {
	return search(value, tree.root, 0, tree.compare)
}

func search[T any](value T, tree *Node[T], index int, compare CompareFunc[T]) (*Node[T], int) {
	if nil == tree {
		return nil, -1
	}

	c := compare(tree.value, value)
	switch {
	case c > 0: // tree.value > value
		return search(value, tree.left, index, compare)
	case c < 0: // tree.value < value
		return search(value, tree.right, index+tree.left.getSize()+1, compare)
	default:
		return tree, index + tree.left.getSize()
	}
}
