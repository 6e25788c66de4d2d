// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - index to specific item, zero is the lowest value
func (tree *Tree[T]) Get(index int) (*Node[T], error) {
	if index < 0 || index >= tree.count {
		return nil, fault.ErrIndexOutOfRange
	}
	return get(index, tree.root), nil
}

func get[T any](index int, tree *Node[T]) *Node[T] {
	if nil == tree {
		return nil
	}

	nl := tree.left.getSize()

	if index < nl {
		return get(index, tree.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, tree.right)
	}
	return tree
}
