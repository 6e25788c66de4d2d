// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Traversal - walks the sub-tree below a node passing each value to
// yield; the walk stops as soon as yield returns false and the
// traversal then also returns false
type Traversal[T any] func(p *Node[T], yield func(T) bool) bool

// Preorder - node, then left sub-tree, then right sub-tree
func (tree *Tree[T]) Preorder() Traversal[T] {
	return preorder[T]
}

// Inorder - left sub-tree, node, right sub-tree; ascending order
func (tree *Tree[T]) Inorder() Traversal[T] {
	return inorder[T]
}

// Postorder - left sub-tree, right sub-tree, then node
func (tree *Tree[T]) Postorder() Traversal[T] {
	return postorder[T]
}

// Reverse - right sub-tree, node, left sub-tree; descending order
func (tree *Tree[T]) Reverse() Traversal[T] {
	return reverse[T]
}

func preorder[T any](p *Node[T], yield func(T) bool) bool {
	if nil == p {
		return true
	}
	return yield(p.value) && preorder(p.left, yield) && preorder(p.right, yield)
}

func inorder[T any](p *Node[T], yield func(T) bool) bool {
	if nil == p {
		return true
	}
	return inorder(p.left, yield) && yield(p.value) && inorder(p.right, yield)
}

func postorder[T any](p *Node[T], yield func(T) bool) bool {
	if nil == p {
		return true
	}
	return postorder(p.left, yield) && postorder(p.right, yield) && yield(p.value)
}

func reverse[T any](p *Node[T], yield func(T) bool) bool {
	if nil == p {
		return true
	}
	return reverse(p.right, yield) && yield(p.value) && reverse(p.left, yield)
}

// ToList - all values in preorder
func (tree *Tree[T]) ToList() []T {
	return tree.ToListBy(tree.Preorder())
}

// ToListBy - all values in the order of the given traversal
func (tree *Tree[T]) ToListBy(traversal Traversal[T]) []T {
	list := make([]T, 0, tree.count)
	traversal(tree.root, func(value T) bool {
		list = append(list, value)
		return true
	})
	return list
}

// Map - apply action to every value in traversal order
func (tree *Tree[T]) Map(traversal Traversal[T], action func(T)) {
	traversal(tree.root, func(value T) bool {
		action(value)
		return true
	})
}

// All - lazy sequence of the values in traversal order, each range
// over it starts a fresh walk
func (tree *Tree[T]) All(traversal Traversal[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		traversal(tree.root, yield)
	}
}
