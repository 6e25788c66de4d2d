// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Range - values strictly between min and max in ascending order
//
// both bounds are excluded: a value v is returned only when
// compare(v, min) > 0 and compare(max, v) > 0
func (tree *Tree[T]) Range(min T, max T) []T {
	list := make([]T, 0)
	tree.MapRange(min, max, func(value T) {
		list = append(list, value)
	})
	return list
}

// MapRange - apply action, in ascending order, to each value strictly
// between min and max
func (tree *Tree[T]) MapRange(min T, max T, action func(T)) {
	tree.rangeQuery(min, max, func(value T) bool {
		action(value)
		return true
	})
}

// RangeSeq - lazy sequence of the values strictly between min and max
func (tree *Tree[T]) RangeSeq(min T, max T) iter.Seq[T] {
	return func(yield func(T) bool) {
		tree.rangeQuery(min, max, yield)
	}
}

func (tree *Tree[T]) rangeQuery(min T, max T, yield func(T) bool) {
	aboveMin := func(value T) bool {
		return tree.compare(value, min) > 0
	}
	belowMax := func(value T) bool {
		return tree.compare(max, value) > 0
	}
	rangeQuery(tree.root, yield, aboveMin, belowMax)
}

// internal: pruned in-order descent, the left sub-tree can only hold
// wanted values when this node is above min and the right sub-tree
// only when this node is below max
func rangeQuery[T any](p *Node[T], yield func(T) bool, aboveMin func(T) bool, belowMax func(T) bool) bool {
	if nil == p {
		return true
	}
	lower := aboveMin(p.value)
	upper := belowMax(p.value)

	if lower && !rangeQuery(p.left, yield, aboveMin, belowMax) {
		return false
	}
	if lower && upper && !yield(p.value) {
		return false
	}
	if upper {
		return rangeQuery(p.right, yield, aboveMin, belowMax)
	}
	return true
}
