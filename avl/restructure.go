// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the four trinode shapes, named by the path z → y → x
type shape int

const (
	leftLeft   shape = iota
	rightRight shape = iota
	leftRight  shape = iota
	rightLeft  shape = iota
)

func (s shape) String() string {
	switch s {
	case leftLeft:
		return "LL"
	case rightRight:
		return "RR"
	case leftRight:
		return "LR"
	case rightLeft:
		return "RL"
	default:
		return "??"
	}
}

// classify the path from z through its child y to the grandchild x
func classify[T any](z *Node[T], y *Node[T], x *Node[T]) shape {
	yLeft := y == z.left
	xLeft := x == y.left
	switch {
	case yLeft && xLeft:
		return leftLeft
	case !yLeft && !xLeft:
		return rightRight
	case yLeft:
		return leftRight
	default:
		return rightLeft
	}
}

// taller child of y, on a tie take the child on the same side as y
// is of z (a tie is only possible after a delete)
func tallerGrandchild[T any](z *Node[T], y *Node[T]) *Node[T] {
	lh := y.left.getHeight()
	rh := y.right.getHeight()
	switch {
	case lh > rh:
		return y.left
	case rh > lh:
		return y.right
	case y == z.left:
		return y.left
	default:
		return y.right
	}
}

// restructure - trinode restructuring at the unbalanced node z
//
// the new local root b takes z's place under z's old parent (if any)
// with a and c as its children; a, c and b have their cached values
// recomputed.  Returns b so that the caller's upward walk can resume
// from b.up
func restructure[T any](z *Node[T]) *Node[T] {
	y := z.right
	if z.balance() > 0 {
		y = z.left
	}
	x := tallerGrandchild(z, y)

	// a < b < c in order; t1 and t2 are the sub-trees that change
	// parents, t1 becomes a.right and t2 becomes c.left
	var a, b, c, t1, t2 *Node[T]
	switch classify(z, y, x) {
	case leftLeft:
		a, b, c = x, y, z
		t1, t2 = a.right, b.right
	case rightRight:
		a, b, c = z, y, x
		t1, t2 = b.left, c.left
	case leftRight:
		a, b, c = y, x, z
		t1, t2 = b.left, b.right
	case rightLeft:
		a, b, c = z, x, y
		t1, t2 = b.left, b.right
	}

	up := z.up
	if nil != up {
		if z == up.left {
			up.left = b
		} else {
			up.right = b
		}
	}
	b.up = up

	b.left = a
	a.up = b
	b.right = c
	c.up = b

	a.right = t1
	if nil != t1 {
		t1.up = a
	}
	c.left = t2
	if nil != t2 {
		t2.up = c
	}

	a.update()
	c.update()
	b.update()
	return b
}
