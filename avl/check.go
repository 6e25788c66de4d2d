// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	return nil == checkUp(tree.root, nil)
}

// Check - verify every structural property of the tree: parent
// pointers, cached heights and sizes, balance, ordering and count
func (tree *Tree[T]) Check() error {
	if err := checkUp(tree.root, nil); nil != err {
		return err
	}
	if err := checkCached(tree.root); nil != err {
		return err
	}
	if n := tree.root.getSize(); n != tree.count {
		return fmt.Errorf("%w: reachable: %d  count: %d", fault.ErrCountMismatch, n, tree.count)
	}

	// in-order values must never decrease
	var err error
	var previous *T
	inorder(tree.root, func(value T) bool {
		if nil != previous && tree.compare(*previous, value) > 0 {
			err = fmt.Errorf("%w: %v before %v", fault.ErrOrderViolation, *previous, value)
			return false
		}
		previous = &value
		return true
	})
	return err
}

// internal: parent pointer consistency checker
func checkUp[T any](p *Node[T], up *Node[T]) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fmt.Errorf("%w at node: %v", fault.ErrParentMismatch, p.value)
	}
	if err := checkUp(p.left, p); nil != err {
		return err
	}
	return checkUp(p.right, p)
}

// internal: heights, sizes and balance, bottom up
func checkCached[T any](p *Node[T]) error {
	if nil == p {
		return nil
	}
	if err := checkCached(p.left); nil != err {
		return err
	}
	if err := checkCached(p.right); nil != err {
		return err
	}
	if h := 1 + max(p.left.getHeight(), p.right.getHeight()); h != p.height {
		return fmt.Errorf("%w at node: %v  actual: %d  expected: %d", fault.ErrHeightMismatch, p.value, p.height, h)
	}
	if s := 1 + p.left.getSize() + p.right.getSize(); s != p.size {
		return fmt.Errorf("%w at node: %v  actual: %d  expected: %d", fault.ErrSizeMismatch, p.value, p.size, s)
	}
	if p.isUnbalanced() {
		return fmt.Errorf("%w at node: %v  balance: %+d", fault.ErrUnbalanced, p.value, p.balance())
	}
	return nil
}
