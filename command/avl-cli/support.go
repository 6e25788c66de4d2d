// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// names accepted by --order, in the sequence "all" prints them
var orderNames = []string{"preorder", "inorder", "postorder", "reverse"}

func getCount(c *cli.Context) (int, error) {
	count := c.Int("count")
	if count < 0 {
		return 0, fault.ErrInvalidCount
	}
	return count, nil
}

// tree holding count, count-1, … 1 inserted in that order
func descendingTree(m *metadata, count int) (*avl.Tree[int], error) {
	tree := avl.New[int]()
	for i := count; i > 0; i -= 1 {
		tree.Insert(i)
	}
	if err := tree.Check(); nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "inserted: %d  height: %d\n", tree.Count(), tree.Height())
	}
	return tree, nil
}

func traversalByName(tree *avl.Tree[int], name string) (avl.Traversal[int], error) {
	switch name {
	case "preorder":
		return tree.Preorder(), nil
	case "inorder":
		return tree.Inorder(), nil
	case "postorder":
		return tree.Postorder(), nil
	case "reverse":
		return tree.Reverse(), nil
	default:
		return nil, fault.ErrInvalidOrder
	}
}

// space separated values, as the demonstrations print them
func printValues(m *metadata, values []int) {
	for _, v := range values {
		fmt.Fprintf(m.w, "%d ", v)
	}
	fmt.Fprintf(m.w, "\n")
}
