// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type findResult struct {
	Value  int  `json:"value"`
	Index  int  `json:"index"`
	Depth  uint `json:"depth"`
	Height int  `json:"height"`
	Parent *int `json:"parent"`
}

func runFind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count, err := getCount(c)
	if nil != err {
		return err
	}

	tree, err := descendingTree(m, count)
	if nil != err {
		return err
	}

	value := c.Int("value")
	node, err := tree.Find(value)
	if nil != err {
		return err
	}
	_, index := tree.Search(value)

	result := findResult{
		Value:  node.Value(),
		Index:  index,
		Depth:  node.Depth(),
		Height: node.Height(),
	}
	if up := node.Parent(); nil != up {
		v := up.Value()
		result.Parent = &v
	}

	if m.json {
		return printJson(m.w, result)
	}

	fmt.Fprintf(m.w, "value: %d  index: %d  depth: %d  height: %d", result.Value, result.Index, result.Depth, result.Height)
	if nil != result.Parent {
		fmt.Fprintf(m.w, "  parent: %d", *result.Parent)
	}
	fmt.Fprintf(m.w, "\n")
	return nil
}
