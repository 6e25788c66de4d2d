// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTraverse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count, err := getCount(c)
	if nil != err {
		return err
	}

	names := []string{c.String("order")}
	if "all" == names[0] {
		names = orderNames
	}

	tree, err := descendingTree(m, count)
	if nil != err {
		return err
	}

	result := make(map[string][]int)
	for _, name := range names {
		traversal, err := traversalByName(tree, name)
		if nil != err {
			return err
		}
		result[name] = tree.ToListBy(traversal)
	}

	if m.json {
		return printJson(m.w, result)
	}

	for _, name := range names {
		if m.verbose {
			fmt.Fprintf(m.w, "%s: ", name)
		}
		printValues(m, result[name])
	}
	return nil
}
