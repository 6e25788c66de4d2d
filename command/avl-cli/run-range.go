// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type rangeResult struct {
	Min    int   `json:"min"`
	Max    int   `json:"max"`
	Values []int `json:"values"`
}

func runRange(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count, err := getCount(c)
	if nil != err {
		return err
	}

	tree, err := descendingTree(m, count)
	if nil != err {
		return err
	}

	min := c.Int("min")
	max := c.Int("max")
	values := tree.Range(min, max)

	if m.json {
		return printJson(m.w, rangeResult{
			Min:    min,
			Max:    max,
			Values: values,
		})
	}

	printValues(m, values)
	return nil
}
