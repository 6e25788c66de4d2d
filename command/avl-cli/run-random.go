// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

func runRandom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count, err := getCount(c)
	if nil != err {
		return err
	}

	seed := c.Int64("seed")
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	if m.verbose {
		fmt.Fprintf(m.e, "seed: %d\n", seed)
	}

	// distinct values, the dot output names nodes by value
	r := rand.New(rand.NewSource(seed))
	tree := avl.New[int]()
	for _, v := range r.Perm(count) {
		tree.Insert(v + 1)
	}
	if err := tree.Check(); nil != err {
		return err
	}

	return tree.PrintDot(m.w)
}
