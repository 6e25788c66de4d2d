// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treesort - compare sorting by AVL tree insertion against
// sorting a slice
//
// each round generates pseudo-random integers, inserts them into a
// tree, lists the tree in order and also sorts a copy with the
// standard library; both results must agree.  Timings of every round
// are passed to a Reporter.
package treesort
