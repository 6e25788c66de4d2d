// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - small demonstrations of the avl package
//
// traverse, range, find and print build a tree from the integers
// count, count-1, … 1 inserted in that order; random inserts a shuffled
// 1…count and writes the Graphviz description of the result.
package main
