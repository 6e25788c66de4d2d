// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree with parent pointers
// and cached sub-tree heights
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Insertion attaches a new leaf and then walks up the parent
// pointers repairing heights; the lowest unbalanced ancestor is fixed
// by a single trinode restructure (one of the four LL, RR, LR, RL
// shapes).
//
// Values that compare equal are all kept, the later insert is placed
// to the right of the earlier one, so the tree behaves as a multiset.
// Nodes never change their value and are only relinked, so a node
// returned by Find remains valid while it stays in the tree.
package avl
