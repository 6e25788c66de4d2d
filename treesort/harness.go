// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treesort

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Result - timings of one round
type Result struct {
	Round     int           `json:"round"`
	Count     int           `json:"count"`
	Height    int           `json:"height"`
	Insert    time.Duration `json:"insert"`
	List      time.Duration `json:"list"`
	SliceSort time.Duration `json:"sliceSort"`
}

// Combined - total time taken by the tree sort
func (r Result) Combined() time.Duration {
	return r.Insert + r.List
}

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/avltree/treesort Reporter

// Reporter - receives the result of each round
type Reporter interface {
	Report(Result) error
}

// Harness - settings for a benchmark run
type Harness struct {
	count    int
	rounds   int
	seed     int64
	reporter Reporter
	log      *logger.L
}

// New - create a harness sorting count values for a number of rounds
func New(count int, rounds int, seed int64, reporter Reporter, log *logger.L) (*Harness, error) {
	if count < 0 || rounds < 1 {
		return nil, fault.ErrInvalidCount
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Harness{
		count:    count,
		rounds:   rounds,
		seed:     seed,
		reporter: reporter,
		log:      log,
	}, nil
}

// Run - execute all rounds, stopping at the first failure
func (h *Harness) Run() error {
	r := rand.New(rand.NewSource(h.seed))

	for round := 1; round <= h.rounds; round += 1 {
		h.log.Debugf("round: %d  generating %d random elements", round, h.count)
		values := make([]int, h.count)
		for i := range values {
			values[i] = r.Int()
		}

		result, err := h.sortOnce(round, values)
		if nil != err {
			h.log.Errorf("round: %d  error: %s", round, err)
			return err
		}
		h.log.Infof("round: %d  insert: %s  list: %s  combined: %s  slice: %s", round, result.Insert, result.List, result.Combined(), result.SliceSort)

		if err := h.reporter.Report(result); nil != err {
			return err
		}
	}
	return nil
}

func (h *Harness) sortOnce(round int, values []int) (Result, error) {
	tree := avl.New[int]()

	start := time.Now()
	for _, v := range values {
		tree.Insert(v)
	}
	inserted := time.Now()
	sorted := tree.ToListBy(tree.Inorder())
	listed := time.Now()

	expected := slices.Clone(values)
	sliceStart := time.Now()
	slices.Sort(expected)
	sliceSort := time.Since(sliceStart)

	if !slices.Equal(expected, sorted) {
		return Result{}, fault.ErrSortMismatch
	}
	if err := tree.Check(); nil != err {
		return Result{}, fmt.Errorf("round: %d: %w", round, err)
	}

	return Result{
		Round:     round,
		Count:     len(values),
		Height:    tree.Height(),
		Insert:    inserted.Sub(start),
		List:      listed.Sub(inserted),
		SliceSort: sliceSort,
	}, nil
}
