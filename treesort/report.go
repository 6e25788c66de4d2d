// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treesort

import (
	"encoding/json"
	"fmt"
	"io"
)

type textReporter struct {
	w io.Writer
}

// NewTextReporter - one line per round in milliseconds
func NewTextReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

func (t *textReporter) Report(r Result) error {
	_, err := fmt.Fprintf(t.w, "round: %d  n: %d  height: %d  insertion: %d  tolist: %d  combined: %d  slice: %d\n",
		r.Round,
		r.Count,
		r.Height,
		r.Insert.Milliseconds(),
		r.List.Milliseconds(),
		r.Combined().Milliseconds(),
		r.SliceSort.Milliseconds(),
	)
	return err
}

type jsonReporter struct {
	encoder *json.Encoder
}

// NewJSONReporter - one JSON object per round, durations in nanoseconds
func NewJSONReporter(w io.Writer) Reporter {
	return &jsonReporter{encoder: json.NewEncoder(w)}
}

func (j *jsonReporter) Report(r Result) error {
	return j.encoder.Encode(r)
}
