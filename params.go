// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import (
	"runtime"

	"github.com/djsutherland/np-divs/spatial/bagindex"
)

// IndexVariant selects which spatial index the driver builds per bag.
type IndexVariant = bagindex.Variant

const (
	KDTree      = bagindex.KDTree
	LinearIndex = bagindex.Linear
)

// ParseIndexVariant parses the textual index-variant spellings
// ("kdtree"/"kd", "linear"/"brute") used by the external CLI
// collaborator. It has no role in Self/Cross itself; it exists so that
// collaborator can turn a flag value into an IndexVariant without
// depending on the bagindex package directly.
func ParseIndexVariant(s string) (IndexVariant, error) {
	v, err := bagindex.ParseVariant(s)
	if err != nil {
		return 0, invalidDomain("%v", err)
	}
	return v, nil
}

// DivParams configures a Self or Cross call.
type DivParams struct {
	// K is the k of the k-nearest-neighbor searches. Must be >= 1 (>=
	// 2 for the L2 estimator).
	K int

	// IndexVariant selects the spatial index built per bag.
	IndexVariant IndexVariant
	// Search configures how that index is queried (e.g. a leaf-check
	// budget for approximate kd-tree search).
	Search bagindex.SearchParams

	// NumThreads is the number of worker goroutines. 0 means one per
	// hardware thread (minimum 1).
	NumThreads int

	// ShowProgress is the number of completed pair-jobs between
	// Progress callback invocations. 0 means never.
	ShowProgress int
	// Progress is invoked with the number of remaining pair-jobs. It
	// may be nil iff ShowProgress is 0.
	Progress ProgressFunc
}

// DefaultParams returns the configuration the original implementation
// defaulted to: k=3, an exact kd-tree index, one worker per hardware
// thread, and progress reported to stderr every 1000 pairs.
func DefaultParams() DivParams {
	return DivParams{
		K:            3,
		IndexVariant: KDTree,
		Search:       bagindex.Exhaustive,
		NumThreads:   0,
		ShowProgress: 1000,
		Progress:     DefaultProgress,
	}
}

func (p DivParams) numThreads() int {
	if p.NumThreads > 0 {
		return p.NumThreads
	}
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	return n
}

func (p DivParams) validate() error {
	if p.K < 1 {
		return invalidDomain("k must be >= 1, got %d", p.K)
	}
	if p.ShowProgress > 0 && p.Progress == nil {
		return invalidDomain("ShowProgress > 0 requires a non-nil Progress callback")
	}
	return nil
}
