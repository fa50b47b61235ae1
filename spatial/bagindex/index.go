// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bagindex

import (
	"fmt"
	"math"
)

// Variant selects which spatial index Build constructs.
type Variant int

const (
	// KDTree builds a single-tree kd-tree index: exact when search is
	// unbounded, approximate (but fast) when leaf checks are capped.
	KDTree Variant = iota
	// Linear builds an always-exact brute-force scanner.
	Linear
)

func (v Variant) String() string {
	switch v {
	case KDTree:
		return "kdtree"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("bagindex.Variant(%d)", int(v))
	}
}

// ParseVariant parses the textual index-variant spellings used by the
// external CLI collaborator: "kdtree"/"kd" and "linear"/"brute".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "kdtree", "kd":
		return KDTree, nil
	case "linear", "brute":
		return Linear, nil
	default:
		return 0, fmt.Errorf("bagindex: unknown index variant %q", s)
	}
}

// SearchParams configures how a query traverses an Index.
type SearchParams struct {
	// MaxChecks bounds the number of candidate points examined per
	// query row. -1 means exhaustive (exact) search. Linear indices
	// ignore this field, since every query is already exhaustive.
	MaxChecks int
}

// Exhaustive is the SearchParams value requesting exact search.
var Exhaustive = SearchParams{MaxChecks: -1}

// Index answers k-th nearest-neighbor distance queries against one
// built Bag. Implementations are safe for concurrent QueryKth calls
// once Build has returned.
type Index interface {
	// QueryKth returns, for every row of query, the Euclidean
	// (not squared) distance to its k-th nearest neighbor in the
	// indexed Bag.
	QueryKth(query Bag, k int, sp SearchParams) ([]float64, error)
}

// Build constructs an Index over bag using the requested Variant. It
// fails with an error wrapping ErrEmptyBag if bag has no points.
func Build(bag Bag, variant Variant) (Index, error) {
	if bag.Rows == 0 {
		return nil, fmt.Errorf("bagindex: Build: %w", ErrEmptyBag)
	}
	switch variant {
	case Linear:
		return newLinearIndex(bag), nil
	case KDTree:
		return newKDTree(bag), nil
	default:
		return nil, fmt.Errorf("bagindex: Build: %w", fmt.Errorf("unknown variant %v", variant))
	}
}

// queryKth is the common per-row query loop shared by both index
// implementations: for each query row, delegate to search to collect
// candidate squared distances, then take the square root of the k-th
// smallest.
func queryKth(query Bag, indexed Bag, k int, search func(q []float32, t *kthTracker)) ([]float64, error) {
	if k < 1 {
		return nil, fmt.Errorf("bagindex: QueryKth: k=%d must be >= 1", k)
	}
	if k > indexed.Rows {
		return nil, fmt.Errorf("bagindex: QueryKth: %w", ErrTooFewPoints)
	}
	if query.Cols != indexed.Cols {
		return nil, fmt.Errorf("bagindex: QueryKth: %w", ErrDimMismatch)
	}

	out := make([]float64, query.Rows)
	for i := 0; i < query.Rows; i++ {
		t := newKthTracker(k)
		search(query.Row(i), t)
		if !t.full() {
			return nil, fmt.Errorf("bagindex: QueryKth: search budget too small to find %d neighbors for row %d", k, i)
		}
		out[i] = math.Sqrt(t.worst())
	}
	return out, nil
}
