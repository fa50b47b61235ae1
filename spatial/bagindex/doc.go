// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bagindex builds per-bag spatial indices and answers k-th
// nearest-neighbor distance queries against them. A Bag is a row-major
// matrix of float32 samples; an Index is built once over a Bag and
// then queried, possibly concurrently, for the Euclidean distance from
// each row of a query Bag to its k-th nearest neighbor in the indexed
// Bag.
//
// Two Variants are provided: KDTree, a single-tree index that is exact
// when search is unbounded, and Linear, an always-exact brute-force
// scan used as a reference implementation and for high-dimensional
// data where tree pruning rarely helps.
package bagindex // import "github.com/djsutherland/np-divs/spatial/bagindex"
