// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import "github.com/djsutherland/np-divs/spatial/bagindex"

// Bag is a row-major matrix of float32 samples drawn i.i.d. from one
// distribution: Rows points, each with Cols coordinates. All bags
// passed to a single Self or Cross call must share the same Cols.
type Bag = bagindex.Bag

// NewBag builds a Bag from row-major data. It panics if len(data) !=
// rows*cols.
func NewBag(data []float32, rows, cols int) Bag {
	return bagindex.NewBag(data, rows, cols)
}
