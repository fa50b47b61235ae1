// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bagindex

import (
	"errors"
	"fmt"
)

// ErrEmptyBag is returned when an index is built over a Bag with zero
// rows.
var ErrEmptyBag = errors.New("bagindex: bag has no points")

// ErrDimMismatch is returned when a query Bag's column count does not
// match the indexed Bag's.
var ErrDimMismatch = errors.New("bagindex: query dimension does not match index dimension")

// ErrTooFewPoints is returned when k exceeds the number of points
// available to search.
var ErrTooFewPoints = errors.New("bagindex: k exceeds the number of indexed points")

// Bag is a row-major matrix of float32 samples: Rows points, each with
// Cols coordinates. It is the unit of input for the k-NN layer and is
// treated as immutable once built into an Index.
type Bag struct {
	Data []float32 // len(Data) == Rows*Cols, row i at Data[i*Cols:(i+1)*Cols]
	Rows int
	Cols int
}

// NewBag builds a Bag from row-major data. It panics if len(data) !=
// rows*cols, since that indicates a caller bug rather than a
// recoverable runtime condition.
func NewBag(data []float32, rows, cols int) Bag {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("bagindex: data has length %d, want %d (%d x %d)", len(data), rows*cols, rows, cols))
	}
	return Bag{Data: data, Rows: rows, Cols: cols}
}

// Row returns the i-th point as a slice aliasing the Bag's backing
// array.
func (b Bag) Row(i int) []float32 {
	return b.Data[i*b.Cols : (i+1)*b.Cols]
}

func sqDist(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
