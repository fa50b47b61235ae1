// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import (
	"math"

	"github.com/djsutherland/np-divs/gammafn"
)

// L2 estimates the squared-then-rooted L2 divergence
// sqrt(integral (p-q)^2) between two bags' distributions, from
// kth-nearest-neighbor statistics.
type L2 struct {
	// UB is the tail-clipping quantile; zero means defaultUB.
	UB float64
}

// NewL2 returns an L2 estimator with the given tail-clipping quantile.
func NewL2(ub float64) (L2, error) {
	if err := validateUB(ub); err != nil {
		return L2{}, err
	}
	return L2{UB: ub}, nil
}

func (e L2) ub() float64 {
	if e.UB == 0 {
		return defaultUB
	}
	return e.UB
}

func (e L2) Name() string     { return "L2" }
func (e L2) Clone() Estimator { return e }

// Apply estimates L2 by splitting sqrt(integral(p-q)^2) into
//
//	integral p^2 - integral pq - integral qp + integral q^2
//
// and estimating each term from nearest-neighbor statistics. When the
// two bags are the same size the four terms are combined point-by-point
// before clipping (a minor optimization, and the form the original
// implementation assumes); otherwise each term is clipped separately
// and their means are combined, since they then have different
// lengths and cannot be combined element-wise.
func (e L2) Apply(rhoX, nuX, rhoY, nuY []float64, dim, k int) (float64, error) {
	if k < 2 {
		return 0, invalidDomain("L2 requires k >= 2, got %d", k)
	}
	if err := validateUB(e.ub()); err != nil {
		return 0, err
	}
	n := len(rhoX)
	m := len(rhoY)
	if n < 2 || m < 2 {
		return 0, invalidDomain("L2 requires at least 2 points per bag, got %d and %d", n, m)
	}

	logVd, err := logBallVolume(dim)
	if err != nil {
		return 0, err
	}
	con := float64(k-1) * math.Exp(-logVd)
	ub := e.ub()
	d := -float64(dim)

	var combined float64
	if n == m {
		terms := make([]float64, n)
		for i := range terms {
			t1x := math.Pow(rhoX[i], d) / float64(m-1)
			t3x := math.Pow(nuX[i], d) / float64(n)
			t3y := math.Pow(nuY[i], d) / float64(m)
			t1y := math.Pow(rhoY[i], d) / float64(n-1)
			terms[i] = (t1x - t3x - t3y + t1y) * con
		}
		combined = meanOf(gammafn.FixTerms(terms, ub))
	} else {
		t1x := meanOf(gammafn.FixTerms(scaled(rhoX, d, 1/float64(m-1)), ub))
		t3x := meanOf(gammafn.FixTerms(scaled(nuX, d, 1/float64(n)), ub))
		t3y := meanOf(gammafn.FixTerms(scaled(nuY, d, 1/float64(m)), ub))
		t1y := meanOf(gammafn.FixTerms(scaled(rhoY, d, 1/float64(n-1)), ub))
		combined = (t1x - t3x - t3y + t1y) * con
	}

	if combined > 0 {
		return math.Sqrt(combined), nil
	}
	return 0, nil
}
