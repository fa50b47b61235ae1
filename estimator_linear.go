// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import (
	"math"

	"github.com/djsutherland/np-divs/gammafn"
)

// Linear estimates the "linear divergence" integral q p from
// kth-nearest-neighbor statistics. rho_x, rho_y, and nu_y beyond
// rho_y's length are unused, kept only for interface uniformity.
type Linear struct {
	UB float64
}

// NewLinear returns a Linear estimator.
func NewLinear(ub float64) (Linear, error) {
	if err := validateUB(ub); err != nil {
		return Linear{}, err
	}
	return Linear{UB: ub}, nil
}

func (e Linear) ub() float64 {
	if e.UB == 0 {
		return defaultUB
	}
	return e.UB
}

func (e Linear) Name() string     { return "Linear divergence" }
func (e Linear) Clone() Estimator { return e }

func (e Linear) Apply(_, nuX, rhoY, _ []float64, dim, k int) (float64, error) {
	if err := validateUB(e.ub()); err != nil {
		return 0, err
	}
	m := float64(len(rhoY))
	if m == 0 {
		return 0, invalidDomain("Linear: target bag has no points")
	}

	r := pow(nuX, -float64(dim))
	mean := meanOf(gammafn.FixTerms(r, e.ub()))

	logVd, err := logBallVolume(dim)
	if err != nil {
		return 0, err
	}
	con := float64(k-1) * math.Exp(-logVd) / m
	return mean * con, nil
}
