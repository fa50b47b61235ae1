// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import (
	"math"

	"github.com/djsutherland/np-divs/gammafn"
)

// AlphaDivergence estimates integral p^alpha q^(1-alpha) from
// kth-nearest-neighbor statistics. Alpha must not equal 1. rho_y and
// nu_y are unused beyond rho_y's length, kept only for interface
// uniformity with the other estimators.
type AlphaDivergence struct {
	Alpha float64
	UB    float64
}

// NewAlphaDivergence returns an AlphaDivergence estimator. alpha must
// not equal 1.
func NewAlphaDivergence(alpha, ub float64) (AlphaDivergence, error) {
	if alpha == 1 {
		return AlphaDivergence{}, invalidDomain("alpha of 1.0 is not useful for AlphaDivergence")
	}
	if err := validateUB(ub); err != nil {
		return AlphaDivergence{}, err
	}
	return AlphaDivergence{Alpha: alpha, UB: ub}, nil
}

func (e AlphaDivergence) ub() float64 {
	if e.UB == 0 {
		return defaultUB
	}
	return e.UB
}

func (e AlphaDivergence) Name() string     { return "alpha-divergence" }
func (e AlphaDivergence) Clone() Estimator { return e }

func (e AlphaDivergence) Apply(rhoX, nuX, rhoY, _ []float64, dim, k int) (float64, error) {
	if e.Alpha == 1 {
		return 0, invalidDomain("alpha of 1.0 is not useful for AlphaDivergence")
	}
	if k < 1 {
		return 0, invalidDomain("AlphaDivergence requires k >= 1, got %d", k)
	}
	if err := validateUB(e.ub()); err != nil {
		return 0, err
	}

	alpha := e.Alpha
	n := len(rhoX)
	r := make([]float64, n)
	for i := range r {
		r[i] = rhoX[i] / nuX[i]
	}
	fixed := gammafn.FixTerms(r, e.ub())
	powered := pow(fixed, float64(dim)*(1-alpha))
	mean := meanOf(powered)

	lgK, err := gammafn.LogGamma(float64(k))
	if err != nil {
		return 0, overflow("AlphaDivergence: log_gamma(k): %v", err)
	}
	lgKMinusA, err := gammafn.LogGamma(float64(k) + 1 - alpha)
	if err != nil {
		return 0, overflow("AlphaDivergence: log_gamma(k+1-alpha): %v", err)
	}
	lgKPlusA, err := gammafn.LogGamma(float64(k) + alpha - 1)
	if err != nil {
		return 0, overflow("AlphaDivergence: log_gamma(k+alpha-1): %v", err)
	}
	coeff := math.Exp(2*lgK - lgKMinusA - lgKPlusA)

	m := float64(len(rhoY))
	if m == 0 {
		return 0, invalidDomain("AlphaDivergence: target bag has no points")
	}
	scale := math.Pow((float64(n)-1)/m, 1-alpha)

	return mean * coeff * scale, nil
}
