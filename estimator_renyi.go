// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import "math"

// RenyiAlpha estimates the Renyi-alpha divergence
// log(integral p^alpha q^(1-alpha)) / (alpha-1), built on top of
// AlphaDivergence.
type RenyiAlpha struct {
	Alpha float64
	UB    float64
}

// NewRenyiAlpha returns a RenyiAlpha estimator. alpha must not equal 1.
func NewRenyiAlpha(alpha, ub float64) (RenyiAlpha, error) {
	if alpha == 1 {
		return RenyiAlpha{}, invalidDomain("alpha of 1.0 is not useful for RenyiAlpha")
	}
	if err := validateUB(ub); err != nil {
		return RenyiAlpha{}, err
	}
	return RenyiAlpha{Alpha: alpha, UB: ub}, nil
}

func (e RenyiAlpha) ub() float64 {
	if e.UB == 0 {
		return defaultUB
	}
	return e.UB
}

func (e RenyiAlpha) Name() string     { return "Renyi-alpha divergence" }
func (e RenyiAlpha) Clone() Estimator { return e }

func (e RenyiAlpha) Apply(rhoX, nuX, rhoY, nuY []float64, dim, k int) (float64, error) {
	if e.Alpha == 1 {
		return 0, invalidDomain("alpha of 1.0 is not useful for RenyiAlpha")
	}
	a, err := (AlphaDivergence{Alpha: e.Alpha, UB: e.ub()}).Apply(rhoX, nuX, rhoY, nuY, dim, k)
	if err != nil {
		return 0, err
	}
	if a <= 0 {
		return 0, nil
	}
	v := math.Log(a) / (e.Alpha - 1)
	if v < 0 {
		return 0, nil
	}
	return v, nil
}
