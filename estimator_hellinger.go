// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import "math"

// Hellinger estimates the Hellinger distance sqrt(1 - BC) between two
// bags' distributions, built on top of the Bhattacharyya coefficient.
type Hellinger struct {
	UB float64
}

// NewHellinger returns a Hellinger estimator.
func NewHellinger(ub float64) (Hellinger, error) {
	if err := validateUB(ub); err != nil {
		return Hellinger{}, err
	}
	return Hellinger{UB: ub}, nil
}

func (e Hellinger) ub() float64 {
	if e.UB == 0 {
		return defaultUB
	}
	return e.UB
}

func (e Hellinger) Name() string     { return "Hellinger distance" }
func (e Hellinger) Clone() Estimator { return e }

func (e Hellinger) Apply(rhoX, nuX, rhoY, nuY []float64, dim, k int) (float64, error) {
	bc, err := (AlphaDivergence{Alpha: 0.5, UB: e.ub()}).Apply(rhoX, nuX, rhoY, nuY, dim, k)
	if err != nil {
		return 0, err
	}
	if bc < 1 {
		return math.Sqrt(1 - bc), nil
	}
	return 0, nil
}
