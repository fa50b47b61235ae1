// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

// BC estimates the Bhattacharyya coefficient integral sqrt(p q), the
// special case of AlphaDivergence at alpha = 1/2.
type BC struct {
	UB float64
}

// NewBC returns a BC estimator.
func NewBC(ub float64) (BC, error) {
	if err := validateUB(ub); err != nil {
		return BC{}, err
	}
	return BC{UB: ub}, nil
}

func (e BC) ub() float64 {
	if e.UB == 0 {
		return defaultUB
	}
	return e.UB
}

func (e BC) Name() string     { return "Bhattacharyya coefficient" }
func (e BC) Clone() Estimator { return e }

func (e BC) Apply(rhoX, nuX, rhoY, nuY []float64, dim, k int) (float64, error) {
	return AlphaDivergence{Alpha: 0.5, UB: e.ub()}.Apply(rhoX, nuX, rhoY, nuY, dim, k)
}
