// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import (
	"math"

	"github.com/djsutherland/np-divs/gammafn"
)

// defaultUB is the tail-clipping upper-bound quantile used when a
// constructor is not given one explicitly.
const defaultUB = 0.99

// Estimator is a stateless, cloneable divergence functional. Apply
// consumes the four k-NN distance vectors for a bag pair (rho_x, nu_x
// for the source bag; rho_y, nu_y for the target bag, some of which
// individual estimators ignore), the shared dimension, and k, and
// returns a scalar estimate of the divergence between the two bags'
// underlying distributions.
type Estimator interface {
	Name() string
	Apply(rhoX, nuX, rhoY, nuY []float64, dim, k int) (float64, error)
	Clone() Estimator
}

func validateUB(ub float64) error {
	if ub <= 0 || ub > 1 {
		return invalidDomain("ub must be in (0, 1], got %v", ub)
	}
	return nil
}

func meanOf(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// logBallVolume returns log(V_d), the log-volume of the unit
// d-dimensional Euclidean ball (V_d = pi^(d/2) / Gamma(d/2+1)),
// computed via LogGamma so that it never overflows even for very
// large d (spec's Gamma(d/2+1) would overflow float64 past d ~ 340).
func logBallVolume(dim int) (float64, error) {
	lg, err := gammafn.LogGamma(float64(dim)/2 + 1)
	if err != nil {
		return 0, overflow("computing the unit %d-ball volume: %v", dim, err)
	}
	return float64(dim)/2*math.Log(math.Pi) - lg, nil
}

func pow(v []float64, exp float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Pow(x, exp)
	}
	return out
}

func scaled(v []float64, exp, scale float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Pow(x, exp) * scale
	}
	return out
}
