// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gammafn

import "math"

// FixTerms stabilizes v for downstream averaging: it drops NaN entries,
// then replaces every remaining element greater than a cutoff with that
// cutoff. The cutoff is the ub-quantile of v when ub < 1 (falling back
// to the largest non-infinite element if that quantile is itself
// infinite or NaN), or the largest non-infinite element when ub >= 1.
// Values of -Inf are left untouched.
//
// FixTerms reorders and may shrink v (it is returned, aliasing the
// input's backing array) — callers that need the original order or
// length preserved must copy first. Applying FixTerms twice is
// idempotent: the second call finds everything already <= its cutoff.
func FixTerms(v []float64, ub float64) []float64 {
	n := 0
	for _, x := range v {
		if !math.IsNaN(x) {
			v[n] = x
			n++
		}
	}
	v = v[:n]
	if len(v) == 0 {
		return v
	}

	var cutoff float64
	findNonInfMax := true
	if ub < 1 {
		k := int(float64(len(v)) * ub)
		if k >= len(v) {
			k = len(v) - 1
		}
		partialSelect(v, k)
		cutoff = v[k]
		findNonInfMax = math.IsInf(cutoff, 0)
	}
	if findNonInfMax {
		cutoff = noninfMax(v)
	}

	for i, x := range v {
		if x > cutoff {
			v[i] = cutoff
		}
	}
	return v
}

// noninfMax returns the largest finite element of v, ignoring +Inf and
// -Inf entries. If v holds no finite element it returns +Inf, so that
// nothing is clipped.
func noninfMax(v []float64) float64 {
	cur := math.Inf(1)
	found := false
	for _, x := range v {
		if !math.IsInf(x, 0) && (!found || x > cur) {
			cur = x
			found = true
		}
	}
	return cur
}
