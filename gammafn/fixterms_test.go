// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gammafn

import (
	"math"
	"testing"
)

func TestFixTermsDropsNaN(t *testing.T) {
	v := []float64{1, math.NaN(), 2, math.NaN(), 3}
	got := FixTerms(v, 0.99)
	for _, x := range got {
		if math.IsNaN(x) {
			t.Fatalf("FixTerms left a NaN in %v", got)
		}
	}
	if len(got) != 3 {
		t.Errorf("FixTerms: len = %d, want 3", len(got))
	}
}

func TestFixTermsClipsUpperTail(t *testing.T) {
	v := make([]float64, 100)
	for i := range v {
		v[i] = float64(i + 1) // 1..100
	}
	got := FixTerms(v, 0.9)
	max := got[0]
	for _, x := range got {
		if x > max {
			max = x
		}
	}
	if max > 91 {
		t.Errorf("FixTerms(ub=0.9): max = %v, expected clipping near the 90th percentile", max)
	}
	// The cutoff value itself should appear in the output.
	below := 0
	for _, x := range got {
		if x == max {
			below++
		}
	}
	if below == 0 {
		t.Errorf("FixTerms: cutoff value %v does not appear in the output", max)
	}
}

func TestFixTermsLeavesNegInfAlone(t *testing.T) {
	v := []float64{math.Inf(-1), 1, 2, 3, math.Inf(-1)}
	got := FixTerms(v, 0.99)
	negInfCount := 0
	for _, x := range got {
		if math.IsInf(x, -1) {
			negInfCount++
		}
	}
	if negInfCount != 2 {
		t.Errorf("FixTerms: %d -Inf entries survived, want 2", negInfCount)
	}
}

func TestFixTermsReplacesPositiveInf(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5, math.Inf(1)}
	got := FixTerms(append([]float64(nil), v...), 1.0)
	for _, x := range got {
		if math.IsInf(x, 1) {
			t.Errorf("FixTerms(ub=1): +Inf survived in %v", got)
		}
	}
}

func TestFixTermsIdempotent(t *testing.T) {
	base := []float64{1, 5, 2, math.Inf(1), 9, math.NaN(), -3, math.Inf(-1), 40}
	once := FixTerms(append([]float64(nil), base...), 0.98)
	onceCopy := append([]float64(nil), once...)
	twice := FixTerms(onceCopy, 0.98)

	if len(once) != len(twice) {
		t.Fatalf("idempotence: lengths differ: %d vs %d", len(once), len(twice))
	}
	sum1, sum2 := 0.0, 0.0
	// FixTerms reorders its input, so compare order-independent sums of
	// the finite values rather than position by position.
	for i := range once {
		if !math.IsInf(once[i], 0) {
			sum1 += once[i]
		}
		if !math.IsInf(twice[i], 0) {
			sum2 += twice[i]
		}
	}
	if math.Abs(sum1-sum2) > 1e-9 {
		t.Errorf("FixTerms applied twice changed the values: %v vs %v", once, twice)
	}
}
