// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gammafn

import (
	"math"
	"testing"
)

func TestQuantileBounds(t *testing.T) {
	v := []float64{5, 1, 4, 2, 3}
	min, err := Quantile(append([]float64(nil), v...), 0)
	if err != nil {
		t.Fatal(err)
	}
	if min != 1 {
		t.Errorf("Quantile(p=0) = %v, want 1", min)
	}
	max, err := Quantile(append([]float64(nil), v...), 1)
	if err != nil {
		t.Fatal(err)
	}
	if max != 5 {
		t.Errorf("Quantile(p=1) = %v, want 5", max)
	}
}

func TestQuantileMedian(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5}
	got, err := Quantile(v, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-3) > 1e-12 {
		t.Errorf("Quantile(median) = %v, want 3", got)
	}
}

func TestQuantileEmpty(t *testing.T) {
	if _, err := Quantile(nil, 0.5); err == nil {
		t.Errorf("Quantile(nil): expected an error, got nil")
	}
}

func TestQuantileOutOfRangeP(t *testing.T) {
	v := []float64{1, 2, 3}
	if _, err := Quantile(v, -0.1); err == nil {
		t.Errorf("Quantile(p<0): expected an error, got nil")
	}
	if _, err := Quantile(v, 1.1); err == nil {
		t.Errorf("Quantile(p>1): expected an error, got nil")
	}
}
