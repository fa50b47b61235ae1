// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import "testing"

func TestEstimatorFromSpecNames(t *testing.T) {
	cases := []struct {
		spec string
		want string
	}{
		{"l2", "L2"},
		{"l2:0.95", "L2"},
		{"bc", "Bhattacharyya coefficient"},
		{"hellinger", "Hellinger distance"},
		{"alpha", "alpha-divergence"},
		{"alpha:0.5", "alpha-divergence"},
		{"alpha:0.5:0.9", "alpha-divergence"},
		{"renyi", "Renyi-alpha divergence"},
		{"linear", "Linear divergence"},
		{"linear:0.9", "Linear divergence"},
	}
	for _, c := range cases {
		e, err := EstimatorFromSpec(c.spec)
		if err != nil {
			t.Errorf("EstimatorFromSpec(%q): unexpected error: %v", c.spec, err)
			continue
		}
		if got := e.Name(); got != c.want {
			t.Errorf("EstimatorFromSpec(%q).Name() = %q, want %q", c.spec, got, c.want)
		}
	}
}

func TestEstimatorFromSpecAlphaDefault(t *testing.T) {
	e, err := EstimatorFromSpec("alpha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, ok := e.(AlphaDivergence)
	if !ok {
		t.Fatalf("got %T, want AlphaDivergence", e)
	}
	if a.Alpha != 0.999 {
		t.Errorf("default alpha = %v, want 0.999", a.Alpha)
	}
	if a.ub() != defaultUB {
		t.Errorf("default ub = %v, want %v", a.ub(), defaultUB)
	}
}

func TestEstimatorFromSpecErrors(t *testing.T) {
	cases := []string{
		"",
		"nonsense",
		"alpha:1:2:3",
		"bc:0.1:0.2",
		"hellinger:0.1:0.2",
		"l2:0.1:0.2",
		"linear:0.1:0.2",
		"renyi:1:2:3",
		"alpha:notanumber",
		"alpha:1", // alpha == 1 is invalid for AlphaDivergence
		"l2:0",    // ub out of (0,1]
		"l2:1.5",
	}
	for _, spec := range cases {
		if _, err := EstimatorFromSpec(spec); err == nil {
			t.Errorf("EstimatorFromSpec(%q): expected an error, got nil", spec)
		}
	}
}
