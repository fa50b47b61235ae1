// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bagindex

import (
	"math"
	"testing"
)

func twoDFixture() (Bag, Bag) {
	data := []float32{
		-2.999, -5.672,
		-9.051, -1.417,
		2.066, -0.519,
		-0.859, -8.354,
		2.159, -0.470,
		-5.365, -0.469,
		9.829, 2.735,
		-7.356, -9.513,
		-2.687, 2.312,
		-9.168, -2.966,
	}
	query := []float32{
		-2.920, -9.522,
		2.363, 6.885,
		0.963, 4.673,
		6.671, 0.481,
	}
	return NewBag(data, 10, 2), NewBag(query, 4, 2)
}

func TestLinearQueryKth2D(t *testing.T) {
	bag, query := twoDFixture()
	idx := newLinearIndex(bag)
	got, err := idx.QueryKth(query, 2, Exhaustive)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{3.8511, 7.3594, 5.2820, 4.6111}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 0.01 {
			t.Errorf("row %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestKDTreeMatchesLinear2D(t *testing.T) {
	bag, query := twoDFixture()
	linear := newLinearIndex(bag)
	tree := newKDTree(bag)

	wantDists, err := linear.QueryKth(query, 2, Exhaustive)
	if err != nil {
		t.Fatal(err)
	}
	gotDists, err := tree.QueryKth(query, 2, Exhaustive)
	if err != nil {
		t.Fatal(err)
	}
	for i := range wantDists {
		if math.Abs(gotDists[i]-wantDists[i]) > 1e-9 {
			t.Errorf("row %d: kdtree %v != linear %v", i, gotDists[i], wantDists[i])
		}
	}
}

func TestBuildEmptyBag(t *testing.T) {
	_, err := Build(NewBag(nil, 0, 2), Linear)
	if err == nil {
		t.Errorf("Build on empty bag: expected an error, got nil")
	}
}

func TestQueryKthTooFewPoints(t *testing.T) {
	bag := NewBag([]float32{0, 0, 1, 1}, 2, 2)
	idx, err := Build(bag, Linear)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := idx.QueryKth(bag, 5, Exhaustive); err == nil {
		t.Errorf("QueryKth with k > points: expected an error, got nil")
	}
}

func TestQueryKthSelfIncludesZero(t *testing.T) {
	// Querying a bag against its own index with k=1 must return 0 for
	// every row (the point finds itself as nearest neighbor).
	bag, _ := twoDFixture()
	idx, err := Build(bag, KDTree)
	if err != nil {
		t.Fatal(err)
	}
	got, err := idx.QueryKth(bag, 1, Exhaustive)
	if err != nil {
		t.Fatal(err)
	}
	for i, d := range got {
		if d != 0 {
			t.Errorf("row %d: self-query k=1 distance = %v, want 0", i, d)
		}
	}
}

func TestParseVariant(t *testing.T) {
	cases := map[string]Variant{
		"kdtree": KDTree, "kd": KDTree,
		"linear": Linear, "brute": Linear,
	}
	for s, want := range cases {
		got, err := ParseVariant(s)
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("ParseVariant(%q) = %v, want %v", s, got, want)
		}
	}
	if _, err := ParseVariant("nonsense"); err == nil {
		t.Errorf("ParseVariant(nonsense): expected an error, got nil")
	}
}

func TestBoundedSearchIsApproximateButFinite(t *testing.T) {
	bag, query := twoDFixture()
	tree := newKDTree(bag)
	got, err := tree.QueryKth(query, 2, SearchParams{MaxChecks: 4})
	if err != nil {
		t.Fatal(err)
	}
	linear := newLinearIndex(bag)
	exact, err := linear.QueryKth(query, 2, Exhaustive)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if got[i] < exact[i]-1e-9 {
			t.Errorf("row %d: bounded search found a distance smaller than exact: %v < %v", i, got[i], exact[i])
		}
	}
}
