// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package npdivs estimates nonparametric divergences between bags of
// i.i.d. samples using k-nearest-neighbor statistics.
//
// A Bag is a matrix of float32 points drawn from one distribution.
// Self computes the pairwise divergence matrix within a collection of
// bags; Cross computes it between two collections. Both take a list
// of Estimator values (L2, AlphaDivergence, BC, Hellinger, RenyiAlpha,
// Linear), which can also be built from a textual specification with
// EstimatorFromSpec.
//
// The underlying k-NN queries are served by the spatial/bagindex
// package; the Gamma, log-Gamma, quantile, and tail-clipping
// primitives the estimators build on live in gammafn.
package npdivs // import "github.com/djsutherland/np-divs"
