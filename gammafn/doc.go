// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gammafn provides the numeric primitives the divergence
// estimators are built from: the Gamma and log-Gamma functions, a
// quantile routine, and a tail-clipping helper for stabilizing
// Monte-Carlo averages of nearest-neighbor statistics.
package gammafn // import "github.com/djsutherland/np-divs/gammafn"
