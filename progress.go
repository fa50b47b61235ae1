// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import (
	"log"
	"os"
)

// ProgressFunc is invoked after every DivParams.ShowProgress completed
// pair-jobs, under the lock that also guards the shared remaining
// counter, so a sequence of calls observes a strictly non-increasing
// value. Implementations must not block: the worker pool makes
// forward progress only as fast as this callback returns.
type ProgressFunc func(remaining int)

var progressLog = log.New(os.Stderr, "", 0)

// DefaultProgress is a ready-made ProgressFunc that writes "N pairs
// left to compute" to stderr, matching the behavior callers get when
// they don't supply their own callback.
func DefaultProgress(remaining int) {
	progressLog.Printf("%d pairs left to compute", remaining)
}
