// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bagindex

// linearIndex is an always-exact brute-force scanner: every query
// compares against every indexed point. It ignores SearchParams, since
// it is already exhaustive.
type linearIndex struct {
	bag Bag
}

func newLinearIndex(bag Bag) *linearIndex {
	return &linearIndex{bag: bag}
}

func (li *linearIndex) QueryKth(query Bag, k int, _ SearchParams) ([]float64, error) {
	return queryKth(query, li.bag, k, func(q []float32, t *kthTracker) {
		for j := 0; j < li.bag.Rows; j++ {
			t.offer(sqDist(q, li.bag.Row(j)))
		}
	})
}
