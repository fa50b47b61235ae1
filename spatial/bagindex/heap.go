// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bagindex

import "container/heap"

// distHeap is a bounded max-heap of squared distances: once it holds k
// elements, pushing a smaller candidate evicts the current maximum.
// Its root after seeing all candidates is the k-th smallest distance.
type distHeap []float64

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(float64)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// kthTracker accumulates candidate squared distances and exposes the
// k-th smallest seen so far.
type kthTracker struct {
	h distHeap
	k int
}

func newKthTracker(k int) *kthTracker {
	return &kthTracker{k: k}
}

// offer records a candidate distance.
func (t *kthTracker) offer(d float64) {
	if t.h.Len() < t.k {
		heap.Push(&t.h, d)
		return
	}
	if d < t.h[0] {
		heap.Pop(&t.h)
		heap.Push(&t.h, d)
	}
}

// full reports whether at least k candidates have been offered.
func (t *kthTracker) full() bool { return t.h.Len() >= t.k }

// worst returns the current k-th smallest distance (the max of the k
// smallest seen so far). It panics if fewer than k candidates have
// been offered.
func (t *kthTracker) worst() float64 {
	if !t.full() {
		panic("bagindex: kthTracker.worst called before k candidates were offered")
	}
	return t.h[0]
}
