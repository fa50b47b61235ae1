// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bagindex

import "sort"

// kdNode is a node of a single-tree kd-tree. Leaves have axis < 0 and
// no children; internal nodes split on axis at split, with points no
// greater than split on the left and no less than split on the right
// (points equal to split may fall on either side).
type kdNode struct {
	idx         int
	axis        int
	split       float32
	left, right *kdNode
}

// KDTreeIndex is a single-tree, axis-cycling-median-split kd-tree. It
// produces exact k-NN results when queried with an unbounded check
// budget, and an approximate (but early-terminating) result otherwise.
type KDTreeIndex struct {
	bag  Bag
	root *kdNode
}

func newKDTree(bag Bag) *KDTreeIndex {
	indices := make([]int, bag.Rows)
	for i := range indices {
		indices[i] = i
	}
	return &KDTreeIndex{
		bag:  bag,
		root: buildKDNode(indices, bag, 0),
	}
}

func buildKDNode(indices []int, bag Bag, depth int) *kdNode {
	if len(indices) == 0 {
		return nil
	}
	if len(indices) == 1 {
		return &kdNode{idx: indices[0], axis: -1}
	}

	axis := depth % bag.Cols
	sort.Slice(indices, func(i, j int) bool {
		return bag.At(indices[i], axis) < bag.At(indices[j], axis)
	})
	mid := len(indices) / 2

	node := &kdNode{
		idx:   indices[mid],
		axis:  axis,
		split: bag.At(indices[mid], axis),
	}
	node.left = buildKDNode(indices[:mid], bag, depth+1)
	node.right = buildKDNode(indices[mid+1:], bag, depth+1)
	return node
}

// At returns the value at row i, column j — a small convenience used
// only during tree construction.
func (b Bag) At(i, j int) float32 {
	return b.Data[i*b.Cols+j]
}

func (t *KDTreeIndex) QueryKth(query Bag, k int, sp SearchParams) ([]float64, error) {
	return queryKth(query, t.bag, k, func(q []float32, tr *kthTracker) {
		checks := 0
		var visit func(n *kdNode)
		visit = func(n *kdNode) {
			if n == nil {
				return
			}
			if sp.MaxChecks >= 0 && checks >= sp.MaxChecks {
				return
			}
			checks++
			tr.offer(sqDist(q, t.bag.Row(n.idx)))

			if n.axis < 0 {
				return
			}
			diff := float64(q[n.axis]) - float64(n.split)
			near, far := n.left, n.right
			if diff >= 0 {
				near, far = n.right, n.left
			}
			visit(near)
			if !tr.full() || diff*diff < tr.worst() {
				visit(far)
			}
		}
		visit(t.root)
	})
}
