// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import (
	"math"
	"sync"

	"github.com/djsutherland/np-divs/spatial/bagindex"
)

// Matrix is one estimator's m-by-n (or m-by-m, in Self) output block.
type Matrix [][]float64

func checkShape(out []Matrix, nEst, rows, cols int) error {
	if len(out) != nEst {
		return invalidDomain("out has %d matrices, want %d (one per estimator)", len(out), nEst)
	}
	for f, mat := range out {
		if len(mat) != rows {
			return invalidDomain("out[%d] has %d rows, want %d", f, len(mat), rows)
		}
		for i, row := range mat {
			if len(row) != cols {
				return invalidDomain("out[%d][%d] has %d columns, want %d", f, i, len(row), cols)
			}
		}
	}
	return nil
}

func bagsDim(bags []Bag) (int, error) {
	if len(bags) == 0 {
		return 0, invalidDomain("at least one bag is required")
	}
	dim := bags[0].Cols
	for i, b := range bags {
		if b.Cols != dim {
			return 0, invalidDomain("bag %d has dimension %d, want %d", i, b.Cols, dim)
		}
	}
	return dim, nil
}

func wrapIndexErr(err error) error {
	if err == nil {
		return nil
	}
	return invalidDomain("%v", err)
}

// runParallel calls f(i) for every i in [0, n) using up to numThreads
// goroutines, or as a direct sequential loop with no channel or mutex
// overhead when numThreads is 1 (the single-threaded fast path).
func runParallel(n, numThreads int, f func(i int)) {
	if numThreads <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}
	if numThreads > n {
		numThreads = n
	}
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	var wg sync.WaitGroup
	wg.Add(numThreads)
	for w := 0; w < numThreads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				f(i)
			}
		}()
	}
	wg.Wait()
}

func buildIndices(bags []Bag, variant IndexVariant, numThreads int) ([]bagindex.Index, error) {
	idx := make([]bagindex.Index, len(bags))
	errs := make([]error, len(bags))
	runParallel(len(bags), numThreads, func(i int) {
		idx[i], errs[i] = bagindex.Build(bags[i], variant)
	})
	for _, err := range errs {
		if err != nil {
			return nil, wrapIndexErr(err)
		}
	}
	return idx, nil
}

func computeSelfRhos(bags []Bag, idx []bagindex.Index, k int, sp bagindex.SearchParams, numThreads int) ([][]float64, error) {
	rhos := make([][]float64, len(bags))
	errs := make([]error, len(bags))
	runParallel(len(bags), numThreads, func(i int) {
		rhos[i], errs[i] = idx[i].QueryKth(bags[i], k+1, sp)
	})
	for _, err := range errs {
		if err != nil {
			return nil, wrapIndexErr(err)
		}
	}
	return rhos, nil
}

func checkBagSizes(bags []Bag, k int, label string) error {
	for i, b := range bags {
		if b.Rows < k+1 {
			return invalidDomain("%s bag %d has %d points, need at least k+1=%d", label, i, b.Rows, k+1)
		}
	}
	return nil
}

// progressTracker maintains the shared remaining-pair-jobs counter
// described by DivParams.ShowProgress/Progress, firing the callback
// under the same lock that guards the counter so a sequence of
// invocations observes a strictly non-increasing value. In
// single-threaded mode there is no other goroutine to race with, so
// the lock is skipped entirely (the single-threaded fast path takes no
// locks at all).
type progressTracker struct {
	mu        sync.Mutex
	remaining int
	every     int
	fn        ProgressFunc
	single    bool
}

func newProgressTracker(total int, params DivParams, single bool) *progressTracker {
	return &progressTracker{remaining: total, every: params.ShowProgress, fn: params.Progress, single: single}
}

func (t *progressTracker) completedOne() {
	if t.every <= 0 {
		return
	}
	if t.single {
		t.remaining--
		if t.remaining%t.every == 0 {
			t.fn(t.remaining)
		}
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.remaining--
	if t.remaining%t.every == 0 {
		t.fn(t.remaining)
	}
}

// firstError lets every worker race to report the first failure of a
// Self/Cross call without a data race; later failures are discarded.
type firstError struct {
	mu  sync.Mutex
	err error
}

func (e *firstError) set(err error) {
	e.mu.Lock()
	if e.err == nil {
		e.err = err
	}
	e.mu.Unlock()
}

func (e *firstError) get() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// writeCell applies one estimator to one bag pair and writes the
// result into out, failing NumericalFailure if the estimator produced
// a NaN or infinite value.
func writeCell(out []Matrix, estimators []Estimator, f, i, j int, rhoX, nuX, rhoY, nuY []float64, dim, k int) error {
	v, err := estimators[f].Apply(rhoX, nuX, rhoY, nuY, dim, k)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return numericalFailure(f, i, j, "estimator %q produced %v", estimators[f].Name(), v)
	}
	out[f][i][j] = v
	return nil
}

func runJobs(total int, numThreads int, process func(idx int)) {
	if numThreads <= 1 {
		for idx := 0; idx < total; idx++ {
			process(idx)
		}
		return
	}
	jobCh := make(chan int, total)
	for idx := 0; idx < total; idx++ {
		jobCh <- idx
	}
	close(jobCh)
	var wg sync.WaitGroup
	wg.Add(numThreads)
	for w := 0; w < numThreads; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				process(idx)
			}
		}()
	}
	wg.Wait()
}

// Self computes every estimator's divergence between every pair of
// bags in the same collection, exploiting symmetry: only the (i, j)
// with j <= i are queried, and the result is written into both
// out[f][i][j] and out[f][j][i]. The diagonal uses the plain k-NN
// distance (not k+1) as the cross statistic against itself, matching
// the asymmetric role rho and nu play in each estimator.
//
// out must hold one Matrix per estimator, each shaped len(bags) by
// len(bags); Self writes every cell exactly once.
func Self(bags []Bag, estimators []Estimator, params DivParams, out []Matrix) error {
	if err := params.validate(); err != nil {
		return err
	}
	dim, err := bagsDim(bags)
	if err != nil {
		return err
	}
	m := len(bags)
	if err := checkShape(out, len(estimators), m, m); err != nil {
		return err
	}
	k := params.K
	if err := checkBagSizes(bags, k, "X"); err != nil {
		return err
	}

	numThreads := params.numThreads()

	idx, err := buildIndices(bags, params.IndexVariant, numThreads)
	if err != nil {
		return err
	}
	rho, err := computeSelfRhos(bags, idx, k, params.Search, numThreads)
	if err != nil {
		return err
	}

	type pairJob struct{ i, j int }
	jobs := make([]pairJob, 0, m*(m+1)/2)
	for i := 0; i < m; i++ {
		for j := 0; j <= i; j++ {
			jobs = append(jobs, pairJob{i, j})
		}
	}

	single := numThreads == 1
	tracker := newProgressTracker(len(jobs), params, single)
	abort := &firstError{}

	process := func(jobIdx int) {
		if abort.get() != nil {
			return
		}
		i, j := jobs[jobIdx].i, jobs[jobIdx].j
		var cellErr error
		switch {
		case i == j:
			nu, qErr := idx[i].QueryKth(bags[i], k, params.Search)
			if qErr != nil {
				cellErr = wrapIndexErr(qErr)
				break
			}
			for f := range estimators {
				if cellErr = writeCell(out, estimators, f, i, i, rho[i], nu, rho[i], nu, dim, k); cellErr != nil {
					break
				}
			}
		default:
			nuX, errX := idx[j].QueryKth(bags[i], k, params.Search)
			nuY, errY := idx[i].QueryKth(bags[j], k, params.Search)
			switch {
			case errX != nil:
				cellErr = wrapIndexErr(errX)
			case errY != nil:
				cellErr = wrapIndexErr(errY)
			default:
				for f := range estimators {
					if cellErr = writeCell(out, estimators, f, i, j, rho[i], nuX, rho[j], nuY, dim, k); cellErr != nil {
						break
					}
					if cellErr = writeCell(out, estimators, f, j, i, rho[j], nuY, rho[i], nuX, dim, k); cellErr != nil {
						break
					}
				}
			}
		}
		if cellErr != nil {
			abort.set(cellErr)
		}
		tracker.completedOne()
	}

	runJobs(len(jobs), numThreads, process)
	return abort.get()
}

// Cross computes every estimator's divergence from each bag in x to
// each bag in y, writing out[f][i][j] for every (i, j).
//
// out must hold one Matrix per estimator, each shaped len(x) by
// len(y); Cross writes every cell exactly once.
func Cross(x, y []Bag, estimators []Estimator, params DivParams, out []Matrix) error {
	if err := params.validate(); err != nil {
		return err
	}
	dimX, err := bagsDim(x)
	if err != nil {
		return err
	}
	dimY, err := bagsDim(y)
	if err != nil {
		return err
	}
	if dimX != dimY {
		return invalidDomain("x bags have dimension %d, y bags have dimension %d", dimX, dimY)
	}
	dim := dimX
	m, n := len(x), len(y)
	if err := checkShape(out, len(estimators), m, n); err != nil {
		return err
	}
	k := params.K
	if err := checkBagSizes(x, k, "X"); err != nil {
		return err
	}
	if err := checkBagSizes(y, k, "Y"); err != nil {
		return err
	}

	numThreads := params.numThreads()

	all := make([]Bag, 0, m+n)
	all = append(all, x...)
	all = append(all, y...)
	allIdx, err := buildIndices(all, params.IndexVariant, numThreads)
	if err != nil {
		return err
	}
	idxX, idxY := allIdx[:m], allIdx[m:]

	allRho, err := computeSelfRhos(all, allIdx, k, params.Search, numThreads)
	if err != nil {
		return err
	}
	rhoX, rhoY := allRho[:m], allRho[m:]

	type pairJob struct{ i, j int }
	jobs := make([]pairJob, 0, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			jobs = append(jobs, pairJob{i, j})
		}
	}

	single := numThreads == 1
	tracker := newProgressTracker(len(jobs), params, single)
	abort := &firstError{}

	process := func(jobIdx int) {
		if abort.get() != nil {
			return
		}
		i, j := jobs[jobIdx].i, jobs[jobIdx].j
		var cellErr error
		nuX, errX := idxY[j].QueryKth(x[i], k, params.Search)
		nuY, errY := idxX[i].QueryKth(y[j], k, params.Search)
		switch {
		case errX != nil:
			cellErr = wrapIndexErr(errX)
		case errY != nil:
			cellErr = wrapIndexErr(errY)
		default:
			for f := range estimators {
				if cellErr = writeCell(out, estimators, f, i, j, rhoX[i], nuX, rhoY[j], nuY, dim, k); cellErr != nil {
					break
				}
			}
		}
		if cellErr != nil {
			abort.set(cellErr)
		}
		tracker.completedOne()
	}

	runJobs(len(jobs), numThreads, process)
	return abort.get()
}
