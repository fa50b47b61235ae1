// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import "fmt"

// ErrKind classifies the errors the core can report.
type ErrKind int

const (
	// InvalidDomain marks a caller-supplied parameter that is out of
	// range: k < 1, alpha == 1 for an alpha-based estimator, ub
	// outside (0, 1], an unknown estimator or index-variant name, a
	// mismatched output-matrix shape, disagreeing bag dimensions, or
	// a bag too small for k+1 neighbors.
	InvalidDomain ErrKind = iota
	// Overflow marks a numeric overflow caught before a NaN or Inf
	// could propagate: Gamma of too-large an argument, or a log of a
	// non-positive value inside an estimator.
	Overflow
	// NumericalFailure marks a worker computing a NaN or Inf estimate
	// after FixTerms was supposed to have stabilized it.
	NumericalFailure
	// Interrupted is reserved for a future cancellation hook; it is
	// never produced by this package today.
	Interrupted
)

func (k ErrKind) String() string {
	switch k {
	case InvalidDomain:
		return "InvalidDomain"
	case Overflow:
		return "Overflow"
	case NumericalFailure:
		return "NumericalFailure"
	case Interrupted:
		return "Interrupted"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is the error type returned by this package. FuncIndex, I, and
// J are only meaningful for a NumericalFailure: they name the first
// (estimator, source bag, target bag) triple that produced the bad
// value.
type Error struct {
	Kind ErrKind
	Msg  string

	FuncIndex, I, J int
}

func (e *Error) Error() string {
	if e.Kind == NumericalFailure {
		return fmt.Sprintf("np-divs: %s: %s (func %d, pair (%d, %d))", e.Kind, e.Msg, e.FuncIndex, e.I, e.J)
	}
	return fmt.Sprintf("np-divs: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error with the same Kind, so that
// callers can write errors.Is(err, npdivs.ErrInvalidDomain) and so on.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for use with errors.Is.
var (
	ErrInvalidDomain    = &Error{Kind: InvalidDomain}
	ErrOverflow         = &Error{Kind: Overflow}
	ErrNumericalFailure = &Error{Kind: NumericalFailure}
	ErrInterrupted      = &Error{Kind: Interrupted}
)

func invalidDomain(format string, args ...interface{}) error {
	return &Error{Kind: InvalidDomain, Msg: fmt.Sprintf(format, args...)}
}

func overflow(format string, args ...interface{}) error {
	return &Error{Kind: Overflow, Msg: fmt.Sprintf(format, args...)}
}

func numericalFailure(funcIndex, i, j int, format string, args ...interface{}) error {
	return &Error{
		Kind:      NumericalFailure,
		Msg:       fmt.Sprintf(format, args...),
		FuncIndex: funcIndex, I: i, J: j,
	}
}
