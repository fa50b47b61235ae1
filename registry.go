// Copyright ©2024 The np-divs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package npdivs

import (
	"math"
	"strconv"
	"strings"
)

// EstimatorFromSpec parses a textual estimator specification of the
// form "name:arg1:arg2:..." and returns the corresponding Estimator.
// Tokens after the name are parsed as finite decimals; unknown names
// or too many arguments fail with InvalidDomain.
//
//	alpha:[alpha=0.999]:[ub=0.99]
//	bc:[ub=0.99]
//	hellinger:[ub=0.99]
//	l2:[ub=0.99]
//	linear:[ub=0.99]
//	renyi:[alpha=0.999]:[ub=0.99]
func EstimatorFromSpec(spec string) (Estimator, error) {
	tokens := strings.Split(spec, ":")
	if len(tokens) == 0 || tokens[0] == "" {
		return nil, invalidDomain("can't handle empty div func specification")
	}
	kind := tokens[0]

	args := make([]float64, len(tokens)-1)
	for i, tok := range tokens[1:] {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, invalidDomain("estimator %q: argument %q is not a finite decimal", kind, tok)
		}
		args[i] = v
	}

	const (
		defaultAlpha = 0.999
	)

	switch kind {
	case "alpha":
		switch len(args) {
		case 0:
			return NewAlphaDivergence(defaultAlpha, defaultUB)
		case 1:
			return NewAlphaDivergence(args[0], defaultUB)
		case 2:
			return NewAlphaDivergence(args[0], args[1])
		default:
			return nil, invalidDomain("too many arguments for alpha estimator")
		}

	case "bc":
		switch len(args) {
		case 0:
			return NewBC(defaultUB)
		case 1:
			return NewBC(args[0])
		default:
			return nil, invalidDomain("too many arguments for bc estimator")
		}

	case "hellinger":
		switch len(args) {
		case 0:
			return NewHellinger(defaultUB)
		case 1:
			return NewHellinger(args[0])
		default:
			return nil, invalidDomain("too many arguments for hellinger estimator")
		}

	case "l2":
		switch len(args) {
		case 0:
			return NewL2(defaultUB)
		case 1:
			return NewL2(args[0])
		default:
			return nil, invalidDomain("too many arguments for l2 estimator")
		}

	case "linear":
		switch len(args) {
		case 0:
			return NewLinear(defaultUB)
		case 1:
			return NewLinear(args[0])
		default:
			return nil, invalidDomain("too many arguments for linear estimator")
		}

	case "renyi":
		switch len(args) {
		case 0:
			return NewRenyiAlpha(defaultAlpha, defaultUB)
		case 1:
			return NewRenyiAlpha(args[0], defaultUB)
		case 2:
			return NewRenyiAlpha(args[0], args[1])
		default:
			return nil, invalidDomain("too many arguments for renyi estimator")
		}

	default:
		return nil, invalidDomain("unknown div func type %q", kind)
	}
}
