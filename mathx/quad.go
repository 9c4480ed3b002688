// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// ErrTolerance reports that an adaptive routine exhausted its
// subdivision budget before meeting the requested tolerance. The value
// returned alongside it is still the best available estimate.
var ErrTolerance = errors.New("mathx: tolerance not met")

// maxAdaptDepth bounds the bisection depth of AdaptiveGauss. 48 halvings
// shrink any interval below the spacing of float64, so hitting the limit
// means the error estimate is not going to improve.
const maxAdaptDepth = 48

// AdaptiveGauss approximates the integral of f over the finite interval
// [a, b] to within the absolute tolerance tol.
//
// Each interval is estimated with 7- and 15-point Gauss-Legendre rules;
// where the two disagree by more than the interval's share of tol, the
// interval is bisected and the halves are integrated recursively. The
// scheme concentrates effort near peaks and leaves smooth stretches
// cheap, which is what integrating a unimodal density needs.
//
// If the budget runs out before the estimates agree, the best estimate
// is returned together with ErrTolerance.
func AdaptiveGauss(f func(float64) float64, a, b, tol float64) (float64, error) {
	if a == b {
		return 0, nil
	}
	if b < a {
		v, err := AdaptiveGauss(f, b, a, tol)
		return -v, err
	}
	v, ok := adaptGauss(f, a, b, tol, maxAdaptDepth)
	if !ok {
		return v, ErrTolerance
	}
	return v, nil
}

func adaptGauss(f func(float64) float64, a, b, tol float64, depth int) (float64, bool) {
	coarse := quad.Fixed(f, a, b, 7, quad.Legendre{}, 0)
	fine := quad.Fixed(f, a, b, 15, quad.Legendre{}, 0)
	diff := math.Abs(fine - coarse)
	if diff <= tol || diff <= 4e-16*math.Abs(fine) {
		return fine, true
	}
	mid := a + (b-a)/2
	if depth == 0 || mid <= a || mid >= b {
		return fine, false
	}
	left, lok := adaptGauss(f, a, mid, tol/2, depth-1)
	right, rok := adaptGauss(f, mid, b, tol/2, depth-1)
	return left + right, lok && rok
}
