// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

import (
	"math"

	"github.com/quantstat/go-nig/mathx"
)

// PDF returns the closed-form NIG density at x. It is a pure function
// of the parameter set and stays finite for any x: the exponent
// γ + b·y - a·√(1+y²) attains its maximum of exactly 0 at y = b/γ, so
// the factored form below can never overflow, and for large |x| it
// decays to 0 without passing through an overflowing Bessel argument.
// PDF(NaN) is NaN.
func (d *Dist) PDF(x float64) float64 {
	y := (x - d.loc) / d.scale
	if math.IsNaN(y) {
		return math.NaN()
	}
	if math.IsInf(y, 0) {
		return 0
	}
	r := math.Sqrt(1 + y*y)
	arg := d.alpha * r
	expo := d.gamma + d.beta*y - arg
	if expo < -746 {
		// exp underflows before the scaled Bessel factor (which decays
		// only like 1/√arg) could pull the product back up.
		return 0
	}
	return d.alpha / (math.Pi * d.scale) * math.Exp(expo) * mathx.BesselK1Scaled(arg) / r
}

// PDFEach returns PDF(xs[i]) for each i. Empty input returns an empty
// slice. Elements are independent; with Workers > 1 they are evaluated
// in parallel.
func (d *Dist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	d.forEach(len(xs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			res[i] = d.PDF(xs[i])
		}
	})
	return res
}
