// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

// A Distribution is a continuous statistical distribution evaluated in
// bulk. It is the surface a simulation or copula pipeline consumes;
// *Dist implements it, and callers that only need evaluation can depend
// on the interface rather than the NIG engine.
type Distribution interface {
	// PDF returns the value of the probability density function at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution function at
	// x, in [0, 1] and non-decreasing in x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i. The error, if non-nil,
	// wraps ErrNumericalInstability and reports elements that fell back
	// to a coarser tolerance; the returned values are always complete.
	CDFEach(xs []float64) ([]float64, error)

	// InvCDF returns the inverse of the CDF at q, so that
	// CDF(InvCDF(q)) ≈ q. The probability q must be in [0, 1]; 0 and 1
	// clamp to the working domain boundary.
	InvCDF(q float64) (float64, error)

	// InvCDFEach returns InvCDF(qs[i]) for each i.
	InvCDFEach(qs []float64) ([]float64, error)

	// Bounds returns the working domain of the distribution. The total
	// probability mass outside of these bounds is approximately 0.
	Bounds() (float64, float64)
}

var _ Distribution = (*Dist)(nil)
