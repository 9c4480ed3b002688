// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/quantstat/go-nig/mathx"
)

// invTol is the convergence target when inverting a cubic segment. The
// spline itself carries more error than this, so tightening it further
// buys nothing.
const invTol = 1e-13

// quantileGrid is the CDF-inversion model: CDF samples on a fixed grid
// spanning the working domain, with a monotone cubic fitted through
// them. It is built once per Dist and read-only afterwards.
type quantileGrid struct {
	xs, fs []float64
	spline interp.FritschButland
}

// quantileModel returns the lazily built CDF-inversion grid. The
// sync.Once guard makes the build happen-before any concurrent read and
// keeps two goroutines racing on first use from building it twice.
//
// A non-nil error wrapping ErrNumericalInstability may accompany a
// usable grid; only a nil grid means the model is unavailable.
func (d *Dist) quantileModel() (*quantileGrid, error) {
	d.quantOnce.Do(func() { d.quant, d.quantErr = d.buildQuantileGrid() })
	return d.quant, d.quantErr
}

// buildQuantileGrid samples the CDF once per abscissa by accumulating
// per-segment integrals of the density across the grid, then fits a
// Fritsch-Butland monotone cubic through the (x, F) pairs. Monotonicity
// of the samples is enforced by construction: segment masses are
// clamped non-negative before accumulating, so rounding in the
// quadrature can never make a sample decrease below its predecessor.
func (d *Dist) buildQuantileGrid() (*quantileGrid, error) {
	n := d.points
	xs := floats.Span(make([]float64, n), d.lo, d.hi)
	// Span reaches its upper bound by repeated addition and can land
	// one ulp off it; the boundary clamp in invert must return d.lo
	// and d.hi exactly.
	xs[0], xs[n-1] = d.lo, d.hi
	fs := make([]float64, n)
	// Split the total tolerance budget across the segments, with a
	// floor: below ~1e-14 the 7/15-point error estimate is noise.
	segTol := math.Max(1e-9/float64(n-1), 1e-14)
	unstable := 0
	mass := 0.0
	for i := 1; i < n; i++ {
		s, err := mathx.AdaptiveGauss(d.PDF, xs[i-1], xs[i], segTol)
		if err != nil {
			unstable++
		}
		if s < 0 {
			s = 0
		}
		mass += s
		fs[i] = min(mass, 1)
	}
	g := &quantileGrid{xs: xs, fs: fs}
	if err := g.spline.Fit(xs, fs); err != nil {
		return nil, fmt.Errorf("%w: fitting CDF interpolant: %v", ErrNumericalInstability, err)
	}
	if unstable > 0 {
		return g, fmt.Errorf("%w: %d of %d grid segments integrated at reduced tolerance",
			ErrNumericalInstability, unstable, n-1)
	}
	return g, nil
}

// invert returns the x with spline(x) = q. Probabilities at or beyond
// the sampled CDF range clamp to the domain boundary. The bracketing
// interval comes from binary search over the CDF samples; within it a
// linear-interpolation seed is polished by Newton steps on the cubic,
// falling back to bisection whenever a step leaves the bracket or the
// local derivative vanishes, so the iteration cannot escape or stall.
func (g *quantileGrid) invert(q float64) float64 {
	n := len(g.fs)
	if q <= g.fs[0] {
		return g.xs[0]
	}
	if q >= g.fs[n-1] {
		return g.xs[n-1]
	}
	i := sort.SearchFloat64s(g.fs, q) // fs[i-1] < q <= fs[i], i >= 1
	lo, hi := g.xs[i-1], g.xs[i]
	flo, fhi := g.fs[i-1], g.fs[i]
	x := lo + (hi-lo)*(q-flo)/(fhi-flo)
	for iter := 0; iter < 32; iter++ {
		r := g.spline.Predict(x) - q
		if math.Abs(r) <= invTol {
			break
		}
		if r > 0 {
			hi = x
		} else {
			lo = x
		}
		if der := g.spline.PredictDerivative(x); der > 0 {
			x -= r / der
		} else {
			x = lo + (hi-lo)/2
		}
		if x <= lo || x >= hi {
			x = lo + (hi-lo)/2
		}
		if hi-lo <= math.Abs(x)*1e-15 {
			break
		}
	}
	return x
}

// InvCDF returns the quantile (PPF) at probability q, the two-sided
// inverse of CDF on (0, 1): CDF(InvCDF(q)) ≈ q to within the combined
// integration and inversion tolerance, and the result is non-decreasing
// in q.
//
// Boundary policy: q of exactly 0 or 1 clamps to the working domain
// boundary (see Bounds); q outside [0, 1] or NaN fails with
// ErrOutOfRange. The first call builds the interpolant; see Warm.
func (d *Dist) InvCDF(q float64) (float64, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return math.NaN(), fmt.Errorf("%w: probability %g outside [0,1]", ErrOutOfRange, q)
	}
	g, err := d.quantileModel()
	if g == nil {
		return math.NaN(), err
	}
	return g.invert(q), err
}

// InvCDFEach returns InvCDF(qs[i]) for each i. Empty input returns an
// empty slice. All probabilities are validated up front: if any is
// outside [0, 1] or NaN the whole call fails with ErrOutOfRange and no
// partial result, since a bad probability is a caller bug rather than a
// per-element numerical accident.
func (d *Dist) InvCDFEach(qs []float64) ([]float64, error) {
	for i, q := range qs {
		if math.IsNaN(q) || q < 0 || q > 1 {
			return nil, fmt.Errorf("%w: probability %g at index %d outside [0,1]", ErrOutOfRange, q, i)
		}
	}
	g, err := d.quantileModel()
	if g == nil {
		return nil, err
	}
	res := make([]float64, len(qs))
	d.forEach(len(qs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			res[i] = g.invert(qs[i])
		}
	})
	return res, err
}
