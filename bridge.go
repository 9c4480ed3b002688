// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// bridgeZMax bounds the normal-bridge grid in z space. Φ(-8.5) is
	// below 1e-17, so the quantiles beyond the grid are
	// indistinguishable from the working domain boundary anyway and
	// clamping there loses nothing.
	bridgeZMax = 8.5

	// bridgeTol is the midpoint-error target of the bridge grid
	// refinement. The worst interior error of a refined segment is a
	// small factor above its midpoint error, so 2e-8 keeps FromNormal
	// within 1e-7 of InvCDF(Φ(z)) with real margin.
	bridgeTol = 2e-8

	// bridgeSeedPoints is the uniform grid the refinement starts from;
	// bridgeMaxPoints and bridgeMaxPasses bound it for parameter sets
	// whose tails would otherwise demand an unbounded grid.
	bridgeSeedPoints = 1025
	bridgeMaxPoints  = 1 << 18
	bridgeMaxPasses  = 12
)

// bridgeGrid maps standard-normal variates directly to NIG variates: a
// monotone cubic through (z, InvCDF(Φ(z))) on an adaptively refined z
// grid. Queries are a single forward interpolation; no search or
// inversion remains on the hot path.
type bridgeGrid struct {
	spline interp.FritschButland
}

// bridgeModel returns the lazily built normal-bridge grid, constructing
// the CDF-inversion grid first if needed. Same once-only guarantee as
// quantileModel.
func (d *Dist) bridgeModel() (*bridgeGrid, error) {
	d.bridgeOnce.Do(func() { d.bridge, d.bridgeErr = d.buildBridgeGrid() })
	return d.bridge, d.bridgeErr
}

// buildBridgeGrid fits the z → x mapping and then refines it where a
// cubic segment misses the exact mapping at its midpoint: the mapping
// is nearly quadratic in z through the tails (the normal tail decays
// like e^(-z²/2) against the distribution's e^(-c·x)), so a uniform
// grid spends its points where the curve is flat and starves the ends.
// Each pass re-fits and re-checks every segment, so refinement in one
// place cannot silently degrade its neighbors. The grid is sized by the
// accuracy target alone, independent of SplinePoints.
func (d *Dist) buildBridgeGrid() (*bridgeGrid, error) {
	g, err := d.quantileModel()
	if g == nil {
		return nil, err
	}
	sample := func(z float64) float64 {
		return g.invert(distuv.UnitNormal.CDF(z))
	}
	// Very heavy tails stretch the mapping over an enormous range; an
	// absolute target there would demand an unbounded grid, so the
	// target loosens with the domain width once the width dominates.
	tol := math.Max(bridgeTol, (d.hi-d.lo)*1e-10)

	zs := floats.Span(make([]float64, bridgeSeedPoints), -bridgeZMax, bridgeZMax)
	zs[0], zs[len(zs)-1] = -bridgeZMax, bridgeZMax
	xs := make([]float64, len(zs))
	for i, z := range zs {
		xs[i] = sample(z)
	}

	b := &bridgeGrid{}
	for pass := 0; ; pass++ {
		// Inversion error could leave a sample a hair below its
		// neighbor in the flat far tails; the fit requires monotone
		// data.
		for i := 1; i < len(xs); i++ {
			if xs[i] < xs[i-1] {
				xs[i] = xs[i-1]
			}
		}
		if ferr := b.spline.Fit(zs, xs); ferr != nil {
			return nil, fmt.Errorf("%w: fitting normal bridge interpolant: %v", ErrNumericalInstability, ferr)
		}
		if pass == bridgeMaxPasses || len(zs) >= bridgeMaxPoints {
			break
		}
		nzs := make([]float64, 0, len(zs))
		nxs := make([]float64, 0, len(xs))
		refined := false
		for i := 1; i < len(zs); i++ {
			nzs = append(nzs, zs[i-1])
			nxs = append(nxs, xs[i-1])
			zm := zs[i-1] + (zs[i]-zs[i-1])/2
			if zm <= zs[i-1] || zm >= zs[i] {
				continue
			}
			xm := sample(zm)
			if math.Abs(b.spline.Predict(zm)-xm) > tol {
				nzs = append(nzs, zm)
				nxs = append(nxs, xm)
				refined = true
			}
		}
		nzs = append(nzs, zs[len(zs)-1])
		nxs = append(nxs, xs[len(xs)-1])
		if !refined {
			return b, err
		}
		zs, xs = nzs, nxs
	}
	return b, fmt.Errorf("%w: normal bridge refinement stopped at %d grid points before meeting its target",
		ErrNumericalInstability, len(zs))
}

// FromNormal maps a standard-normal variate z to the NIG variate
// InvCDF(Φ(z)), matching that composition well within 1e-7 on
// well-posed parameter sets, and non-decreasing in z. |z| beyond the
// bridge grid (±8.5) clamps to the boundary value, mirroring the InvCDF
// boundary policy; NaN fails with ErrOutOfRange.
//
// The first call builds both interpolants; see Warm. After that a call
// is one interpolant lookup, which is what makes bulk normal-to-NIG
// transforms cheap.
func (d *Dist) FromNormal(z float64) (float64, error) {
	if math.IsNaN(z) {
		return math.NaN(), fmt.Errorf("%w: z is NaN", ErrOutOfRange)
	}
	b, err := d.bridgeModel()
	if b == nil {
		return math.NaN(), err
	}
	return b.spline.Predict(z), err
}

// FromNormalEach returns FromNormal(zs[i]) for each i. Empty input
// returns an empty slice; a NaN element fails the whole call with
// ErrOutOfRange. Elements are independent; with Workers > 1 they are
// evaluated in parallel.
func (d *Dist) FromNormalEach(zs []float64) ([]float64, error) {
	for i, z := range zs {
		if math.IsNaN(z) {
			return nil, fmt.Errorf("%w: z is NaN at index %d", ErrOutOfRange, i)
		}
	}
	b, err := d.bridgeModel()
	if b == nil {
		return nil, err
	}
	res := make([]float64, len(zs))
	d.forEach(len(zs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			res[i] = b.spline.Predict(zs[i])
		}
	})
	return res, err
}
