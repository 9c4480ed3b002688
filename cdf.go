// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

import (
	"fmt"
	"math"
	"sync"

	"github.com/quantstat/go-nig/mathx"
)

// cdfTol is the absolute tolerance requested from the adaptive
// integrator for a single CDF query. It sits well inside the 1e-8
// bulk-accuracy target so that interpolation and inversion error can be
// spent elsewhere.
const cdfTol = 1e-10

// CDF returns the cumulative probability at x, in [0, 1] and monotone
// non-decreasing in x. It integrates the density fresh on every call;
// for bulk quantile work build the interpolant once via InvCDF or Warm
// instead. If the integrator fails to converge, CDF silently returns
// the best coarse estimate; use CDFEach to observe the instability.
// CDF(NaN) is NaN.
func (d *Dist) CDF(x float64) float64 {
	v, _ := d.cdfAt(x)
	return v
}

// cdfAt integrates the density up to x, from whichever side of the mean
// is nearer so that tail values come out as 1-(small) rather than as a
// long sum that has to cancel to 1.
func (d *Dist) cdfAt(x float64) (float64, error) {
	if math.IsNaN(x) {
		return math.NaN(), nil
	}
	if x <= d.lo {
		return 0, nil
	}
	if x >= d.hi {
		return 1, nil
	}
	var v float64
	var err error
	if x <= d.mean {
		v, err = mathx.AdaptiveGauss(d.PDF, d.lo, x, cdfTol)
	} else {
		var tail float64
		tail, err = mathx.AdaptiveGauss(d.PDF, x, d.hi, cdfTol)
		v = 1 - tail
	}
	if err != nil {
		err = fmt.Errorf("%w: cdf(%g) integrated at reduced tolerance", ErrNumericalInstability, x)
	}
	// The integral of a density cannot leave [0,1]; rounding can.
	return min(max(v, 0), 1), err
}

// CDFEach returns CDF(xs[i]) for each i. Empty input returns an empty
// slice. Elements are integrated independently; with Workers > 1 they
// are evaluated in parallel.
//
// A non-nil error wraps ErrNumericalInstability and reports how many
// elements fell back to a coarser integration tolerance. The returned
// slice is complete either way; the flagged elements hold best-effort
// values, never silent NaNs.
func (d *Dist) CDFEach(xs []float64) ([]float64, error) {
	res := make([]float64, len(xs))
	var mu sync.Mutex
	nbad, first := 0, -1
	d.forEach(len(xs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v, err := d.cdfAt(xs[i])
			res[i] = v
			if err != nil {
				mu.Lock()
				if first < 0 || i < first {
					first = i
				}
				nbad++
				mu.Unlock()
			}
		}
	})
	if nbad > 0 {
		return res, fmt.Errorf("%w: %d of %d elements fell back to a coarser tolerance (first at index %d)",
			ErrNumericalInstability, nbad, len(xs), first)
	}
	return res, nil
}
