// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

import "errors"

var (
	// ErrInvalidParameter reports a shape, location, or scale value that
	// does not describe a NIG distribution: a ≤ 0, |b| ≥ a, a non-finite
	// loc, or scale ≤ 0. New fails with it and produces no Dist.
	ErrInvalidParameter = errors.New("nig: invalid parameter")

	// ErrInvalidConfig reports an unusable engine configuration, such as
	// fewer than two spline points.
	ErrInvalidConfig = errors.New("nig: invalid configuration")

	// ErrOutOfRange reports a query argument outside the function's
	// domain: a probability outside [0,1] or a NaN argument. Probabilities
	// of exactly 0 or 1 are in range and clamp to the working domain
	// boundary.
	ErrOutOfRange = errors.New("nig: argument out of range")

	// ErrNumericalInstability reports that integration or inversion ran
	// out of iteration budget and fell back to a coarser-tolerance
	// result. The accompanying values are still filled in, best effort;
	// well-posed parameterizations do not hit this path.
	ErrNumericalInstability = errors.New("nig: numerical instability")
)
