// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nig evaluates the Normal-Inverse-Gaussian (NIG) probability
// distribution over large batches of values: density (PDF), cumulative
// probability (CDF), quantiles (InvCDF), and a direct standard-normal to
// NIG transform (FromNormal).
//
// The parameterization follows the common (a, b, loc, scale) convention:
// tail heaviness a > 0, asymmetry b with |b| < a, location, and scale.
// With y = (x-loc)/scale and γ = √(a²-b²) the density is
//
//	pdf(x) = a/(π·scale) · exp(γ + b·y - a·√(1+y²)) · K₁ₑ(a·√(1+y²)) / √(1+y²)
//
// where K₁ₑ is the exponentially scaled modified Bessel function of the
// second kind. The CDF has no closed form and is computed by adaptive
// quadrature of the density; the quantile function has no closed form
// either and inverting the CDF numerically per query would be far too
// slow for bulk use. A Dist therefore builds, lazily and at most once, a
// monotone cubic interpolant of the CDF on a parameter-dependent grid
// and answers quantile queries by bracketing and locally inverting a
// single cubic segment. A second interpolant maps standard-normal
// variates straight to NIG variates, removing even the inversion from
// the hot path of normal-driven simulation.
//
// Construction of the interpolants is guarded by sync.Once, so a Dist is
// safe for concurrent use; call Warm to keep the one-time build cost out
// of latency measurements. Batch methods can spread work across
// goroutines via the Workers field.
package nig
