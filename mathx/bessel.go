// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements the special functions and quadrature
// routines the nig package needs and the standard library lacks.
package mathx

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const eulerGamma = 0.57721566490153286060651209008240243

// BesselK1 returns the modified Bessel function of the second kind of
// order one, K₁(x), for x > 0. It returns NaN for x ≤ 0 or NaN input.
func BesselK1(x float64) float64 {
	if math.IsNaN(x) || x <= 0 {
		return math.NaN()
	}
	if x < 2 {
		return besselK1Series(x)
	}
	return besselK1Tail(x) * math.Exp(-x)
}

// BesselK1Scaled returns the exponentially scaled function eˣ·K₁(x) for
// x > 0. K₁ itself underflows beyond x ≈ 700; the scaled form stays
// representable for all x, letting callers fold the e⁻ˣ factor into
// their own exponent (see the NIG density, which would otherwise
// multiply an overflowing exponential by an underflowing K₁).
func BesselK1Scaled(x float64) float64 {
	if math.IsNaN(x) || x <= 0 {
		return math.NaN()
	}
	if x < 2 {
		return besselK1Series(x) * math.Exp(x)
	}
	return besselK1Tail(x)
}

// besselK1Series evaluates K₁ by the ascending series (Abramowitz &
// Stegun 9.6.11 with n=1):
//
//	K₁(x) = 1/x + ln(x/2)·I₁(x) - (x/4)·Σₖ [ψ(k+1)+ψ(k+2)]·tᵏ/(k!(k+1)!)
//
// with t = x²/4. Both Σ terms are evaluated in one pass. For x < 2 the
// terms decay faster than 4⁻ᵏ/k!² and the ln·I₁ term is O(x), so there
// is no cancellation and the result is accurate to machine precision.
func besselK1Series(x float64) float64 {
	t := x * x / 4
	term := 1.0            // tᵏ/(k!(k+1)!)
	psiA := -eulerGamma    // ψ(k+1)
	psiB := 1 - eulerGamma // ψ(k+2)
	var sumI, sumPsi float64
	for k := 0; k < 40; k++ {
		sumI += term
		sumPsi += (psiA + psiB) * term
		k1 := float64(k + 1)
		term *= t / (k1 * (k1 + 1))
		psiA += 1 / k1
		psiB += 1 / (k1 + 1)
		if term < 1e-19 {
			break
		}
	}
	i1 := x / 2 * sumI
	return 1/x + math.Log(x/2)*i1 - x/4*sumPsi
}

// besselK1Tail evaluates eˣ·K₁(x) for x ≥ 2 from the integral
// representation (DLMF 10.32.8)
//
//	K₁(x) = √π·(x/2)/Γ(3/2) ∫₁^∞ e^(-xt)·(t²-1)^(1/2) dt,
//
// which after the substitutions t = 1 + s/x, s = u² becomes
//
//	eˣ·K₁(x) = 2·√(2/x) ∫₀^∞ e^(-u²)·u²·√(1 + u²/(2x)) du.
//
// The transformed integrand is smooth (the endpoint square-root
// singularity is absorbed by s = u²) and effectively supported on
// [0, 9]: beyond u = 9 the Gaussian factor is below 10⁻³⁵. A fixed
// 60-point Gauss-Legendre rule resolves it to near machine precision —
// the nearest singularity is the branch point of the square root at
// u = i√(2x), which for x ≥ 2 sits at least 2 above the real axis.
//
// Past x = 10⁴ the square root is so close to 1 that the standard
// asymptotic expansion (DLMF 10.40.2) is already accurate to ~1e-13
// after three terms, and skips the quadrature entirely.
func besselK1Tail(x float64) float64 {
	if x > 1e4 {
		return math.Sqrt(math.Pi/(2*x)) * (1 + 3/(8*x) - 15/(128*x*x))
	}
	f := func(u float64) float64 {
		return math.Exp(-u*u) * u * u * math.Sqrt(1+u*u/(2*x))
	}
	v := quad.Fixed(f, 0, 9, 60, quad.Legendre{}, 0)
	return 2 * math.Sqrt(2/x) * v
}
