// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// nigbench times the batch operations of the NIG engine: density,
// cumulative probability, quantiles, and the direct normal-to-NIG
// bridge, reporting per-call averages and the speedup of the bridge
// over the InvCDF(Φ(z)) composition it replaces. It also maps a sample
// of standard-normal draws through the bridge and compares the sample
// moments against the closed forms as an end-to-end sanity check.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	nig "github.com/quantstat/go-nig"
)

var (
	alpha  = flag.Float64("a", 3, "tail heaviness (> 0)")
	beta   = flag.Float64("b", 1.5, "asymmetry (|b| < a)")
	loc    = flag.Float64("loc", 0, "location")
	scale  = flag.Float64("scale", 1, "scale (> 0)")
	points = flag.Int("points", 200, "spline points for the interpolant grids")

	pdfN    = flag.Int("pdf-n", 1_000_000, "batch size for the PDF timing")
	cdfN    = flag.Int("cdf-n", 1_000, "batch size for the CDF timing")
	ppfN    = flag.Int("ppf-n", 10_000, "batch size for the quantile timing")
	bridgeN = flag.Int("bridge-n", 10_000_000, "batch size for the normal-bridge timing")
	draws   = flag.Int("draws", 200_000, "normal draws for the moment check")

	workers = flag.Int("workers", 0, "worker goroutines for batch evaluation (0 = sequential)")
	repeats = flag.Int("repeats", 3, "timing repetitions to average over")
	seed    = flag.Int64("seed", 1, "seed for the moment-check draws")
)

func main() {
	flag.Parse()

	d, err := nig.New(*alpha, *beta, *loc, *scale, *points)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	d.Workers = *workers

	// Exclude the one-time interpolant construction from the timings.
	start := time.Now()
	if err := d.Warm(); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	fmt.Printf("warm-up (grid construction): %v\n\n", time.Since(start))

	xPDF := floats.Span(make([]float64, *pdfN), -5*d.StdDev()+d.Mean(), 5*d.StdDev()+d.Mean())
	report("PDFEach", *pdfN, average(*repeats, func() {
		d.PDFEach(xPDF)
	}))

	xCDF := floats.Span(make([]float64, *cdfN), -5*d.StdDev()+d.Mean(), 5*d.StdDev()+d.Mean())
	report("CDFEach", *cdfN, average(*repeats, func() {
		if _, err := d.CDFEach(xCDF); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
	}))

	qs := floats.Span(make([]float64, *ppfN), 1e-4, 1-1e-4)
	report("InvCDFEach", *ppfN, average(*repeats, func() {
		if _, err := d.InvCDFEach(qs); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
	}))

	zs := floats.Span(make([]float64, *bridgeN), -5, 5)
	bridgeTime := average(*repeats, func() {
		if _, err := d.FromNormalEach(zs); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
	})
	report("FromNormalEach", *bridgeN, bridgeTime)

	// The composition the bridge replaces: a normal CDF plus a spline
	// inversion per element. Timed on a smaller batch and scaled.
	zSmall := floats.Span(make([]float64, *ppfN), -5, 5)
	compTime := average(*repeats, func() {
		qs := make([]float64, len(zSmall))
		for i, z := range zSmall {
			qs[i] = distuv.UnitNormal.CDF(z)
		}
		if _, err := d.InvCDFEach(qs); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
	})
	report("InvCDF(Φ(z))", *ppfN, compTime)
	perComp := compTime.Seconds() / float64(*ppfN)
	perBridge := bridgeTime.Seconds() / float64(*bridgeN)
	fmt.Printf("\nbridge speedup over InvCDF(Φ(z)): %.1fx\n\n", perComp/perBridge)

	momentCheck(d)
}

func average(repeats int, f func()) time.Duration {
	var total time.Duration
	for i := 0; i < repeats; i++ {
		start := time.Now()
		f()
		total += time.Since(start)
	}
	return total / time.Duration(repeats)
}

func report(name string, n int, avg time.Duration) {
	fmt.Printf("%-16s %12v per call  %10.1f ns per element  (n=%d)\n",
		name, avg, float64(avg.Nanoseconds())/float64(n), n)
}

// momentCheck maps standard-normal draws through the bridge and
// compares the sample mean and variance with the closed forms. The
// tolerances here are statistical, not numerical: with 2e5 draws a few
// standard errors of slack is expected.
func momentCheck(d *nig.Dist) {
	rng := rand.New(rand.NewSource(*seed))
	zs := make([]float64, *draws)
	for i := range zs {
		zs[i] = rng.NormFloat64()
	}
	xs, err := d.FromNormalEach(zs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	fmt.Printf("moment check over %d draws:\n", *draws)
	fmt.Printf("  mean     %12.6g  (closed form %12.6g)\n", stat.Mean(xs, nil), d.Mean())
	fmt.Printf("  variance %12.6g  (closed form %12.6g)\n", stat.Variance(xs, nil), d.Variance())
}
