// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

import (
	"math"
	"testing"
)

func TestCDFMonotoneAndBounded(t *testing.T) {
	for _, p := range testParams {
		d, err := New(p.a, p.b, p.loc, p.scale, 200)
		if err != nil {
			t.Fatal(err)
		}
		lo, hi := d.Bounds()
		xs := linspace(lo-1, hi+1, 201)
		cdfs, err := d.CDFEach(xs)
		if err != nil {
			t.Errorf("params %+v: %v", p, err)
		}
		prev := 0.0
		for i, v := range cdfs {
			if math.IsNaN(v) || v < 0 || v > 1 {
				t.Fatalf("params %+v: cdf(%v) = %v outside [0,1]", p, xs[i], v)
			}
			if v < prev-1e-10 {
				t.Fatalf("params %+v: cdf decreases at %v: %v < %v", p, xs[i], v, prev)
			}
			prev = v
		}
		if cdfs[0] != 0 {
			t.Errorf("params %+v: cdf below the domain = %v, want 0", p, cdfs[0])
		}
		if cdfs[len(cdfs)-1] != 1 {
			t.Errorf("params %+v: cdf above the domain = %v, want 1", p, cdfs[len(cdfs)-1])
		}
	}
}

// For the symmetric case the mean, median, and mode coincide at loc, so
// the CDF there is exactly one half.
func TestCDFSymmetricCenter(t *testing.T) {
	d := symNIG(t)
	if got := d.CDF(0); !aeq(0.5, got, 1e-9) {
		t.Errorf("cdf(0) = %v, want 0.5", got)
	}
	// And the two tails must mirror: F(-x) == 1 - F(x).
	for _, x := range []float64{0.2, 0.7, 1.5, 3} {
		l, r := d.CDF(-x), d.CDF(x)
		if !aeq(1, l+r, 1e-9) {
			t.Errorf("cdf(%v)+cdf(%v) = %v, want 1", -x, x, l+r)
		}
	}
}

func TestCDFEmptyAndSingle(t *testing.T) {
	d := symNIG(t)

	out, err := d.CDFEach(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("CDFEach(nil) returned %d values, want 0", len(out))
	}

	out, err = d.CDFEach([]float64{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("CDFEach(empty) returned %d values, want 0", len(out))
	}

	out, err = d.CDFEach([]float64{0})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || !aeq(0.5, out[0], 1e-9) {
		t.Errorf("CDFEach([0]) = %v, want [0.5]", out)
	}

	if empty := d.PDFEach(nil); len(empty) != 0 {
		t.Errorf("PDFEach(nil) returned %d values, want 0", len(empty))
	}
}

func TestCDFNaN(t *testing.T) {
	d := symNIG(t)
	if got := d.CDF(math.NaN()); !math.IsNaN(got) {
		t.Errorf("CDF(NaN) = %v, want NaN", got)
	}
}
