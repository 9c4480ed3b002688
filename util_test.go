// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

import (
	"sync"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// aeq reports whether got is within tol of want.
func aeq(want, got, tol float64) bool {
	d := want - got
	return -tol <= d && d <= tol
}

// Parameter sets exercised by the property tests: the bench scenario,
// wide and narrow scales, strong asymmetry, and the symmetric case.
var testParams = []struct {
	a, b, loc, scale float64
}{
	{3, 1.5, 0, 1},
	{12, 4, 1.0, 10},
	{7, 3, -5.0, 0.5},
	{10, 0, 0, 1},
}

// refNIG is the reference scenario (a=3, b=1.5, loc=0, scale=1) with a
// grid fine enough for 1e-8 quantile round trips. Building it costs a
// few seconds, so the tests share one warmed instance; its steady state
// is read-only.
func refNIG(t *testing.T) *Dist {
	t.Helper()
	refOnce.Do(func() {
		d, err := New(3, 1.5, 0, 1, 20001)
		if err != nil {
			refErr = err
			return
		}
		if err := d.Warm(); err != nil {
			refErr = err
			return
		}
		refDist = d
	})
	if refErr != nil {
		t.Fatalf("building reference distribution: %v", refErr)
	}
	return refDist
}

var (
	refOnce sync.Once
	refDist *Dist
	refErr  error
)

// symNIG is the symmetric case (a=10, b=0, loc=0, scale=1).
func symNIG(t *testing.T) *Dist {
	t.Helper()
	symOnce.Do(func() {
		d, err := New(10, 0, 0, 1, 4001)
		if err != nil {
			symErr = err
			return
		}
		symDist = d
	})
	if symErr != nil {
		t.Fatalf("building symmetric distribution: %v", symErr)
	}
	return symDist
}

var (
	symOnce sync.Once
	symDist *Dist
	symErr  error
)

// linspace returns n evenly spaced values over [lo, hi], inclusive.
func linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}
