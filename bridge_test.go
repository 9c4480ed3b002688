// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// The bridge must agree with the two-step composition InvCDF(Φ(z)) it
// replaces. The hardest stretch is the end of the z range, where the
// mapping curves quadratically and a uniform grid falls short; the grid
// refinement exists for exactly these points.
func TestBridgeMatchesComposition(t *testing.T) {
	d := refNIG(t)
	zs := linspace(-5, 5, 10001)
	got, err := d.FromNormalEach(zs)
	if err != nil {
		t.Fatal(err)
	}
	for i, z := range zs {
		want, err := d.InvCDF(distuv.UnitNormal.CDF(z))
		if err != nil {
			t.Fatal(err)
		}
		if !aeq(want, got[i], 1e-7) {
			t.Errorf("FromNormal(%v) = %v, want %v (off by %v)", z, got[i], want, got[i]-want)
		}
	}
}

// The bridge resolution comes from its own accuracy target, so the
// composition match must hold just as tightly when the CDF-inversion
// grid is coarse.
func TestBridgeMatchesCompositionCoarseGrid(t *testing.T) {
	d, err := New(3, 1.5, 0, 1, 200)
	require.NoError(t, err)
	zs := linspace(-5, 5, 2001)
	got, err := d.FromNormalEach(zs)
	if err != nil {
		t.Fatal(err)
	}
	for i, z := range zs {
		want, err := d.InvCDF(distuv.UnitNormal.CDF(z))
		if err != nil {
			t.Fatal(err)
		}
		if !aeq(want, got[i], 1e-7) {
			t.Errorf("FromNormal(%v) = %v, want %v (off by %v)", z, got[i], want, got[i]-want)
		}
	}
}

// Φ and the quantile function are both strictly increasing, so over a
// fine grid every consecutive difference must stay positive with real
// margin, not just non-negative.
func TestBridgeStrictlyIncreasing(t *testing.T) {
	d := refNIG(t)
	zs := linspace(-5, 5, 1_000_001)
	xs, err := d.FromNormalEach(zs)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i]-xs[i-1] < 1e-8 {
			t.Fatalf("bridge nearly flat at z=%v: step %v", zs[i], xs[i]-xs[i-1])
		}
	}
}

// Beyond the grid the bridge clamps to its boundary values rather than
// extrapolating.
func TestBridgeClamp(t *testing.T) {
	d := symNIG(t)
	left, err := d.FromNormal(-bridgeZMax)
	require.NoError(t, err)
	right, err := d.FromNormal(bridgeZMax)
	require.NoError(t, err)
	for _, z := range []float64{-50, -bridgeZMax - 1, math.Inf(-1)} {
		v, err := d.FromNormal(z)
		require.NoError(t, err)
		assert.Equal(t, left, v, "FromNormal(%v)", z)
	}
	for _, z := range []float64{50, bridgeZMax + 1, math.Inf(1)} {
		v, err := d.FromNormal(z)
		require.NoError(t, err)
		assert.Equal(t, right, v, "FromNormal(%v)", z)
	}
}

func TestBridgeNaN(t *testing.T) {
	d := symNIG(t)
	_, err := d.FromNormal(math.NaN())
	assert.ErrorIs(t, err, ErrOutOfRange)

	res, err := d.FromNormalEach([]float64{0, math.NaN(), 1})
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Nil(t, res)
}

func TestBridgeEmpty(t *testing.T) {
	d := symNIG(t)
	out, err := d.FromNormalEach(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// First use from many goroutines at once must build the interpolants
// exactly once and give every caller the same answer.
func TestBridgeConcurrentFirstUse(t *testing.T) {
	d, err := New(3, 1.5, 0, 1, 801)
	if err != nil {
		t.Fatal(err)
	}
	const workers = 16
	vals := make([]float64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			vals[i], errs[i] = d.FromNormal(0.5)
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		if vals[i] != vals[0] {
			t.Errorf("goroutine %d saw %v, goroutine 0 saw %v", i, vals[i], vals[0])
		}
	}
}
