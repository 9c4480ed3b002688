// Copyright 2026 The go-nig Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nig

import "golang.org/x/sync/errgroup"

// parallelMin is the batch size below which the Each methods stay
// sequential regardless of Workers; goroutine overhead dominates under
// this point.
const parallelMin = 256

// forEach runs fn over [0, n) either sequentially or chopped into one
// contiguous chunk per worker. Chunks share no state beyond the
// read-only parameter set and interpolants, so fn must only write its
// own index range.
func (d *Dist) forEach(n int, fn func(lo, hi int)) {
	w := d.Workers
	if w <= 1 || n < parallelMin {
		fn(0, n)
		return
	}
	if w > n {
		w = n
	}
	var g errgroup.Group
	chunk := (n + w - 1) / w
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	// Workers cannot fail; Wait only joins them.
	_ = g.Wait()
}
