// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

// The sweeps below reproduce the reference-minus-approximation harness the
// algorithms were originally validated against: evaluate over a range of
// inputs, compare against the trusted stdlib implementation and bound the
// error statistics.

func summarize(t *testing.T, name string, errs []float64, maxBound, meanBound float64) {
	t.Helper()
	max, err := stats.Max(errs)
	require.NoError(t, err)
	mean, err := stats.Mean(errs)
	require.NoError(t, err)
	t.Logf("%s: %d samples, mean error %.3g, max error %.3g", name, len(errs), mean, max)
	require.Less(t, max, maxBound)
	require.Less(t, mean, meanBound)
}

func TestLnPrecision(t *testing.T) {
	var errs []float64
	for x := 0.001; x < 1000; x *= 1.25 {
		v, err := defaultContext.Ln(x)
		require.NoError(t, err)
		errs = append(errs, math.Abs(v-math.Log(x)))
	}
	summarize(t, "ln", errs, 1e-10, 1e-11)
}

func TestExpPrecision(t *testing.T) {
	var errs []float64
	for x := -19.0; x < 19; x += 0.63 {
		v, err := defaultContext.Exp(x)
		require.NoError(t, err)
		errs = append(errs, math.Abs(v-math.Exp(x))/math.Exp(x))
	}
	summarize(t, "exp", errs, 1e-10, 1e-11)
}

func TestSqrtPrecision(t *testing.T) {
	var errs []float64
	for x := 0.0007; x < 1e12; x *= 1.61 {
		v, err := defaultContext.Sqrt(x)
		require.NoError(t, err)
		errs = append(errs, math.Abs(v*v-x)/x)
	}
	summarize(t, "sqrt", errs, 1e-14, 1e-15)
}

func TestTanPrecision(t *testing.T) {
	// Keep clear of the asymptote at π/2, where y/x amplifies any error.
	var errs []float64
	for x := 0.05; x < 1.45; x += 0.028 {
		v, err := defaultContext.Tan(x)
		require.NoError(t, err)
		errs = append(errs, math.Abs(v-math.Tan(x))/math.Abs(math.Tan(x)))
	}
	summarize(t, "tan", errs, 1e-10, 1e-11)
}

func TestAtanPrecision(t *testing.T) {
	var errs []float64
	for x := -40.0; x < 40; x += 1.3 {
		v, err := defaultContext.Atan(x)
		require.NoError(t, err)
		errs = append(errs, math.Abs(v-math.Atan(x)))
	}
	summarize(t, "atan", errs, 1e-12, 1e-13)
}
