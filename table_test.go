// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestTablesBuildOnce(t *testing.T) {
	lt1, tt1 := tables()
	lt2, tt2 := tables()
	require.Same(t, lt1, lt2)
	require.Same(t, tt1, tt2)
}

func TestLogTable(t *testing.T) {
	lt, _ := tables()

	require.True(t, monotoneDesc(lt.ratio[:]), "ratios must shrink toward 1")
	require.Equal(t, 2.0, lt.ratio[0])

	// The table is built with bigfloat, which may legitimately differ from
	// the stdlib by an ulp — no more.
	want := make([]float64, tableCap)
	for j, r := range lt.ratio {
		want[j] = math.Log(r)
	}
	if diff := cmp.Diff(want, lt.log[:], cmpopts.EquateApprox(1e-14, 0)); diff != "" {
		t.Errorf("ratio logarithms mismatch (-stdlib +table):\n%s", diff)
	}
	require.InDelta(t, math.Log(10), lt.ln10, 1e-15)
}

func TestTrigTable(t *testing.T) {
	_, tt := tables()

	require.True(t, monotoneDesc(tt.ratio[:]), "rotation ratios must shrink toward 0")
	require.Equal(t, 1.0, tt.ratio[0])
	require.Equal(t, math.Pi/4, tt.atan[0])
	require.Equal(t, 2*math.Pi, tt.twoPi)

	want := make([]float64, tableCap)
	for j, r := range tt.ratio {
		want[j] = math.Atan(r)
	}
	if diff := cmp.Diff(want, tt.atan[:], cmpopts.EquateApprox(1e-14, 0)); diff != "" {
		t.Errorf("arctangents mismatch (-stdlib +table):\n%s", diff)
	}
}
