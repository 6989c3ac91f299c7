// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

import (
	"math"
	"math/big"
	"sync"

	"github.com/ALTree/bigfloat"
)

// tableCap is the number of entries generated per constant table. A Context
// selects a working prefix of at most tableCap entries; see SetTableLen.
const tableCap = 9

// constPrec is the big.Float precision, in bits, used while the tables are
// built. It leaves well over a word of guard bits above float64.
const constPrec = 96

// π, comfortably more digits than constPrec can absorb.
const piString = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651328230664709384460955058223172535940812848111745028410270193852110555964462294895493038196"

// logTable drives the Ln and Exp digit extraction: shrinking ratios
// 2, 1.1, 1.01, … approaching 1, each paired with its natural logarithm.
// Each entry contributes roughly one decimal order of magnitude to the
// result. Exp additionally consumes ln10 as its leading table entry.
type logTable struct {
	ratio [tableCap]float64
	log   [tableCap]float64
	ln10  float64
}

// trigTable drives the Tan rotation and Atan vectoring: shrinking
// pseudo-rotation ratios 1, 0.1, 0.01, … paired with their arctangents.
type trigTable struct {
	ratio [tableCap]float64
	atan  [tableCap]float64
	twoPi float64
}

var (
	tablesOnce sync.Once
	logTab     logTable
	trigTab    trigTable
)

// tables returns the shared constant tables, building them on first use.
// The tables are never mutated after construction.
func tables() (*logTable, *trigTable) {
	tablesOnce.Do(buildTables)
	return &logTab, &trigTab
}

func buildTables() {
	pi, _ := new(big.Float).SetPrec(constPrec).SetString(piString)
	ten := new(big.Float).SetPrec(constPrec).SetUint64(10)

	logTab.ln10, _ = bigfloat.Log(ten).Float64()
	for j := 0; j < tableCap; j++ {
		r := 2.0
		if j > 0 {
			r = 1 + math.Pow10(-j)
		}
		logTab.ratio[j] = r
		// Take the logarithm of the float64 ratio actually used during
		// extraction, not of the exact decimal value it approximates.
		rb := new(big.Float).SetPrec(constPrec).SetFloat64(r)
		logTab.log[j], _ = bigfloat.Log(rb).Float64()
	}

	trigTab.ratio[0] = 1
	trigTab.atan[0], _ = new(big.Float).SetPrec(constPrec).Quo(pi, big.NewFloat(4)).Float64()
	for j := 1; j < tableCap; j++ {
		r := math.Pow10(-j)
		trigTab.ratio[j] = r
		rb := new(big.Float).SetPrec(constPrec).SetFloat64(r)
		trigTab.atan[j], _ = atanSeries(rb).Float64()
	}
	trigTab.twoPi, _ = new(big.Float).SetPrec(constPrec).Add(pi, pi).Float64()

	if !monotoneDesc(logTab.log[:]) || !monotoneDesc(trigTab.atan[:]) {
		panic("nummethods: constant tables are not monotonically decreasing")
	}
}

// atanSeries returns atan(x) for 0 < x <= 0.1 using the Maclaurin series
//
//	atan(x) = x - x³/3 + x⁵/5 - …
//
// Successive terms shrink by at least x², so a handful of terms reach
// constPrec bits for the table arguments.
func atanSeries(x *big.Float) *big.Float {
	var (
		sum     = new(big.Float).SetPrec(constPrec).Set(x)
		xn      = new(big.Float).SetPrec(constPrec).Set(x)
		x2      = new(big.Float).SetPrec(constPrec).Mul(x, x)
		term    = new(big.Float).SetPrec(constPrec)
		d       = new(big.Float).SetPrec(constPrec)
		epsilon = new(big.Float).SetMantExp(big.NewFloat(1), -constPrec)
	)
	for n, neg := int64(3), true; ; n, neg = n+2, !neg {
		xn.Mul(xn, x2)
		term.Quo(xn, d.SetInt64(n))
		if neg {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if term.Cmp(epsilon) < 0 {
			return sum
		}
	}
}
