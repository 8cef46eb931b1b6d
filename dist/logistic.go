// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Logistic is a logistic distribution with location Mu and scale S.
type Logistic struct {
	// Mu is the location parameter.
	Mu float64

	// S is the scale parameter. S > 0.
	S float64
}

// NewLogistic returns the logistic distribution with location mu and
// scale s. s must be positive.
func NewLogistic(mu, s float64) Logistic {
	if !(s > 0) {
		panic("dist: logistic scale must be positive")
	}
	return Logistic{mu, s}
}

func (d Logistic) PDF(x float64) float64 {
	e := math.Exp(-(x - d.Mu) / d.S)
	return e / (d.S * (1 + e) * (1 + e))
}

func (d Logistic) CDF(x float64) float64 {
	return 1 / (1 + math.Exp(-(x-d.Mu)/d.S))
}

func (d Logistic) Bounds() (float64, float64) { return -inf, inf }

func (d Logistic) InvCDF(p float64) float64 {
	checkProb(p)
	return d.Mu - d.S*math.Log(1/p-1)
}

func (d Logistic) Sample(src source.Source) float64 {
	return d.InvCDF(source.Float64(src))
}

func (d Logistic) Mean() float64     { return d.Mu }
func (d Logistic) Median() float64   { return d.Mu }
func (d Logistic) Modes() []float64  { return []float64{d.Mu} }
func (d Logistic) Skewness() float64 { return 0 }
func (d Logistic) Kurtosis() float64 { return 1.2 }

func (d Logistic) Variance() float64 {
	return math.Pi * math.Pi * d.S * d.S / 3
}

func (d Logistic) Entropy() float64 {
	return math.Log(d.S) + 2
}
