// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Exponential is an exponential distribution with rate Lambda.
type Exponential struct {
	// Lambda is the rate parameter. Lambda > 0.
	Lambda float64
}

// NewExponential returns the exponential distribution with rate
// lambda. lambda must be positive.
func NewExponential(lambda float64) Exponential {
	if !(lambda > 0) {
		panic("dist: exponential rate must be positive")
	}
	return Exponential{lambda}
}

func (d Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-d.Lambda * x)
}

func (d Exponential) Bounds() (float64, float64) { return 0, inf }

func (d Exponential) InvCDF(p float64) float64 {
	checkProb(p)
	return -math.Log1p(-p) / d.Lambda
}

func (d Exponential) Sample(src source.Source) float64 {
	return -math.Log1p(-source.Float64(src)) / d.Lambda
}

func (d Exponential) Mean() float64     { return 1 / d.Lambda }
func (d Exponential) Variance() float64 { return 1 / (d.Lambda * d.Lambda) }
func (d Exponential) Skewness() float64 { return 2 }
func (d Exponential) Kurtosis() float64 { return 6 }
func (d Exponential) Median() float64   { return math.Ln2 / d.Lambda }
func (d Exponential) Modes() []float64  { return []float64{0} }

func (d Exponential) Entropy() float64 {
	return 1 - math.Log(d.Lambda)
}
