// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Cauchy is a Cauchy (Lorentz) distribution with location X0 and
// scale Gamma.
//
// The distribution is long tailed and has no mean, variance,
// skewness, or kurtosis, so it implements none of those capabilities.
// It is unimodal and symmetric around X0.
type Cauchy struct {
	// X0 is the location parameter.
	X0 float64

	// Gamma is the scale parameter. Gamma > 0.
	Gamma float64
}

// NewCauchy returns the Cauchy distribution with location x0 and
// scale gamma. gamma must be positive.
func NewCauchy(x0, gamma float64) Cauchy {
	if !(gamma > 0) {
		panic("dist: cauchy scale must be positive")
	}
	return Cauchy{x0, gamma}
}

func (d Cauchy) PDF(x float64) float64 {
	z := x - d.X0
	return d.Gamma / (math.Pi * (d.Gamma*d.Gamma + z*z))
}

func (d Cauchy) CDF(x float64) float64 {
	return math.Atan((x-d.X0)/d.Gamma)/math.Pi + 0.5
}

func (d Cauchy) Bounds() (float64, float64) { return -inf, inf }

// InvCDF returns the quantile at p, with exact ±Inf at the
// boundaries rather than the huge finite values tan would produce.
func (d Cauchy) InvCDF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return d.X0 + d.Gamma*math.Tan(math.Pi*(p-0.5))
}

// Sample draws as the ratio of two standard normal draws, which is
// standard Cauchy distributed. Two source reads per draw.
func (d Cauchy) Sample(src source.Source) float64 {
	a := zInvCDF(source.Float64(src))
	b := zInvCDF(source.Float64(src))
	return d.X0 + d.Gamma*a/(math.Abs(b)+epsilon)
}

const epsilon = 2.220446049250313e-16

func (d Cauchy) Median() float64  { return d.X0 }
func (d Cauchy) Modes() []float64 { return []float64{d.X0} }

func (d Cauchy) Entropy() float64 {
	return math.Log(4 * math.Pi * d.Gamma)
}
