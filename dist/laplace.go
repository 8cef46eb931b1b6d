// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Laplace is a Laplace (double exponential) distribution with
// location Mu and scale B.
type Laplace struct {
	// Mu is the location parameter.
	Mu float64

	// B is the scale parameter. B > 0.
	B float64
}

// NewLaplace returns the Laplace distribution with location mu and
// scale b. b must be positive.
func NewLaplace(mu, b float64) Laplace {
	if !(b > 0) {
		panic("dist: laplace scale must be positive")
	}
	return Laplace{mu, b}
}

func (d Laplace) PDF(x float64) float64 {
	return math.Exp(-math.Abs(x-d.Mu)/d.B) / (2 * d.B)
}

func (d Laplace) CDF(x float64) float64 {
	if x <= d.Mu {
		return 0.5 * math.Exp((x-d.Mu)/d.B)
	}
	return 1 - 0.5*math.Exp(-(x-d.Mu)/d.B)
}

func (d Laplace) Bounds() (float64, float64) { return -inf, inf }

func (d Laplace) InvCDF(p float64) float64 {
	checkProb(p)
	if p > 0.5 {
		if p == 1 {
			return inf
		}
		return d.Mu - d.B*math.Log(2-2*p)
	}
	if p == 0 {
		return -inf
	}
	return d.Mu + d.B*math.Log(2*p)
}

func (d Laplace) Sample(src source.Source) float64 {
	return d.InvCDF(source.Float64(src))
}

func (d Laplace) Mean() float64     { return d.Mu }
func (d Laplace) Median() float64   { return d.Mu }
func (d Laplace) Modes() []float64  { return []float64{d.Mu} }
func (d Laplace) Variance() float64 { return 2 * d.B * d.B }
func (d Laplace) Skewness() float64 { return 0 }
func (d Laplace) Kurtosis() float64 { return 3 }

func (d Laplace) Entropy() float64 {
	return math.Log(2 * math.E * d.B)
}
