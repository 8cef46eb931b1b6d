// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Lognormal is the distribution of exp(X) for X normal with location
// Mu and scale Sigma.
type Lognormal struct {
	// Mu is the location parameter (mean of the underlying
	// normal).
	Mu float64

	// Sigma is the scale parameter (standard deviation of the
	// underlying normal). Sigma > 0.
	Sigma float64

	normal Normal
}

// NewLognormal returns the lognormal distribution with location mu
// and scale sigma. sigma must be positive.
func NewLognormal(mu, sigma float64) Lognormal {
	if !(sigma > 0) {
		panic("dist: lognormal scale must be positive")
	}
	return Lognormal{mu, sigma, Normal{mu, sigma}}
}

func (d Lognormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := math.Log(x) - d.Mu
	return math.Exp(-z*z/(2*d.Sigma*d.Sigma)) * invSqrt2Pi / (x * d.Sigma)
}

func (d Lognormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.normal.CDF(math.Log(x))
}

func (d Lognormal) Bounds() (float64, float64) { return 0, inf }

// InvCDF returns the quantile at p. InvCDF(0) is 0, the support
// infimum.
func (d Lognormal) InvCDF(p float64) float64 {
	return math.Exp(d.normal.InvCDF(p))
}

func (d Lognormal) Sample(src source.Source) float64 {
	return math.Exp(d.normal.Sample(src))
}

func (d Lognormal) Mean() float64 {
	return math.Exp(d.Mu + d.Sigma*d.Sigma/2)
}

func (d Lognormal) Variance() float64 {
	s2 := d.Sigma * d.Sigma
	return math.Expm1(s2) * math.Exp(2*d.Mu+s2)
}

func (d Lognormal) Skewness() float64 {
	es2 := math.Exp(d.Sigma * d.Sigma)
	return (es2 + 2) * math.Sqrt(es2-1)
}

func (d Lognormal) Kurtosis() float64 {
	s2 := d.Sigma * d.Sigma
	return math.Exp(4*s2) + 2*math.Exp(3*s2) + 3*math.Exp(2*s2) - 6
}

func (d Lognormal) Median() float64 { return math.Exp(d.Mu) }

func (d Lognormal) Modes() []float64 {
	return []float64{math.Exp(d.Mu - d.Sigma*d.Sigma)}
}

func (d Lognormal) Entropy() float64 {
	return d.Mu + 0.5 + math.Log(d.Sigma/invSqrt2Pi)
}
