// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/probkit/probkit/source"
)

// Gamma is a gamma distribution with shape K and scale Theta.
type Gamma struct {
	// K is the shape parameter. K > 0.
	K float64

	// Theta is the scale parameter. Theta > 0.
	Theta float64

	// ln(Γ(K)·Theta^K), the log of the density normalizer.
	lnNorm float64
}

// NewGamma returns the gamma distribution with shape k and scale
// theta. Both must be positive.
func NewGamma(k, theta float64) Gamma {
	if !(k > 0) {
		panic("dist: gamma shape must be positive")
	}
	if !(theta > 0) {
		panic("dist: gamma scale must be positive")
	}
	lg, _ := math.Lgamma(k)
	return Gamma{k, theta, lg + k*math.Log(theta)}
}

func (d Gamma) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Exp((d.K-1)*math.Log(x) - x/d.Theta - d.lnNorm)
}

func (d Gamma) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncReg(d.K, x/d.Theta)
}

func (d Gamma) Bounds() (float64, float64) {
	return 0, inf
}

func (d Gamma) InvCDF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	return d.Theta * mathext.GammaIncRegInv(d.K, p)
}

func (d Gamma) Mean() float64     { return d.K * d.Theta }
func (d Gamma) Variance() float64 { return d.K * d.Theta * d.Theta }
func (d Gamma) Skewness() float64 { return 2 / math.Sqrt(d.K) }
func (d Gamma) Kurtosis() float64 { return 6 / d.K }
func (d Gamma) Median() float64   { return d.InvCDF(0.5) }

func (d Gamma) Modes() []float64 {
	if d.K < 1 {
		return []float64{0}
	}
	return []float64{(d.K - 1) * d.Theta}
}

func (d Gamma) Entropy() float64 {
	lg, _ := math.Lgamma(d.K)
	return d.K + math.Log(d.Theta) + lg + (1-d.K)*mathext.Digamma(d.K)
}

// Sample draws by rejection sampling. The number of source reads per
// draw is variable.
func (d Gamma) Sample(src source.Source) float64 {
	return d.Theta * gammaSample(d.K, src)
}

// gammaSample draws from the standard gamma distribution with shape k
// using the Marsaglia-Tsang method. Rejection makes the read count
// per draw variable; termination is almost sure but unbounded.
//
// G. Marsaglia and W. W. Tsang, "A simple method for generating gamma
// variables", ACM Transactions on Mathematical Software, vol. 26,
// no. 3, pp. 363-372, 2000.
func gammaSample(k float64, src source.Source) float64 {
	if k < 1 {
		// Boost: a Gamma(1+k) draw scaled by U^(1/k) is a
		// Gamma(k) draw. The recursion terminates immediately
		// since 1+k >= 1.
		return gammaSample(1+k, src) * math.Pow(source.Float64(src), 1/k)
	}

	d := k - 1.0/3
	c := (1.0 / 3) / math.Sqrt(d)

	for {
		x := zInvCDF(source.Float64(src))
		v := 1 + c*x
		if v <= 0 {
			continue
		}

		x *= x
		v = v * v * v

		for {
			u := source.Float64(src)
			if u == 0 {
				continue
			}
			// Squeeze, then the exact acceptance test.
			if u < 1-0.0331*x*x {
				return d * v
			}
			if math.Log(u) < 0.5*x+d*(1-v+math.Log(v)) {
				return d * v
			}
			break
		}
	}
}
