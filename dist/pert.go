// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/probkit/probkit/source"
)

// Pert is a PERT distribution on [A, C] with most likely value B: the
// beta distribution with shapes chosen so that the mean is
// (A + 4B + C)/6.
type Pert struct {
	// A < B < C. A and C are the support endpoints, B the mode.
	A, B, C float64

	alpha, beta, lnBeta float64
}

// NewPert returns the PERT distribution with minimum a, most likely
// value b, and maximum c. It must hold that a < b < c.
func NewPert(a, b, c float64) Pert {
	if !(a < b && b < c) {
		panic("dist: pert parameters must be ordered")
	}
	alpha := (4*b + c - 5*a) / (c - a)
	beta := (5*c - a - 4*b) / (c - a)
	return Pert{a, b, c, alpha, beta, mathext.Lbeta(alpha, beta)}
}

// Alpha returns the first shape parameter of the equivalent beta
// distribution.
func (d Pert) Alpha() float64 { return d.alpha }

// BetaShape returns the second shape parameter of the equivalent beta
// distribution.
func (d Pert) BetaShape() float64 { return d.beta }

func (d Pert) PDF(x float64) float64 {
	if x < d.A || x > d.C {
		return 0
	}
	scale := d.C - d.A
	y := (x - d.A) / scale
	return math.Exp((d.alpha-1)*math.Log(y)+(d.beta-1)*math.Log1p(-y)-d.lnBeta) / scale
}

func (d Pert) CDF(x float64) float64 {
	if x <= d.A {
		return 0
	}
	if x >= d.C {
		return 1
	}
	return mathext.RegIncBeta(d.alpha, d.beta, (x-d.A)/(d.C-d.A))
}

func (d Pert) Bounds() (float64, float64) { return d.A, d.C }

func (d Pert) InvCDF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return d.A
	case 1:
		return d.C
	}
	return d.A + (d.C-d.A)*mathext.InvRegIncBeta(d.alpha, d.beta, p)
}

// Sample draws through the gamma kernel of the equivalent beta
// distribution. The number of source reads per draw is variable.
func (d Pert) Sample(src source.Source) float64 {
	x := gammaSample(d.alpha, src)
	y := gammaSample(d.beta, src)
	return d.A + (d.C-d.A)*x/(x+y)
}

func (d Pert) Mean() float64 {
	return (d.A + 4*d.B + d.C) / 6
}

func (d Pert) Variance() float64 {
	scale := d.C - d.A
	sum := d.alpha + d.beta
	return scale * scale * d.alpha * d.beta / (sum * sum * (sum + 1))
}

func (d Pert) Skewness() float64 {
	sum := d.alpha + d.beta
	return 2 * (d.beta - d.alpha) * math.Sqrt(sum+1) /
		((sum + 2) * math.Sqrt(d.alpha*d.beta))
}

func (d Pert) Kurtosis() float64 {
	sum := d.alpha + d.beta
	delta := d.alpha - d.beta
	product := d.alpha * d.beta
	return 6 * (delta*delta*(sum+1) - product*(sum+2)) /
		(product * (sum + 2) * (sum + 3))
}

func (d Pert) Median() float64 { return d.InvCDF(0.5) }

func (d Pert) Modes() []float64 { return []float64{d.B} }

func (d Pert) Entropy() float64 {
	sum := d.alpha + d.beta
	return math.Log(d.C-d.A) + d.lnBeta -
		(d.alpha-1)*mathext.Digamma(d.alpha) -
		(d.beta-1)*mathext.Digamma(d.beta) +
		(sum-2)*mathext.Digamma(sum)
}
