// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/probkit/probkit/source"
)

// Beta is a beta distribution with shape parameters Alpha and Beta,
// generalized to the interval [A, B].
type Beta struct {
	// Alpha and Beta are the shape parameters. Both positive.
	Alpha, Beta float64

	// [A, B] is the support. A < B.
	A, B float64

	lnBeta float64
}

// NewBeta returns the beta distribution with shapes alpha and beta on
// the interval [a, b]. It must hold that alpha > 0, beta > 0, and
// a < b.
func NewBeta(alpha, beta, a, b float64) Beta {
	if !(alpha > 0 && beta > 0) {
		panic("dist: beta shape parameters must be positive")
	}
	if !(a < b) {
		panic("dist: beta interval endpoints must be ordered")
	}
	return Beta{alpha, beta, a, b, mathext.Lbeta(alpha, beta)}
}

func (d Beta) PDF(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	scale := d.B - d.A
	y := (x - d.A) / scale
	return math.Exp((d.Alpha-1)*math.Log(y)+(d.Beta-1)*math.Log1p(-y)-d.lnBeta) / scale
}

func (d Beta) CDF(x float64) float64 {
	if x <= d.A {
		return 0
	}
	if x >= d.B {
		return 1
	}
	return mathext.RegIncBeta(d.Alpha, d.Beta, (x-d.A)/(d.B-d.A))
}

func (d Beta) Bounds() (float64, float64) {
	return d.A, d.B
}

func (d Beta) InvCDF(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return d.A
	case 1:
		return d.B
	}
	return d.A + (d.B-d.A)*mathext.InvRegIncBeta(d.Alpha, d.Beta, p)
}

func (d Beta) Mean() float64 {
	return d.A + (d.B-d.A)*d.Alpha/(d.Alpha+d.Beta)
}

func (d Beta) Variance() float64 {
	scale := d.B - d.A
	sum := d.Alpha + d.Beta
	return scale * scale * d.Alpha * d.Beta / (sum * sum * (sum + 1))
}

func (d Beta) Skewness() float64 {
	sum := d.Alpha + d.Beta
	return 2 * (d.Beta - d.Alpha) * math.Sqrt(sum+1) /
		((sum + 2) * math.Sqrt(d.Alpha*d.Beta))
}

func (d Beta) Kurtosis() float64 {
	sum := d.Alpha + d.Beta
	delta := d.Alpha - d.Beta
	product := d.Alpha * d.Beta
	return 6 * (delta*delta*(sum+1) - product*(sum+2)) /
		(product * (sum + 2) * (sum + 3))
}

func (d Beta) Median() float64 {
	switch {
	case d.Alpha == d.Beta:
		return d.A + 0.5*(d.B-d.A)
	case d.Alpha > 1 && d.Beta > 1:
		// Accurate closed-form approximation for the interior
		// shape regime.
		return d.A + (d.B-d.A)*(d.Alpha-1.0/3)/(d.Alpha+d.Beta-2.0/3)
	}
	return d.InvCDF(0.5)
}

func (d Beta) Modes() []float64 {
	alpha, beta := d.Alpha, d.Beta
	switch {
	case alpha == 1 && beta == 1:
		return nil
	case alpha < 1 && beta < 1:
		return []float64{d.A, d.B}
	case alpha < 1 || (alpha == 1 && beta > 1):
		return []float64{d.A}
	case beta < 1 || (beta == 1 && alpha > 1):
		return []float64{d.B}
	}
	return []float64{d.A + (d.B-d.A)*(alpha-1)/(alpha+beta-2)}
}

func (d Beta) Entropy() float64 {
	sum := d.Alpha + d.Beta
	return math.Log(d.B-d.A) + d.lnBeta -
		(d.Alpha-1)*mathext.Digamma(d.Alpha) -
		(d.Beta-1)*mathext.Digamma(d.Beta) +
		(sum-2)*mathext.Digamma(sum)
}

// Sample draws as X/(X+Y) for independent standard gamma draws with
// shapes Alpha and Beta, rescaled to [A, B]. The number of source
// reads per draw is variable.
func (d Beta) Sample(src source.Source) float64 {
	x := gammaSample(d.Alpha, src)
	y := gammaSample(d.Beta, src)
	return d.A + (d.B-d.A)*x/(x+y)
}
