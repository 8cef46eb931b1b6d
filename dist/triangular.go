// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Triangular is a triangular distribution on [A, B] with mode C.
type Triangular struct {
	// [A, B] is the support. A < B.
	A, B float64

	// C is the mode. A <= C <= B.
	C float64
}

// NewTriangular returns the triangular distribution on [a, b] with
// mode c. It must hold that a < b and a <= c <= b.
func NewTriangular(a, b, c float64) Triangular {
	if !(a < b) {
		panic("dist: triangular interval endpoints must be ordered")
	}
	if !(a <= c && c <= b) {
		panic("dist: triangular mode must lie in the interval")
	}
	return Triangular{a, b, c}
}

func (d Triangular) PDF(x float64) float64 {
	a, b, c := d.A, d.B, d.C
	switch {
	case x < a, x > b:
		return 0
	case x == c:
		return 2 / (b - a)
	case x < c:
		return 2 * (x - a) / ((b - a) * (c - a))
	}
	return 2 * (b - x) / ((b - a) * (b - c))
}

func (d Triangular) CDF(x float64) float64 {
	a, b, c := d.A, d.B, d.C
	switch {
	case x <= a:
		return 0
	case x >= b:
		return 1
	case x <= c:
		return (x - a) * (x - a) / ((b - a) * (c - a))
	}
	return 1 - (b-x)*(b-x)/((b-a)*(b-c))
}

func (d Triangular) Bounds() (float64, float64) { return d.A, d.B }

func (d Triangular) InvCDF(p float64) float64 {
	checkProb(p)
	a, b, c := d.A, d.B, d.C
	switch pc := (c - a) / (b - a); {
	case p == 0:
		return a
	case p == 1:
		return b
	case p < pc:
		return a + math.Sqrt(p*(b-a)*(c-a))
	case p > pc:
		return b - math.Sqrt((1-p)*(b-a)*(b-c))
	}
	return c
}

func (d Triangular) Sample(src source.Source) float64 {
	return d.InvCDF(source.Float64(src))
}

func (d Triangular) Mean() float64 {
	return (d.A + d.B + d.C) / 3
}

func (d Triangular) Variance() float64 {
	a, b, c := d.A, d.B, d.C
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

func (d Triangular) Skewness() float64 {
	a, b, c := d.A, d.B, d.C
	num := (a + b - 2*c) * (2*a - b - c) * (a - 2*b + c)
	den := a*a + b*b + c*c - a*b - a*c - b*c
	return math.Sqrt2 * num / (5 * math.Pow(den, 1.5))
}

func (d Triangular) Kurtosis() float64 { return -0.6 }

func (d Triangular) Median() float64 {
	a, b, c := d.A, d.B, d.C
	if c >= (a+b)/2 {
		return a + math.Sqrt((b-a)*(c-a)/2)
	}
	return b - math.Sqrt((b-a)*(b-c)/2)
}

func (d Triangular) Modes() []float64 { return []float64{d.C} }

func (d Triangular) Entropy() float64 {
	return 0.5 + math.Log((d.B-d.A)/2)
}
