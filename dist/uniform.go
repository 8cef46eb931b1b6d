// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Uniform is a continuous uniform distribution on the interval
// [A, B].
type Uniform struct {
	// [A, B] is the support. A < B.
	A, B float64
}

// NewUniform returns the uniform distribution on [a, b]. It must hold
// that a < b.
func NewUniform(a, b float64) Uniform {
	if !(a < b) {
		panic("dist: uniform interval endpoints must be ordered")
	}
	return Uniform{a, b}
}

func (d Uniform) PDF(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	return 1 / (d.B - d.A)
}

func (d Uniform) CDF(x float64) float64 {
	switch {
	case x <= d.A:
		return 0
	case x >= d.B:
		return 1
	}
	return (x - d.A) / (d.B - d.A)
}

func (d Uniform) Bounds() (float64, float64) { return d.A, d.B }

func (d Uniform) InvCDF(p float64) float64 {
	checkProb(p)
	return d.A + (d.B-d.A)*p
}

func (d Uniform) Sample(src source.Source) float64 {
	return d.A + (d.B-d.A)*source.Float64(src)
}

func (d Uniform) Mean() float64     { return (d.A + d.B) / 2 }
func (d Uniform) Median() float64   { return (d.A + d.B) / 2 }
func (d Uniform) Skewness() float64 { return 0 }
func (d Uniform) Kurtosis() float64 { return -1.2 }

func (d Uniform) Variance() float64 {
	w := d.B - d.A
	return w * w / 12
}

func (d Uniform) Entropy() float64 {
	return math.Log(d.B - d.A)
}
