// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Bernoulli is a Bernoulli distribution over the outcomes {0, 1}.
type Bernoulli struct {
	// P is the probability of 1. 0 < P < 1.
	P float64

	q, pq float64
}

// NewBernoulli returns the Bernoulli distribution with success
// probability p. It must hold that 0 < p < 1.
func NewBernoulli(p float64) Bernoulli {
	if !(0 < p && p < 1) {
		panic("dist: bernoulli success probability must be in (0, 1)")
	}
	return Bernoulli{p, 1 - p, p * (1 - p)}
}

// NewBernoulliFail returns the Bernoulli distribution with failure
// probability q. Preferable to NewBernoulli when q is very small.
func NewBernoulliFail(q float64) Bernoulli {
	if !(0 < q && q < 1) {
		panic("dist: bernoulli failure probability must be in (0, 1)")
	}
	return Bernoulli{1 - q, q, (1 - q) * q}
}

// Q returns the failure probability 1 - P as stored at construction.
func (d Bernoulli) Q() float64 { return d.q }

func (d Bernoulli) PMF(k float64) float64 {
	switch k {
	case 0:
		return d.q
	case 1:
		return d.P
	}
	return 0
}

func (d Bernoulli) CDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x < 1:
		return d.q
	}
	return 1
}

func (d Bernoulli) Bounds() (float64, float64) { return 0, 1 }

func (d Bernoulli) Step() float64 { return 1 }

func (d Bernoulli) InvCDF(p float64) float64 {
	checkProb(p)
	if p <= d.q {
		return 0
	}
	return 1
}

func (d Bernoulli) Sample(src source.Source) float64 {
	if source.Float64(src) < d.q {
		return 0
	}
	return 1
}

func (d Bernoulli) Mean() float64     { return d.P }
func (d Bernoulli) Variance() float64 { return d.pq }

func (d Bernoulli) Skewness() float64 {
	return (1 - 2*d.P) / math.Sqrt(d.pq)
}

func (d Bernoulli) Kurtosis() float64 {
	return (1 - 6*d.pq) / d.pq
}

func (d Bernoulli) Median() float64 {
	switch {
	case d.P < d.q:
		return 0
	case d.P == d.q:
		return 0.5
	}
	return 1
}

func (d Bernoulli) Modes() []float64 {
	switch {
	case d.P < d.q:
		return []float64{0}
	case d.P == d.q:
		return []float64{0, 1}
	}
	return []float64{1}
}

func (d Bernoulli) Entropy() float64 {
	return -d.q*math.Log(d.q) - d.P*math.Log(d.P)
}
