// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Categorical is a categorical distribution over the outcomes
// 0, 1, ..., K-1 with explicit probabilities.
type Categorical struct {
	p      []float64
	cumsum []float64
}

// Tolerance on the total probability of a categorical parameter
// vector.
const probSumEpsilon = 1e-12

// NewCategorical returns the categorical distribution with outcome
// probabilities p. Each entry must lie in [0, 1] and the entries must
// sum to 1. The slice is copied.
func NewCategorical(p []float64) Categorical {
	if len(p) == 0 {
		panic("dist: categorical needs at least one outcome")
	}
	sum := 0.0
	for _, pi := range p {
		if !(0 <= pi && pi <= 1) {
			panic("dist: categorical probability out of [0, 1]")
		}
		sum += pi
	}
	if math.Abs(sum-1) >= probSumEpsilon {
		panic("dist: categorical probabilities must sum to 1")
	}

	k := len(p)
	cumsum := make([]float64, k)
	copy(cumsum, p)
	for i := 1; i < k-1; i++ {
		cumsum[i] += cumsum[i-1]
	}
	cumsum[k-1] = 1
	return Categorical{append([]float64(nil), p...), cumsum}
}

// K returns the number of outcomes.
func (d Categorical) K() int { return len(d.p) }

// P returns a copy of the outcome probabilities.
func (d Categorical) P() []float64 {
	return append([]float64(nil), d.p...)
}

func (d Categorical) PMF(k float64) float64 {
	if k != math.Trunc(k) || k < 0 || k >= float64(len(d.p)) {
		return 0
	}
	return d.p[int(k)]
}

func (d Categorical) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if i := int(x); i < len(d.p) {
		return d.cumsum[i]
	}
	return 1
}

func (d Categorical) Bounds() (float64, float64) {
	return 0, float64(len(d.p) - 1)
}

func (d Categorical) Step() float64 { return 1 }

func (d Categorical) InvCDF(p float64) float64 {
	checkProb(p)
	for i, sum := range d.cumsum {
		if sum > 0 && sum >= p {
			return float64(i)
		}
	}
	// p exceeds every positive partial sum by rounding; answer is
	// the last outcome with positive mass.
	for i := len(d.p) - 1; ; i-- {
		if d.p[i] > 0 {
			return float64(i)
		}
	}
}

func (d Categorical) Sample(src source.Source) float64 {
	return d.InvCDF(source.Float64(src))
}

func (d Categorical) Mean() float64 {
	sum := 0.0
	for i, pi := range d.p {
		sum += float64(i) * pi
	}
	return sum
}

func (d Categorical) Variance() float64 {
	mean := d.Mean()
	sum := 0.0
	for i, pi := range d.p {
		z := float64(i) - mean
		sum += z * z * pi
	}
	return sum
}

func (d Categorical) Skewness() float64 {
	mean := d.Mean()
	sigma := math.Sqrt(d.Variance())
	sum := 0.0
	for i, pi := range d.p {
		z := (float64(i) - mean) / sigma
		sum += z * z * z * pi
	}
	return sum
}

func (d Categorical) Kurtosis() float64 {
	mean, variance := d.Mean(), d.Variance()
	sum := 0.0
	for i, pi := range d.p {
		z := float64(i) - mean
		sum += z * z * z * z * pi
	}
	return sum/(variance*variance) - 3
}

func (d Categorical) Median() float64 {
	if d.p[0] > 0.5 {
		return 0
	}
	if d.p[0] == 0.5 {
		return 0.5
	}
	for i, sum := range d.cumsum {
		if sum == 0.5 {
			return float64(2*i+1) / 2
		}
		if sum > 0.5 {
			return float64(i)
		}
	}
	panic("dist: categorical cumulative sums never reach 0.5")
}

func (d Categorical) Modes() []float64 {
	var modes []float64
	max := 0.0
	for i, pi := range d.p {
		switch {
		case pi > max:
			max = pi
			modes = append(modes[:0], float64(i))
		case pi == max:
			modes = append(modes, float64(i))
		}
	}
	return modes
}

func (d Categorical) Entropy() float64 {
	sum := 0.0
	for _, pi := range d.p {
		if pi > 0 {
			sum -= pi * math.Log(pi)
		}
	}
	return sum
}
