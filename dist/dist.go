// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides probability distributions.
//
// Every distribution is an immutable value constructed from validated
// parameters; derived constants are computed once at construction.
// Parameter violations are programmer errors and panic. A constructed
// value is safe to share read-only across any number of concurrent
// evaluations.
//
// The mandatory capability is cumulative evaluation (Dist). All other
// operations are orthogonal optional capabilities: a distribution
// implements exactly the interfaces its mathematics supports, and
// client code depends on the minimal set it needs.
package dist // import "github.com/probkit/probkit/dist"

import (
	"math"

	"github.com/probkit/probkit/source"
)

var inf = math.Inf(1)
var nan = math.NaN()

// A Dist is a probability distribution over the real line. This is
// the one capability every distribution has.
type Dist interface {
	// CDF returns the value of the cumulative distribution
	// function at x, P(X <= x).
	CDF(x float64) float64

	// Bounds returns the infimum and supremum of the support.
	// Either may be infinite.
	Bounds() (low, high float64)
}

// A Continuous distribution has a probability density function.
type Continuous interface {
	Dist

	// PDF returns the value of the probability density function
	// at x. It is zero outside the support.
	PDF(x float64) float64
}

// A Discrete distribution has a probability mass function over a
// lattice of outcomes.
type Discrete interface {
	Dist

	// PMF returns the probability mass at k. It is zero off the
	// outcome lattice.
	PMF(k float64) float64

	// Step returns the spacing of the outcome lattice.
	Step() float64
}

// An Inverse distribution can invert its CDF.
type Inverse interface {
	// InvCDF returns the smallest outcome whose CDF reaches p.
	// For all x in the interior of the support,
	// InvCDF(CDF(x)) ≈ x. InvCDF(0) is the support infimum (or
	// -Inf) and InvCDF(1) the supremum (or +Inf). p outside
	// [0, 1] panics.
	InvCDF(p float64) float64
}

// A Sampler can draw pseudorandom samples. Sample reads the borrowed
// source sequentially; some algorithms consume a variable number of
// reads per draw.
type Sampler interface {
	Sample(src source.Source) float64
}

// Optional scalar summaries, each defined only where finite.
type (
	// Mean is the capability of having a finite expected value.
	Mean interface {
		Mean() float64
	}

	// Variance is the capability of having a finite variance.
	Variance interface {
		Variance() float64
	}

	// Skewness is the capability of having a finite skewness.
	Skewness interface {
		Skewness() float64
	}

	// Kurtosis is the capability of having a finite excess
	// kurtosis.
	Kurtosis interface {
		Kurtosis() float64
	}

	// Median is the capability of having a median.
	Median interface {
		Median() float64
	}

	// Modes is the capability of having a finite set of modes.
	Modes interface {
		Modes() []float64
	}

	// Entropy is the capability of having a finite (differential)
	// entropy, in nats.
	Entropy interface {
		Entropy() float64
	}
)

// StdDev returns the standard deviation of v.
func StdDev(v Variance) float64 {
	return math.Sqrt(v.Variance())
}

// checkProb panics unless p is a probability. Rejects NaN.
func checkProb(p float64) {
	if !(0 <= p && p <= 1) {
		panic("dist: probability out of [0, 1]")
	}
}
