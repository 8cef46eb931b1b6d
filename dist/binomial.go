// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/probkit/probkit/source"
)

// Binomial is a binomial distribution: the number of successes in N
// independent Bernoulli trials with success probability P.
//
// The implementation stays accurate for N up to billions: the mass
// function uses Loader's saddle-point expansion, the CDF goes through
// the regularized incomplete beta function, and the quantile chooses
// between summation, a normal-approximation expansion, and Newton
// search depending on (N, P).
type Binomial struct {
	// N is the number of trials. N >= 0.
	N int

	// P is the probability of success in each trial. 0 < P < 1.
	P float64

	q, np, nq, npq float64
}

// NewBinomial returns the binomial distribution with n trials and
// success probability p. It must hold that n >= 0 and 0 < p < 1.
func NewBinomial(n int, p float64) Binomial {
	if n < 0 {
		panic("dist: binomial trial count must be non-negative")
	}
	if !(0 < p && p < 1) {
		panic("dist: binomial success probability must be in (0, 1)")
	}
	q := 1 - p
	np, nq := float64(n)*p, float64(n)*q
	return Binomial{n, p, q, np, nq, np * q}
}

// NewBinomialFail returns the binomial distribution with n trials and
// failure probability q. Preferable to NewBinomial when q is very
// small, since 1-q would round.
func NewBinomialFail(n int, q float64) Binomial {
	if n < 0 {
		panic("dist: binomial trial count must be non-negative")
	}
	if !(0 < q && q < 1) {
		panic("dist: binomial failure probability must be in (0, 1)")
	}
	p := 1 - q
	np, nq := float64(n)*p, float64(n)*q
	return Binomial{n, p, q, np, nq, np * q}
}

// Q returns the failure probability 1 - P as stored at construction.
func (d Binomial) Q() float64 { return d.q }

// PMF is the probability of getting exactly int(k) successes in d.N
// trials.
func (d Binomial) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return d.mass(ki)
}

// mass evaluates the probability of exactly k successes with
// Loader's saddle-point method, which avoids the overflow and
// cancellation of factorial ratios for large N.
//
// C. Loader, "Fast and Accurate Computation of Binomial
// Probabilities", 2000.
func (d Binomial) mass(k int) float64 {
	n := float64(d.N)
	switch k {
	case 0:
		return math.Exp(n * math.Log(d.q))
	case d.N:
		return math.Exp(n * math.Log(d.P))
	}
	x := float64(k)
	nmx := n - x
	lnC := stirlerr(n) - stirlerr(x) - stirlerr(nmx) -
		lnD0(x, d.np) - lnD0(nmx, d.nq)
	return math.Exp(lnC) * math.Sqrt(n/(2*math.Pi*x*nmx))
}

// CDF is the probability of getting k or fewer successes in d.N
// trials. It is evaluated through the regularized incomplete beta
// function, so the cost does not depend on N.
func (d Binomial) CDF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 {
		return 0
	}
	if ki >= d.N {
		return 1
	}
	if ki == 0 {
		return d.mass(0)
	}
	return mathext.RegIncBeta(float64(d.N-ki), float64(ki+1), d.q)
}

func (d Binomial) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d Binomial) Step() float64 { return 1 }

func (d Binomial) Mean() float64 { return d.np }

func (d Binomial) Variance() float64 { return d.npq }

func (d Binomial) Skewness() float64 {
	return (1 - 2*d.P) / math.Sqrt(d.npq)
}

func (d Binomial) Kurtosis() float64 {
	return (1 - 6*d.P*d.q) / d.npq
}

func (d Binomial) Median() float64 {
	_, frac := math.Modf(d.np)
	switch {
	case frac == 0, d.P == 0.5 && d.N%2 != 0:
		return d.np
	case d.P <= 1-math.Ln2, d.P >= math.Ln2,
		math.Abs(math.Round(d.np)-d.np) <= math.Min(d.P, d.q):
		return math.Round(d.np)
	case d.N > 1000 && d.npq > 80:
		// Normal approximation.
		return math.Floor(d.np)
	default:
		return d.InvCDF(0.5)
	}
}

func (d Binomial) Modes() []float64 {
	r := d.P * float64(d.N+1)
	if _, frac := math.Modf(r); frac != 0 {
		return []float64{math.Floor(r)}
	}
	return []float64{r - 1, r}
}

func (d Binomial) Entropy() float64 {
	if d.N > 10000 && d.npq > 80 {
		// Normal approximation.
		return 0.5 * (math.Log(2*math.Pi*d.npq) + 1)
	}
	var sum float64
	for k := 0; k <= d.N; k++ {
		if m := d.mass(k); m > 0 {
			sum -= m * math.Log(m)
		}
	}
	return sum
}

// NormalApprox returns a normal distribution approximation of d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction: b.PMF(k) maps to n.CDF(k+0.5) - n.CDF(k-0.5) and
// b.CDF(k) to n.CDF(k+0.5).
func (d Binomial) NormalApprox() Normal {
	return Normal{Mu: d.np, Sigma: math.Sqrt(d.npq)}
}

// Number of Newton iterations before InvCDF falls back to a monotone
// walk. Generous: convergence from the mode normally takes a handful
// of steps.
const invCDFMaxNewton = 200

// InvCDF returns the smallest k with CDF(k) >= p.
//
// No single method is both accurate and fast over the whole (N, P)
// space, so the evaluation dispatches on three regimes: term-by-term
// summation for N < 1000, a closed-form normal-approximation
// expansion when the variance is large, and Newton search from the
// mode otherwise.
//
// Sean Moorhead, "Efficient evaluation of the inverse Binomial
// cumulative distribution function where the number of trials is
// large", 2013.
func (d Binomial) InvCDF(p float64) float64 {
	checkProb(p)
	switch {
	case p == 0:
		return 0
	case p == 1:
		return float64(d.N)
	case d.N < 1000:
		// Sum the mass terms directly, from whichever end of
		// the support is closer to the target.
		if p <= d.CDF(float64(d.N/2)) {
			return float64(d.exact(d.bottomUpSum(p), p))
		}
		return float64(d.exact(d.topDownSum(p), p))
	case d.npq > 80:
		m := int(math.Floor(d.normalExpansion(p)))
		return float64(d.exact(m, p))
	default:
		return float64(d.exact(d.newtonFromMode(p), p))
	}
}

// Sample draws by inverse transform, one source read per draw.
func (d Binomial) Sample(src source.Source) float64 {
	return d.InvCDF(source.Float64(src))
}

// bottomUpSum accumulates mass terms upward from k = 0 until the
// running sum reaches p. Each step updates the term by the recurrence
// ratio (p/q)·(n-k+1)/k instead of recomputing it. Rounding can leave
// the accumulated mass short of a p very close to 1, so the loop is
// bounded by N; the caller's exactness walk settles the answer.
func (d Binomial) bottomUpSum(p float64) int {
	a := math.Pow(d.q, float64(d.N))
	sum := a - p
	for k := 1; k <= d.N; k++ {
		if sum >= 0 {
			return k - 1
		}
		a *= d.P / d.q * float64(d.N-k+1) / float64(k)
		sum += a
	}
	return d.N
}

// topDownSum accumulates mass terms downward from k = N until the
// complementary sum crosses 1-p. Bounded by N for the same reason as
// bottomUpSum: 1-p can round to 1 and stay above the subtracted total
// forever.
func (d Binomial) topDownSum(p float64) int {
	a := math.Pow(d.P, float64(d.N))
	sum := (1 - p) - a
	for k := 1; k <= d.N; k++ {
		if sum < 0 {
			return d.N - k + 1
		}
		a *= d.q / d.P * float64(d.N-k+1) / float64(k)
		sum -= a
	}
	return 0
}

// normalExpansion is Moorhead's multi-order correction series around
// the normal approximation, O(1) in N. The result is a real-valued
// estimate of the quantile; exact makes it the true discrete
// quantile.
func (d Binomial) normalExpansion(u float64) float64 {
	p := d.P
	w := zInvCDF(u)
	w2 := w * w
	w3 := w2 * w
	w4 := w3 * w
	w5 := w4 * w
	w6 := w5 * w
	sd := math.Sqrt(d.npq)
	sdInv1 := 1 / sd
	sdInv2 := 1 / d.npq
	sdInv3 := sdInv1 * sdInv2
	sdInv4 := sdInv2 * sdInv2
	p2 := p * p
	p3 := p2 * p
	p4 := p2 * p2

	return d.np + sd*w +
		((p+1)/3 - (2*p-1)*w2/6) +
		sdInv1*w3*(2*p2-2*p-1)/72 - w*(7*p2-7*p+1)/36 +
		sdInv2*(2*p-1)*(p+1)*(p-2)*(3*w4+7*w2-16)/1620 +
		sdInv3*(w5*(4*p4-8*p3-48*p2+52*p-23)/17280+
			w3*(256*p4-512*p3-147*p2+403*p-137)/38880-
			w*(433*p4-866*p3-921*p2+1354*p-671)/38880) +
		sdInv4*(w6*(2*p-1)*(p2-p+1)*(p2-p+19)/34020+
			w4*(2*p-1)*(9*p4-18*p3-35*p2+44*p-25)/15120+
			w2*(2*p-1)*(923*p4-1846*p3+5271*p2-4348*p+5189)/408240-
			4*(2*p-1)*(p+1)*(p-2)*(23*p2-23*p+2)/25515)
}

// newtonFromMode runs Newton iteration from the mode, with each step
// (u - CDF(k)) / PMF(k). Iterates are clamped to [0, N] and the loop
// is capped; pathological mode placement can stall or oscillate, and
// the caller's exactness walk finishes the job either way.
func (d Binomial) newtonFromMode(u float64) int {
	m := int(d.Modes()[0])
	for i := 0; i < invCDFMaxNewton; i++ {
		den := d.mass(m)
		if den == 0 {
			break
		}
		step := (u - d.CDF(float64(m))) / den
		if -0.5 < step && step < 0.5 {
			break
		}
		next := m + int(math.Round(step))
		if next < 0 {
			next = 0
		} else if next > d.N {
			next = d.N
		}
		if next == m {
			break
		}
		m = next
	}
	return m
}

// exact walks a candidate quantile to the smallest k with
// CDF(k) >= u. The walk is what guarantees that all three quantile
// regimes agree and that InvCDF(CDF(k)) round-trips exactly.
func (d Binomial) exact(m int, u float64) int {
	if m < 0 {
		m = 0
	} else if m > d.N {
		m = d.N
	}
	for m < d.N && d.CDF(float64(m)) < u {
		m++
	}
	for m > 0 && d.CDF(float64(m-1)) >= u {
		m--
	}
	return m
}

// stirlerr returns ln(n!) - ln(sqrt(2πn)·(n/e)^n), the error of
// Stirling's approximation, from an exact table for n < 16 and the
// Stirling-De Moivre series with fewer terms as n grows.
//
// See Loader (2000), eq. 4 and pp. 7.
func stirlerr(n float64) float64 {
	const (
		s0 = 1.0 / 12
		s1 = 1.0 / 360
		s2 = 1.0 / 1260
		s3 = 1.0 / 1680
		s4 = 1.0 / 1188
	)

	if n < 16 {
		return stirlerrTable[int(n)]
	}
	nn := n * n
	switch {
	case n > 500:
		return (s0 - s1/nn) / n
	case n > 80:
		return (s0 - (s1-s2/nn)/nn) / n
	case n > 35:
		return (s0 - (s1-(s2-s3/nn)/nn)/nn) / n
	}
	return (s0 - (s1-(s2-(s3-s4/nn)/nn)/nn)/nn) / n
}

var stirlerrTable = [16]float64{
	0.000000000000000000e+00, 8.106146679532725822e-02,
	4.134069595540929409e-02, 2.767792568499833915e-02,
	2.079067210376509311e-02, 1.664469118982119216e-02,
	1.387612882307074800e-02, 1.189670994589177010e-02,
	1.041126526197209650e-02, 9.255462182712732918e-03,
	8.330563433362871256e-03, 7.757367548795184079e-03,
	6.942840107209529866e-03, 6.408994188004207068e-03,
	5.951370112758847736e-03, 5.554733551962801371e-03,
}

// lnD0 returns the deviance term ln(np·D0) = x·ln(x/np) + np - x.
// When x is within 10% of np the direct formula cancels
// catastrophically, so a convergent series is used instead.
func lnD0(x, np float64) float64 {
	if math.Abs(x-np) < 0.1*(x+np) {
		v := (x - np) / (x + np)
		s := (x - np) * v
		ej := 2 * x * v
		for j := 1; ; j++ {
			ej *= v * v
			s1 := s + ej/float64(2*j+1)
			if s1 == s {
				return s1
			}
			s = s1
		}
	}
	return x*math.Log(x/np) + np - x
}
