// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/probkit/probkit/source"
)

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

// NewNormal returns the normal distribution with mean mu and standard
// deviation sigma. sigma must be positive.
func NewNormal(mu, sigma float64) Normal {
	if !(sigma > 0) {
		panic("dist: normal standard deviation must be positive")
	}
	return Normal{mu, sigma}
}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (d Normal) PDF(x float64) float64 {
	z := x - d.Mu
	return math.Exp(-z*z/(2*d.Sigma*d.Sigma)) * invSqrt2Pi / d.Sigma
}

func (d Normal) CDF(x float64) float64 {
	return math.Erfc(-(x-d.Mu)/(d.Sigma*math.Sqrt2)) / 2
}

func (d Normal) Bounds() (float64, float64) {
	return -inf, inf
}

// InvCDF returns the quantile of the distribution at probability p.
// InvCDF(0) is -Inf and InvCDF(1) is +Inf.
func (d Normal) InvCDF(p float64) float64 {
	checkProb(p)
	return d.Mu + d.Sigma*zInvCDF(p)
}

// Sample draws by inverse transform, one source read per draw.
func (d Normal) Sample(src source.Source) float64 {
	return d.InvCDF(source.Float64(src))
}

func (d Normal) Mean() float64     { return d.Mu }
func (d Normal) Median() float64   { return d.Mu }
func (d Normal) Modes() []float64  { return []float64{d.Mu} }
func (d Normal) Variance() float64 { return d.Sigma * d.Sigma }
func (d Normal) Skewness() float64 { return 0 }
func (d Normal) Kurtosis() float64 { return 0 }

func (d Normal) Entropy() float64 {
	return 0.5 * math.Log(2*math.Pi*math.E*d.Sigma*d.Sigma)
}

// Coefficients of the rational approximations in Wichura's algorithm
// AS 241. Each pair of tables defines a degree-7 rational function.
var (
	normA = [8]float64{
		3.3871328727963666080e+00, 1.3314166789178437745e+02,
		1.9715909503065514427e+03, 1.3731693765509461125e+04,
		4.5921953931549871457e+04, 6.7265770927008700853e+04,
		3.3430575583588128105e+04, 2.5090809287301226727e+03,
	}
	normB = [8]float64{
		1.0000000000000000000e+00, 4.2313330701600911252e+01,
		6.8718700749205790830e+02, 5.3941960214247511077e+03,
		2.1213794301586595867e+04, 3.9307895800092710610e+04,
		2.8729085735721942674e+04, 5.2264952788528545610e+03,
	}
	normC = [8]float64{
		1.42343711074968357734e+00, 4.63033784615654529590e+00,
		5.76949722146069140550e+00, 3.64784832476320460504e+00,
		1.27045825245236838258e+00, 2.41780725177450611770e-01,
		2.27238449892691845833e-02, 7.74545014278341407640e-04,
	}
	normD = [8]float64{
		1.00000000000000000000e+00, 2.05319162663775882187e+00,
		1.67638483018380384940e+00, 6.89767334985100004550e-01,
		1.48103976427480074590e-01, 1.51986665636164571966e-02,
		5.47593808499534494600e-04, 1.05075007164441684324e-09,
	}
	normE = [8]float64{
		6.65790464350110377720e+00, 5.46378491116411436990e+00,
		1.78482653991729133580e+00, 2.96560571828504891230e-01,
		2.65321895265761230930e-02, 1.24266094738807843860e-03,
		2.71155556874348757815e-05, 2.01033439929228813265e-07,
	}
	normF = [8]float64{
		1.00000000000000000000e+00, 5.99832206555887937690e-01,
		1.36929880922735805310e-01, 1.48753612908506148525e-02,
		7.86869131145613259100e-04, 1.84631831751005468180e-05,
		1.42151175831644588870e-07, 2.04426310338993978564e-15,
	}
)

func poly7(c *[8]float64, x float64) float64 {
	return c[0] + x*(c[1]+x*(c[2]+x*(c[3]+x*(c[4]+x*(c[5]+x*(c[6]+x*c[7]))))))
}

// zInvCDF returns the quantile of the standard normal distribution at
// probability p without iterative root finding.
//
// For |p - 0.5| <= 0.425 it evaluates a central rational
// approximation in 0.180625 - (p-0.5)². Otherwise it works in
// r = sqrt(-ln(min(p, 1-p))) with one rational approximation for
// r <= 5 and another for the extreme tail beyond. A single formula
// cannot hold double precision over the whole range; the four
// branches are the minimum.
//
// Wichura, M. J. (1988). "Algorithm AS 241: The Percentage Points of
// the Normal Distribution". Applied Statistics 37 (3): 477-484.
func zInvCDF(p float64) float64 {
	const (
		split1 = 0.425
		split2 = 5.0
		const1 = 0.180625
		const2 = 1.6
	)

	if p <= 0 {
		return -inf
	}
	if p >= 1 {
		return inf
	}

	q := p - 0.5
	if math.Abs(q) <= split1 {
		x := const1 - q*q
		return q * poly7(&normA, x) / poly7(&normB, x)
	}

	r := p
	if q >= 0 {
		r = 1 - p
	}
	r = math.Sqrt(-math.Log(r))

	var x float64
	if r <= split2 {
		r -= const2
		x = poly7(&normC, r) / poly7(&normD, r)
	} else {
		r -= split2
		x = poly7(&normE, r) / poly7(&normF, r)
	}

	if q < 0 {
		return -x
	}
	return x
}
