// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// aeqTol compares with an absolute tolerance and treats equal
// infinities as equal.
func aeqTol(expect, got, tol float64) bool {
	if math.IsInf(expect, 0) || math.IsInf(got, 0) {
		return expect == got
	}
	return math.Abs(expect-got) <= tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got) {
			t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
		}
	}
}

// testVec checks f against an ordered reference vector with an
// absolute tolerance.
func testVec(t *testing.T, name string, f func(float64) float64, xs, want []float64, tol float64) {
	t.Helper()
	for i, x := range xs {
		if got := f(x); !aeqTol(want[i], got, tol) {
			t.Errorf("want %s(%v)=%v, got %v", name, x, want[i], got)
		}
	}
}

type invertible interface {
	Dist
	Inverse
}

// testRoundTrip checks that InvCDF(CDF(InvCDF(p))) recovers InvCDF(p)
// and that CDF(InvCDF(p)) recovers p on the interior of [0, 1].
func testRoundTrip(t *testing.T, name string, d invertible, ps []float64, tol float64) {
	t.Helper()
	for _, p := range ps {
		x := d.InvCDF(p)
		if got := d.CDF(x); !aeqTol(p, got, tol) {
			t.Errorf("%s: want CDF(InvCDF(%v))=%v, got %v", name, p, p, got)
		}
	}
}

// testMonotone checks that CDF is non-decreasing on a sweep of the
// interior and that InvCDF is non-decreasing in p.
func testMonotone(t *testing.T, name string, d invertible, n int) {
	t.Helper()
	lastX := math.Inf(-1)
	lastP := 0.0
	for i := 1; i < n; i++ {
		p := float64(i) / float64(n)
		x := d.InvCDF(p)
		if x < lastX {
			t.Errorf("%s: InvCDF not monotone: InvCDF(%v)=%v < %v", name, p, x, lastX)
		}
		cp := d.CDF(x)
		if cp < lastP {
			t.Errorf("%s: CDF not monotone: CDF(%v)=%v < %v", name, x, cp, lastP)
		}
		lastX, lastP = x, cp
	}
}

type continuousInvertible interface {
	Continuous
	Inverse
}

// testPDFIntegral checks PDF/CDF consistency: the trapezoid integral
// of the PDF between the plo and phi quantiles must match the CDF
// mass of that interval.
func testPDFIntegral(t *testing.T, name string, d continuousInvertible, plo, phi, tol float64) {
	t.Helper()
	lo, hi := d.InvCDF(plo), d.InvCDF(phi)
	const steps = 20000
	h := (hi - lo) / steps
	sum := (d.PDF(lo) + d.PDF(hi)) / 2
	for i := 1; i < steps; i++ {
		sum += d.PDF(lo + float64(i)*h)
	}
	got := sum * h
	want := d.CDF(hi) - d.CDF(lo)
	if !aeqTol(want, got, tol) {
		t.Errorf("%s: want ∫pdf=%v, got %v", name, want, got)
	}
}

// testDiscreteSum checks that the PMF sums to 1 over the support.
func testDiscreteSum(t *testing.T, name string, d Discrete, tol float64) {
	t.Helper()
	lo, hi := d.Bounds()
	sum := 0.0
	for k := lo; k <= hi; k += d.Step() {
		sum += d.PMF(k)
	}
	if !aeqTol(1, sum, tol) {
		t.Errorf("%s: want Σpmf=1, got %v", name, sum)
	}
}

// testDiscreteCDF checks that the CDF of a discrete distribution is
// the running sum of its PMF, including between lattice points.
func testDiscreteCDF(t *testing.T, name string, d Discrete) {
	t.Helper()
	lo, hi := d.Bounds()
	sum := 0.0
	for k := lo; k <= hi; k += d.Step() {
		sum += d.PMF(k)
		if got := d.CDF(k); !aeq(sum, got) {
			t.Errorf("%s: want CDF(%v)=%v, got %v", name, k, sum, got)
		}
		if got := d.CDF(k + d.Step()/2); !aeq(sum, got) {
			t.Errorf("%s: want CDF(%v)=%v, got %v", name, k+d.Step()/2, sum, got)
		}
	}
}
