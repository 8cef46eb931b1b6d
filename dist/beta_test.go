// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/probkit/probkit/source"
)

func TestBetaPDF(t *testing.T) {
	d := NewBeta(2, 3, -1, 2)
	xs := []float64{
		-1, -0.85, -0.7, -0.55, -0.4, -0.25, -0.1, 0.05, 0.2, 0.35,
		0.5, 0.65, 0.8, 0.95, 1.1, 1.25, 1.4, 1.55, 1.7, 1.85, 2,
	}
	want := []float64{
		0.000000000000000e+00, 1.805000000000000e-01, 3.240000000000001e-01,
		4.335000000000000e-01, 5.120000000000000e-01, 5.625000000000001e-01,
		5.880000000000000e-01, 5.915000000000001e-01, 5.760000000000001e-01,
		5.445000000000000e-01, 5.000000000000001e-01, 4.455000000000000e-01,
		3.840000000000001e-01, 3.184999999999999e-01, 2.519999999999999e-01,
		1.875000000000000e-01, 1.280000000000001e-01, 7.650000000000003e-02,
		3.600000000000000e-02, 9.499999999999982e-03, 0.000000000000000e+00,
	}
	testVec(t, "Beta.PDF", d.PDF, xs, want, 1e-14)
}

func TestBetaCDF(t *testing.T) {
	d := NewBeta(2, 3, -1, 2)
	xs := []float64{
		-1, -0.85, -0.7, -0.55, -0.4, -0.25, -0.1, 0.05, 0.2, 0.35,
		0.5, 0.65, 0.8, 0.95, 1.1, 1.25, 1.4, 1.55, 1.7, 1.85, 2,
	}
	want := []float64{
		0.000000000000000e+00, 1.401875000000000e-02, 5.230000000000002e-02,
		1.095187500000000e-01, 1.807999999999999e-01, 2.617187500000001e-01,
		3.483000000000000e-01, 4.370187500000001e-01, 5.248000000000003e-01,
		6.090187500000001e-01, 6.875000000000000e-01, 7.585187500000001e-01,
		8.208000000000000e-01, 8.735187499999999e-01, 9.163000000000000e-01,
		9.492187500000000e-01, 9.728000000000000e-01, 9.880187500000001e-01,
		9.963000000000000e-01, 9.995187500000000e-01, 1.000000000000000e+00,
	}
	testVec(t, "Beta.CDF", d.CDF, xs, want, 1e-14)
}

func TestBetaInvCDF(t *testing.T) {
	d := NewBeta(1, 2, 3, 4)
	ps := []float64{
		0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.45, 0.5,
		0.55, 0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9, 0.95, 1,
	}
	want := []float64{
		3.000000000000000e+00, 3.025320565519104e+00, 3.051316701949486e+00,
		3.078045554270711e+00, 3.105572809000084e+00, 3.133974596215561e+00,
		3.163339973465924e+00, 3.193774225170145e+00, 3.225403330758517e+00,
		3.258380151290432e+00, 3.292893218813452e+00, 3.329179606750063e+00,
		3.367544467966324e+00, 3.408392021690038e+00, 3.452277442494834e+00,
		3.500000000000000e+00, 3.552786404500042e+00, 3.612701665379257e+00,
		3.683772233983162e+00, 3.776393202250021e+00, 4.000000000000000e+00,
	}
	testVec(t, "Beta.InvCDF", d.InvCDF, ps, want, 1e-14)

	testRoundTrip(t, "Beta", NewBeta(2, 3, -1, 2), []float64{1e-6, 0.01, 0.3, 0.5, 0.7, 0.99}, 1e-12)
	testMonotone(t, "Beta", NewBeta(2, 3, -1, 2), 1000)
	testPDFIntegral(t, "Beta", NewBeta(2, 3, -1, 2), 0.001, 0.999, 1e-6)
}

func TestBetaMoments(t *testing.T) {
	assert.Equal(t, 0.5, NewBeta(0.5, 0.5, 0, 1).Mean())
	assert.Equal(t, -0.9985, NewBeta(0.0005, 0.9995, -1, 2).Mean())

	assert.Equal(t, 1.0/12, NewBeta(1, 1, 0, 1).Variance())
	assert.InDelta(t, 0.04, NewBeta(2, 3, 0, 1).Variance(), 1e-16)
	assert.InDelta(t, 0.36, NewBeta(2, 3, -1, 2).Variance(), 1e-15)
	assert.Equal(t, NewBeta(5, 0.05, 0, 1).Variance(), NewBeta(0.05, 5, 0, 1).Variance())

	assert.Equal(t, 0.0, NewBeta(1, 1, 0, 1).Skewness())
	assert.Equal(t, 0.28571428571428575, NewBeta(2, 3, -1, 2).Skewness())
	assert.Equal(t, -0.28571428571428575, NewBeta(3, 2, -1, 2).Skewness())

	assert.InDelta(t, -6.0/5, NewBeta(1, 1, 0, 1).Kurtosis(), 1e-15)
	assert.InDelta(t, -0.6428571428571429, NewBeta(2, 3, -1, 2).Kurtosis(), 1e-15)
	assert.InDelta(t, -0.6428571428571429, NewBeta(3, 2, -1, 2).Kurtosis(), 1e-15)
}

func TestBetaMedian(t *testing.T) {
	assert.Equal(t, 0.5, NewBeta(2, 2, 0, 1).Median())
	assert.Equal(t, 5.0/13, NewBeta(2, 3, 0, 1).Median())
	assert.InDelta(t, 3*(5.0/13)-1, NewBeta(2, 3, -1, 2).Median(), 1e-15)
	// Symmetric shapes on a shifted interval stay centered.
	assert.Equal(t, 0.5, NewBeta(0.25, 0.25, -1, 2).Median())
	// Outside the interior regime the median falls back on InvCDF.
	d := NewBeta(0.5, 2, 0, 1)
	assert.InDelta(t, 0.5, d.CDF(d.Median()), 1e-12)
}

func TestBetaModes(t *testing.T) {
	assert.Empty(t, NewBeta(1, 1, -1, 2).Modes())
	assert.Equal(t, []float64{-1, 2}, NewBeta(0.05, 0.05, -1, 2).Modes())
	assert.Equal(t, []float64{-1}, NewBeta(0.05, 5, -1, 2).Modes())
	assert.Equal(t, []float64{2}, NewBeta(5, 0.05, -1, 2).Modes())
	assert.Equal(t, []float64{-1}, NewBeta(0.05, 3, -1, 2).Modes())
	assert.Equal(t, []float64{2}, NewBeta(2, 0.05, -1, 2).Modes())
	assert.Equal(t, []float64{-1}, NewBeta(1, 3, -1, 2).Modes())
	assert.Equal(t, []float64{2}, NewBeta(2, 1, -1, 2).Modes())
	assert.Equal(t, []float64{0}, NewBeta(2, 3, -1, 2).Modes())
}

func TestBetaEntropy(t *testing.T) {
	assert.InDelta(t, 0, NewBeta(1, 1, 0, 1).Entropy(), 1e-15)
	assert.InDelta(t, 1, NewBeta(1, 1, 0, math.E).Entropy(), 1e-15)
	assert.InDelta(t, -0.2349066497879999, NewBeta(2, 3, 0, 1).Entropy(), 1e-14)
	assert.InDelta(t, 0.8637056388801096, NewBeta(2, 3, -1, 2).Entropy(), 1e-14)
}

func TestBetaSample(t *testing.T) {
	d := NewBeta(1, 2, 7, 42)
	src := source.Default()
	for i := 0; i < 100; i++ {
		x := d.Sample(src)
		if x < 7 || x > 42 {
			t.Fatalf("draw %v outside [7, 42]", x)
		}
	}
}

func TestNewBetaChecked(t *testing.T) {
	assert.Panics(t, func() { NewBeta(0, 1, 0, 1) })
	assert.Panics(t, func() { NewBeta(1, -1, 0, 1) })
	assert.Panics(t, func() { NewBeta(1, 1, 1, 1) })
	assert.Panics(t, func() { NewBeta(1, 1, 2, 1) })
}
