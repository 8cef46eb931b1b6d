// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample composes a distribution and a random source into a
// lazy, unbounded sequence of draws.
package sample // import "github.com/probkit/probkit/sample"

import (
	"github.com/probkit/probkit/dist"
	"github.com/probkit/probkit/source"
)

// An Iter draws an unbounded sequence of independent samples from a
// distribution. It borrows both the distribution and the mutable
// source and owns neither; the sequence restarts only by recreating
// the Iter with a fresh source.
type Iter struct {
	d   dist.Sampler
	src source.Source
}

// New returns an Iter drawing from d using src. The caller must not
// read from src elsewhere while the Iter is in use.
func New(d dist.Sampler, src source.Source) *Iter {
	if d == nil || src == nil {
		panic("sample: nil distribution or source")
	}
	return &Iter{d, src}
}

// Next draws the next sample. Exactly one Sample call per element,
// strictly sequential, no buffering.
func (it *Iter) Next() float64 {
	return it.d.Sample(it.src)
}

// Take draws the next n samples.
func (it *Iter) Take(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = it.d.Sample(it.src)
	}
	return xs
}
