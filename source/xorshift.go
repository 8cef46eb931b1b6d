// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

// Xorshift is an Xorshift128+ pseudorandom source.
//
// It holds two 64-bit state words and advances on every read. The
// period is 2^128 − 1 and the output quality is statistical, not
// cryptographic.
//
// Sebastiano Vigna, "Further scramblings of Marsaglia's xorshift
// generators", CoRR, 2014.
type Xorshift struct {
	s0, s1 uint64
}

// The state of an Xorshift128+ generator must never be all zero;
// Default uses the library's historical fixed seed.
const (
	defaultSeed0 = 42
	defaultSeed1 = 69
)

// NewXorshift returns a source seeded with the state words (a, b).
// The pair must not be all zero. Equal seeds produce equal read
// sequences.
func NewXorshift(a, b uint64) *Xorshift {
	if a == 0 && b == 0 {
		panic("source: Xorshift128+ seeded with all-zero state")
	}
	return &Xorshift{a, b}
}

// Default returns a new source seeded with the fixed default seed.
// Every call returns an independent value, so the stream is
// reproducible across runs but never shared between callers. Callers
// that need distinct streams seed their own with NewXorshift.
func Default() *Xorshift {
	return NewXorshift(defaultSeed0, defaultSeed1)
}

// Seed resets the state to the words (a, b). The pair must not be all
// zero.
func (x *Xorshift) Seed(a, b uint64) {
	if a == 0 && b == 0 {
		panic("source: Xorshift128+ seeded with all-zero state")
	}
	x.s0, x.s1 = a, b
}

// Uint64 advances the state and returns the next word.
func (x *Xorshift) Uint64() uint64 {
	s, t := x.s0, x.s1
	x.s0 = t
	s ^= s << 23
	s ^= s >> 17
	s ^= t ^ (t >> 26)
	x.s1 = s
	return s + t
}
