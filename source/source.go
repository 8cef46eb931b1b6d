// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source provides deterministic sources of pseudorandomness.
//
// A Source produces uniform 64-bit words. Sources are cheap mutable
// values with no synchronization: a source must have exactly one
// owner at any instant, and callers that need independent streams
// construct and seed their own.
package source // import "github.com/probkit/probkit/source"

// A Source is a stream of uniform pseudorandom 64-bit words.
//
// The signature matches math/rand.Source64, so a Source can also back
// a math/rand.Rand.
type Source interface {
	Uint64() uint64
}

// Float64 reads one word from s and converts it to a uniform float64
// in [0, 1). Only the high 53 bits of the word are used, so the
// conversion is exact and the result is strictly below 1.
func Float64(s Source) float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}
