// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package seed provides a small deterministic PRNG keyed by a string.
//
// The same seed string always yields the same sequence of draws, which is
// what lets a word be uwuified the same way every time it is sent.
package seed

import (
	"math"
	"unicode/utf16"
)

// 🎲 Seed is an sfc32 generator whose state is derived from an xmur3 hash
// of the seed string. The zero value is not usable; call New.
type Seed struct {
	a, b, c, d uint32
}

// 🏭 New creates a generator for the given seed string
func New(s string) *Seed {
	next := xmur3(s)
	return &Seed{a: next(), b: next(), c: next(), d: next()}
}

// Random returns the next draw in [0, 1)
func (s *Seed) Random() float64 {
	t := s.a + s.b
	s.a = s.b ^ (s.b >> 9)
	s.b = s.c + (s.c << 3)
	s.c = (s.c << 21) | (s.c >> 11)
	s.d++
	t += s.d
	s.c += t
	return float64(t) / 4294967296
}

// RandomRange returns the next draw scaled to [min, max)
func (s *Seed) RandomRange(min, max float64) float64 {
	return s.Random()*(max-min) + min
}

// RandomInt returns the next draw as an integer in [min, max], both inclusive
func (s *Seed) RandomInt(min, max int) int {
	return int(math.Floor(s.RandomRange(float64(min), float64(max+1))))
}

// xmur3 hashes the UTF-16 code units of s and returns a function yielding
// successive 32-bit mixes of that hash.
func xmur3(s string) func() uint32 {
	units := utf16.Encode([]rune(s))

	h := uint32(1779033703) ^ uint32(len(units))
	for _, u := range units {
		h = (h ^ uint32(u)) * 3432918353
		h = (h << 13) | (h >> 19)
	}

	return func() uint32 {
		h = (h ^ (h >> 16)) * 2246822507
		h = (h ^ (h >> 13)) * 3266489909
		h ^= h >> 16
		return h
	}
}
