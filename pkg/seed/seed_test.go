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

package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_FirstDrawIsDeterministic(t *testing.T) {
	seeds := []string{"", "hello", "world", "@user", "ÚwÚ", "https://example.com/path"}

	for _, s := range seeds {
		t.Run(s, func(t *testing.T) {
			a := New(s)
			b := New(s)
			assert.Equal(t, a.Random(), b.Random(), "first draw should match across instances")
		})
	}
}

func TestSeed_SequenceIsDeterministic(t *testing.T) {
	a := New("uwu")
	b := New("uwu")

	for i := 0; i < 32; i++ {
		require.Equal(t, a.Random(), b.Random(), "draw %d", i)
	}
}

func TestSeed_KnownSequences(t *testing.T) {
	tests := []struct {
		seed string
		want []float64
	}{
		{seed: "hello", want: []float64{0.6173389467876405, 0.8618584799114615, 0.1860228010918945}},
		{seed: "uwu", want: []float64{0.7433378791902214, 0.9722621580585837, 0.28203120082616806}},
		{seed: "", want: []float64{0.961405191803351, 0.056985866045579314, 0.5611667260527611}},
	}

	for _, tt := range tests {
		t.Run("seed_"+tt.seed, func(t *testing.T) {
			s := New(tt.seed)
			for i, want := range tt.want {
				assert.Equal(t, want, s.Random(), "draw %d", i)
			}
		})
	}
}

func TestSeed_KnownRandomInts(t *testing.T) {
	s := New("hello")
	got := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		got = append(got, s.RandomInt(0, 4))
	}
	assert.Equal(t, []int{3, 4, 0, 1, 0, 4}, got)
}

func TestSeed_SuccessiveDrawsAdvance(t *testing.T) {
	s := New("owo")
	first := s.Random()
	second := s.Random()
	assert.NotEqual(t, first, second, "successive draws should differ")
}

func TestSeed_DifferentSeedsDiffer(t *testing.T) {
	assert.NotEqual(t, New("hello").Random(), New("hellp").Random())
}

func TestSeed_RandomBounds(t *testing.T) {
	s := New("bounds")
	for i := 0; i < 1000; i++ {
		v := s.Random()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestSeed_RandomInt(t *testing.T) {
	tests := []struct {
		name string
		min  int
		max  int
	}{
		{name: "exclamation_range", min: 0, max: 4},
		{name: "single_value", min: 3, max: 3},
		{name: "negative_range", min: -2, max: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.name)
			seen := map[int]bool{}
			for i := 0; i < 500; i++ {
				v := s.RandomInt(tt.min, tt.max)
				require.GreaterOrEqual(t, v, tt.min)
				require.LessOrEqual(t, v, tt.max)
				seen[v] = true
			}
			assert.Len(t, seen, tt.max-tt.min+1, "every value in range should eventually be drawn")
		})
	}
}

func TestSeed_RandomRange(t *testing.T) {
	s := New("range")
	for i := 0; i < 200; i++ {
		v := s.RandomRange(2, 5)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 5.0)
	}
}
