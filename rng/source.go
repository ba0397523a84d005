/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package rng

import (
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is a seeded pseudo-random stream. Every decision taken during one
// generation call (collection sizes, scalar values, implementation picks)
// is drawn from the same Source, so the same seed always yields the same
// value graph.
//
// A Source is owned by a single generation call and must not be shared
// between goroutines.
type Source struct {
	seed  int64
	pcg   *rand.PCG
	r     *rand.Rand
	faker *gofakeit.Faker
}

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	pcg := rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return &Source{
		seed: seed,
		pcg:  pcg,
		r:    rand.New(pcg),
		// The faker shares the PCG stream so delegated scalars stay reproducible.
		faker: gofakeit.NewFaker(pcg, false),
	}
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Faker exposes the gofakeit generator bound to this stream.
func (s *Source) Faker() *gofakeit.Faker { return s.faker }

// IntN returns a non-negative int in [0, n). It returns 0 when n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// IntRange returns an int in [lo, hi]. Bounds are swapped when reversed.
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Int64 returns a pseudo-random int64 over the full range.
func (s *Source) Int64() int64 { return int64(s.r.Uint64()) }

// Uint64 returns a pseudo-random uint64.
func (s *Source) Uint64() uint64 { return s.r.Uint64() }

// Float64 returns a float64 in [0.0, 1.0).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Bool returns true or false with equal probability.
func (s *Source) Bool() bool { return s.r.IntN(2) == 1 }

// Read fills p with pseudo-random bytes. It never fails, which makes the
// Source usable wherever an entropy io.Reader is expected.
func (s *Source) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := s.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// Pick returns a random index in [0, n), or -1 when n <= 0.
func (s *Source) Pick(n int) int {
	if n <= 0 {
		return -1
	}
	return s.r.IntN(n)
}
