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

package rng_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rgen/rng"
)

func TestSource_SameSeedSameStream(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("same seed produces identical sequences", prop.ForAll(
		func(seed int64, count int) bool {
			a, b := rng.New(seed), rng.New(seed)
			for i := 0; i < count; i++ {
				if a.Uint64() != b.Uint64() {
					return false
				}
				if a.IntN(17) != b.IntN(17) {
					return false
				}
				if a.Faker().LetterN(5) != b.Faker().LetterN(5) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}

func TestSource_IntNBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("IntN stays in [0,n)", prop.ForAll(
		func(seed int64, n int) bool {
			s := rng.New(seed)
			for i := 0; i < 20; i++ {
				v := s.IntN(n)
				if v < 0 || v >= n {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}

func TestSource_DegenerateArguments(t *testing.T) {
	t.Parallel()

	s := rng.New(1)
	assert.Equal(t, 0, s.IntN(0))
	assert.Equal(t, 0, s.IntN(-3))
	assert.Equal(t, -1, s.Pick(0))
	assert.Equal(t, 7, s.IntRange(7, 7))

	v := s.IntRange(9, 3)
	assert.GreaterOrEqual(t, v, 3)
	assert.LessOrEqual(t, v, 9)
}

func TestSource_Read(t *testing.T) {
	t.Parallel()

	a, b := rng.New(42), rng.New(42)
	p1, p2 := make([]byte, 13), make([]byte, 13)

	n, err := a.Read(p1)
	require.NoError(t, err)
	require.Equal(t, 13, n)
	_, _ = b.Read(p2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, int64(42), a.Seed())
}
