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

package apis

import "dirpx.dev/rgen/rng"

// Randomizable is implemented by types that populate themselves.
//
// # Overview
//
// Randomizable is the fast path of generation: when a pointer to the
// requested type implements it, the generator allocates a zero value, calls
// Randomize on it and stops. No registry lookup, field walk or container
// policy is consulted for that value.
//
// # Contract
//
//   - Randomize MUST draw every random decision from src so that the same
//     seed yields the same value.
//   - Randomize MUST NOT retain src after returning.
//   - Randomize SHOULD honour cfg size bounds (MaxCollectionSize,
//     MaxStringLength) for any collections or strings it fills.
//   - Randomize MUST NOT block or perform I/O.
//
// # Usage
//
//	type Money struct {
//	    Units    int64
//	    Currency string
//	}
//
//	func (m *Money) Randomize(src *rng.Source, _ apis.Config) {
//	    m.Units = int64(src.IntN(100_000))
//	    m.Currency = []string{"EUR", "USD", "GBP"}[src.IntN(3)]
//	}
type Randomizable interface {
	Randomize(src *rng.Source, cfg Config)
}
