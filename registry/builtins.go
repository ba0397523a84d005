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

package registry

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/rng"
	"dirpx.dev/rgen/typedesc"
)

var (
	dateMin = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateMax = time.Date(2100, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// kindRandomizers covers every scalar kind. Values have the builtin type of
// the kind and are converted for named types.
var kindRandomizers = map[reflect.Kind]apis.Randomizer{
	reflect.Bool:    func(s *rng.Source, _ apis.Config) any { return s.Faker().Bool() },
	reflect.Int:     func(s *rng.Source, _ apis.Config) any { return int(s.Faker().Int32()) },
	reflect.Int8:    func(s *rng.Source, _ apis.Config) any { return s.Faker().Int8() },
	reflect.Int16:   func(s *rng.Source, _ apis.Config) any { return s.Faker().Int16() },
	reflect.Int32:   func(s *rng.Source, _ apis.Config) any { return s.Faker().Int32() },
	reflect.Int64:   func(s *rng.Source, _ apis.Config) any { return s.Faker().Int64() },
	reflect.Uint:    func(s *rng.Source, _ apis.Config) any { return uint(s.Faker().Uint32()) },
	reflect.Uint8:   func(s *rng.Source, _ apis.Config) any { return s.Faker().Uint8() },
	reflect.Uint16:  func(s *rng.Source, _ apis.Config) any { return s.Faker().Uint16() },
	reflect.Uint32:  func(s *rng.Source, _ apis.Config) any { return s.Faker().Uint32() },
	reflect.Uint64:  func(s *rng.Source, _ apis.Config) any { return s.Faker().Uint64() },
	reflect.Uintptr: func(s *rng.Source, _ apis.Config) any { return uintptr(s.Faker().Uint32()) },
	reflect.Float32: func(s *rng.Source, _ apis.Config) any { return s.Faker().Float32() },
	reflect.Float64: func(s *rng.Source, _ apis.Config) any { return s.Faker().Float64() },
	reflect.Complex64: func(s *rng.Source, _ apis.Config) any {
		return complex(s.Faker().Float32(), s.Faker().Float32())
	},
	reflect.Complex128: func(s *rng.Source, _ apis.Config) any {
		return complex(s.Faker().Float64(), s.Faker().Float64())
	},
	reflect.String: randomString,
}

// randomString returns letters, length in [1, MaxStringLength].
func randomString(s *rng.Source, cfg apis.Config) any {
	n := s.IntRange(1, max(cfg.MaxStringLength, 1))
	return s.Faker().LetterN(uint(n))
}

func randomTime(s *rng.Source, _ apis.Config) any {
	return s.Faker().DateRange(dateMin, dateMax).UTC()
}

func randomDuration(s *rng.Source, _ apis.Config) any {
	return time.Duration(s.IntN(int(24 * time.Hour)))
}

func randomUUID(s *rng.Source, _ apis.Config) any {
	// The Source never fails as a reader.
	id, _ := uuid.NewRandomFromReader(s)
	return id
}

func randomBytes(s *rng.Source, cfg apis.Config) any {
	b := make([]byte, s.IntRange(0, max(cfg.MaxCollectionSize, 0)))
	_, _ = s.Read(b)
	return b
}

// builtins returns the built-in randomizers keyed by descriptor key.
func builtins() map[string]apis.Entry {
	m := make(map[string]apis.Entry, len(kindRandomizers)+4)
	add := func(t reflect.Type, fn apis.Randomizer) {
		d := typedesc.Of(t)
		m[d.Key()] = apis.Entry{Descriptor: d, Randomizer: fn, Provenance: apis.Builtin}
	}
	for k, fn := range kindRandomizers {
		add(basicTypes[k], fn)
	}
	add(reflect.TypeFor[time.Time](), randomTime)
	add(reflect.TypeFor[time.Duration](), randomDuration)
	add(reflect.TypeFor[uuid.UUID](), randomUUID)
	add(reflect.TypeFor[[]byte](), randomBytes)
	return m
}

var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:       reflect.TypeFor[bool](),
	reflect.Int:        reflect.TypeFor[int](),
	reflect.Int8:       reflect.TypeFor[int8](),
	reflect.Int16:      reflect.TypeFor[int16](),
	reflect.Int32:      reflect.TypeFor[int32](),
	reflect.Int64:      reflect.TypeFor[int64](),
	reflect.Uint:       reflect.TypeFor[uint](),
	reflect.Uint8:      reflect.TypeFor[uint8](),
	reflect.Uint16:     reflect.TypeFor[uint16](),
	reflect.Uint32:     reflect.TypeFor[uint32](),
	reflect.Uint64:     reflect.TypeFor[uint64](),
	reflect.Uintptr:    reflect.TypeFor[uintptr](),
	reflect.Float32:    reflect.TypeFor[float32](),
	reflect.Float64:    reflect.TypeFor[float64](),
	reflect.Complex64:  reflect.TypeFor[complex64](),
	reflect.Complex128: reflect.TypeFor[complex128](),
	reflect.String:     reflect.TypeFor[string](),
}

// byKind returns a randomizer for named scalar types such as
// `type Status string`, converting the builtin value to t.
func byKind(t reflect.Type) apis.Randomizer {
	if t == nil {
		return nil
	}
	fn, ok := kindRandomizers[t.Kind()]
	if !ok {
		return nil
	}
	return func(s *rng.Source, cfg apis.Config) any {
		return reflect.ValueOf(fn(s, cfg)).Convert(t).Interface()
	}
}
