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

package registry_test

import (
	"reflect"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/config"
	"dirpx.dev/rgen/registry"
	"dirpx.dev/rgen/rng"
	"dirpx.dev/rgen/typedesc"
)

type Status string

type Box struct{}

func constant(v any) apis.Randomizer {
	return func(*rng.Source, apis.Config) any { return v }
}

func fixedA(*rng.Source, apis.Config) any { return "a" }
func fixedB(*rng.Source, apis.Config) any { return "b" }

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	d := typedesc.For[Box]()

	if err := reg.Register(d, fixedA); err != nil {
		t.Fatalf("Register(Box): unexpected error: %v", err)
	}
	// idempotent re-register with the same function
	if err := reg.Register(typedesc.For[Box](), fixedA); err != nil {
		t.Fatalf("Register(Box) idempotent: unexpected error: %v", err)
	}

	e, ok := reg.Lookup(d)
	if !ok || e.Provenance != apis.User {
		t.Fatalf("Lookup(Box): got (%v,%v), want user entry", e.Provenance, ok)
	}
	if got := e.Randomizer(rng.New(1), config.DefaultConfig()); got != "a" {
		t.Fatalf("randomizer produced %v, want a", got)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if err := reg.Register(typedesc.For[Box](), fixedA); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	err := reg.Register(typedesc.For[Box](), fixedB)
	if err != registry.ErrConflictingRegistration {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if err := reg.Register(nil, fixedA); err != registry.ErrNilDescriptor {
		t.Fatalf("nil descriptor: want ErrNilDescriptor, got %v", err)
	}
	if err := reg.Register(typedesc.For[Box](), nil); err != registry.ErrNilRandomizer {
		t.Fatalf("nil randomizer: want ErrNilRandomizer, got %v", err)
	}
	if err := reg.Register(typedesc.Unbounded(), fixedA); err != registry.ErrNotConcrete {
		t.Fatalf("wildcard: want ErrNotConcrete, got %v", err)
	}
}

func TestLookup_Order(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	box := reflect.TypeOf(Box{})
	exact := typedesc.Parameterized(box, typedesc.For[int]())

	// raw user entry serves every parameterization
	if err := reg.Register(typedesc.Raw(box), constant("raw")); err != nil {
		t.Fatal(err)
	}
	e, ok := reg.Lookup(exact)
	if !ok || e.Randomizer(nil, apis.Config{}) != "raw" {
		t.Fatalf("raw fallback: got ok=%v", ok)
	}

	// an exact entry wins over the raw one
	if err := reg.Register(exact, constant("exact")); err != nil {
		t.Fatal(err)
	}
	e, _ = reg.Lookup(exact)
	if got := e.Randomizer(nil, apis.Config{}); got != "exact" {
		t.Fatalf("exact lookup: got %v, want exact", got)
	}

	// a user override shadows a built-in
	if err := reg.Register(typedesc.For[string](), constant("user")); err != nil {
		t.Fatal(err)
	}
	e, _ = reg.Lookup(typedesc.For[string]())
	if e.Provenance != apis.User {
		t.Fatalf("string: got provenance %v, want user", e.Provenance)
	}
}

func TestLookup_Builtins(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	cfg := config.NewConfig(config.WithMaxStringLength(5))
	src := rng.New(99)

	cases := []reflect.Type{
		reflect.TypeFor[bool](), reflect.TypeFor[int](), reflect.TypeFor[int8](),
		reflect.TypeFor[uint64](), reflect.TypeFor[uintptr](), reflect.TypeFor[float32](),
		reflect.TypeFor[complex128](), reflect.TypeFor[string](), reflect.TypeFor[time.Time](),
		reflect.TypeFor[time.Duration](), reflect.TypeFor[uuid.UUID](), reflect.TypeFor[[]byte](),
		reflect.TypeFor[Status](),
	}
	for _, typ := range cases {
		e, ok := reg.Lookup(typedesc.Of(typ))
		if !ok || e.Provenance != apis.Builtin {
			t.Fatalf("Lookup(%v): got (%v,%v), want builtin", typ, e.Provenance, ok)
		}
		v := e.Randomizer(src, cfg)
		if reflect.TypeOf(v) != typ {
			t.Fatalf("Lookup(%v) produced %T", typ, v)
		}
	}

	for i := 0; i < 200; i++ {
		e, _ := reg.Lookup(typedesc.For[string]())
		s := e.Randomizer(src, cfg).(string)
		if n := utf8.RuneCountInString(s); n < 1 || n > 5 {
			t.Fatalf("string length %d outside [1,5]", n)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if _, ok := reg.Lookup(nil); ok {
		t.Fatal("Lookup(nil): want miss")
	}
	if _, ok := reg.Lookup(typedesc.For[Box]()); ok {
		t.Fatal("Lookup(Box): want miss")
	}
	if _, ok := reg.Lookup(typedesc.Extends(typedesc.For[string]())); ok {
		t.Fatal("Lookup(? extends string): want miss")
	}
	if _, ok := reg.Lookup(typedesc.For[[]string]()); ok {
		t.Fatal("Lookup([]string): want miss")
	}
}

func TestBuiltins_Deterministic(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	cfg := config.DefaultConfig()
	e, _ := reg.Lookup(typedesc.For[uuid.UUID]())

	a := e.Randomizer(rng.New(5), cfg)
	b := e.Randomizer(rng.New(5), cfg)
	if a != b {
		t.Fatalf("same seed gave %v and %v", a, b)
	}
}
