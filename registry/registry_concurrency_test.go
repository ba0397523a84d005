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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/config"
	"dirpx.dev/rgen/registry"
	"dirpx.dev/rgen/typedesc"
)

// A few named types to avoid anonymous/unnamed pitfalls.
type T0 struct{}
type T1 struct{}
type T2 struct{}
type T3 struct{}
type T4 struct{}

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	descs := []*typedesc.Descriptor{
		typedesc.For[T0](), typedesc.For[T1](), typedesc.For[T2](),
		typedesc.For[T3](), typedesc.For[T4](),
	}
	fns := []apis.Randomizer{fixedA, fixedB, fixedA, fixedB, fixedA}

	// Register once (sequential) to establish baseline.
	for i, d := range descs {
		if err := reg.Register(d, fns[i]); err != nil {
			t.Fatalf("register %s: %v", d, err)
		}
	}

	// Hammer with concurrent lookups and idempotent re-registrations.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				d := descs[i%len(descs)]
				if e, ok := reg.Lookup(d); !ok || e.Randomizer == nil {
					t.Errorf("lookup failed for %s: ok=%v", d, ok)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers (idempotent re-register)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(descs)
				_ = reg.Register(descs[j], fns[j]) // must be safe & idempotent
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if reg.Count() != len(descs) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(descs))
	}
	got := map[reflect.Type]bool{}
	for _, e := range reg.Entries() {
		got[e.Descriptor.Type()] = true
	}
	for _, d := range descs {
		if !got[d.Type()] {
			t.Fatalf("entry missing for %s", d)
		}
	}
}

// TestResetSnapshot ensures Reset is safe and Entries returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	_ = reg.Register(typedesc.For[T0](), fixedA)
	_ = reg.Register(typedesc.For[T1](), fixedB)

	snap := reg.Entries() // snapshot copy expected
	reg.Reset()

	// After Reset, Count() should be 0, but previous snapshot must still be usable.
	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
	if snap[0].Randomizer == nil || snap[1].Randomizer == nil {
		t.Fatalf("snapshot contents invalid after reset")
	}
	// Built-ins survive Reset.
	if _, ok := reg.Lookup(typedesc.For[string]()); !ok {
		t.Fatal("builtin string lost after Reset")
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New(config.DefaultConfig())
