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
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/typedesc"
)

var (
	// ErrNilDescriptor is returned when a nil descriptor is provided.
	ErrNilDescriptor = errors.New("rgen(registry): nil descriptor provided")
	// ErrNilRandomizer is returned when a nil randomizer is provided.
	ErrNilRandomizer = errors.New("rgen(registry): nil randomizer provided")
	// ErrNotConcrete is returned when a wildcard or type variable is registered.
	ErrNotConcrete = errors.New("rgen(registry): descriptor is not concrete")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a descriptor with a different randomizer.
	ErrConflictingRegistration = errors.New("rgen(registry): conflicting randomizer registration")
)

// New constructs a Registry holding the built-in scalar randomizers.
func New(_ apis.Config) apis.Registry {
	return &registry{builtins: builtins()}
}

// registry is a Registry implementation backed by sync.Map for user
// overrides and an immutable map for built-ins.
type registry struct {
	// builtins maps descriptor keys to built-in randomizers; never written
	// after New.
	builtins map[string]apis.Entry
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps descriptor keys to user entries.
	m sync.Map // map[string]apis.Entry
	// count tracks the number of user entries.
	count int
}

// Register installs fn as the user override for d.
// It is idempotent for the same (descriptor, function) pair.
func (r *registry) Register(d *typedesc.Descriptor, fn apis.Randomizer) error {
	// Validate inputs early.
	if d == nil {
		return ErrNilDescriptor
	}
	if fn == nil {
		return ErrNilRandomizer
	}
	if !d.IsConcrete() {
		return ErrNotConcrete
	}
	key := d.Key()

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(key); ok {
		if sameFunc(old.(apis.Entry).Randomizer, fn) {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(key); ok {
		if sameFunc(old.(apis.Entry).Randomizer, fn) {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(key, apis.Entry{Descriptor: d, Randomizer: fn, Provenance: apis.User})
	r.count++
	return nil
}

// Lookup resolves d in order: exact user override, exact built-in, raw
// type user override, raw type built-in, then a built-in chosen by the
// basic kind of a named scalar type (type Status string).
func (r *registry) Lookup(d *typedesc.Descriptor) (apis.Entry, bool) {
	if !d.IsConcrete() {
		return apis.Entry{}, false
	}
	key := d.Key()
	if v, ok := r.m.Load(key); ok {
		return v.(apis.Entry), true
	}
	if e, ok := r.builtins[key]; ok {
		return e, true
	}
	if len(d.TypeArgs()) > 0 {
		raw := typedesc.Raw(d.Type()).Key()
		if v, ok := r.m.Load(raw); ok {
			return v.(apis.Entry), true
		}
		if e, ok := r.builtins[raw]; ok {
			return e, true
		}
	}
	if fn := byKind(d.Type()); fn != nil {
		return apis.Entry{Descriptor: d, Randomizer: fn, Provenance: apis.Builtin}, true
	}
	return apis.Entry{}, false
}

// Entries returns a snapshot of user entries (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Entry))
		return true
	})
	return entries
}

// Count returns the number of user entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all user entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}

func sameFunc(a, b apis.Randomizer) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
