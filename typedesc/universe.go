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

package typedesc

import (
	"errors"
	"reflect"
	"sort"
	"sync"
	"time"

	uref "dirpx.dev/rgen/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("rgen(typedesc): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("rgen(typedesc): empty name provided")
	// ErrConflictingRegistration indicates an attempt to bind a name that is
	// already bound to a different type.
	ErrConflictingRegistration = errors.New("rgen(typedesc): conflicting type registration")
)

// Universe maps names used in tag expressions to Go types.
//
// A Universe is filled at configuration time and read concurrently by
// generation calls afterwards; it is safe for concurrent use.
type Universe struct {
	mu sync.RWMutex
	m  map[string]reflect.Type
}

// NewUniverse returns a Universe holding the Go builtin scalar types and
// time.Time/time.Duration.
func NewUniverse() *Universe {
	u := &Universe{m: make(map[string]reflect.Type)}
	for _, t := range []reflect.Type{
		reflect.TypeFor[bool](), reflect.TypeFor[string](),
		reflect.TypeFor[int](), reflect.TypeFor[int8](), reflect.TypeFor[int16](),
		reflect.TypeFor[int32](), reflect.TypeFor[int64](),
		reflect.TypeFor[uint](), reflect.TypeFor[uint8](), reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](), reflect.TypeFor[uint64](), reflect.TypeFor[uintptr](),
		reflect.TypeFor[float32](), reflect.TypeFor[float64](),
		reflect.TypeFor[complex64](), reflect.TypeFor[complex128](),
		reflect.TypeFor[time.Time](), reflect.TypeFor[time.Duration](),
	} {
		u.m[uref.TypeName(t)] = t
	}
	u.m["byte"] = reflect.TypeFor[byte]()
	u.m["rune"] = reflect.TypeFor[rune]()
	return u
}

// Register binds t under its "pkg.Type" name. Pointer, slice and similar
// wrappers are unwrapped to the nearest named type first.
func (u *Universe) Register(t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	b, err := uref.Normalize(t, 0)
	if err != nil {
		return err
	}
	return u.RegisterAs(uref.TypeName(b), b)
}

// RegisterAs binds t under name. Re-binding the same pair is a no-op;
// binding the name to another type fails with ErrConflictingRegistration.
func (u *Universe) RegisterAs(name string, t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if old, ok := u.m[name]; ok {
		if old == t {
			return nil
		}
		return ErrConflictingRegistration
	}
	u.m[name] = t
	return nil
}

// Lookup returns the type bound to name.
func (u *Universe) Lookup(name string) (reflect.Type, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	t, ok := u.m[name]
	return t, ok
}

// Names returns every bound name in sorted order.
func (u *Universe) Names() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]string, 0, len(u.m))
	for n := range u.m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of u.
func (u *Universe) Clone() *Universe {
	u.mu.RLock()
	defer u.mu.RUnlock()
	c := &Universe{m: make(map[string]reflect.Type, len(u.m))}
	for n, t := range u.m {
		c.m[n] = t
	}
	return c
}
