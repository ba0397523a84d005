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

// Package resolver picks concrete types for interface-typed values.
//
// Explicit bindings always win. Candidate scanning is opt-in through
// apis.Config.ScanForConcreteTypes: candidates implementing the interface,
// directly or through their pointer, are ordered by name and one is drawn
// from the call's Source, so the pick is reproducible for a seed.
package resolver

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/rng"
	uref "dirpx.dev/rgen/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is passed.
	ErrNilType = errors.New("rgen(resolver): nil type")
	// ErrNotInterface is returned when binding or resolving a non-interface type.
	ErrNotInterface = errors.New("rgen(resolver): not an interface type")
	// ErrNotImplemented is returned when a bound type does not implement the interface.
	ErrNotImplemented = errors.New("rgen(resolver): type does not implement interface")
	// ErrConflictingBinding is returned when an interface is bound twice to different types.
	ErrConflictingBinding = errors.New("rgen(resolver): conflicting binding")
)

// New constructs an empty apis.Resolver, safe for concurrent use.
func New() apis.Resolver {
	return &resolver{}
}

// resolver holds explicit bindings and scan candidates.
type resolver struct {
	// bindings maps interface type -> implementing type.
	bindings sync.Map

	mu         sync.RWMutex
	candidates []reflect.Type
}

// Ensure resolver implements apis.Resolver.
var _ apis.Resolver = (*resolver)(nil)

// Bind maps iface to concrete. When only *concrete implements iface the
// pointer type is stored. Re-binding to the same type is a no-op.
func (r *resolver) Bind(iface, concrete reflect.Type) error {
	if iface == nil || concrete == nil {
		return ErrNilType
	}
	if iface.Kind() != reflect.Interface {
		return fmt.Errorf("%w: %v", ErrNotInterface, iface)
	}
	impl, ok := implementing(concrete, iface)
	if !ok {
		return fmt.Errorf("%w: %v does not implement %v", ErrNotImplemented, concrete, iface)
	}
	if prev, loaded := r.bindings.LoadOrStore(iface, impl); loaded && prev.(reflect.Type) != impl {
		return ErrConflictingBinding
	}
	return nil
}

// Candidates adds scan candidates. Interface types are refused; duplicates
// are ignored.
func (r *resolver) Candidates(types ...reflect.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range types {
		if t == nil {
			return ErrNilType
		}
		if t.Kind() == reflect.Interface {
			return fmt.Errorf("%w: candidate %v is an interface", ErrNotImplemented, t)
		}
		if !slices.Contains(r.candidates, t) {
			r.candidates = append(r.candidates, t)
		}
	}
	return nil
}

// Resolve returns the concrete type for iface, or nil when no binding
// exists and scanning is off or finds nothing.
func (r *resolver) Resolve(iface reflect.Type, src *rng.Source, cfg apis.Config) (reflect.Type, error) {
	if iface == nil {
		return nil, ErrNilType
	}
	if iface.Kind() != reflect.Interface {
		return nil, fmt.Errorf("%w: %v", ErrNotInterface, iface)
	}
	if v, ok := r.bindings.Load(iface); ok {
		return v.(reflect.Type), nil
	}
	if !cfg.ScanForConcreteTypes {
		return nil, nil
	}

	r.mu.RLock()
	var found []reflect.Type
	for _, c := range r.candidates {
		if impl, ok := implementing(c, iface); ok {
			found = append(found, impl)
		}
	}
	r.mu.RUnlock()

	if len(found) == 0 {
		return nil, nil
	}
	// Registration order must not leak into the pick.
	slices.SortFunc(found, func(a, b reflect.Type) int {
		if c := cmp.Compare(uref.TypeName(a), uref.TypeName(b)); c != 0 {
			return c
		}
		return cmp.Compare(a.String(), b.String())
	})
	return found[src.Pick(len(found))], nil
}

// implementing returns t or *t, whichever implements iface first.
func implementing(t, iface reflect.Type) (reflect.Type, bool) {
	switch {
	case t.Implements(iface):
		return t, true
	case t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iface):
		return reflect.PointerTo(t), true
	}
	return nil, false
}
