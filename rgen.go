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

package rgen

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/builder"
	"dirpx.dev/rgen/collection"
	"dirpx.dev/rgen/config"
	"dirpx.dev/rgen/policy"
	"dirpx.dev/rgen/resolver"
	"dirpx.dev/rgen/typedesc"
)

// init initializes the global state.
func init() {
	s := &state{
		cfg: config.DefaultConfig(),
		res: resolver.New(),
		uni: DefaultUniverse(),
		bld: builder.New(),
	}
	s.reg = s.bld.BuildRegistry(s.cfg, nil, nil)
	s.gen = s.bld.BuildGenerator(s.cfg, s.reg, s.res, s.uni, nil)
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("rgen: builder returned nil registry")
	// ErrNilGenerator is returned when a builder returns a nil generator.
	ErrNilGenerator = errors.New("rgen: builder returned nil generator")
	// ErrNotPointer is returned by Fill for anything but a non-nil pointer.
	ErrNotPointer = errors.New("rgen: Fill needs a non-nil pointer")
)

// DefaultUniverse returns a universe holding the Go builtins, uuid.UUID and
// every collection kind under both "Name" and "collection.Name".
func DefaultUniverse() *typedesc.Universe {
	u := typedesc.NewUniverse()
	_ = u.Register(reflect.TypeFor[uuid.UUID]())
	for name, t := range collection.Kinds() {
		_ = u.RegisterAs(name, t)
		_ = u.RegisterAs("collection."+name, t)
	}
	return u
}

// Generate produces a value for d under cfg using the global registry,
// resolver and universe. A nil result with a nil error is null: the
// descriptor was unresolvable or cut by a guard.
func Generate(d *typedesc.Descriptor, cfg apis.Config) (any, error) {
	v, err := st.Load().gen.Generate(d, cfg)
	if err != nil || !v.IsValid() {
		return nil, err
	}
	return v.Interface(), nil
}

// Next generates a T under the global configuration.
func Next[T any]() (T, error) {
	return NextWith[T](st.Load().cfg)
}

// NextWith generates a T under cfg. A null result yields the zero T.
func NextWith[T any](cfg apis.Config) (T, error) {
	var zero T
	v, err := st.Load().gen.Generate(typedesc.For[T](), cfg)
	if err != nil || !v.IsValid() {
		return zero, err
	}
	out, ok := v.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("rgen: generated %v, want %v", v.Type(), reflect.TypeFor[T]())
	}
	return out, nil
}

// Fill populates the value ptr points to under the global configuration.
// A null result leaves it untouched.
func Fill(ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}
	s := st.Load()
	v, err := s.gen.Generate(typedesc.Of(rv.Elem().Type()), s.cfg)
	if err != nil || !v.IsValid() {
		return err
	}
	rv.Elem().Set(v)
	return nil
}

// NewEmptyContainer instantiates the container type t directly, leaving it
// empty. capacity is honoured by capacity-taking kinds. Rejected kinds fail
// with *apis.UnsupportedOperationError.
func NewEmptyContainer(t reflect.Type, capacity int) (any, error) {
	v, err := tableOf(st.Load().ext).NewEmpty(t, capacity)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func tableOf(ext any) *policy.Table {
	if tbl, ok := ext.(*policy.Table); ok && tbl != nil {
		return tbl
	}
	return policy.DefaultTable()
}

// RegisterRandomizer adds a user randomizer to the global registry.
func RegisterRandomizer(d *typedesc.Descriptor, fn apis.Randomizer) error {
	return st.Load().reg.Register(d, fn)
}

// Bind maps the interface iface to concrete in the global resolver.
func Bind(iface, concrete reflect.Type) error {
	return st.Load().res.Bind(iface, concrete)
}

// Candidates registers scan candidates with the global resolver.
func Candidates(types ...reflect.Type) error {
	return st.Load().res.Candidates(types...)
}

// RegisterType makes t usable by name in field tag expressions.
func RegisterType(t reflect.Type) error {
	return st.Load().uni.Register(t)
}

// RegisterTypeAs makes t usable as name in field tag expressions.
func RegisterTypeAs(name string, t reflect.Type) error {
	return st.Load().uni.RegisterAs(name, t)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced. A non-nil reg is pinned.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	if cfg != nil {
		next.cfg = *cfg
	}
	next.ext = ext
	if bld != nil {
		next.bld = bld
	}
	if res != nil {
		next.res = res
	}
	next.preg = reg != nil
	if reg != nil {
		next.reg = reg
	} else {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.ext)
	}
	publish(&next)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg.
// It rebuilds the registry, unless pinned, and the generator.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.cfg = cfg
	rebuild(&next)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets and pins the global registry.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.reg, next.preg = reg, true
	publish(&next)
}

// Resolver returns the global concrete type resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver replaces the global concrete type resolver.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.res = res
	publish(&next)
}

// Universe returns the global type universe.
func Universe() *typedesc.Universe {
	return st.Load().uni
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds non-pinned layers.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.bld = b
	rebuild(&next)
}

// SetExt replaces the extension value and rebuilds non-pinned layers. The
// default builder accepts a *policy.Table as ext.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.ext = ext
	rebuild(&next)
}

// ExtAs returns the global extension value as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops rebuilds of the global registry.
func PinRegistry() {
	setPinned(true)
}

// UnpinRegistry lets the global registry be rebuilt again.
func UnpinRegistry() {
	setPinned(false)
}

func setPinned(p bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.preg = p
	st.Store(&next)
}

// rebuild rebuilds the registry unless pinned, then publishes. Callers
// hold buildMu.
func rebuild(next *state) {
	if !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, next.reg, next.ext)
	}
	publish(next)
}

// publish rebuilds the generator over next and stores it. Callers hold
// buildMu.
func publish(next *state) {
	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	next.gen = next.bld.BuildGenerator(next.cfg, next.reg, next.res, next.uni, next.ext)
	if next.gen == nil {
		panic(ErrNilGenerator)
	}
	st.Store(next)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers copy it, change the copy and swap it in.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the global extension value.
	ext any
	// reg is the global registry.
	reg apis.Registry
	// res is the global concrete type resolver.
	res apis.Resolver
	// uni is the global type universe.
	uni *typedesc.Universe
	// gen is the generator built over reg, res and uni.
	gen apis.Generator
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
}
