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

// Package policy decides how container types are instantiated and filled.
//
// A Table maps the raw identity of a container type to one of three
// outcomes: leave it empty, populate it with a drawn number of elements, or
// reject it outright. Abstract kinds (collection.List, collection.Queue,
// ...) map to a concrete default; concrete kinds carry an instantiation
// recipe. Go channels and Go maps are covered by kind.
//
// A Table is read-only once built and may be shared by concurrent
// generation calls.
package policy

import (
	"fmt"
	"reflect"

	"dirpx.dev/rgen/rng"
	"dirpx.dev/rgen/typedesc"
)

// Variant is the outcome of resolving a container descriptor.
type Variant uint8

const (
	// EmptyOnly instantiates the container and leaves it empty: no element
	// type is knowable.
	EmptyOnly Variant = iota
	// Populatable instantiates the container and fills it with Count
	// generated elements.
	Populatable
	// Rejected refuses the container kind whatever its arguments.
	Rejected
)

// String returns a short identifier for v. Unknown values render as
// "Unknown(<n>)" rather than panicking.
func (v Variant) String() string {
	switch v {
	case EmptyOnly:
		return "EmptyOnly"
	case Populatable:
		return "Populatable"
	case Rejected:
		return "Rejected"
	default:
		return fmt.Sprintf("Unknown(%d)", v)
	}
}

// Recipe is how a concrete container is constructed.
type Recipe uint8

const (
	// Default uses the zero-argument constructor.
	Default Recipe = iota
	// WithCapacity passes the element count as capacity, so the container
	// is never asked to hold more than it can.
	WithCapacity
	// Unsupported marks kinds that cannot hold an arbitrary population.
	Unsupported
)

// String returns a short identifier for r.
func (r Recipe) String() string {
	switch r {
	case Default:
		return "Default"
	case WithCapacity:
		return "WithCapacity"
	case Unsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("Unknown(%d)", r)
	}
}

// Shape tells sequence-like containers from key/value containers.
type Shape uint8

const (
	// None is not a container known to the table.
	None Shape = iota
	// Sequence covers collection kinds and Go channels.
	Sequence
	// Mapping covers collection map kinds and Go maps.
	Mapping
)

// Policy is the resolved decision for one container descriptor.
type Policy struct {
	// Variant is the decision.
	Variant Variant
	// Recipe is the construction recipe of Concrete.
	Recipe Recipe
	// Concrete is the type instantiated for the requested type.
	Concrete reflect.Type
	// Count is the number of elements to generate (Populatable only).
	Count int
	// Elem describes the element (Sequence) or key (Mapping).
	Elem *typedesc.Descriptor
	// Value describes the map value (Mapping only).
	Value *typedesc.Descriptor
	// Reason explains a rejection.
	Reason string
}

// Resolve decides the policy for d. It returns false when d is not a
// container known to t. Rules, in order: rejected kinds; no type arguments
// (raw) is EmptyOnly; a wildcard or type variable element (bounded or not)
// is EmptyOnly; an element that is itself a container known to t is
// EmptyOnly; any other concrete element is Populatable with a count drawn
// from src in [0, maxSize].
//
// For mappings both key and value must be populatable elements.
func (t *Table) Resolve(d *typedesc.Descriptor, src *rng.Source, maxSize int) (Policy, bool) {
	if !d.IsConcrete() {
		return Policy{}, false
	}
	e, ok := t.lookup(d.Type())
	if !ok {
		return Policy{}, false
	}
	p := Policy{Recipe: e.recipe, Concrete: e.concrete}
	if e.recipe == Unsupported {
		p.Variant, p.Reason = Rejected, e.reason
		return p, true
	}

	// Go chans and maps read their arguments off the Go type; collection
	// kinds only have the explicit ones.
	args := d.TypeArgs()
	if e.native {
		args = d.Args()
	}
	switch e.shape {
	case Sequence:
		if len(args) == 0 || !t.element(args[0]) {
			return p, true
		}
		p.Elem = args[0]
	case Mapping:
		if len(args) < 2 || !t.element(args[0]) || !t.element(args[1]) {
			return p, true
		}
		p.Elem, p.Value = args[0], args[1]
	}
	p.Variant = Populatable
	p.Count = src.IntRange(0, max(maxSize, 0))
	return p, true
}

// element reports whether a container may be populated with elements described by a.
// Containers of containers stay empty.
func (t *Table) element(a *typedesc.Descriptor) bool {
	if !a.IsConcrete() {
		return false
	}
	_, nested := t.lookup(a.Type())
	return !nested
}

// Shape reports whether rt is a sequence or mapping container known to t.
func (t *Table) Shape(rt reflect.Type) Shape {
	e, ok := t.lookup(rt)
	if !ok {
		return None
	}
	return e.shape
}
