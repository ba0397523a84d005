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

package policy

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/collection"
)

// ErrNotContainer is returned by NewEmpty for types unknown to the table.
var ErrNotContainer = errors.New("rgen(policy): not a container type")

// ErrUnhashableKey is returned by Put for a Go map key whose dynamic value
// cannot be hashed.
var ErrUnhashableKey = errors.New("rgen(policy): unhashable map key")

const (
	reasonRendezvous = "rendezvous queue: insertion blocks until a consumer takes the element"
	reasonDelay      = "delay-gated queue: elements must implement a delay contract"
)

// entry is one table row. Abstract rows point at their concrete default.
type entry struct {
	shape    Shape
	concrete reflect.Type
	recipe   Recipe
	reason   string
	native   bool
	ctor     func(capacity int) any
}

// Table is the container policy table.
type Table struct {
	m map[reflect.Type]entry
}

var sharedTable = sync.OnceValue(New)

// DefaultTable returns the process-wide table. It is built once and never
// modified.
func DefaultTable() *Table { return sharedTable() }

// New builds a table holding every collection kind.
func New() *Table {
	t := &Table{m: make(map[reflect.Type]entry)}

	concrete := func(shape Shape, recipe Recipe, mk func(int) any) {
		typ := reflect.TypeOf(mk(0))
		t.m[typ] = entry{shape: shape, concrete: typ, recipe: recipe, ctor: mk}
	}
	concrete(Sequence, Default, func(int) any { return collection.NewArrayList() })
	concrete(Sequence, Default, func(int) any { return collection.NewLinkedList() })
	concrete(Sequence, Default, func(int) any { return collection.NewHashSet() })
	concrete(Sequence, Default, func(int) any { return collection.NewLinkedHashSet() })
	concrete(Sequence, Default, func(int) any { return collection.NewTreeSet() })
	concrete(Sequence, Default, func(int) any { return collection.NewArrayDeque() })
	concrete(Sequence, Default, func(int) any { return collection.NewPriorityQueue() })
	concrete(Sequence, Default, func(int) any { return collection.NewLinkedBlockingQueue() })
	concrete(Sequence, WithCapacity, func(n int) any { return collection.NewArrayBlockingQueue(n) })
	concrete(Sequence, Default, func(int) any { return collection.NewLinkedBlockingDeque() })
	concrete(Sequence, Default, func(int) any { return collection.NewLinkedTransferQueue() })
	concrete(Mapping, Default, func(int) any { return collection.NewHashMap() })
	concrete(Mapping, Default, func(int) any { return collection.NewLinkedHashMap() })
	concrete(Mapping, Default, func(int) any { return collection.NewTreeMap() })

	rejected := func(typ reflect.Type, reason string) {
		t.m[typ] = entry{shape: Sequence, concrete: typ, recipe: Unsupported, reason: reason}
	}
	rejected(reflect.TypeFor[*collection.SynchronousQueue](), reasonRendezvous)
	rejected(reflect.TypeFor[*collection.DelayQueue](), reasonDelay)

	abstract := func(iface, def reflect.Type) {
		t.m[iface] = t.m[def]
	}
	abstract(reflect.TypeFor[collection.Collection](), reflect.TypeFor[*collection.ArrayList]())
	abstract(reflect.TypeFor[collection.List](), reflect.TypeFor[*collection.ArrayList]())
	abstract(reflect.TypeFor[collection.Set](), reflect.TypeFor[*collection.HashSet]())
	abstract(reflect.TypeFor[collection.SortedSet](), reflect.TypeFor[*collection.TreeSet]())
	abstract(reflect.TypeFor[collection.NavigableSet](), reflect.TypeFor[*collection.TreeSet]())
	abstract(reflect.TypeFor[collection.Queue](), reflect.TypeFor[*collection.ArrayDeque]())
	abstract(reflect.TypeFor[collection.Deque](), reflect.TypeFor[*collection.ArrayDeque]())
	abstract(reflect.TypeFor[collection.BlockingQueue](), reflect.TypeFor[*collection.LinkedBlockingQueue]())
	abstract(reflect.TypeFor[collection.TransferQueue](), reflect.TypeFor[*collection.LinkedTransferQueue]())
	abstract(reflect.TypeFor[collection.BlockingDeque](), reflect.TypeFor[*collection.LinkedBlockingDeque]())
	abstract(reflect.TypeFor[collection.Map](), reflect.TypeFor[*collection.HashMap]())
	abstract(reflect.TypeFor[collection.SortedMap](), reflect.TypeFor[*collection.TreeMap]())
	return t
}

func (t *Table) lookup(rt reflect.Type) (entry, bool) {
	if rt == nil {
		return entry{}, false
	}
	if e, ok := t.m[rt]; ok {
		return e, true
	}
	switch rt.Kind() {
	case reflect.Chan:
		return entry{shape: Sequence, concrete: rt, recipe: WithCapacity, native: true}, true
	case reflect.Map:
		return entry{shape: Mapping, concrete: rt, native: true}, true
	}
	return entry{}, false
}

// Instantiate creates the empty container chosen by p. Channels are created
// bidirectional so they can be filled; Finish converts them to the
// requested direction.
func (t *Table) Instantiate(p Policy) reflect.Value {
	return t.instantiate(p.Concrete, p.Count)
}

func (t *Table) instantiate(rt reflect.Type, capacity int) reflect.Value {
	if e, ok := t.m[rt]; ok {
		return reflect.ValueOf(e.ctor(capacity))
	}
	switch rt.Kind() {
	case reflect.Chan:
		return reflect.MakeChan(reflect.ChanOf(reflect.BothDir, rt.Elem()), capacity)
	case reflect.Map:
		return reflect.MakeMapWithSize(rt, capacity)
	}
	return reflect.Value{}
}

// Finish returns c as a value of the requested type rt.
func Finish(c reflect.Value, rt reflect.Type) reflect.Value {
	if c.Type() == rt {
		return c
	}
	if c.Kind() == reflect.Chan {
		return c.Convert(rt)
	}
	out := reflect.New(rt).Elem()
	out.Set(c)
	return out
}

// NewEmpty instantiates rt directly, bypassing generation. A non-negative
// capacity is passed to capacity-taking recipes. Rejected kinds fail with
// *apis.UnsupportedOperationError.
func (t *Table) NewEmpty(rt reflect.Type, capacity int) (reflect.Value, error) {
	e, ok := t.lookup(rt)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrNotContainer, rt)
	}
	if e.recipe == Unsupported {
		return reflect.Value{}, &apis.UnsupportedOperationError{Type: rt, Reason: e.reason}
	}
	return Finish(t.instantiate(e.concrete, max(capacity, 0)), rt), nil
}

// Add inserts elem into the sequence container c.
func Add(c, elem reflect.Value) error {
	if c.Kind() == reflect.Chan {
		if !c.TrySend(elem) {
			return collection.ErrFull
		}
		return nil
	}
	coll, ok := c.Interface().(collection.Collection)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotContainer, c.Type())
	}
	return coll.Add(elem.Interface())
}

// Put stores the pair in the mapping container c. An invalid value stores
// the zero value (Go maps) or nil (collection maps).
func Put(c, key, value reflect.Value) error {
	if c.Kind() == reflect.Map {
		if !key.Comparable() {
			return fmt.Errorf("%w: %v", ErrUnhashableKey, key.Type())
		}
		if !value.IsValid() {
			value = reflect.Zero(c.Type().Elem())
		}
		c.SetMapIndex(key, value)
		return nil
	}
	m, ok := c.Interface().(collection.Map)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotContainer, c.Type())
	}
	var v any
	if value.IsValid() {
		v = value.Interface()
	}
	m.Put(key.Interface(), v)
	return nil
}
