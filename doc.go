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

// Package rgen generates fully populated random values of arbitrary Go
// types, for use as test fixtures.
//
// Given a type descriptor, rgen recursively produces a value graph:
// scalars get random values, structs get every settable field populated,
// containers get a random number of generated elements, and recursion is
// bounded by an ancestry-chain cycle guard and a depth guard. The same seed
// always yields the same graph.
//
//	type Person struct {
//		Name    string
//		Age     int
//		Friends collection.List `rgen:"List[model.Person]"`
//	}
//
//	_ = rgen.RegisterTypeAs("model.Person", reflect.TypeFor[Person]())
//	p, err := rgen.Next[Person]()
//
// # Descriptors and erased containers
//
// Go cannot instantiate generic types at run time, so element types of
// containers travel in a typedesc.Descriptor. Go slices, arrays, maps,
// channels and pointers carry their element type themselves. The erased
// kinds of package collection (List, Set, Queue, Map, ...) hold values of
// type any; a struct field names their element type through a tag
// expression resolved against the global type universe:
//
//	rgen:"List[model.Person]"          populated with Person values
//	rgen:"Set[?]"                      empty: no element type is knowable
//	rgen:"Queue[? extends model.Named]" empty as well
//	rgen:"-"                           field left untouched
//
// # Dispatch
//
// Every descriptor goes through the same ordered steps: the cycle and
// depth guards, types implementing apis.Randomizable, the randomizer
// registry, arrays and slices, sequence containers, maps, pointers,
// interfaces (through the concrete type resolver) and finally structs.
// Anything left, such as funcs, fails with *apis.ObjectCreationError.
//
// Container kinds that cannot hold an arbitrary population,
// collection.SynchronousQueue and collection.DelayQueue, are rejected: a
// field of such a type fails generation with *apis.ObjectCreationError
// wrapping *apis.UnsupportedOperationError, and NewEmptyContainer returns
// the latter directly.
//
// # Global state
//
// The global configuration, registry, resolver, universe and builder
// live in one immutable snapshot swapped
// atomically by writers (SetConfig, SetRegistry, SetBuilder, SetExt,
// SetAll). Generation calls read the snapshot without locks and own their
// randomness source and ancestry chain, so concurrent calls never share
// mutable state.
package rgen
