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

// Package collection provides erased container kinds: containers whose
// elements are held as `any`. The element type of a container field is
// carried by its type descriptor (see package typedesc), not by the Go type.
//
// Abstract kinds are interfaces (List, Set, Queue, ...). Concrete kinds are
// pointer types (*ArrayList, *HashSet, ...), each with a zero-argument
// constructor; bounded kinds take a capacity instead.
package collection

import (
	"errors"
	"reflect"
)

var (
	// ErrFull is returned by Add when a bounded container has no room left,
	// or when a rendezvous container has no waiting consumer.
	ErrFull = errors.New("rgen(collection): container is full")
	// ErrNotDelayed is returned when a DelayQueue is offered an element that
	// does not implement Delayed.
	ErrNotDelayed = errors.New("rgen(collection): element does not implement Delayed")
)

// Collection is the root of the sequence, set and queue kinds.
type Collection interface {
	// Add inserts v. It fails only when the container cannot accept v.
	Add(v any) error
	// Len returns the number of held elements.
	Len() int
	// Values returns a snapshot of the elements in iteration order.
	Values() []any
}

// List is an ordered, index-addressable sequence.
type List interface {
	Collection
	Get(i int) any
}

// Set holds distinct elements.
type Set interface {
	Collection
	Contains(v any) bool
}

// SortedSet is a Set iterated in ascending element order.
type SortedSet interface {
	Set
	First() (any, bool)
	Last() (any, bool)
}

// NavigableSet is a SortedSet with nearest-match queries.
type NavigableSet interface {
	SortedSet
	Ceiling(v any) (any, bool)
	Floor(v any) (any, bool)
}

// Queue is a FIFO (or priority ordered) container.
type Queue interface {
	Collection
	Offer(v any) bool
	Poll() (any, bool)
	Peek() (any, bool)
}

// Deque is a Queue that can be used at both ends.
type Deque interface {
	Queue
	OfferFirst(v any) bool
	PollLast() (any, bool)
	PeekLast() (any, bool)
}

// Map is an erased key/value container.
type Map interface {
	Put(k, v any)
	Get(k any) (any, bool)
	Len() int
	Keys() []any
}

// SortedMap is a Map iterated in ascending key order.
type SortedMap interface {
	Map
	FirstKey() (any, bool)
	LastKey() (any, bool)
}

// Kinds returns every container kind by its short name.
func Kinds() map[string]reflect.Type {
	return map[string]reflect.Type{
		"Collection":    reflect.TypeFor[Collection](),
		"List":          reflect.TypeFor[List](),
		"Set":           reflect.TypeFor[Set](),
		"SortedSet":     reflect.TypeFor[SortedSet](),
		"NavigableSet":  reflect.TypeFor[NavigableSet](),
		"Queue":         reflect.TypeFor[Queue](),
		"Deque":         reflect.TypeFor[Deque](),
		"BlockingQueue": reflect.TypeFor[BlockingQueue](),
		"TransferQueue": reflect.TypeFor[TransferQueue](),
		"BlockingDeque": reflect.TypeFor[BlockingDeque](),
		"Map":           reflect.TypeFor[Map](),
		"SortedMap":     reflect.TypeFor[SortedMap](),

		"ArrayList":           reflect.TypeFor[*ArrayList](),
		"LinkedList":          reflect.TypeFor[*LinkedList](),
		"HashSet":             reflect.TypeFor[*HashSet](),
		"LinkedHashSet":       reflect.TypeFor[*LinkedHashSet](),
		"TreeSet":             reflect.TypeFor[*TreeSet](),
		"ArrayDeque":          reflect.TypeFor[*ArrayDeque](),
		"PriorityQueue":       reflect.TypeFor[*PriorityQueue](),
		"LinkedBlockingQueue": reflect.TypeFor[*LinkedBlockingQueue](),
		"ArrayBlockingQueue":  reflect.TypeFor[*ArrayBlockingQueue](),
		"LinkedBlockingDeque": reflect.TypeFor[*LinkedBlockingDeque](),
		"LinkedTransferQueue": reflect.TypeFor[*LinkedTransferQueue](),
		"SynchronousQueue":    reflect.TypeFor[*SynchronousQueue](),
		"DelayQueue":          reflect.TypeFor[*DelayQueue](),
		"HashMap":             reflect.TypeFor[*HashMap](),
		"LinkedHashMap":       reflect.TypeFor[*LinkedHashMap](),
		"TreeMap":             reflect.TypeFor[*TreeMap](),
	}
}

var (
	_ List          = (*ArrayList)(nil)
	_ List          = (*LinkedList)(nil)
	_ Deque         = (*LinkedList)(nil)
	_ Set           = (*HashSet)(nil)
	_ Set           = (*LinkedHashSet)(nil)
	_ NavigableSet  = (*TreeSet)(nil)
	_ Deque         = (*ArrayDeque)(nil)
	_ Queue         = (*PriorityQueue)(nil)
	_ BlockingQueue = (*LinkedBlockingQueue)(nil)
	_ BlockingQueue = (*ArrayBlockingQueue)(nil)
	_ BlockingDeque = (*LinkedBlockingDeque)(nil)
	_ TransferQueue = (*LinkedTransferQueue)(nil)
	_ BlockingQueue = (*SynchronousQueue)(nil)
	_ BlockingQueue = (*DelayQueue)(nil)
	_ Map           = (*HashMap)(nil)
	_ Map           = (*LinkedHashMap)(nil)
	_ SortedMap     = (*TreeMap)(nil)
)
