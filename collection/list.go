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

package collection

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// ArrayList is a resizable array.
type ArrayList struct {
	l *arraylist.List
}

// NewArrayList returns an empty ArrayList.
func NewArrayList() *ArrayList { return &ArrayList{l: arraylist.New()} }

// Add appends v.
func (l *ArrayList) Add(v any) error {
	l.l.Add(v)
	return nil
}

// Get returns the i-th element; it panics when i is out of range.
func (l *ArrayList) Get(i int) any { return mustGet(l.l.Get(i)) }

func (l *ArrayList) Len() int { return l.l.Size() }

func (l *ArrayList) Values() []any { return l.l.Values() }

// LinkedList is a doubly linked list usable as a List or a Deque.
type LinkedList struct {
	l *doublylinkedlist.List
}

// NewLinkedList returns an empty LinkedList.
func NewLinkedList() *LinkedList { return &LinkedList{l: doublylinkedlist.New()} }

func (ll *LinkedList) Add(v any) error {
	ll.l.Add(v)
	return nil
}

// Get walks to the i-th element; it panics when i is out of range.
func (ll *LinkedList) Get(i int) any { return mustGet(ll.l.Get(i)) }

func (ll *LinkedList) Len() int { return ll.l.Size() }

func (ll *LinkedList) Values() []any { return ll.l.Values() }

func (ll *LinkedList) Offer(v any) bool {
	ll.l.Append(v)
	return true
}

func (ll *LinkedList) OfferFirst(v any) bool {
	ll.l.Prepend(v)
	return true
}

func (ll *LinkedList) Poll() (any, bool) {
	v, ok := ll.l.Get(0)
	if ok {
		ll.l.Remove(0)
	}
	return v, ok
}

func (ll *LinkedList) PollLast() (any, bool) {
	n := ll.l.Size() - 1
	v, ok := ll.l.Get(n)
	if ok {
		ll.l.Remove(n)
	}
	return v, ok
}

func (ll *LinkedList) Peek() (any, bool) { return ll.l.Get(0) }

func (ll *LinkedList) PeekLast() (any, bool) { return ll.l.Get(ll.l.Size() - 1) }

func mustGet(v any, ok bool) any {
	if !ok {
		panic("rgen(collection): index out of range")
	}
	return v
}
