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
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// ArrayDeque is a double-ended queue backed by a resizable array.
type ArrayDeque struct {
	l *arraylist.List
}

// NewArrayDeque returns an empty ArrayDeque.
func NewArrayDeque() *ArrayDeque { return &ArrayDeque{l: arraylist.New()} }

func (q *ArrayDeque) Add(v any) error {
	q.l.Add(v)
	return nil
}

func (q *ArrayDeque) Len() int { return q.l.Size() }

func (q *ArrayDeque) Values() []any { return q.l.Values() }

func (q *ArrayDeque) Offer(v any) bool {
	q.l.Add(v)
	return true
}

func (q *ArrayDeque) OfferFirst(v any) bool {
	q.l.Insert(0, v)
	return true
}

func (q *ArrayDeque) Poll() (any, bool) {
	v, ok := q.l.Get(0)
	if ok {
		q.l.Remove(0)
	}
	return v, ok
}

func (q *ArrayDeque) PollLast() (any, bool) {
	n := q.l.Size() - 1
	v, ok := q.l.Get(n)
	if ok {
		q.l.Remove(n)
	}
	return v, ok
}

func (q *ArrayDeque) Peek() (any, bool) { return q.l.Get(0) }

func (q *ArrayDeque) PeekLast() (any, bool) { return q.l.Get(q.l.Size() - 1) }

// PriorityQueue polls elements in ascending Compare order.
type PriorityQueue struct {
	q *priorityqueue.Queue
}

// NewPriorityQueue returns an empty PriorityQueue.
func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{q: priorityqueue.NewWith(Compare)}
}

func (q *PriorityQueue) Add(v any) error {
	q.q.Enqueue(v)
	return nil
}

func (q *PriorityQueue) Len() int { return q.q.Size() }

// Values returns the elements in heap order, not sorted order.
func (q *PriorityQueue) Values() []any { return q.q.Values() }

func (q *PriorityQueue) Offer(v any) bool {
	q.q.Enqueue(v)
	return true
}

func (q *PriorityQueue) Poll() (any, bool) { return q.q.Dequeue() }

func (q *PriorityQueue) Peek() (any, bool) { return q.q.Peek() }
