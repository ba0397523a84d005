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
	"container/heap"
	"context"
	"math"
	"sync"
	"time"
)

// BlockingQueue is a Queue whose Put waits for room and whose Take waits
// for an element. Both give up when ctx ends.
type BlockingQueue interface {
	Queue
	Put(ctx context.Context, v any) error
	Take(ctx context.Context) (any, error)
	// RemainingCapacity is math.MaxInt for unbounded queues.
	RemainingCapacity() int
}

// TransferQueue is a BlockingQueue whose producers may wait until their
// element has been received.
type TransferQueue interface {
	BlockingQueue
	Transfer(ctx context.Context, v any) error
}

// BlockingDeque is a BlockingQueue usable at both ends.
type BlockingDeque interface {
	BlockingQueue
	Deque
}

// Delayed is implemented by DelayQueue elements.
type Delayed interface {
	// Delay is the time left until the element may be taken.
	Delay() time.Duration
}

// blocking is the shared core of the mutex-guarded blocking kinds.
// Waiters block on changed, which is closed and replaced on every change.
type blocking struct {
	mu      sync.Mutex
	items   []any
	bounded bool
	limit   int
	taken   uint64
	changed chan struct{}
}

func (b *blocking) signalLocked() {
	if b.changed != nil {
		close(b.changed)
	}
	b.changed = make(chan struct{})
}

func (b *blocking) waitChanLocked() <-chan struct{} {
	if b.changed == nil {
		b.changed = make(chan struct{})
	}
	return b.changed
}

func (b *blocking) offerLocked(v any, front bool) bool {
	if b.bounded && len(b.items) >= b.limit {
		return false
	}
	if front {
		b.items = append([]any{v}, b.items...)
	} else {
		b.items = append(b.items, v)
	}
	b.signalLocked()
	return true
}

func (b *blocking) pollLocked(back bool) (any, bool) {
	n := len(b.items)
	if n == 0 {
		return nil, false
	}
	var v any
	if back {
		v = b.items[n-1]
		b.items[n-1] = nil
		b.items = b.items[:n-1]
	} else {
		v = b.items[0]
		b.items[0] = nil
		b.items = b.items[1:]
	}
	b.taken++
	b.signalLocked()
	return v, true
}

func (b *blocking) offer(v any, front bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.offerLocked(v, front)
}

func (b *blocking) put(ctx context.Context, v any, front bool) error {
	for {
		b.mu.Lock()
		if b.offerLocked(v, front) {
			b.mu.Unlock()
			return nil
		}
		ch := b.waitChanLocked()
		b.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (b *blocking) poll(back bool) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pollLocked(back)
}

func (b *blocking) take(ctx context.Context, back bool) (any, error) {
	for {
		b.mu.Lock()
		if v, ok := b.pollLocked(back); ok {
			b.mu.Unlock()
			return v, nil
		}
		ch := b.waitChanLocked()
		b.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (b *blocking) peek(back bool) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) == 0 {
		return nil, false
	}
	if back {
		return b.items[len(b.items)-1], true
	}
	return b.items[0], true
}

func (b *blocking) add(v any) error {
	if !b.offer(v, false) {
		return ErrFull
	}
	return nil
}

func (b *blocking) length() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

func (b *blocking) values() []any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]any(nil), b.items...)
}

func (b *blocking) remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.bounded {
		return math.MaxInt
	}
	return b.limit - len(b.items)
}

// LinkedBlockingQueue is an unbounded FIFO BlockingQueue. The zero value
// is ready to use.
type LinkedBlockingQueue struct {
	b blocking
}

// NewLinkedBlockingQueue returns an empty LinkedBlockingQueue.
func NewLinkedBlockingQueue() *LinkedBlockingQueue { return &LinkedBlockingQueue{} }

func (q *LinkedBlockingQueue) Add(v any) error                       { return q.b.add(v) }
func (q *LinkedBlockingQueue) Len() int                              { return q.b.length() }
func (q *LinkedBlockingQueue) Values() []any                         { return q.b.values() }
func (q *LinkedBlockingQueue) Offer(v any) bool                      { return q.b.offer(v, false) }
func (q *LinkedBlockingQueue) Poll() (any, bool)                     { return q.b.poll(false) }
func (q *LinkedBlockingQueue) Peek() (any, bool)                     { return q.b.peek(false) }
func (q *LinkedBlockingQueue) Put(ctx context.Context, v any) error  { return q.b.put(ctx, v, false) }
func (q *LinkedBlockingQueue) Take(ctx context.Context) (any, error) { return q.b.take(ctx, false) }
func (q *LinkedBlockingQueue) RemainingCapacity() int                { return q.b.remaining() }

// ArrayBlockingQueue is a FIFO BlockingQueue holding at most a fixed
// number of elements.
type ArrayBlockingQueue struct {
	b blocking
}

// NewArrayBlockingQueue returns an empty queue with the given capacity.
// A negative capacity is treated as zero.
func NewArrayBlockingQueue(capacity int) *ArrayBlockingQueue {
	if capacity < 0 {
		capacity = 0
	}
	q := &ArrayBlockingQueue{}
	q.b.bounded = true
	q.b.limit = capacity
	q.b.items = make([]any, 0, capacity)
	return q
}

// Cap returns the fixed capacity.
func (q *ArrayBlockingQueue) Cap() int { return q.b.limit }

func (q *ArrayBlockingQueue) Add(v any) error                       { return q.b.add(v) }
func (q *ArrayBlockingQueue) Len() int                              { return q.b.length() }
func (q *ArrayBlockingQueue) Values() []any                         { return q.b.values() }
func (q *ArrayBlockingQueue) Offer(v any) bool                      { return q.b.offer(v, false) }
func (q *ArrayBlockingQueue) Poll() (any, bool)                     { return q.b.poll(false) }
func (q *ArrayBlockingQueue) Peek() (any, bool)                     { return q.b.peek(false) }
func (q *ArrayBlockingQueue) Put(ctx context.Context, v any) error  { return q.b.put(ctx, v, false) }
func (q *ArrayBlockingQueue) Take(ctx context.Context) (any, error) { return q.b.take(ctx, false) }
func (q *ArrayBlockingQueue) RemainingCapacity() int                { return q.b.remaining() }

// LinkedBlockingDeque is an unbounded BlockingDeque.
type LinkedBlockingDeque struct {
	b blocking
}

// NewLinkedBlockingDeque returns an empty LinkedBlockingDeque.
func NewLinkedBlockingDeque() *LinkedBlockingDeque { return &LinkedBlockingDeque{} }

func (q *LinkedBlockingDeque) Add(v any) error                       { return q.b.add(v) }
func (q *LinkedBlockingDeque) Len() int                              { return q.b.length() }
func (q *LinkedBlockingDeque) Values() []any                         { return q.b.values() }
func (q *LinkedBlockingDeque) Offer(v any) bool                      { return q.b.offer(v, false) }
func (q *LinkedBlockingDeque) OfferFirst(v any) bool                 { return q.b.offer(v, true) }
func (q *LinkedBlockingDeque) Poll() (any, bool)                     { return q.b.poll(false) }
func (q *LinkedBlockingDeque) PollLast() (any, bool)                 { return q.b.poll(true) }
func (q *LinkedBlockingDeque) Peek() (any, bool)                     { return q.b.peek(false) }
func (q *LinkedBlockingDeque) PeekLast() (any, bool)                 { return q.b.peek(true) }
func (q *LinkedBlockingDeque) Put(ctx context.Context, v any) error  { return q.b.put(ctx, v, false) }
func (q *LinkedBlockingDeque) Take(ctx context.Context) (any, error) { return q.b.take(ctx, false) }
func (q *LinkedBlockingDeque) RemainingCapacity() int                { return q.b.remaining() }

// LinkedTransferQueue is an unbounded TransferQueue.
type LinkedTransferQueue struct {
	b blocking
}

// NewLinkedTransferQueue returns an empty LinkedTransferQueue.
func NewLinkedTransferQueue() *LinkedTransferQueue { return &LinkedTransferQueue{} }

func (q *LinkedTransferQueue) Add(v any) error                       { return q.b.add(v) }
func (q *LinkedTransferQueue) Len() int                              { return q.b.length() }
func (q *LinkedTransferQueue) Values() []any                         { return q.b.values() }
func (q *LinkedTransferQueue) Offer(v any) bool                      { return q.b.offer(v, false) }
func (q *LinkedTransferQueue) Poll() (any, bool)                     { return q.b.poll(false) }
func (q *LinkedTransferQueue) Peek() (any, bool)                     { return q.b.peek(false) }
func (q *LinkedTransferQueue) Put(ctx context.Context, v any) error  { return q.b.put(ctx, v, false) }
func (q *LinkedTransferQueue) Take(ctx context.Context) (any, error) { return q.b.take(ctx, false) }
func (q *LinkedTransferQueue) RemainingCapacity() int                { return q.b.remaining() }

// Transfer enqueues v and waits until it has been taken. If ctx ends first
// the element stays queued.
func (q *LinkedTransferQueue) Transfer(ctx context.Context, v any) error {
	q.b.mu.Lock()
	q.b.offerLocked(v, false)
	seq := q.b.taken + uint64(len(q.b.items))
	for q.b.taken < seq {
		ch := q.b.waitChanLocked()
		q.b.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
		q.b.mu.Lock()
	}
	q.b.mu.Unlock()
	return nil
}

// SynchronousQueue has no capacity: each Put waits for a matching Take.
type SynchronousQueue struct {
	ch chan any
}

// NewSynchronousQueue returns a SynchronousQueue.
func NewSynchronousQueue() *SynchronousQueue {
	return &SynchronousQueue{ch: make(chan any)}
}

// Add succeeds only when a consumer is already waiting in Take.
func (q *SynchronousQueue) Add(v any) error {
	if !q.Offer(v) {
		return ErrFull
	}
	return nil
}

func (q *SynchronousQueue) Len() int      { return 0 }
func (q *SynchronousQueue) Values() []any { return nil }

func (q *SynchronousQueue) Offer(v any) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

func (q *SynchronousQueue) Poll() (any, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		return nil, false
	}
}

func (q *SynchronousQueue) Peek() (any, bool) { return nil, false }

func (q *SynchronousQueue) Put(ctx context.Context, v any) error {
	select {
	case q.ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *SynchronousQueue) Take(ctx context.Context) (any, error) {
	select {
	case v := <-q.ch:
		return v, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *SynchronousQueue) RemainingCapacity() int { return 0 }

// DelayQueue is an unbounded BlockingQueue of Delayed elements; an element
// can be taken only once its delay has expired.
type DelayQueue struct {
	mu      sync.Mutex
	h       delayHeap
	changed chan struct{}
	now     func() time.Time
}

// NewDelayQueue returns an empty DelayQueue.
func NewDelayQueue() *DelayQueue { return &DelayQueue{now: time.Now} }

type delayed struct {
	v        any
	deadline time.Time
}

func (q *DelayQueue) clock() time.Time {
	if q.now == nil {
		return time.Now()
	}
	return q.now()
}

func (q *DelayQueue) Add(v any) error {
	d, ok := v.(Delayed)
	if !ok {
		return ErrNotDelayed
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	heap.Push(&q.h, delayed{v: v, deadline: q.clock().Add(d.Delay())})
	if q.changed != nil {
		close(q.changed)
	}
	q.changed = make(chan struct{})
	return nil
}

func (q *DelayQueue) Offer(v any) bool { return q.Add(v) == nil }

func (q *DelayQueue) Put(_ context.Context, v any) error { return q.Add(v) }

func (q *DelayQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.h.Len()
}

func (q *DelayQueue) Values() []any {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]any, len(q.h))
	for i, e := range q.h {
		out[i] = e.v
	}
	return out
}

// Poll returns the head only if its delay has expired.
func (q *DelayQueue) Poll() (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.h.Len() == 0 || q.h[0].deadline.After(q.clock()) {
		return nil, false
	}
	return heap.Pop(&q.h).(delayed).v, true
}

// Peek returns the head whether or not its delay has expired.
func (q *DelayQueue) Peek() (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.h.Len() == 0 {
		return nil, false
	}
	return q.h[0].v, true
}

// Take waits until the head's delay expires.
func (q *DelayQueue) Take(ctx context.Context) (any, error) {
	for {
		q.mu.Lock()
		if q.changed == nil {
			q.changed = make(chan struct{})
		}
		ch := q.changed
		wait := time.Duration(-1)
		if q.h.Len() > 0 {
			if wait = q.h[0].deadline.Sub(q.clock()); wait <= 0 {
				v := heap.Pop(&q.h).(delayed).v
				q.mu.Unlock()
				return v, nil
			}
		}
		q.mu.Unlock()

		var (
			t     *time.Timer
			timer <-chan time.Time
		)
		if wait > 0 {
			t = time.NewTimer(wait)
			timer = t.C
		}
		select {
		case <-ch:
		case <-timer:
		case <-ctx.Done():
			if t != nil {
				t.Stop()
			}
			return nil, ctx.Err()
		}
		if t != nil {
			t.Stop()
		}
	}
}

func (q *DelayQueue) RemainingCapacity() int { return math.MaxInt }

type delayHeap []delayed

func (h delayHeap) Len() int           { return len(h) }
func (h delayHeap) Less(i, j int) bool { return h[i].deadline.Before(h[j].deadline) }
func (h delayHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *delayHeap) Push(x any)        { *h = append(*h, x.(delayed)) }
func (h *delayHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
