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
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// HashSet holds distinct elements. Iteration order is by formatted value,
// so two sets with the same contents iterate alike.
type HashSet struct {
	m *hashmap.Map // key: hashKey(v), val: v
}

// NewHashSet returns an empty HashSet.
func NewHashSet() *HashSet { return &HashSet{m: hashmap.New()} }

// Add inserts v unless an equal element is present.
func (s *HashSet) Add(v any) error {
	k := hashKey(v)
	if _, ok := s.m.Get(k); !ok {
		s.m.Put(k, v)
	}
	return nil
}

func (s *HashSet) Contains(v any) bool {
	_, ok := s.m.Get(hashKey(v))
	return ok
}

func (s *HashSet) Len() int { return s.m.Size() }

func (s *HashSet) Values() []any { return sortFormatted(s.m.Values()) }

// LinkedHashSet is a HashSet iterated in insertion order.
type LinkedHashSet struct {
	m *linkedhashmap.Map // key: hashKey(v), val: v
}

// NewLinkedHashSet returns an empty LinkedHashSet.
func NewLinkedHashSet() *LinkedHashSet { return &LinkedHashSet{m: linkedhashmap.New()} }

func (s *LinkedHashSet) Add(v any) error {
	k := hashKey(v)
	if _, ok := s.m.Get(k); !ok {
		s.m.Put(k, v)
	}
	return nil
}

func (s *LinkedHashSet) Contains(v any) bool {
	_, ok := s.m.Get(hashKey(v))
	return ok
}

func (s *LinkedHashSet) Len() int { return s.m.Size() }

func (s *LinkedHashSet) Values() []any { return s.m.Values() }

// TreeSet is a sorted set ordered by Compare.
type TreeSet struct {
	t *redblacktree.Tree
}

// NewTreeSet returns an empty TreeSet.
func NewTreeSet() *TreeSet { return &TreeSet{t: redblacktree.NewWith(Compare)} }

func (s *TreeSet) Add(v any) error {
	if _, found := s.t.Get(v); !found {
		s.t.Put(v, struct{}{})
	}
	return nil
}

func (s *TreeSet) Contains(v any) bool {
	_, found := s.t.Get(v)
	return found
}

func (s *TreeSet) Len() int { return s.t.Size() }

func (s *TreeSet) Values() []any { return s.t.Keys() }

func (s *TreeSet) First() (any, bool) { return nodeKey(s.t.Left()) }

func (s *TreeSet) Last() (any, bool) { return nodeKey(s.t.Right()) }

// Ceiling returns the least element greater than or equal to v.
func (s *TreeSet) Ceiling(v any) (any, bool) {
	n, _ := s.t.Ceiling(v)
	return nodeKey(n)
}

// Floor returns the greatest element less than or equal to v.
func (s *TreeSet) Floor(v any) (any, bool) {
	n, _ := s.t.Floor(v)
	return nodeKey(n)
}

func nodeKey(n *redblacktree.Node) (any, bool) {
	if n == nil {
		return nil, false
	}
	return n.Key, true
}
