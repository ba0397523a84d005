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
	"github.com/emirpasic/gods/maps/treemap"
)

type mapEntry struct {
	k, v any
}

// HashMap is an erased hash map. Keys iterate by formatted value.
type HashMap struct {
	m *hashmap.Map // key: hashKey(k), val: mapEntry
}

// NewHashMap returns an empty HashMap.
func NewHashMap() *HashMap { return &HashMap{m: hashmap.New()} }

// Put stores v under k, replacing any previous value.
func (m *HashMap) Put(k, v any) { m.m.Put(hashKey(k), mapEntry{k: k, v: v}) }

func (m *HashMap) Get(k any) (any, bool) { return entryValue(m.m.Get(hashKey(k))) }

func (m *HashMap) Len() int { return m.m.Size() }

func (m *HashMap) Keys() []any { return sortFormatted(entryKeys(m.m.Values())) }

// LinkedHashMap iterates keys in first-insertion order.
type LinkedHashMap struct {
	m *linkedhashmap.Map // key: hashKey(k), val: mapEntry
}

// NewLinkedHashMap returns an empty LinkedHashMap.
func NewLinkedHashMap() *LinkedHashMap { return &LinkedHashMap{m: linkedhashmap.New()} }

func (m *LinkedHashMap) Put(k, v any) { m.m.Put(hashKey(k), mapEntry{k: k, v: v}) }

func (m *LinkedHashMap) Get(k any) (any, bool) { return entryValue(m.m.Get(hashKey(k))) }

func (m *LinkedHashMap) Len() int { return m.m.Size() }

func (m *LinkedHashMap) Keys() []any { return entryKeys(m.m.Values()) }

// TreeMap iterates keys in Compare order.
type TreeMap struct {
	m *treemap.Map
}

// NewTreeMap returns an empty TreeMap.
func NewTreeMap() *TreeMap { return &TreeMap{m: treemap.NewWith(Compare)} }

func (m *TreeMap) Put(k, v any) { m.m.Put(k, v) }

func (m *TreeMap) Get(k any) (any, bool) { return m.m.Get(k) }

func (m *TreeMap) Len() int { return m.m.Size() }

func (m *TreeMap) Keys() []any { return m.m.Keys() }

func (m *TreeMap) FirstKey() (any, bool) {
	if m.m.Empty() {
		return nil, false
	}
	k, _ := m.m.Min()
	return k, true
}

func (m *TreeMap) LastKey() (any, bool) {
	if m.m.Empty() {
		return nil, false
	}
	k, _ := m.m.Max()
	return k, true
}

func entryValue(e any, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return e.(mapEntry).v, true
}

func entryKeys(entries []any) []any {
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.(mapEntry).k
	}
	return out
}
