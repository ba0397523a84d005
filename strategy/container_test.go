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

package strategy_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/collection"
	"dirpx.dev/rgen/config"
	"dirpx.dev/rgen/resolver"
	"dirpx.dev/rgen/typedesc"
)

func list(elem *typedesc.Descriptor) *typedesc.Descriptor {
	return typedesc.Parameterized(reflect.TypeFor[collection.List](), elem)
}

func TestContainerStrategy_Populated(t *testing.T) {
	t.Parallel()

	g := full(nil, nil)
	for seed := int64(0); seed < 20; seed++ {
		v, err := g.Generate(list(typedesc.For[A]()), cfg(config.WithSeed(seed), config.WithMaxCollectionSize(4)))
		require.NoError(t, err)
		require.Equal(t, reflect.TypeFor[collection.List](), v.Type())

		l := v.Interface().(collection.List)
		assert.LessOrEqual(t, l.Len(), 4)
		for _, e := range l.Values() {
			assert.NotEmpty(t, e.(A).Name)
		}
	}
}

func TestContainerStrategy_NestedStaysEmpty(t *testing.T) {
	t.Parallel()

	d := list(typedesc.Parameterized(reflect.TypeFor[collection.SortedSet](), typedesc.For[int]()))
	for seed := int64(1); seed <= 5; seed++ {
		v, err := full(nil, nil).Generate(d, cfg(config.WithSeed(seed)))
		require.NoError(t, err)
		require.IsType(t, &collection.ArrayList{}, v.Interface())
		assert.Zero(t, v.Interface().(collection.List).Len(), "seed %d", seed)
	}
}

func TestContainerStrategy_NullElementsSkipped(t *testing.T) {
	t.Parallel()

	// error has no concrete type without a resolver: every element is null.
	v, err := full(nil, nil).Generate(list(typedesc.For[error]()), cfg(config.WithMaxCollectionSize(8)))
	require.NoError(t, err)
	assert.Zero(t, v.Interface().(collection.List).Len())
}

func TestContainerStrategy_Rejected(t *testing.T) {
	t.Parallel()

	for _, typ := range []reflect.Type{
		reflect.TypeFor[*collection.SynchronousQueue](),
		reflect.TypeFor[*collection.DelayQueue](),
	} {
		for _, d := range []*typedesc.Descriptor{
			typedesc.Of(typ),
			typedesc.Parameterized(typ, typedesc.For[string]()),
		} {
			_, err := full(nil, nil).Generate(d, cfg())
			var oce *apis.ObjectCreationError
			require.True(t, errors.As(err, &oce), d.String())
			var uoe *apis.UnsupportedOperationError
			require.True(t, errors.As(err, &uoe), d.String())
			assert.Equal(t, typ, uoe.Type)
		}
	}
}

func TestContainerStrategy_Channels(t *testing.T) {
	t.Parallel()

	v, err := full(nil, nil).Generate(typedesc.For[<-chan A](), cfg(config.WithSeed(5)))
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[<-chan A](), v.Type())
	ch := v.Interface().(<-chan A)
	assert.Equal(t, cap(ch), len(ch))
	for len(ch) > 0 {
		assert.NotEmpty(t, (<-ch).Name)
	}
}

func TestMapStrategy(t *testing.T) {
	t.Parallel()

	g := full(nil, nil)
	v, err := g.Generate(typedesc.For[map[int8]A](), cfg(config.WithMaxCollectionSize(5)))
	require.NoError(t, err)
	m := v.Interface().(map[int8]A)
	require.NotNil(t, m)
	assert.LessOrEqual(t, len(m), 5)
	for _, a := range m {
		assert.NotEmpty(t, a.Name)
	}

	d := typedesc.Parameterized(reflect.TypeFor[collection.SortedMap](), typedesc.For[string](), typedesc.For[int]())
	v, err = g.Generate(d, cfg())
	require.NoError(t, err)
	sm := v.Interface().(collection.SortedMap)
	keys := sm.Keys()
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1].(string), keys[i].(string))
	}

	// Wildcard value: empty.
	d = typedesc.Parameterized(reflect.TypeFor[collection.Map](), typedesc.For[string](), typedesc.Unbounded())
	v, err = g.Generate(d, cfg())
	require.NoError(t, err)
	assert.Zero(t, v.Interface().(collection.Map).Len())

	// map[string]any carries no value type.
	v, err = g.Generate(typedesc.For[map[string]any](), cfg())
	require.NoError(t, err)
	assert.Empty(t, v.Interface())
	assert.NotNil(t, v.Interface())
}

func TestMapStrategy_NullValuesBecomeZero(t *testing.T) {
	t.Parallel()

	v, err := full(nil, nil).Generate(typedesc.For[map[string]error](), cfg(config.WithSeed(2)))
	require.NoError(t, err)
	for k, e := range v.Interface().(map[string]error) {
		assert.NotEmpty(t, k)
		assert.Nil(t, e)
	}
}

type Shape interface{ Area() int }

type Blob struct{ Parts []int }

func (b Blob) Area() int { return len(b.Parts) }

func TestMapStrategy_UnhashableKeysSkipped(t *testing.T) {
	t.Parallel()

	res := resolver.New()
	require.NoError(t, res.Bind(reflect.TypeFor[Shape](), reflect.TypeFor[Blob]()))
	g := full(res, nil)

	for seed := int64(1); seed <= 5; seed++ {
		v, err := g.Generate(typedesc.For[map[Shape]int](), cfg(config.WithSeed(seed)))
		require.NoError(t, err)
		assert.Zero(t, v.Len(), "seed %d", seed)
	}
}
