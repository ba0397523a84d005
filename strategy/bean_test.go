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
	"dirpx.dev/rgen/typedesc"
)

type Base struct {
	ID   string
	Kind string
}

type Audit struct{ By string }

type Order struct {
	*Base
	Audit
	Kind    string // shadows Base.Kind
	secret  string
	Lines   collection.List `rgen:"List[test.A]"`
	Ignored string          `rgen:"-"`
}

type Pair struct {
	Left  any             `rgen:"K"`
	Right any             `rgen:"V"`
	All   collection.List `rgen:"List[V]"`
}

func (Pair) TypeParameters() []string { return []string{"K", "V"} }

type Broken struct {
	Items collection.List `rgen:"List[nope.Missing]"`
}

func universe(t *testing.T) *typedesc.Universe {
	t.Helper()
	u := typedesc.NewUniverse()
	for name, typ := range collection.Kinds() {
		require.NoError(t, u.RegisterAs(name, typ))
	}
	require.NoError(t, u.RegisterAs("test.A", reflect.TypeFor[A]()))
	return u
}

func TestBeanStrategy_Fields(t *testing.T) {
	t.Parallel()

	v, err := full(nil, universe(t)).Generate(typedesc.For[Order](), cfg(config.WithSeed(12)))
	require.NoError(t, err)
	o := v.Interface().(Order)

	require.NotNil(t, o.Base, "embedded pointer allocated")
	assert.NotEmpty(t, o.ID)
	assert.Empty(t, o.Base.Kind, "shadowed field is not visible")
	assert.NotEmpty(t, o.Kind)
	assert.NotEmpty(t, o.By)
	assert.Empty(t, o.secret)
	assert.Empty(t, o.Ignored)
	require.NotNil(t, o.Lines)
	for _, l := range o.Lines.Values() {
		assert.NotEmpty(t, l.(A).Name)
	}
}

func TestBeanStrategy_Exclusions(t *testing.T) {
	t.Parallel()

	c := cfg(config.WithExclusions(
		config.ExcludeField("ID", reflect.TypeFor[string](), reflect.TypeFor[Base]()),
		// Wrong declaring type: no match.
		config.ExcludeField("By", reflect.TypeFor[string](), reflect.TypeFor[Order]()),
		config.ExcludeField("Kind", reflect.TypeFor[string](), reflect.TypeFor[Order]()),
	))
	v, err := full(nil, universe(t)).Generate(typedesc.For[Order](), c)
	require.NoError(t, err)
	o := v.Interface().(Order)
	assert.Nil(t, o.Base, "no field of Base is populated, so it is never allocated")
	assert.Empty(t, o.Kind)
	assert.NotEmpty(t, o.By)
}

func TestBeanStrategy_TypeParameters(t *testing.T) {
	t.Parallel()

	g := full(nil, universe(t))
	d := typedesc.Parameterized(reflect.TypeFor[Pair](), typedesc.For[int](), typedesc.For[A]())
	v, err := g.Generate(d, cfg(config.WithSeed(1)))
	require.NoError(t, err)
	p := v.Interface().(Pair)
	assert.IsType(t, 0, p.Left)
	assert.IsType(t, A{}, p.Right)
	for _, e := range p.All.Values() {
		assert.IsType(t, A{}, e)
	}

	// Only K bound: V stays an unbound variable.
	d = typedesc.Parameterized(reflect.TypeFor[Pair](), typedesc.For[string]())
	v, err = g.Generate(d, cfg())
	require.NoError(t, err)
	p = v.Interface().(Pair)
	assert.IsType(t, "", p.Left)
	assert.Nil(t, p.Right)
	assert.Zero(t, p.All.Len())
}

func TestBeanStrategy_BadTag(t *testing.T) {
	t.Parallel()

	_, err := full(nil, universe(t)).Generate(typedesc.For[Broken](), cfg())
	var oce *apis.ObjectCreationError
	require.True(t, errors.As(err, &oce))
	assert.Equal(t, reflect.TypeFor[Broken](), oce.Type)
	assert.ErrorIs(t, err, typedesc.ErrUnknownType)
}

func TestBeanStrategy_ObjectPool(t *testing.T) {
	t.Parallel()

	g := full(nil, nil)
	v, err := g.Generate(typedesc.For[[40]A](), cfg(config.WithObjectPoolSize(3)))
	require.NoError(t, err)

	seen := map[A]bool{}
	for _, a := range v.Interface().([40]A) {
		seen[a] = true
	}
	assert.LessOrEqual(t, len(seen), 3)

	v, err = g.Generate(typedesc.For[[40]A](), cfg(config.WithObjectPoolSize(0)))
	require.NoError(t, err)
	seen = map[A]bool{}
	for _, a := range v.Interface().([40]A) {
		seen[a] = true
	}
	assert.Greater(t, len(seen), 3)
}
