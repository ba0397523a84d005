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

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/config"
	"dirpx.dev/rgen/generator"
	"dirpx.dev/rgen/policy"
	"dirpx.dev/rgen/registry"
	"dirpx.dev/rgen/resolver"
	"dirpx.dev/rgen/rng"
	"dirpx.dev/rgen/strategy"
	"dirpx.dev/rgen/typedesc"
)

// Local test types.
type A struct {
	Name string
	N    int
}

type Tree struct {
	Label string
	Left  *Tree
	Kids  []Tree
}

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...config.Option) apis.Config {
	return config.NewConfig(opts...)
}

// full returns the complete dispatcher chain over a fresh registry.
func full(res apis.Resolver, u *typedesc.Universe) apis.Generator {
	return generator.New(u,
		strategy.NewSelfStrategy(),
		strategy.NewRegistryStrategy(registry.New(cfg())),
		strategy.NewArrayStrategy(),
		strategy.NewContainerStrategy(policy.DefaultTable()),
		strategy.NewMapStrategy(policy.DefaultTable()),
		strategy.NewPointerStrategy(),
		strategy.NewInterfaceStrategy(res),
		strategy.NewBeanStrategy(),
		strategy.NewUnsupportedStrategy(),
	)
}

func TestArrayStrategy_FixedArrays(t *testing.T) {
	g := full(nil, nil)

	v, err := g.Generate(typedesc.For[[4]A](), cfg())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, a := range v.Interface().([4]A) {
		if a.Name == "" {
			t.Fatalf("element %d not populated: %+v", i, a)
		}
	}
}

func TestArrayStrategy_SliceLengthBounded(t *testing.T) {
	g := full(nil, nil)

	for seed := int64(0); seed < 50; seed++ {
		v, err := g.Generate(typedesc.For[[]int](), cfg(config.WithSeed(seed), config.WithMaxCollectionSize(3)))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if n := v.Len(); n < 0 || n > 3 {
			t.Fatalf("seed %d: len %d outside [0,3]", seed, n)
		}
	}
}

func TestArrayStrategy_UnresolvableElement(t *testing.T) {
	g := full(nil, nil)

	v, err := g.Generate(typedesc.For[[]any](), cfg())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if v.IsNil() || v.Len() != 0 {
		t.Fatalf("[]any: want empty non-nil slice, got %#v", v.Interface())
	}
}

func TestPointerStrategy(t *testing.T) {
	g := full(nil, nil)

	v, err := g.Generate(typedesc.For[*A](), cfg())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p := v.Interface().(*A); p == nil || p.Name == "" {
		t.Fatalf("*A not populated: %#v", p)
	}

	v, err = g.Generate(typedesc.For[**int](), cfg())
	if err != nil || v.Elem().IsNil() {
		t.Fatalf("**int: %v %v", v, err)
	}
}

func TestCycleGuard(t *testing.T) {
	g := full(nil, nil)

	v, err := g.Generate(typedesc.For[Tree](), cfg())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	tr := v.Interface().(Tree)
	if tr.Label == "" {
		t.Fatal("root not populated")
	}
	if tr.Left != nil {
		t.Fatal("self-referencing pointer must be nil")
	}
	for _, k := range tr.Kids {
		if !reflect.DeepEqual(k, Tree{}) {
			t.Fatalf("self-referencing element must stay zero: %+v", k)
		}
	}
}

func TestUnsupportedStrategy(t *testing.T) {
	g := full(nil, nil)

	for _, d := range []*typedesc.Descriptor{
		typedesc.For[func(int) int](),
		typedesc.For[struct{ F func() }](),
	} {
		_, err := g.Generate(d, cfg())
		var oce *apis.ObjectCreationError
		if !errors.As(err, &oce) || oce.Reason != "no usable constructor" {
			t.Fatalf("%s: want ObjectCreationError, got %v", d, err)
		}
	}
}

func TestInterfaceStrategy(t *testing.T) {
	res := resolver.New()
	if err := res.Bind(reflect.TypeFor[error](), reflect.TypeFor[myErr]()); err != nil {
		t.Fatal(err)
	}
	g := full(res, nil)

	v, err := g.Generate(typedesc.For[error](), cfg())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if v.Type() != reflect.TypeFor[error]() {
		t.Fatalf("type = %v, want error", v.Type())
	}
	if e, ok := v.Interface().(myErr); !ok || e.Msg == "" {
		t.Fatalf("got %#v", v.Interface())
	}

	// No resolver at all: null.
	v, err = full(nil, nil).Generate(typedesc.For[error](), cfg())
	if err != nil || v.IsValid() {
		t.Fatalf("no resolver: got %v, %v", v, err)
	}
}

type myErr struct{ Msg string }

func (e myErr) Error() string { return e.Msg }

// failingResolver always fails.
type failingResolver struct{ apis.Resolver }

var errBoom = errors.New("boom")

func (failingResolver) Resolve(reflect.Type, *rng.Source, apis.Config) (reflect.Type, error) {
	return nil, errBoom
}

func TestInterfaceStrategy_ResolverFailure(t *testing.T) {
	g := full(failingResolver{}, nil)

	_, err := g.Generate(typedesc.For[error](), cfg())
	var oce *apis.ObjectCreationError
	if !errors.As(err, &oce) || !errors.Is(err, errBoom) {
		t.Fatalf("want ObjectCreationError wrapping the resolver error, got %v", err)
	}
}
