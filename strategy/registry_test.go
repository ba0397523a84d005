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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/config"
	"dirpx.dev/rgen/generator"
	"dirpx.dev/rgen/registry"
	"dirpx.dev/rgen/rng"
	"dirpx.dev/rgen/strategy"
	"dirpx.dev/rgen/typedesc"
)

type Meters float64

type Dice struct{ Face int }

func (d *Dice) Randomize(src *rng.Source, _ apis.Config) { d.Face = src.IntRange(1, 6) }

func TestRegistryStrategy_WithRealRegistry(t *testing.T) {
	reg := registry.New(cfg())
	if err := reg.Register(typedesc.For[A](), func(*rng.Source, apis.Config) any { return A{Name: "fixed"} }); err != nil {
		t.Fatal(err)
	}
	g := generator.New(nil, strategy.NewRegistryStrategy(reg))

	v, err := g.Generate(typedesc.For[A](), cfg())
	if err != nil || v.Interface().(A).Name != "fixed" {
		t.Fatalf("user randomizer not used: %v %v", v, err)
	}

	// Named scalars come from the builtin kind randomizers.
	v, err = g.Generate(typedesc.For[Meters](), cfg())
	if err != nil || v.Type() != reflect.TypeFor[Meters]() {
		t.Fatalf("Meters: %v %v", v, err)
	}

	// Miss falls through the whole chain.
	_, err = g.Generate(typedesc.For[Dice](), cfg())
	var oce *apis.ObjectCreationError
	if !errors.As(err, &oce) {
		t.Fatalf("unhandled type: want ObjectCreationError, got %v", err)
	}
}

func TestRegistryStrategy_NilAndMismatch(t *testing.T) {
	reg := registry.New(cfg())
	_ = reg.Register(typedesc.For[A](), func(*rng.Source, apis.Config) any { return nil })
	_ = reg.Register(typedesc.For[Dice](), func(*rng.Source, apis.Config) any { return "not a dice" })
	_ = reg.Register(typedesc.For[Meters](), func(*rng.Source, apis.Config) any { return 3 })
	g := generator.New(nil, strategy.NewRegistryStrategy(reg))

	v, err := g.Generate(typedesc.For[A](), cfg())
	if err != nil || v.IsValid() {
		t.Fatalf("nil randomizer result must be null: %v %v", v, err)
	}

	_, err = g.Generate(typedesc.For[Dice](), cfg())
	var oce *apis.ObjectCreationError
	if !errors.As(err, &oce) || oce.Type != reflect.TypeFor[Dice]() {
		t.Fatalf("mismatched result: want ObjectCreationError, got %v", err)
	}

	v, err = g.Generate(typedesc.For[Meters](), cfg())
	if err != nil || v.Interface().(Meters) != 3 {
		t.Fatalf("convertible result: %v %v", v, err)
	}
}

func TestRegistryStrategy_NilRegistry(t *testing.T) {
	g := generator.New(nil, strategy.NewRegistryStrategy(nil), strategy.NewUnsupportedStrategy())
	if _, err := g.Generate(typedesc.For[int](), cfg()); err == nil {
		t.Fatal("nil registry must fall through")
	}
}

func TestSelfStrategy(t *testing.T) {
	g := generator.New(nil, strategy.NewSelfStrategy())

	for seed := int64(0); seed < 20; seed++ {
		v, err := g.Generate(typedesc.For[Dice](), cfg(config.WithSeed(seed)))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if f := v.Interface().(Dice).Face; f < 1 || f > 6 {
			t.Fatalf("face %d outside [1,6]", f)
		}
	}

	v, err := g.Generate(typedesc.For[*Dice](), cfg())
	if err != nil || v.Interface().(*Dice).Face == 0 {
		t.Fatalf("*Dice: %v %v", v, err)
	}
}

// TestFullChain_ConcurrentGenerate_NoRace verifies that one chain serves
// concurrent calls, each reproducible for its seed.
func TestFullChain_ConcurrentGenerate_NoRace(t *testing.T) {
	g := full(nil, nil)
	descs := []*typedesc.Descriptor{
		typedesc.For[A](), typedesc.For[[]A](), typedesc.For[map[string]A](),
		typedesc.For[Tree](), typedesc.For[*Dice](), typedesc.For[[3]Meters](),
	}
	want := make([]any, len(descs))
	for i, d := range descs {
		v, err := g.Generate(d, cfg())
		if err != nil {
			t.Fatalf("Generate(%s): %v", d, err)
		}
		want[i] = v.Interface()
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 300; i++ {
				j := (i + id) % len(descs)
				v, err := g.Generate(descs[j], cfg())
				if err != nil {
					t.Errorf("Generate: %v", err)
					return
				}
				if !reflect.DeepEqual(v.Interface(), want[j]) {
					t.Errorf("Generate(%s) diverged under concurrency", descs[j])
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
