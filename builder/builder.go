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

package builder

import (
	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/generator"
	"dirpx.dev/rgen/policy"
	"dirpx.dev/rgen/registry"
	"dirpx.dev/rgen/strategy"
	"dirpx.dev/rgen/typedesc"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its user entries are
// copied into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Register(e.Descriptor, e.Randomizer)
		}
	}
	return nreg
}

// BuildGenerator builds the dispatcher chain over reg and res. When ext is a
// *policy.Table it replaces the default container policy table.
func (b *builder) BuildGenerator(cfg apis.Config, reg apis.Registry, res apis.Resolver, u *typedesc.Universe, ext any) apis.Generator {
	tbl, ok := ext.(*policy.Table)
	if !ok || tbl == nil {
		tbl = policy.DefaultTable()
	}
	return generator.New(u,
		strategy.NewSelfStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewArrayStrategy(),
		strategy.NewContainerStrategy(tbl),
		strategy.NewMapStrategy(tbl),
		strategy.NewPointerStrategy(),
		strategy.NewInterfaceStrategy(res),
		strategy.NewBeanStrategy(),
		strategy.NewUnsupportedStrategy(),
	)
}
