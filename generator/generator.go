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

// Package generator runs generation strategies for one top-level call at a
// time.
//
// A Generator is an immutable, ordered chain of apis.Strategy values. Each
// call to Generate gets a fresh context: a new randomness Source seeded from
// the Config, an empty ancestry chain and an empty object pool. Two calls
// with the same Config, registry and resolver state yield equal graphs.
//
// Every descriptor passes two guards before any strategy runs: a
// descriptor already on the ancestry chain, or a chain already MaxDepth
// long, yields null. Guards never fail and are logged at apis.LevelTrace.
package generator

import (
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/config"
	"dirpx.dev/rgen/typedesc"
)

// New constructs an apis.Generator that tries the given strategies in
// order. Nil strategies are ignored. Tag expressions are resolved against
// u. The returned generator is safe for concurrent use provided the
// strategies are.
func New(u *typedesc.Universe, strategies ...apis.Strategy) apis.Generator {
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{u: u, strats: out}
}

// chain is an immutable, order-preserving generator over a set of strategies.
type chain struct {
	u      *typedesc.Universe
	strats []apis.Strategy
}

// Generate produces a value for d under cfg. An invalid Value is null.
// cfg is sanitized first, so a zero MaxDepth means the default.
func (g chain) Generate(d *typedesc.Descriptor, cfg apis.Config) (reflect.Value, error) {
	c := newContext(config.Sanitize(cfg), g.u, g.strats)
	v, err := c.Generate(d)
	if err == nil {
		c.log.Debug("rgen: generated", zap.Stringer("type", d), zap.Int("objects", c.objects))
	}
	return v, err
}
