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

package generator

import (
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/rng"
	"dirpx.dev/rgen/typedesc"
)

// callContext is the apis.Context of one top-level call.
type callContext struct {
	cfg    apis.Config
	src    *rng.Source
	log    *zap.Logger
	u      *typedesc.Universe
	strats []apis.Strategy

	chain []*typedesc.Descriptor
	// pool holds populated struct instances per descriptor key.
	pool map[string][]reflect.Value
	// objects counts struct instances populated during the call.
	objects int
}

// Ensure callContext implements apis.Context.
var _ apis.Context = (*callContext)(nil)

func newContext(cfg apis.Config, u *typedesc.Universe, strats []apis.Strategy) *callContext {
	return &callContext{
		cfg:    cfg,
		src:    rng.New(cfg.Seed),
		log:    cfg.Log(),
		u:      u,
		strats: strats,
		pool:   make(map[string][]reflect.Value),
	}
}

func (c *callContext) Config() apis.Config          { return c.cfg }
func (c *callContext) Source() *rng.Source          { return c.src }
func (c *callContext) Logger() *zap.Logger          { return c.log }
func (c *callContext) Universe() *typedesc.Universe { return c.u }
func (c *callContext) Depth() int                   { return len(c.chain) }

func (c *callContext) Push(d *typedesc.Descriptor) {
	c.chain = append(c.chain, d)
}

func (c *callContext) Pop() {
	if n := len(c.chain); n > 0 {
		c.chain[n-1] = nil
		c.chain = c.chain[:n-1]
	}
}

func (c *callContext) inChain(d *typedesc.Descriptor) bool {
	for _, a := range c.chain {
		if typedesc.Equal(a, d) {
			return true
		}
	}
	return false
}

// Generate runs the guards, then the strategies in order. Wildcards and
// type variables stand for their bound; without one they are null.
func (c *callContext) Generate(d *typedesc.Descriptor) (reflect.Value, error) {
	if d == nil {
		return reflect.Value{}, nil
	}
	if !d.IsConcrete() {
		r := d.Resolve()
		if r == nil {
			c.trace("rgen: unresolvable type", d)
			return reflect.Value{}, nil
		}
		d = r
	}
	if len(c.chain) >= c.cfg.MaxDepth {
		c.trace("rgen: depth guard", d)
		return reflect.Value{}, nil
	}
	if c.inChain(d) {
		c.trace("rgen: cycle guard", d)
		return reflect.Value{}, nil
	}
	for _, s := range c.strats {
		v, ok, err := s.TryGenerate(d, c)
		if err != nil {
			return reflect.Value{}, err
		}
		if ok {
			return v, nil
		}
	}
	return reflect.Value{}, &apis.ObjectCreationError{Type: d.Type(), Reason: "no strategy handled the type"}
}

func (c *callContext) trace(msg string, d *typedesc.Descriptor) {
	if ce := c.log.Check(apis.LevelTrace, msg); ce != nil {
		ce.Write(zap.Stringer("type", d), zap.Int("depth", len(c.chain)))
	}
}

// Reuse picks a pooled instance once ObjectPoolSize instances of d exist.
func (c *callContext) Reuse(d *typedesc.Descriptor) (reflect.Value, bool) {
	n := c.cfg.ObjectPoolSize
	if n <= 0 {
		return reflect.Value{}, false
	}
	p := c.pool[d.Key()]
	if len(p) < n {
		return reflect.Value{}, false
	}
	return p[c.src.Pick(len(p))], true
}

func (c *callContext) Populated(d *typedesc.Descriptor, v reflect.Value) {
	c.objects++
	if c.cfg.ObjectPoolSize <= 0 {
		return
	}
	k := d.Key()
	if len(c.pool[k]) < c.cfg.ObjectPoolSize {
		c.pool[k] = append(c.pool[k], v)
	}
}
