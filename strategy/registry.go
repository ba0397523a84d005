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

package strategy

import (
	"fmt"
	"reflect"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/typedesc"
)

// NewRegistryStrategy creates an apis.Strategy backed by an apis.Registry.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults a randomizer registry. Registry lookups never
// recurse into the dispatcher.
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryGenerate runs the registered randomizer for d, if any. A nil result
// is null.
func (s *registryStrategy) TryGenerate(d *typedesc.Descriptor, ctx apis.Context) (reflect.Value, bool, error) {
	if s.reg == nil {
		return reflect.Value{}, false, nil
	}
	e, ok := s.reg.Lookup(d)
	if !ok {
		return reflect.Value{}, false, nil
	}
	out := e.Randomizer(ctx.Source(), ctx.Config())
	if out == nil {
		return reflect.Value{}, true, nil
	}
	v, ok := conform(reflect.ValueOf(out), d.Type())
	if !ok {
		return reflect.Value{}, true, &apis.ObjectCreationError{
			Type:   d.Type(),
			Reason: fmt.Sprintf("%s randomizer returned %T", e.Provenance, out),
		}
	}
	return v, true, nil
}
