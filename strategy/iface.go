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
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/typedesc"
	uref "dirpx.dev/rgen/utils/reflect"
)

// NewInterfaceStrategy creates an apis.Strategy that asks res for a
// concrete type implementing the requested interface.
func NewInterfaceStrategy(res apis.Resolver) apis.Strategy {
	return &interfaceStrategy{res: res}
}

// interfaceStrategy yields null when no concrete type is known.
type interfaceStrategy struct {
	res apis.Resolver
}

// Ensure interfaceStrategy implements apis.Strategy.
var _ apis.Strategy = (*interfaceStrategy)(nil)

func (s *interfaceStrategy) TryGenerate(d *typedesc.Descriptor, ctx apis.Context) (reflect.Value, bool, error) {
	t := d.Type()
	if t.Kind() != reflect.Interface {
		return reflect.Value{}, false, nil
	}
	if s.res == nil {
		return reflect.Value{}, true, nil
	}
	c, err := s.res.Resolve(t, ctx.Source(), ctx.Config())
	if err != nil {
		return reflect.Value{}, true, &apis.ObjectCreationError{Type: t, Cause: err}
	}
	if c == nil {
		ctx.Logger().Debug("rgen: no concrete type", zap.Stringer("type", d))
		return reflect.Value{}, true, nil
	}
	ctx.Logger().Debug("rgen: resolved concrete type", zap.Stringer("type", d), zap.String("concrete", uref.TypeName(c)))

	v, err := ctx.Generate(typedesc.Of(c))
	if err != nil || !v.IsValid() {
		return reflect.Value{}, true, err
	}
	out := reflect.New(t).Elem()
	if err := assign(out, v); err != nil {
		return reflect.Value{}, true, &apis.ObjectCreationError{Type: t, Cause: err}
	}
	return out, true, nil
}
