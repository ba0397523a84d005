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

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/typedesc"
)

// NewSelfStrategy creates an apis.Strategy for types implementing
// apis.Randomizable.
func NewSelfStrategy() apis.Strategy {
	return &selfStrategy{}
}

// selfStrategy is a fast path: if *T implements apis.Randomizable, allocate
// a T, let it fill itself and stop the chain.
type selfStrategy struct{}

// Ensure selfStrategy implements apis.Strategy.
var _ apis.Strategy = (*selfStrategy)(nil)

var randomizableType = reflect.TypeFor[apis.Randomizable]()

// TryGenerate handles T when *T implements apis.Randomizable, and *T
// itself. Value receivers cannot fill anything and are ignored.
func (*selfStrategy) TryGenerate(d *typedesc.Descriptor, ctx apis.Context) (reflect.Value, bool, error) {
	t := d.Type()
	switch {
	case t.Kind() == reflect.Pointer && t.Elem().Kind() != reflect.Interface && t.Implements(randomizableType):
		p := reflect.New(t.Elem())
		p.Interface().(apis.Randomizable).Randomize(ctx.Source(), ctx.Config())
		return p, true, nil
	case t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(randomizableType):
		p := reflect.New(t)
		p.Interface().(apis.Randomizable).Randomize(ctx.Source(), ctx.Config())
		return p.Elem(), true, nil
	}
	return reflect.Value{}, false, nil
}
