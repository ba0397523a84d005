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
	"sync"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/typedesc"
	uref "dirpx.dev/rgen/utils/reflect"
)

// NewBeanStrategy creates an apis.Strategy that populates struct fields.
func NewBeanStrategy() apis.Strategy {
	return beanStrategy{}
}

// beanStrategy allocates a struct and assigns every populatable field the
// value returned by the dispatcher. It pushes the struct onto the ancestry
// chain, so self-referencing fields come back null.
type beanStrategy struct{}

// Ensure beanStrategy implements apis.Strategy.
var _ apis.Strategy = (*beanStrategy)(nil)

// fieldCache memoizes uref.ListFields by struct type.
var fieldCache sync.Map // key: reflect.Type, val: []uref.Field

func fieldsOf(t reflect.Type) []uref.Field {
	if v, ok := fieldCache.Load(t); ok {
		return v.([]uref.Field)
	}
	fs := uref.ListFields(t)
	v, _ := fieldCache.LoadOrStore(t, fs)
	return v.([]uref.Field)
}

func (beanStrategy) TryGenerate(d *typedesc.Descriptor, ctx apis.Context) (reflect.Value, bool, error) {
	t := d.Type()
	if t.Kind() != reflect.Struct {
		return reflect.Value{}, false, nil
	}
	if v, ok := ctx.Reuse(d); ok {
		return v, true, nil
	}

	ctx.Push(d)
	defer ctx.Pop()

	cfg := ctx.Config()
	out := reflect.New(t).Elem()
	bindings := typedesc.Bindings(d)
	for _, f := range fieldsOf(t) {
		expr, skip := typedesc.FieldTag(f.Tag)
		if skip || cfg.Excluded(f.Name, f.Type, f.Declaring) {
			continue
		}
		fd := typedesc.Of(f.Type)
		if expr != "" {
			var err error
			if fd, err = typedesc.Parse(expr, ctx.Universe(), bindings); err != nil {
				return reflect.Value{}, true, &apis.ObjectCreationError{
					Type:  t,
					Cause: fmt.Errorf("field %s: %w", f.Name, err),
				}
			}
		}
		v, err := ctx.Generate(fd)
		if err != nil {
			return reflect.Value{}, true, err
		}
		if !v.IsValid() {
			continue
		}
		dst := uref.FieldByIndexAlloc(out, f.Index)
		if !dst.IsValid() || !dst.CanSet() {
			continue
		}
		if err := assign(dst, v); err != nil {
			return reflect.Value{}, true, &apis.ObjectCreationError{
				Type:  t,
				Cause: fmt.Errorf("field %s: %w", f.Name, err),
			}
		}
	}
	ctx.Populated(d, out)
	return out, true, nil
}
