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

// NewArrayStrategy creates an apis.Strategy for Go arrays and slices.
func NewArrayStrategy() apis.Strategy {
	return arrayStrategy{}
}

// arrayStrategy fills arrays in place and draws slice lengths in
// [0, MaxCollectionSize]. Null elements keep their zero value.
type arrayStrategy struct{}

// Ensure arrayStrategy implements apis.Strategy.
var _ apis.Strategy = (*arrayStrategy)(nil)

func (arrayStrategy) TryGenerate(d *typedesc.Descriptor, ctx apis.Context) (reflect.Value, bool, error) {
	t := d.Type()
	if t.Kind() != reflect.Array && t.Kind() != reflect.Slice {
		return reflect.Value{}, false, nil
	}
	elem := d.Arg(0)
	if elem == nil {
		elem = typedesc.Of(t.Elem())
	}

	var out reflect.Value
	n := 0
	if t.Kind() == reflect.Array {
		out = reflect.New(t).Elem()
		n = t.Len()
	} else {
		if elem.Resolvable() {
			n = ctx.Source().IntRange(0, ctx.Config().MaxCollectionSize)
		}
		out = reflect.MakeSlice(t, n, n)
	}
	if n == 0 || !elem.Resolvable() {
		return out, true, nil
	}

	ctx.Push(d)
	defer ctx.Pop()
	for i := 0; i < n; i++ {
		v, err := ctx.Generate(elem)
		if err != nil {
			return reflect.Value{}, true, err
		}
		if v.IsValid() {
			if err := assign(out.Index(i), v); err != nil {
				return reflect.Value{}, true, &apis.ObjectCreationError{Type: t, Cause: err}
			}
		}
	}
	return out, true, nil
}

// NewPointerStrategy creates an apis.Strategy for pointer types.
func NewPointerStrategy() apis.Strategy {
	return pointerStrategy{}
}

// pointerStrategy generates the pointee and takes its address. A null
// pointee yields a nil pointer.
type pointerStrategy struct{}

// Ensure pointerStrategy implements apis.Strategy.
var _ apis.Strategy = (*pointerStrategy)(nil)

func (pointerStrategy) TryGenerate(d *typedesc.Descriptor, ctx apis.Context) (reflect.Value, bool, error) {
	t := d.Type()
	if t.Kind() != reflect.Pointer {
		return reflect.Value{}, false, nil
	}
	// Explicit arguments on *T describe T.
	elem := typedesc.Of(t.Elem())
	if args := d.TypeArgs(); len(args) > 0 {
		elem = typedesc.Parameterized(t.Elem(), args...)
	} else if a := d.Arg(0); a != nil {
		elem = a
	}
	ctx.Push(d)
	v, err := ctx.Generate(elem)
	ctx.Pop()
	if err != nil || !v.IsValid() {
		return reflect.Value{}, true, err
	}
	p := reflect.New(t.Elem())
	if err := assign(p.Elem(), v); err != nil {
		return reflect.Value{}, true, &apis.ObjectCreationError{Type: t, Cause: err}
	}
	return p, true, nil
}

// NewUnsupportedStrategy creates the terminal apis.Strategy of a chain. It
// handles every descriptor by failing.
func NewUnsupportedStrategy() apis.Strategy {
	return unsupportedStrategy{}
}

// unsupportedStrategy covers funcs, unsafe pointers and anything no earlier
// strategy could construct.
type unsupportedStrategy struct{}

// Ensure unsupportedStrategy implements apis.Strategy.
var _ apis.Strategy = (*unsupportedStrategy)(nil)

func (unsupportedStrategy) TryGenerate(d *typedesc.Descriptor, _ apis.Context) (reflect.Value, bool, error) {
	return reflect.Value{}, true, &apis.ObjectCreationError{Type: d.Type(), Reason: "no usable constructor"}
}
