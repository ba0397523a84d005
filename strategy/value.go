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
)

// conform returns v as a value of exactly type t.
func conform(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	vt := v.Type()
	switch {
	case vt == t:
		return v, true
	case vt.AssignableTo(t):
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, true
	case vt.Kind() == reflect.Slice && (t.Kind() == reflect.Array || t.Kind() == reflect.Pointer):
		// Slice to array conversions panic on short slices.
		return reflect.Value{}, false
	case vt.ConvertibleTo(t):
		return v.Convert(t), true
	}
	return reflect.Value{}, false
}

// assign stores v into the settable dst.
func assign(dst, v reflect.Value) error {
	c, ok := conform(v, dst.Type())
	if !ok {
		return fmt.Errorf("cannot assign %v to %v", v.Type(), dst.Type())
	}
	dst.Set(c)
	return nil
}
