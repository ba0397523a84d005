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

package reflect

import (
	"reflect"
	"sort"
)

// Field is a populatable struct field as seen from the outermost struct.
type Field struct {
	// Name is the field name.
	Name string
	// Type is the declared field type.
	Type reflect.Type
	// Declaring is the struct type that declares the field. It differs from
	// the outer type for fields promoted from embedded structs.
	Declaring reflect.Type
	// Index is the index path from the outer struct, as in reflect.StructField.
	Index []int
	// Tag is the raw struct tag.
	Tag reflect.StructTag
}

// ListFields returns the fields of struct type t that can be assigned from
// outside the package: exported, non-blank, including fields promoted from
// embedded structs. Fields are ordered most-derived first (shallower index
// paths first), then in declaration order. Embedded struct fields are
// replaced by their promoted fields.
//
// t must be a struct type; any other kind yields nil.
func ListFields(t reflect.Type) []Field {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var out []Field
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Name == "_" {
			continue
		}
		if sf.Anonymous && isFlattened(sf.Type) {
			// Promoted fields are listed on their own.
			continue
		}
		out = append(out, Field{
			Name:      sf.Name,
			Type:      sf.Type,
			Declaring: declaringType(t, sf.Index),
			Index:     sf.Index,
			Tag:       sf.Tag,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Index) < len(out[j].Index)
	})
	return out
}

// FieldByIndexAlloc is reflect.Value.FieldByIndex that allocates nil
// embedded struct pointers found along the path. v must be addressable.
// It returns the zero Value when a nil pointer on the path cannot be set,
// as happens for unexported embedded pointers.
func FieldByIndexAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}

func declaringType(t reflect.Type, index []int) reflect.Type {
	for _, x := range index[:len(index)-1] {
		t = t.Field(x).Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	return t
}

// isFlattened reports whether an embedded field of type t contributes
// promoted fields. Structs without exported fields (time.Time) are
// populated as a whole instead.
func isFlattened(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
