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
	"errors"
	"path"
	"reflect"
	"strings"
)

// DefaultMaxUnwrap bounds Normalize when the caller passes a non-positive limit.
const DefaultMaxUnwrap = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("rgen(reflect): nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping containers)
	// does not contain a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("rgen(reflect): type has no name")
)

// Normalize unwraps pointers, slices, arrays and channels (maps unwrap to
// their value type) and returns the nearest named inner type, or an error
// if none is found within maxUnwrap steps.
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		if t.Name() != "" {
			return t, nil
		}
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Chan, reflect.Map:
			t = t.Elem()
		default:
			return nil, ErrReflectTypeNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// TypeName returns the short "pkg.Type" spelling of t. Builtin types keep
// their bare name ("int", "string"); unnamed composites use t.String().
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Name() == "" {
		return t.String()
	}
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + t.Name()
	}
	return t.Name()
}

// RawName is TypeName with any generic instantiation suffix removed:
// "pkg.Box[int]" -> "pkg.Box".
func RawName(t reflect.Type) string {
	return StripTypeParams(TypeName(t))
}

// StripTypeParams removes a trailing generic instantiation suffix:
// "T[int,string]" -> "T", "[]pkg.Box[int]" -> "[]pkg.Box". Brackets that
// belong to slice, array or map syntax are kept: "[]int" stays "[]int".
func StripTypeParams(s string) string {
	if !strings.HasSuffix(s, "]") {
		return s
	}
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ']':
			depth++
		case '[':
			depth--
			if depth == 0 {
				if i > 0 && isNameByte(s[i-1]) {
					return s[:i]
				}
				return s
			}
		}
	}
	return s
}

func isNameByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
