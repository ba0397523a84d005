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

package collection

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// hashKey returns a map key identifying v. Comparable values are their own
// key; anything else is keyed by its type and formatted value.
func hashKey(v any) any {
	if v == nil {
		return nil
	}
	if reflect.ValueOf(v).Comparable() {
		return v
	}
	return fmt.Sprintf("%T:%v", v, v)
}

// sortFormatted sorts vs by type and formatted value. It fixes the
// iteration order of the hash kinds.
func sortFormatted(vs []any) []any {
	slices.SortStableFunc(vs, func(a, b any) int {
		return cmp.Compare(fmt.Sprintf("%T:%v", a, a), fmt.Sprintf("%T:%v", b, b))
	})
	return vs
}

// Compare orders two elements: numbers and strings of the same kind by
// value, everything else by type name then formatted value. It is the
// ordering used by TreeSet, TreeMap and PriorityQueue.
func Compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() == vb.Type() {
		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(va.Int(), vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(va.Uint(), vb.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(va.Float(), vb.Float())
		case reflect.String:
			return cmp.Compare(va.String(), vb.String())
		case reflect.Bool:
			return cmp.Compare(boolInt(va.Bool()), boolInt(vb.Bool()))
		}
	} else if c := cmp.Compare(va.Type().String(), vb.Type().String()); c != 0 {
		return c
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
