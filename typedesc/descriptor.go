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

package typedesc

import (
	"reflect"
	"strings"

	uref "dirpx.dev/rgen/utils/reflect"
)

// Kind tags the variant held by a Descriptor.
type Kind uint8

const (
	// Concrete describes a real Go type, optionally with type arguments.
	Concrete Kind = iota
	// Wildcard is a "?" placeholder, optionally bounded from above.
	Wildcard
	// Variable is a named type parameter, optionally bounded from above.
	Variable
)

// String returns a short identifier for k.
func (k Kind) String() string {
	switch k {
	case Concrete:
		return "Concrete"
	case Wildcard:
		return "Wildcard"
	case Variable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// Descriptor identifies a type to populate: its raw identity, its ordered
// type arguments, and whether it is a wildcard or type variable.
//
// Descriptors are immutable once built and safe to share.
type Descriptor struct {
	kind  Kind
	typ   reflect.Type
	args  []*Descriptor
	name  string
	bound *Descriptor
	// implicit marks args read off the Go type itself by Of.
	implicit bool
}

var anyType = reflect.TypeFor[any]()

// Of derives a Descriptor from a Go type.
//
// Slices, arrays, channels and pointers carry their element as the single
// argument; maps carry key and value. The empty interface maps to the
// unbounded wildcard since nothing about the value is known.
func Of(t reflect.Type) *Descriptor {
	if t == nil {
		return nil
	}
	if t == anyType {
		return Unbounded()
	}
	d := &Descriptor{kind: Concrete, typ: t}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Chan, reflect.Pointer:
		d.args, d.implicit = []*Descriptor{Of(t.Elem())}, true
	case reflect.Map:
		d.args, d.implicit = []*Descriptor{Of(t.Key()), Of(t.Elem())}, true
	}
	return d
}

// For is Of(reflect.TypeFor[T]()).
func For[T any]() *Descriptor {
	return Of(reflect.TypeFor[T]())
}

// Raw describes t without any type arguments, regardless of its kind.
func Raw(t reflect.Type) *Descriptor {
	if t == nil {
		return nil
	}
	return &Descriptor{kind: Concrete, typ: t}
}

// Parameterized describes the raw type t applied to args.
func Parameterized(t reflect.Type, args ...*Descriptor) *Descriptor {
	if t == nil {
		return nil
	}
	return &Descriptor{kind: Concrete, typ: t, args: append([]*Descriptor(nil), args...)}
}

// Unbounded returns the "?" wildcard.
func Unbounded() *Descriptor {
	return &Descriptor{kind: Wildcard}
}

// Extends returns "? extends bound".
func Extends(bound *Descriptor) *Descriptor {
	return &Descriptor{kind: Wildcard, bound: bound}
}

// Var returns the type variable name with an optional upper bound.
func Var(name string, bound *Descriptor) *Descriptor {
	return &Descriptor{kind: Variable, name: name, bound: bound}
}

// Kind reports the variant of d.
func (d *Descriptor) Kind() Kind { return d.kind }

// Type returns the raw Go type, or nil for wildcards and variables.
func (d *Descriptor) Type() reflect.Type { return d.typ }

// Name returns the variable name, or "" for other kinds.
func (d *Descriptor) Name() string { return d.name }

// Bound returns the upper bound of a wildcard or variable, if any.
func (d *Descriptor) Bound() *Descriptor { return d.bound }

// Args returns the type arguments. The returned slice must not be modified.
func (d *Descriptor) Args() []*Descriptor { return d.args }

// TypeArgs returns the arguments given explicitly through Parameterized,
// or nil when d has none or its arguments were derived by Of.
func (d *Descriptor) TypeArgs() []*Descriptor {
	if d.implicit {
		return nil
	}
	return d.args
}

// Arg returns the i-th type argument or nil when absent.
func (d *Descriptor) Arg(i int) *Descriptor {
	if i < 0 || i >= len(d.args) {
		return nil
	}
	return d.args[i]
}

// IsRaw reports whether d is concrete and carries no type arguments.
func (d *Descriptor) IsRaw() bool {
	return d.kind == Concrete && len(d.args) == 0
}

// IsConcrete reports whether d names a real type.
func (d *Descriptor) IsConcrete() bool {
	return d != nil && d.kind == Concrete
}

// Resolve returns the concrete descriptor d stands for: d itself when
// concrete, otherwise its bound resolved transitively. A wildcard or
// variable without a concrete bound yields nil.
func (d *Descriptor) Resolve() *Descriptor {
	for cur := d; cur != nil; cur = cur.bound {
		if cur.kind == Concrete {
			return cur
		}
	}
	return nil
}

// Resolvable reports whether Resolve would return a concrete descriptor.
func (d *Descriptor) Resolvable() bool {
	return d.Resolve() != nil
}

// Substitute replaces type variables found in bindings, recursively.
// Variables without a binding are kept as they are.
func (d *Descriptor) Substitute(bindings map[string]*Descriptor) *Descriptor {
	if d == nil || len(bindings) == 0 {
		return d
	}
	switch d.kind {
	case Variable:
		if b, ok := bindings[d.name]; ok && b != nil {
			return b
		}
		return d
	case Wildcard:
		if d.bound == nil {
			return d
		}
		return Extends(d.bound.Substitute(bindings))
	}
	if len(d.args) == 0 {
		return d
	}
	args := make([]*Descriptor, len(d.args))
	for i, a := range d.args {
		args[i] = a.Substitute(bindings)
	}
	return &Descriptor{kind: Concrete, typ: d.typ, args: args, implicit: d.implicit}
}

// Equal reports whether a and b describe the same type: same kind, same
// raw identity and recursively equal arguments and bounds. Arguments read
// off a Go type by Of compare equal to the same arguments given explicitly.
func Equal(a, b *Descriptor) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.typ != b.typ || a.name != b.name {
		return false
	}
	if !Equal(a.bound, b.bound) {
		return false
	}
	if len(a.args) != len(b.args) {
		return false
	}
	for i := range a.args {
		if !Equal(a.args[i], b.args[i]) {
			return false
		}
	}
	return true
}

// Key returns a canonical string usable as a map key. Two descriptors have
// the same key whenever they are Equal.
func (d *Descriptor) Key() string {
	var sb strings.Builder
	d.write(&sb, true)
	return sb.String()
}

// String renders d in the tag expression syntax, e.g. "collection.List[model.Person]".
func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	var sb strings.Builder
	d.write(&sb, false)
	return sb.String()
}

func (d *Descriptor) write(sb *strings.Builder, qualified bool) {
	switch d.kind {
	case Wildcard:
		sb.WriteByte('?')
		if d.bound != nil {
			sb.WriteString(" extends ")
			d.bound.write(sb, qualified)
		}
		return
	case Variable:
		sb.WriteString(d.name)
		if d.bound != nil {
			sb.WriteString(" extends ")
			d.bound.write(sb, qualified)
		}
		return
	}
	if qualified {
		if p := d.typ.PkgPath(); p != "" {
			sb.WriteString(p)
			sb.WriteByte('.')
			sb.WriteString(d.typ.Name())
		} else {
			sb.WriteString(d.typ.String())
		}
	} else {
		sb.WriteString(uref.TypeName(d.typ))
	}
	if len(d.args) == 0 || (d.implicit && !qualified) {
		return
	}
	sb.WriteByte('[')
	for i, a := range d.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		a.write(sb, qualified)
	}
	sb.WriteByte(']')
}
