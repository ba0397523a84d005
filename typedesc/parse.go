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
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// TagKey is the struct tag consulted for field type expressions.
const TagKey = "rgen"

var (
	// ErrSyntax is returned for malformed type expressions.
	ErrSyntax = errors.New("rgen(typedesc): invalid type expression")
	// ErrUnknownType is returned when a name is neither a type parameter
	// nor bound in the Universe.
	ErrUnknownType = errors.New("rgen(typedesc): unknown type name")
)

// Generic is implemented by struct types that declare named type
// parameters. The i-th name binds to the i-th argument of the descriptor
// the struct is requested with; tag expressions on its fields may refer to
// those names.
//
// TypeParameters is called on the zero value and must not depend on state.
type Generic interface {
	TypeParameters() []string
}

// Bindings returns the type parameter bindings of the struct described by
// d. A parameter without a matching argument binds to an unbound Variable.
func Bindings(d *Descriptor) map[string]*Descriptor {
	if !d.IsConcrete() {
		return nil
	}
	names := typeParameters(d.typ)
	if len(names) == 0 {
		return nil
	}
	out := make(map[string]*Descriptor, len(names))
	for i, n := range names {
		if a := d.Arg(i); a != nil {
			out[n] = a
		} else {
			out[n] = Var(n, nil)
		}
	}
	return out
}

func typeParameters(t reflect.Type) []string {
	if t.Kind() != reflect.Struct {
		return nil
	}
	switch {
	case t.Implements(genericType):
		return reflect.Zero(t).Interface().(Generic).TypeParameters()
	case reflect.PointerTo(t).Implements(genericType):
		return reflect.New(t).Interface().(Generic).TypeParameters()
	}
	return nil
}

var genericType = reflect.TypeFor[Generic]()

// Parse reads a type expression:
//
//	expr := "?" [ "extends" expr ] | name [ "[" expr { "," expr } "]" ]
//
// Names resolve against params first, then against u. A bare name bound
// to a Go slice, map or similar type yields Of(t); a name followed by
// arguments yields Parameterized(t, args...).
func Parse(expr string, u *Universe, params map[string]*Descriptor) (*Descriptor, error) {
	p := &parser{src: expr, u: u, params: params}
	d, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return d, nil
}

// FieldTag returns the type expression in tag and whether the field is
// explicitly skipped with `rgen:"-"`.
func FieldTag(tag reflect.StructTag) (expr string, skip bool) {
	v, ok := tag.Lookup(TagKey)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "-" {
		return "", true
	}
	return v, false
}

type parser struct {
	src    string
	pos    int
	u      *Universe
	params map[string]*Descriptor
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d in %q", ErrSyntax, fmt.Sprintf(format, args...), p.pos, p.src)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expr() (*Descriptor, error) {
	switch c := p.peek(); {
	case c == '?':
		p.pos++
		save := p.pos
		if name := p.name(); name == "extends" {
			bound, err := p.expr()
			if err != nil {
				return nil, err
			}
			return Extends(bound), nil
		}
		p.pos = save
		return Unbounded(), nil
	case c == 0:
		return nil, p.errorf("missing type")
	}

	name := p.name()
	if name == "" {
		return nil, p.errorf("expected type name")
	}
	if d, ok := p.params[name]; ok {
		if p.peek() == '[' {
			return nil, p.errorf("type parameter %s takes no arguments", name)
		}
		return d, nil
	}
	var (
		t  reflect.Type
		ok bool
	)
	if p.u != nil {
		t, ok = p.u.Lookup(name)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	if p.peek() != '[' {
		return Of(t), nil
	}
	p.pos++
	var args []*Descriptor
	for {
		a, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return Parameterized(t, args...), nil
		default:
			return nil, p.errorf("expected ',' or ']'")
		}
	}
}

func (p *parser) name() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := rune(p.src[p.pos])
		if c == '.' || c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}
