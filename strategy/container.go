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
	"errors"
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/policy"
	"dirpx.dev/rgen/typedesc"
)

// NewContainerStrategy creates an apis.Strategy for sequence containers
// known to tbl: collection kinds and Go channels.
func NewContainerStrategy(tbl *policy.Table) apis.Strategy {
	return &containerStrategy{tbl: tbl, shape: policy.Sequence}
}

// NewMapStrategy creates an apis.Strategy for mapping containers known to
// tbl: collection map kinds and Go maps.
func NewMapStrategy(tbl *policy.Table) apis.Strategy {
	return &containerStrategy{tbl: tbl, shape: policy.Mapping}
}

// containerStrategy applies the policy table to one container shape.
type containerStrategy struct {
	tbl   *policy.Table
	shape policy.Shape
}

// Ensure containerStrategy implements apis.Strategy.
var _ apis.Strategy = (*containerStrategy)(nil)

func (s *containerStrategy) TryGenerate(d *typedesc.Descriptor, ctx apis.Context) (reflect.Value, bool, error) {
	t := d.Type()
	if s.tbl == nil || s.tbl.Shape(t) != s.shape {
		return reflect.Value{}, false, nil
	}
	cfg := ctx.Config()
	p, ok := s.tbl.Resolve(d, ctx.Source(), cfg.MaxCollectionSize)
	if !ok {
		return reflect.Value{}, false, nil
	}
	if p.Variant == policy.Rejected {
		ctx.Logger().Debug("rgen: container rejected", zap.Stringer("type", d), zap.String("reason", p.Reason))
		return reflect.Value{}, true, &apis.ObjectCreationError{
			Type:  t,
			Cause: &apis.UnsupportedOperationError{Type: t, Reason: p.Reason},
		}
	}

	c := s.tbl.Instantiate(p)
	if p.Variant == policy.Populatable && p.Count > 0 {
		ctx.Push(d)
		var err error
		if s.shape == policy.Mapping {
			err = fillMapping(c, p, ctx)
		} else {
			err = fillSequence(c, p, ctx)
		}
		ctx.Pop()
		if err != nil {
			return reflect.Value{}, true, err
		}
	}
	return policy.Finish(c, t), true, nil
}

// fillSequence adds p.Count elements; null elements are skipped.
func fillSequence(c reflect.Value, p policy.Policy, ctx apis.Context) error {
	for i := 0; i < p.Count; i++ {
		v, err := ctx.Generate(p.Elem)
		if err != nil {
			return err
		}
		if !v.IsValid() {
			continue
		}
		if err := policy.Add(c, v); err != nil {
			return &apis.ObjectCreationError{Type: p.Concrete, Cause: err}
		}
	}
	return nil
}

// fillMapping puts p.Count independently generated pairs. Colliding keys
// overwrite; null and unhashable keys are skipped.
func fillMapping(c reflect.Value, p policy.Policy, ctx apis.Context) error {
	for i := 0; i < p.Count; i++ {
		k, err := ctx.Generate(p.Elem)
		if err != nil {
			return err
		}
		if !k.IsValid() {
			continue
		}
		v, err := ctx.Generate(p.Value)
		if err != nil {
			return err
		}
		if err := policy.Put(c, k, v); err != nil {
			if errors.Is(err, policy.ErrUnhashableKey) {
				ctx.Logger().Debug("rgen: map key skipped", zap.Error(err))
				continue
			}
			return &apis.ObjectCreationError{Type: p.Concrete, Cause: err}
		}
	}
	return nil
}
