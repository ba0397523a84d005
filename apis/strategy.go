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

package apis

import (
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/rgen/rng"
	"dirpx.dev/rgen/typedesc"
)

// Strategy is a pluggable generation step. A Generator chains strategies
// in order (e.g., Self -> Registry -> Array -> Container -> ... -> Bean).
type Strategy interface {
	// TryGenerate attempts to produce a value for d.
	//
	// It returns handled=false to fall through to the next strategy. When
	// handled, an invalid reflect.Value means null: the caller keeps the
	// zero value.
	TryGenerate(d *typedesc.Descriptor, ctx Context) (v reflect.Value, handled bool, err error)
}

// Context is the per-call state threaded through strategies. It is owned
// by one top-level call and never shared between goroutines.
type Context interface {
	// Config returns the configuration of the call.
	Config() Config
	// Source returns the randomness source of the call.
	Source() *rng.Source
	// Logger returns the logger of the call; never nil.
	Logger() *zap.Logger
	// Universe resolves names in field tag expressions.
	Universe() *typedesc.Universe

	// Generate runs the full dispatcher on d, guards included.
	Generate(d *typedesc.Descriptor) (reflect.Value, error)

	// Push adds d to the ancestry chain; Pop removes the last entry.
	Push(d *typedesc.Descriptor)
	Pop()
	// Depth is the length of the ancestry chain.
	Depth() int

	// Reuse returns a previously populated instance of d once the object
	// pool for d is full.
	Reuse(d *typedesc.Descriptor) (reflect.Value, bool)
	// Populated records a freshly populated instance of d.
	Populated(d *typedesc.Descriptor, v reflect.Value)
}

// Generator is the top-level entry point: it owns a fresh Context per call.
type Generator interface {
	// Generate produces a value for d. An invalid Value means null.
	Generate(d *typedesc.Descriptor, cfg Config) (reflect.Value, error)
}
