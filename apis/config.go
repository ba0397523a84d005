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
	"go.uber.org/zap/zapcore"
)

// LevelTrace is the level used for cycle and depth guard decisions.
// It sits below zapcore.DebugLevel so development loggers drop it.
const LevelTrace = zapcore.DebugLevel - 1

// FieldPredicate reports whether a struct field must be left untouched.
// declaringType is the struct that declares the field, which differs from
// the requested type for fields promoted from embedded structs.
type FieldPredicate func(name string, fieldType, declaringType reflect.Type) bool

// Config carries read-only generation knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Seed drives the randomness source; the same seed yields the same graph.
	Seed int64

	// MaxCollectionSize bounds slice, container and map sizes (inclusive).
	MaxCollectionSize int

	// MaxStringLength bounds generated strings (inclusive, at least 1).
	MaxStringLength int

	// MaxDepth bounds nesting: a descriptor is not generated once the
	// ancestry chain holds MaxDepth entries.
	MaxDepth int

	// ObjectPoolSize is the number of distinct instances populated per
	// struct type in one call before instances are reused. Zero disables
	// reuse.
	ObjectPoolSize int

	// ScanForConcreteTypes lets interface types be resolved against
	// registered candidate types when no explicit binding exists.
	ScanForConcreteTypes bool

	// Exclusions are consulted for every struct field; any match skips it.
	Exclusions []FieldPredicate

	// Logger receives guard and resolution decisions. Nil discards.
	Logger *zap.Logger
}

// Excluded reports whether any exclusion predicate matches the field.
func (c Config) Excluded(name string, fieldType, declaringType reflect.Type) bool {
	for _, p := range c.Exclusions {
		if p != nil && p(name, fieldType, declaringType) {
			return true
		}
	}
	return false
}

// Log returns c.Logger, or a logger that discards everything.
func (c Config) Log() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return nop
}

var nop = zap.NewNop()
