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

package config

import (
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/rgen/apis"
)

const (
	// DefaultSeed represents the default for Seed.
	DefaultSeed int64 = 123
	// DefaultMaxCollectionSize represents the default for MaxCollectionSize.
	DefaultMaxCollectionSize = 10
	// DefaultMaxStringLength represents the default for MaxStringLength.
	DefaultMaxStringLength = 32
	// DefaultMaxDepth represents the default for MaxDepth.
	// Deep enough for realistic models, shallow enough to bound graph size.
	DefaultMaxDepth = 32
	// DefaultObjectPoolSize represents the default for ObjectPoolSize.
	DefaultObjectPoolSize = 10
	// DefaultScanForConcreteTypes represents the default for ScanForConcreteTypes.
	DefaultScanForConcreteTypes = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Seed:                 DefaultSeed,
		MaxCollectionSize:    DefaultMaxCollectionSize,
		MaxStringLength:      DefaultMaxStringLength,
		MaxDepth:             DefaultMaxDepth,
		ObjectPoolSize:       DefaultObjectPoolSize,
		ScanForConcreteTypes: DefaultScanForConcreteTypes,
	}
}

// Sanitize resets negative sizes and a non-positive MaxDepth to their
// defaults. Generators apply it to every Config they are handed.
func Sanitize(cfg apis.Config) apis.Config {
	if cfg.MaxCollectionSize < 0 {
		cfg.MaxCollectionSize = DefaultMaxCollectionSize
	}
	if cfg.MaxStringLength < 0 {
		cfg.MaxStringLength = DefaultMaxStringLength
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.ObjectPoolSize < 0 {
		cfg.ObjectPoolSize = DefaultObjectPoolSize
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithSeed sets the Seed option.
func WithSeed(seed int64) Option {
	return func(c *apis.Config) {
		c.Seed = seed
	}
}

// WithMaxCollectionSize sets the MaxCollectionSize option.
// A negative value resets to the default.
func WithMaxCollectionSize(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.MaxCollectionSize = DefaultMaxCollectionSize
			return
		}
		c.MaxCollectionSize = n
	}
}

// WithMaxStringLength sets the MaxStringLength option.
// A negative value resets to the default.
func WithMaxStringLength(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.MaxStringLength = DefaultMaxStringLength
			return
		}
		c.MaxStringLength = n
	}
}

// WithMaxDepth sets the MaxDepth option.
// A value below one resets to the default.
func WithMaxDepth(n int) Option {
	return func(c *apis.Config) {
		if n <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = n
	}
}

// WithObjectPoolSize sets the ObjectPoolSize option. Zero disables reuse.
// A negative value resets to the default.
func WithObjectPoolSize(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.ObjectPoolSize = DefaultObjectPoolSize
			return
		}
		c.ObjectPoolSize = n
	}
}

// WithScanForConcreteTypes sets the ScanForConcreteTypes option.
func WithScanForConcreteTypes(scan bool) Option {
	return func(c *apis.Config) {
		c.ScanForConcreteTypes = scan
	}
}

// WithExclusions appends field exclusion predicates. Nil predicates are dropped.
func WithExclusions(preds ...apis.FieldPredicate) Option {
	return func(c *apis.Config) {
		out := make([]apis.FieldPredicate, 0, len(c.Exclusions)+len(preds))
		out = append(out, c.Exclusions...)
		for _, p := range preds {
			if p != nil {
				out = append(out, p)
			}
		}
		c.Exclusions = out
	}
}

// WithLogger sets the Logger option.
func WithLogger(l *zap.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}

// ExcludeField matches the field called name whose type is fieldType and
// which is declared by declaringType. A nil type matches any type.
func ExcludeField(name string, fieldType, declaringType reflect.Type) apis.FieldPredicate {
	return func(n string, ft, dt reflect.Type) bool {
		if n != name {
			return false
		}
		if fieldType != nil && ft != fieldType {
			return false
		}
		return declaringType == nil || dt == declaringType
	}
}
