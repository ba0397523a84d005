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
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"dirpx.dev/rgen/apis"
	"dirpx.dev/rgen/typedesc"
)

// ErrInvalidFile is returned when a configuration document cannot be applied.
var ErrInvalidFile = errors.New("rgen(config): invalid configuration file")

// File is the YAML form of apis.Config. Omitted keys keep their defaults.
//
//	seed: 42
//	maxCollectionSize: 5
//	maxStringLength: 16
//	maxDepth: 8
//	objectPoolSize: 10
//	scanForConcreteTypes: true
//	logLevel: debug
//	exclusions:
//	  - field: Password
//	    type: string
//	    declaringType: model.User
type File struct {
	Seed                 *int64      `yaml:"seed"`
	MaxCollectionSize    *int        `yaml:"maxCollectionSize"`
	MaxStringLength      *int        `yaml:"maxStringLength"`
	MaxDepth             *int        `yaml:"maxDepth"`
	ObjectPoolSize       *int        `yaml:"objectPoolSize"`
	ScanForConcreteTypes *bool       `yaml:"scanForConcreteTypes"`
	LogLevel             string      `yaml:"logLevel"`
	Exclusions           []Exclusion `yaml:"exclusions"`
}

// Exclusion names a field to skip. Type and DeclaringType are resolved
// against the Universe; left empty they match any type.
type Exclusion struct {
	Field         string `yaml:"field"`
	Type          string `yaml:"type"`
	DeclaringType string `yaml:"declaringType"`
}

// Load reads a YAML document from r, applies it over the defaults and then
// applies opts. Type names in exclusions are resolved against u.
func Load(r io.Reader, u *typedesc.Universe, opts ...Option) (apis.Config, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return apis.Config{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	fileOpts, err := f.Options(u)
	if err != nil {
		return apis.Config{}, err
	}
	return NewConfig(append(fileOpts, opts...)...), nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string, u *typedesc.Universe, opts ...Option) (apis.Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return apis.Config{}, err
	}
	defer fh.Close()
	return Load(fh, u, opts...)
}

// Options converts f into functional options.
func (f File) Options(u *typedesc.Universe) ([]Option, error) {
	var opts []Option
	if f.Seed != nil {
		opts = append(opts, WithSeed(*f.Seed))
	}
	if f.MaxCollectionSize != nil {
		opts = append(opts, WithMaxCollectionSize(*f.MaxCollectionSize))
	}
	if f.MaxStringLength != nil {
		opts = append(opts, WithMaxStringLength(*f.MaxStringLength))
	}
	if f.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*f.MaxDepth))
	}
	if f.ObjectPoolSize != nil {
		opts = append(opts, WithObjectPoolSize(*f.ObjectPoolSize))
	}
	if f.ScanForConcreteTypes != nil {
		opts = append(opts, WithScanForConcreteTypes(*f.ScanForConcreteTypes))
	}
	if f.LogLevel != "" {
		lvl, err := ParseLevel(f.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLogger(newLogger(lvl)))
	}
	for i, e := range f.Exclusions {
		if e.Field == "" {
			return nil, fmt.Errorf("%w: exclusions[%d]: missing field", ErrInvalidFile, i)
		}
		ft, err := lookup(u, e.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: exclusions[%d]: %w", ErrInvalidFile, i, err)
		}
		dt, err := lookup(u, e.DeclaringType)
		if err != nil {
			return nil, fmt.Errorf("%w: exclusions[%d]: %w", ErrInvalidFile, i, err)
		}
		opts = append(opts, WithExclusions(ExcludeField(e.Field, ft, dt)))
	}
	return opts, nil
}

func lookup(u *typedesc.Universe, name string) (reflect.Type, error) {
	if name == "" {
		return nil, nil
	}
	if u != nil {
		if t, ok := u.Lookup(name); ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", typedesc.ErrUnknownType, name)
}

// ParseLevel accepts "trace" in addition to the zap level names.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "trace" {
		return apis.LevelTrace, nil
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return lvl, nil
}

// newLogger writes console-encoded entries at lvl and above to stderr.
func newLogger(lvl zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl))
}
