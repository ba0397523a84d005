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
	"dirpx.dev/rgen/rng"
	"dirpx.dev/rgen/typedesc"
)

// Randomizer produces a value of the type it is registered for, drawing
// every random decision from src. It must not recurse into generation.
type Randomizer func(src *rng.Source, cfg Config) any

// Provenance tells user overrides from built-in randomizers.
type Provenance uint8

const (
	// Builtin marks randomizers shipped with the library.
	Builtin Provenance = iota
	// User marks randomizers registered by callers.
	User
)

// String returns "builtin" or "user".
func (p Provenance) String() string {
	if p == User {
		return "user"
	}
	return "builtin"
}

// Registry maps type descriptors to scalar randomizers.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register installs a user override for d. Registering the same
	// function again is a no-op; a different function for the same
	// descriptor fails.
	Register(d *typedesc.Descriptor, fn Randomizer) error
	// Lookup finds the randomizer for d: exact descriptor first, then the
	// raw type, user overrides before built-ins at each step.
	Lookup(d *typedesc.Descriptor) (Entry, bool)
	// Entries returns a snapshot of user entries for diagnostics and
	// migration (order is unspecified).
	Entries() []Entry
	// Count returns the number of user entries.
	Count() int
	// Reset clears all user entries. Built-ins are kept.
	Reset()
}

// Entry is a single registry association.
type Entry struct {
	// Descriptor is the registered descriptor.
	Descriptor *typedesc.Descriptor
	// Randomizer produces values for Descriptor.
	Randomizer Randomizer
	// Provenance tells user overrides from built-ins.
	Provenance Provenance
}
