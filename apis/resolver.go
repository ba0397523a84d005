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

	"dirpx.dev/rgen/rng"
)

// Resolver picks a concrete type for an interface type that has no
// registry entry and no container mapping.
type Resolver interface {
	// Bind maps iface to concrete explicitly. concrete (or a pointer to it)
	// must implement iface.
	Bind(iface, concrete reflect.Type) error
	// Candidates registers types considered when scanning is enabled.
	Candidates(types ...reflect.Type) error
	// Resolve returns the concrete type for iface, or nil when none applies.
	// An error aborts generation of the enclosing value.
	Resolve(iface reflect.Type, src *rng.Source, cfg Config) (reflect.Type, error)
}
