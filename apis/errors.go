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
	"fmt"
	"reflect"

	uref "dirpx.dev/rgen/utils/reflect"
)

// ObjectCreationError reports a type that could not be instantiated: it has
// no usable construction path, it is a rejected container kind reached
// through a field or top-level request, or a collaborator failed.
type ObjectCreationError struct {
	// Type is the type that could not be created.
	Type reflect.Type
	// Cause is the underlying failure, if any.
	Cause error
	// Reason is set when there is no underlying error.
	Reason string
}

func (e *ObjectCreationError) Error() string {
	msg := "rgen: cannot create " + uref.TypeName(e.Type)
	switch {
	case e.Cause != nil:
		return msg + ": " + e.Cause.Error()
	case e.Reason != "":
		return msg + ": " + e.Reason
	}
	return msg
}

func (e *ObjectCreationError) Unwrap() error { return e.Cause }

// UnsupportedOperationError reports a container kind that cannot be
// populated: a rendezvous queue or a delay-gated queue.
type UnsupportedOperationError struct {
	// Type is the rejected container type.
	Type reflect.Type
	// Reason explains the rejection.
	Reason string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("rgen: unsupported container %s", uref.TypeName(e.Type))
	}
	return fmt.Sprintf("rgen: unsupported container %s: %s", uref.TypeName(e.Type), e.Reason)
}
