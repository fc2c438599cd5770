// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linkgen

import "errors"

var (
	// ErrUnknownRoute indicates that the requested route name is not part
	// of the flattened route mapping.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrMissingParam indicates that a path placeholder has no
	// corresponding entry in the supplied params.
	ErrMissingParam = errors.New("missing required parameter")

	// ErrMalformedFragment indicates that a route fragment could not be
	// parsed (e.g. an unterminated constraint bracket). Detected at
	// construction time and fatal to the whole registry.
	ErrMalformedFragment = errors.New("malformed route fragment")

	// ErrConstraintViolation indicates that a supplied value does not
	// satisfy the constraint declared on its placeholder or query key.
	// Only raised when value validation is enabled.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrEmptyRouteName indicates that an empty string was used as a route
	// name in the tree. Fatal to construction.
	ErrEmptyRouteName = errors.New("route name must not be empty")

	// ErrUnsupportedValue indicates that a supplied param or query value
	// could not be stringified.
	ErrUnsupportedValue = errors.New("unsupported value type")
)
