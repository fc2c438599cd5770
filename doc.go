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

// Package linkgen provides a declarative route registry with type-safe
// link generation.
//
// A caller declares a hierarchical tree of named path fragments. The tree
// is flattened once into an immutable mapping from route name (the
// "/"-joined ancestry of node names) to full path template, and a Registry
// built over that mapping turns route names plus runtime values into
// concrete paths and URLs.
//
// # Key Features
//
//   - Nested route trees with inherited path fragments and query strings
//   - Placeholder (":id"), query ("?page"), and constraint ("<number>")
//     grammar, validated at registry construction
//   - Absolute routes through protocol ("http://") and host
//     ("localhost:3000") fragments
//   - Pure, lock-free link generation safe for concurrent callers
//   - Route-tree loading from YAML, TOML, and JSON files with deep merging
//   - Introspection of the derived flat mapping for debugging and docs
//
// # Constructor Pattern
//
//   - New() returns (*Registry, error): construction walks every fragment
//     and fails on the first malformed one, so configuration errors surface
//     at startup rather than at link time.
//   - MustNew() panics on construction errors, for registries declared in
//     package setup where a bad tree is a programming error.
//   - All configuration options use the "With" prefix (e.g. WithLogger,
//     WithValueValidation) and are applied at construction only.
//
// # Quick Start
//
//	registry := linkgen.MustNew(linkgen.Routes{
//	    "home": {Path: "/"},
//	    "users": {
//	        Path: "/users",
//	        Children: linkgen.Routes{
//	            "show": {Path: "/:id<number>?tab<(posts|likes)>"},
//	        },
//	    },
//	})
//
//	link, err := registry.Generate("users/show",
//	    linkgen.Values{"id": 42},
//	    linkgen.Values{"tab": "posts"},
//	)
//	// link == "/users/42?tab=posts"
//
// # Generation Semantics
//
// Path placeholders are required: a missing entry in params fails with
// ErrMissingParam. Query keys are optional: an absent key is omitted from
// the output entirely, while a present key is always emitted, even for
// falsy values such as 0. Constraint annotations never appear in output.
// Values are stringified canonically (numbers in plain decimal, booleans
// as "true"/"false") and inserted verbatim unless WithPathEscaping is set.
//
// # Concurrency
//
// Flattening runs once at construction. The resulting mapping is never
// mutated, so a single Registry may be shared freely across goroutines
// without synchronization.
package linkgen
