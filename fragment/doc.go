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

// Package fragment implements the path-fragment grammar used by the
// link-generator route registry.
//
// A fragment is one route node's contribution to a path template. It mixes
// three kinds of markers:
//
//   - static text: anything that is not a placeholder or query declaration
//   - placeholders: ":" followed by an identifier, e.g. "/users/:id"
//   - query declarations: "?" followed by an identifier, e.g. "/search?term"
//
// A placeholder or query declaration may carry an angle-bracket constraint
// describing the expected value kind:
//
//	/users/:id<number>
//	/files/:name<string>
//	/flags/:enabled<boolean>
//	/status/:state<(active|pending|deleted)>
//
// Constraints are descriptive annotations only. They never appear in a
// generated path; Split parses them out and StripConstraints removes them.
//
// The grammar is deliberately small. An identifier starts with a letter or
// underscore and continues with letters, digits, or underscores, so host
// fragments such as "localhost:3000" parse as static text rather than as a
// placeholder named "3000".
//
// All functions in this package are pure and safe for concurrent use.
package fragment
