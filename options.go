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

import "log/slog"

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger sets a structured logger for construction-time events (route
// counts, merge summaries). Generation never logs: it is a pure function.
// A nil logger leaves the default discard logger in place.
//
// Example:
//
//	registry := linkgen.MustNew(routes,
//	    linkgen.WithLogger(slog.Default()),
//	)
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithValueValidation enables call-time checking of supplied values against
// declared constraints: a "<number>" placeholder rejects non-numeric
// values, a "<(a|b)>" union rejects values outside the union, and so on.
// Mismatches fail Generate with ErrConstraintViolation.
//
// Disabled by default: constraints are descriptive annotations, and
// callers that already guarantee their values can skip the check.
func WithValueValidation() Option {
	return func(r *Registry) {
		r.validate = true
	}
}

// WithPathEscaping enables percent-encoding of substituted values:
// url.PathEscape for placeholders and url.QueryEscape for query values.
//
// Disabled by default, in which case values are inserted verbatim and the
// caller is responsible for supplying URL-safe values.
func WithPathEscaping() Option {
	return func(r *Registry) {
		r.escape = true
	}
}
