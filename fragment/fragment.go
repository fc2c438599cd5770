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

package fragment

import (
	"fmt"
	"strings"
)

// Kind classifies a marker found in a path fragment.
type Kind uint8

const (
	// KindStatic is literal text copied into the output verbatim.
	KindStatic Kind = iota
	// KindParam is a ":name" placeholder substituted from params.
	KindParam
	// KindQuery is a "?name" query-key declaration substituted from queries.
	KindQuery
)

// String returns a human-readable name for the marker kind.
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindParam:
		return "param"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Marker is one token of a parsed fragment.
//
// For KindStatic, Text holds the literal text. For KindParam and KindQuery,
// Text holds the identifier with the ":" or "?" sigil removed, and Constraint
// holds the parsed annotation when one was declared (nil otherwise).
type Marker struct {
	Kind       Kind
	Text       string
	Constraint *Constraint
}

// Split parses a fragment string into its ordered sequence of markers.
//
// Parsing is deterministic: constraint brackets attached to a marker are
// consumed as part of that marker, never as static text. An identifier
// immediately followed by "<" must be closed by ">" within the fragment;
// an unterminated bracket is a parse error.
//
// Example: "/users/:id<number>/posts?page<number>" yields
//
//	static "/users/"
//	param  "id"    (number)
//	static "/posts"
//	query  "page"  (number)
func Split(s string) ([]Marker, error) {
	var markers []Marker
	staticStart := 0

	flush := func(end int) {
		if end > staticStart {
			markers = append(markers, Marker{Kind: KindStatic, Text: s[staticStart:end]})
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		if (c != ':' && c != '?') || i+1 >= len(s) || !isIdentStart(s[i+1]) {
			i++
			continue
		}

		kind := KindParam
		if c == '?' {
			kind = KindQuery
		}
		flush(i)

		// Consume the identifier.
		j := i + 1
		for j < len(s) && isIdent(s[j]) {
			j++
		}
		name := s[i+1 : j]

		// Consume an optional <constraint> annotation.
		var constraint *Constraint
		if j < len(s) && s[j] == '<' {
			end := strings.IndexByte(s[j:], '>')
			if end < 0 {
				return nil, fmt.Errorf("unterminated constraint on %s %q in fragment %q", kind, name, s)
			}
			parsed, err := ParseConstraint(s[j+1 : j+end])
			if err != nil {
				return nil, fmt.Errorf("%s %q in fragment %q: %w", kind, name, s, err)
			}
			constraint = parsed
			j += end + 1
		}

		markers = append(markers, Marker{Kind: kind, Text: name, Constraint: constraint})
		i = j
		staticStart = j
	}
	flush(len(s))

	return markers, nil
}

// StripConstraints returns the fragment with every "<...>" annotation
// removed. An unterminated bracket is stripped through the end of the
// string; Split rejects such fragments before they reach generation.
func StripConstraints(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '<' {
			b.WriteByte(s[i])
			continue
		}
		end := strings.IndexByte(s[i:], '>')
		if end < 0 {
			break
		}
		i += end
	}

	return b.String()
}

// isIdentStart reports whether c can begin a marker identifier.
// Digits are excluded so that port suffixes like ":3000" stay static.
func isIdentStart(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// isIdent reports whether c can continue a marker identifier.
func isIdent(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
