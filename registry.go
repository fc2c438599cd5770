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

import (
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/spf13/cast"

	"github.com/Rukshana1701/link-generator/fragment"
)

// Values holds caller-supplied parameter or query values keyed by marker
// name. Values are stringified canonically: numbers in plain decimal,
// booleans as "true"/"false", strings verbatim.
type Values map[string]any

// template is one pre-parsed flat route. Markers are split once at
// construction so Generate only walks and substitutes.
type template struct {
	raw         string
	markers     []fragment.Marker
	queryKeys   []string // first-declared order, deduplicated
	constraints map[string]*fragment.Constraint
}

// Registry is an immutable link generator built over a flattened route
// tree. A single Registry is safe for concurrent use by multiple
// goroutines without locking: nothing is mutated after New returns.
type Registry struct {
	flat     *FlatRoutes
	compiled map[string]*template
	logger   *slog.Logger
	validate bool
	escape   bool
}

// New flattens the route tree, validates every fragment, and returns a
// Registry ready for Generate calls.
//
// Construction fails with ErrMalformedFragment on the first unparsable
// fragment and with ErrEmptyRouteName on an empty tree key; there is no
// partial success. Routes cannot be added later; rebuild the registry
// wholesale when the tree changes.
func New(routes Routes, opts ...Option) (*Registry, error) {
	r := &Registry{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}

	flat, err := Flatten(routes)
	if err != nil {
		return nil, err
	}
	r.flat = flat

	r.compiled = make(map[string]*template, flat.Len())
	for _, name := range flat.names {
		tpl, err := compileTemplate(flat.templates[name])
		if err != nil {
			// Flatten already validated every fragment, so this only
			// trips if a template was assembled from fragments whose
			// concatenation is itself unparsable.
			return nil, fmt.Errorf("%w: route %q: %v", ErrMalformedFragment, name, err)
		}
		r.compiled[name] = tpl
	}

	r.logger.Debug("route registry built", "routes", flat.Len())

	return r, nil
}

// MustNew is like New but panics on construction errors. Intended for
// registries declared at program startup.
func MustNew(routes Routes, opts ...Option) *Registry {
	r, err := New(routes, opts...)
	if err != nil {
		panic(fmt.Sprintf("linkgen: %v", err))
	}

	return r
}

// compileTemplate parses a flat template into its marker sequence and
// collects the declared query keys in first-declared order.
func compileTemplate(raw string) (*template, error) {
	markers, err := fragment.Split(raw)
	if err != nil {
		return nil, err
	}

	tpl := &template{raw: raw, markers: markers}
	for _, m := range markers {
		if m.Constraint != nil {
			if tpl.constraints == nil {
				tpl.constraints = make(map[string]*fragment.Constraint)
			}
			if _, seen := tpl.constraints[m.Text]; !seen {
				tpl.constraints[m.Text] = m.Constraint
			}
		}
		if m.Kind == fragment.KindQuery && !slices.Contains(tpl.queryKeys, m.Text) {
			tpl.queryKeys = append(tpl.queryKeys, m.Text)
		}
	}

	return tpl, nil
}

// Routes exposes the derived flat mapping for inspection and debugging.
func (r *Registry) Routes() *FlatRoutes {
	return r.flat
}

// Generate builds the finished path or URL for the named route.
//
// Every ":param" placeholder in the template requires an entry in params;
// a missing one fails with ErrMissingParam. Query keys are optional: keys
// absent from queries are omitted from the output entirely, keys present
// are emitted as "key=value" even for falsy values such as 0. Constraint
// annotations are stripped. Query pairs are joined with "&" and appended
// after a single "?" only when at least one key was supplied.
func (r *Registry) Generate(name string, params, queries Values) (string, error) {
	tpl, ok := r.compiled[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	var b strings.Builder
	b.Grow(len(tpl.raw))

	for _, m := range tpl.markers {
		switch m.Kind {
		case fragment.KindStatic:
			b.WriteString(m.Text)
		case fragment.KindParam:
			v, ok := params[m.Text]
			if !ok {
				return "", fmt.Errorf("%w: %q in route %q", ErrMissingParam, m.Text, name)
			}
			s, err := r.render(name, m.Text, m.Constraint, v)
			if err != nil {
				return "", err
			}
			if r.escape {
				s = url.PathEscape(s)
			}
			b.WriteString(s)
		case fragment.KindQuery:
			// Emitted after the path portion, below.
		}
	}

	wrote := false
	for _, key := range tpl.queryKeys {
		v, ok := queries[key]
		if !ok {
			continue
		}
		s, err := r.render(name, key, tpl.constraints[key], v)
		if err != nil {
			return "", err
		}
		if r.escape {
			s = url.QueryEscape(s)
		}
		if wrote {
			b.WriteByte('&')
		} else {
			b.WriteByte('?')
			wrote = true
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(s)
	}

	return b.String(), nil
}

// MustGenerate is like Generate but panics on error. Intended for links
// whose parameters are known statically.
func (r *Registry) MustGenerate(name string, params, queries Values) string {
	link, err := r.Generate(name, params, queries)
	if err != nil {
		panic(fmt.Sprintf("linkgen: %v", err))
	}

	return link
}

// render stringifies one value, checking its constraint first when value
// validation is enabled.
func (r *Registry) render(route, marker string, c *fragment.Constraint, v any) (string, error) {
	if r.validate && c != nil {
		if err := c.Validate(v); err != nil {
			return "", fmt.Errorf("%w: %q in route %q: %v", ErrConstraintViolation, marker, route, err)
		}
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q in route %q: %v", ErrUnsupportedValue, marker, route, err)
	}

	return s, nil
}

// Info describes one registered route for introspection: its template, the
// placeholder and query-key names it declares, and any constraints.
type Info struct {
	Name        string
	Template    string            // raw template, constraints included
	Path        string            // template with constraints stripped
	Params      []string          // placeholder names in order of appearance
	Queries     []string          // query keys in first-declared order
	Constraints map[string]string // marker name -> constraint payload
}

// Info returns introspection details for the named route. The second
// return value reports whether the route exists.
func (r *Registry) Info(name string) (Info, bool) {
	tpl, ok := r.compiled[name]
	if !ok {
		return Info{}, false
	}

	info := Info{
		Name:     name,
		Template: tpl.raw,
		Path:     fragment.StripConstraints(tpl.raw),
		Queries:  slices.Clone(tpl.queryKeys),
	}
	for _, m := range tpl.markers {
		if m.Kind == fragment.KindParam {
			info.Params = append(info.Params, m.Text)
		}
	}
	if len(tpl.constraints) > 0 {
		info.Constraints = make(map[string]string, len(tpl.constraints))
		for k, c := range tpl.constraints {
			info.Constraints[k] = c.String()
		}
	}

	return info, true
}
