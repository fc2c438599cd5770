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
	"maps"
	"slices"

	"github.com/Rukshana1701/link-generator/fragment"
)

// FlatRoutes is the derived single-level mapping from route name to full
// path template. It is produced once by Flatten and never mutated, so it is
// safe to share across goroutines.
type FlatRoutes struct {
	names     []string
	templates map[string]string
}

// Template returns the path template registered under the given route name.
func (f *FlatRoutes) Template(name string) (string, bool) {
	tpl, ok := f.templates[name]
	return tpl, ok
}

// Names returns every route name in deterministic (sorted depth-first)
// order. The returned slice is a copy.
func (f *FlatRoutes) Names() []string {
	return slices.Clone(f.names)
}

// Len returns the number of flattened routes, one per tree node.
func (f *FlatRoutes) Len() int {
	return len(f.names)
}

// Flatten walks the route tree depth-first and produces one flat entry per
// node, leaf or not. The entry key is the "/"-joined ancestry of node
// names; the value is the concatenation of every ancestor fragment with the
// node's own fragment.
//
// Fragments are designed to carry their own leading separator, so
// concatenation is direct: "/nested" + "/deep?key" is "/nested/deep?key",
// and "http://" + "localhost:3000" + "/:param" chains into a full URL
// without any separator being invented.
//
// Every fragment is validated against the grammar; the first malformed one
// fails the whole flattening with ErrMalformedFragment.
func Flatten(routes Routes) (*FlatRoutes, error) {
	flat := &FlatRoutes{templates: make(map[string]string, routes.count())}
	if err := flattenInto(flat, routes, "", ""); err != nil {
		return nil, err
	}

	return flat, nil
}

// flattenInto records every node under routes, accumulating the parent
// name key and parent path. Sibling names are visited in sorted order so
// that flattening the same tree twice is byte-identical.
func flattenInto(flat *FlatRoutes, routes Routes, parentKey, parentPath string) error {
	for _, name := range slices.Sorted(maps.Keys(routes)) {
		if name == "" {
			return fmt.Errorf("%w: under %q", ErrEmptyRouteName, parentKey)
		}

		key := name
		if parentKey != "" {
			key = parentKey + "/" + name
		}

		rt := routes[name]
		if _, err := fragment.Split(rt.Path); err != nil {
			return fmt.Errorf("%w: route %q: %v", ErrMalformedFragment, key, err)
		}

		full := parentPath + rt.Path
		flat.names = append(flat.names, key)
		flat.templates[key] = full

		if err := flattenInto(flat, rt.Children, key, full); err != nil {
			return err
		}
	}

	return nil
}
