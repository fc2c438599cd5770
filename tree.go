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

// Route is one named node of a declarative route tree.
//
// Path is the node's own fragment, written in the grammar of the fragment
// package: static text, ":param" placeholders, "?query" declarations, and
// optional "<...>" constraints. Fragments carry their own leading separator
// ("/" for a path step, "?" for a query-only step); a protocol fragment
// ("http://") or a host fragment ("localhost:3000") makes the subtree
// absolute.
//
// Children maps child names to nested routes. The tree is plain data and
// is never mutated by the registry.
type Route struct {
	Path     string `yaml:"path" toml:"path" json:"path"`
	Children Routes `yaml:"children,omitempty" toml:"children,omitempty" json:"children,omitempty"`
}

// Routes maps route names to their nodes. Used both for the top level of a
// tree and for every Children mapping.
type Routes map[string]Route

// clone returns a deep copy of the tree. Merging mutates its destination,
// so MergeRoutes works on a copy to keep the inputs untouched.
func (r Routes) clone() Routes {
	if r == nil {
		return Routes{}
	}

	out := make(Routes, len(r))
	for name, rt := range r {
		rt.Children = rt.Children.cloneOrNil()
		out[name] = rt
	}

	return out
}

// cloneOrNil is clone that preserves nil for absent children.
func (r Routes) cloneOrNil() Routes {
	if r == nil {
		return nil
	}

	return r.clone()
}

// count returns the number of nodes in the tree, the root level included.
func (r Routes) count() int {
	n := 0
	for _, rt := range r {
		n += 1 + rt.Children.count()
	}

	return n
}
