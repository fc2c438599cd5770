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
	"os"
	"path/filepath"

	"dario.cat/mergo"

	"github.com/Rukshana1701/link-generator/codec"
)

// LoadFile reads a route tree from a file, choosing the codec by file
// extension (.yaml/.yml, .toml, .json).
//
// A YAML route file mirrors the Routes structure:
//
//	users:
//	  path: /users
//	  children:
//	    show:
//	      path: /:id<number>
func LoadFile(path string) (Routes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route file: %w", err)
	}

	codecType, err := codec.TypeForExtension(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("route file %q: %w", path, err)
	}

	return Parse(data, codecType)
}

// Parse decodes a route tree from encoded bytes using the named codec.
func Parse(data []byte, codecType codec.Type) (Routes, error) {
	decoder, err := codec.GetDecoder(codecType)
	if err != nil {
		return nil, err
	}

	var routes Routes
	if err := decoder.Decode(data, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode route tree: %w", err)
	}

	return routes, nil
}

// MergeRoutes deep-merges overlay trees into a copy of base, later overlays
// winning. A node present in an overlay overrides the base node's path;
// children merge recursively, so an overlay can add or replace a subtree
// without restating its siblings. Inputs are not modified.
func MergeRoutes(base Routes, overlays ...Routes) (Routes, error) {
	merged := base.clone()

	for _, overlay := range overlays {
		if err := mergo.Merge(&merged, overlay, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge route trees: %w", err)
		}
	}

	return merged, nil
}
