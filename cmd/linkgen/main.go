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

// Command linkgen inspects declarative route files and generates links
// from them.
//
//	linkgen routes api.yaml
//	linkgen link api.yaml users/show --param id=42 --query tab=posts
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	linkgen "github.com/Rukshana1701/link-generator"
)

func main() {
	root := newRootCmd()
	root.SilenceErrors = true
	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkgen",
		Short: "Inspect route files and generate links",
		Long: `linkgen flattens a declarative route tree (YAML, TOML, or JSON)
into its route-name to path-template mapping and generates concrete
links by substituting parameter and query values.`,
	}

	cmd.AddCommand(newRoutesCmd())
	cmd.AddCommand(newLinkCmd())

	return cmd
}

// loadRoutes reads and merges one or more route files into a single tree.
// Later files override earlier ones.
func loadRoutes(paths []string) (linkgen.Routes, error) {
	merged := linkgen.Routes{}
	for _, path := range paths {
		routes, err := linkgen.LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged, err = linkgen.MergeRoutes(merged, routes)
		if err != nil {
			return nil, err
		}
	}

	return merged, nil
}
