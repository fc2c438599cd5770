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

package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	linkgen "github.com/Rukshana1701/link-generator"
	"github.com/Rukshana1701/link-generator/codec"
)

var markerPattern = regexp.MustCompile(`[:?][A-Za-z_][A-Za-z0-9_]*(<[^>]*>)?`)

func newRoutesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes <file>...",
		Short: "Print the flattened route mapping of one or more route files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			routes, err := loadRoutes(args)
			if err != nil {
				return err
			}

			registry, err := linkgen.New(routes)
			if err != nil {
				return err
			}

			if asJSON {
				return printRoutesJSON(registry)
			}

			printRoutesTable(registry)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the flat mapping as JSON")

	return cmd
}

// printRoutesTable writes "name  template" lines in deterministic order,
// highlighting placeholders and query keys when stdout is a terminal.
func printRoutesTable(registry *linkgen.Registry) {
	marker := color.New(color.FgCyan).SprintFunc()

	flat := registry.Routes()
	width := 0
	for _, name := range flat.Names() {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, name := range flat.Names() {
		template, _ := flat.Template(name)
		highlighted := markerPattern.ReplaceAllStringFunc(template, func(m string) string {
			return marker(m)
		})
		fmt.Printf("%-*s  %s\n", width, name, highlighted)
	}
}

// printRoutesJSON emits the flat mapping through the JSON codec, for piping
// into other tooling.
func printRoutesJSON(registry *linkgen.Registry) error {
	flat := registry.Routes()
	mapping := make(map[string]string, flat.Len())
	for _, name := range flat.Names() {
		mapping[name], _ = flat.Template(name)
	}

	encoder, err := codec.GetEncoder(codec.TypeJSON)
	if err != nil {
		return err
	}
	data, err := encoder.Encode(mapping)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = os.Stdout.Write(data)

	return err
}
