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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	linkgen "github.com/Rukshana1701/link-generator"
)

func newLinkCmd() *cobra.Command {
	var (
		paramFlags []string
		queryFlags []string
		escape     bool
		validate   bool
	)

	cmd := &cobra.Command{
		Use:   "link <file> <route>",
		Short: "Generate one link from a route file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			routes, err := loadRoutes(args[:1])
			if err != nil {
				return err
			}

			var opts []linkgen.Option
			if escape {
				opts = append(opts, linkgen.WithPathEscaping())
			}
			if validate {
				opts = append(opts, linkgen.WithValueValidation())
			}

			registry, err := linkgen.New(routes, opts...)
			if err != nil {
				return err
			}

			params, err := parseValues(paramFlags)
			if err != nil {
				return fmt.Errorf("invalid --param: %w", err)
			}
			queries, err := parseValues(queryFlags)
			if err != nil {
				return fmt.Errorf("invalid --query: %w", err)
			}

			link, err := registry.Generate(args[1], params, queries)
			if err != nil {
				return err
			}

			fmt.Println(link)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&paramFlags, "param", nil,
		"path parameter as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&queryFlags, "query", nil,
		"query value as key=value (repeatable)")
	cmd.Flags().BoolVar(&escape, "escape", false,
		"percent-encode substituted values")
	cmd.Flags().BoolVar(&validate, "validate", false,
		"check values against declared constraints")

	return cmd
}

// parseValues turns repeated key=value flags into a Values map. Values that
// parse as numbers or booleans are typed accordingly so that constraint
// validation sees the intended kind.
func parseValues(pairs []string) (linkgen.Values, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	values := make(linkgen.Values, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		values[key] = typedValue(value)
	}

	return values, nil
}

func typedValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}

	return s
}
