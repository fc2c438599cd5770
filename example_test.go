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

package linkgen_test

import (
	"fmt"

	linkgen "github.com/Rukshana1701/link-generator"
)

func ExampleNew() {
	registry, err := linkgen.New(linkgen.Routes{
		"home": {Path: "/"},
		"users": {
			Path: "/users",
			Children: linkgen.Routes{
				"show": {Path: "/:id<number>"},
			},
		},
	})
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	for _, name := range registry.Routes().Names() {
		template, _ := registry.Routes().Template(name)
		fmt.Printf("%s -> %s\n", name, template)
	}
	// Output:
	// home -> /
	// users -> /users
	// users/show -> /users/:id<number>
}

func ExampleRegistry_Generate() {
	registry := linkgen.MustNew(linkgen.Routes{
		"users": {
			Path: "/users",
			Children: linkgen.Routes{
				"show": {Path: "/:id<number>?tab<(posts|likes)>"},
			},
		},
	})

	link, _ := registry.Generate("users/show",
		linkgen.Values{"id": 42},
		linkgen.Values{"tab": "posts"},
	)
	fmt.Println(link)

	// Query keys are optional: omit the whole queries argument and the
	// "?" disappears with it.
	link, _ = registry.Generate("users/show", linkgen.Values{"id": 42}, nil)
	fmt.Println(link)
	// Output:
	// /users/42?tab=posts
	// /users/42
}

func ExampleRegistry_Generate_absoluteURL() {
	registry := linkgen.MustNew(linkgen.Routes{
		"http": {
			Path: "http://",
			Children: linkgen.Routes{
				"localhost": {
					Path: "localhost:3000",
					Children: linkgen.Routes{
						"with_param": {Path: "/:param"},
					},
				},
			},
		},
	})

	link, _ := registry.Generate("http/localhost/with_param",
		linkgen.Values{"param": "a"}, nil)
	fmt.Println(link)
	// Output:
	// http://localhost:3000/a
}

func ExampleRegistry_Info() {
	registry := linkgen.MustNew(linkgen.Routes{
		"search": {Path: "/search?term<string>?page<number>"},
	})

	info, _ := registry.Info("search")
	fmt.Println(info.Path)
	fmt.Println(info.Queries)
	// Output:
	// /search?term?page
	// [term page]
}
