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

import "testing"

// Flatten Benchmarks

func BenchmarkFlatten_Small(b *testing.B) {
	routes := Routes{
		"home":  {Path: "/"},
		"users": {Path: "/users", Children: Routes{"show": {Path: "/:id"}}},
	}
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Flatten(routes)
	}
}

func BenchmarkFlatten_Deep(b *testing.B) {
	routes := Routes{
		"api": {Path: "/api", Children: Routes{
			"v1": {Path: "/v1", Children: Routes{
				"users": {Path: "/users", Children: Routes{
					"show": {Path: "/:id<number>", Children: Routes{
						"posts": {Path: "/posts?page<number>?limit<number>"},
					}},
				}},
			}},
		}},
	}
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Flatten(routes)
	}
}

// Generate Benchmarks

func BenchmarkGenerate_Static(b *testing.B) {
	r := MustNew(Routes{"home": {Path: "/"}})
	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		// Note: Error intentionally ignored in benchmark - we're measuring performance, not correctness
		_, _ = r.Generate("home", nil, nil)
	}
}

func BenchmarkGenerate_WithParams(b *testing.B) {
	r := MustNew(Routes{
		"users": {Path: "/users/:userId", Children: Routes{
			"posts": {Path: "/posts/:postId"},
		}},
	})
	params := Values{"userId": 123, "postId": 456}
	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = r.Generate("users/posts", params, nil)
	}
}

func BenchmarkGenerate_WithQueries(b *testing.B) {
	r := MustNew(Routes{"list": {Path: "/items?page?limit?sort"}})
	queries := Values{"page": 2, "limit": 10, "sort": "asc"}
	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = r.Generate("list", nil, queries)
	}
}

func BenchmarkGenerate_Validated(b *testing.B) {
	r := MustNew(Routes{
		"typed": {Path: "/:n<number>?state<(active|deleted)>"},
	}, WithValueValidation())
	params := Values{"n": 7}
	queries := Values{"state": "active"}
	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = r.Generate("typed", params, queries)
	}
}
