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
	"strings"
	"testing"
)

// FuzzSplit ensures the fragment scanner never panics and that the
// markers it produces reassemble losslessly into the original fragment.
func FuzzSplit(f *testing.F) {
	f.Add("/")
	f.Add("")
	f.Add("/users/:id")
	f.Add("/users/:id<number>")
	f.Add("/?key")
	f.Add("/?key<string>")
	f.Add("/status/:state<(active|pending|deleted)>")
	f.Add("http://")
	f.Add("localhost:3000")
	f.Add("/:a<string>/:b<number>?c<boolean>")
	f.Add("/unterminated/:id<number")
	f.Add("/:p<bogus>")
	f.Add("??::<<>>")
	f.Add("/with spaces/:param")

	f.Fuzz(func(t *testing.T, s string) {
		markers, err := Split(s)
		if err != nil {
			return
		}

		// Restoring sigils and constraint brackets must reproduce the
		// input byte for byte: union tokens are stored verbatim, so
		// Constraint.String round-trips.
		var b strings.Builder
		for _, m := range markers {
			switch m.Kind {
			case KindStatic:
				b.WriteString(m.Text)
			case KindParam:
				b.WriteByte(':')
			case KindQuery:
				b.WriteByte('?')
			}
			if m.Kind != KindStatic {
				b.WriteString(m.Text)
				if m.Constraint != nil {
					b.WriteByte('<')
					b.WriteString(m.Constraint.String())
					b.WriteByte('>')
				}
			}
		}

		if got := b.String(); got != s {
			t.Errorf("reassembled %q, want %q", got, s)
		}
	})
}
