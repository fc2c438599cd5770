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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ParseConstraint Tests

func TestParseConstraint_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		payload string
		want    ConstraintKind
	}{
		{"string", ConstraintString},
		{"number", ConstraintNumber},
		{"boolean", ConstraintBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			t.Parallel()

			c, err := ParseConstraint(tt.payload)

			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Kind)
			assert.Equal(t, tt.payload, c.String())
		})
	}
}

func TestParseConstraint_Union(t *testing.T) {
	t.Parallel()

	c, err := ParseConstraint("(a|1|true)")

	require.NoError(t, err)
	assert.Equal(t, ConstraintEnum, c.Kind)
	require.Len(t, c.Enum, 3)

	// Each token is typed individually.
	assert.Equal(t, ConstraintString, c.Enum[0].Kind)
	assert.Equal(t, "a", c.Enum[0].Raw)
	assert.Equal(t, ConstraintNumber, c.Enum[1].Kind)
	assert.Equal(t, "1", c.Enum[1].Raw)
	assert.Equal(t, ConstraintBoolean, c.Enum[2].Kind)
	assert.Equal(t, "true", c.Enum[2].Raw)
}

func TestParseConstraint_UnionRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := ParseConstraint("(asc|desc)")

	require.NoError(t, err)
	assert.Equal(t, "(asc|desc)", c.String())
}

func TestParseConstraint_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{"unknown scalar", "uuid"},
		{"empty payload", ""},
		{"empty union", "()"},
		{"empty union value", "(a||b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseConstraint(tt.payload)
			require.Error(t, err)
		})
	}
}

// Validate Tests

func TestValidate_String(t *testing.T) {
	t.Parallel()

	c := &Constraint{Kind: ConstraintString}

	assert.NoError(t, c.Validate("hello"))
	assert.Error(t, c.Validate(42))
	assert.Error(t, c.Validate(true))
}

func TestValidate_Number(t *testing.T) {
	t.Parallel()

	c := &Constraint{Kind: ConstraintNumber}

	assert.NoError(t, c.Validate(42))
	assert.NoError(t, c.Validate(int64(42)))
	assert.NoError(t, c.Validate(3.14))
	assert.NoError(t, c.Validate(uint8(1)))
	assert.Error(t, c.Validate("42"))
	assert.Error(t, c.Validate(true))
}

func TestValidate_Boolean(t *testing.T) {
	t.Parallel()

	c := &Constraint{Kind: ConstraintBoolean}

	assert.NoError(t, c.Validate(true))
	assert.NoError(t, c.Validate(false))
	assert.Error(t, c.Validate("true"))
	assert.Error(t, c.Validate(1))
}

func TestValidate_Enum(t *testing.T) {
	t.Parallel()

	c, err := ParseConstraint("(a|1|true)")
	require.NoError(t, err)

	// Membership is checked against the stringified value.
	assert.NoError(t, c.Validate("a"))
	assert.NoError(t, c.Validate(1))
	assert.NoError(t, c.Validate("1"))
	assert.NoError(t, c.Validate(true))

	assert.Error(t, c.Validate("b"))
	assert.Error(t, c.Validate(2))
	assert.Error(t, c.Validate(false))
}
