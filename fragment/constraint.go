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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ConstraintKind represents the kind of constraint declared on a marker.
type ConstraintKind uint8

const (
	// ConstraintString accepts any string value.
	ConstraintString ConstraintKind = iota
	// ConstraintNumber accepts integer and floating-point values.
	ConstraintNumber
	// ConstraintBoolean accepts boolean values.
	ConstraintBoolean
	// ConstraintEnum accepts only the declared union of literal values.
	ConstraintEnum
)

// EnumValue is one literal token of a union constraint. Tokens are typed
// individually: "1" is a number, "true"/"false" are booleans, anything else
// is a string. Raw preserves the token exactly as declared, which is also
// the form a supplied value must stringify to.
type EnumValue struct {
	Kind ConstraintKind
	Raw  string
}

// Constraint is a parsed angle-bracket annotation.
//
// Constraints are purely descriptive: generation strips them from the
// template, and value checking is opt-in at the registry level.
type Constraint struct {
	Kind ConstraintKind
	Enum []EnumValue // populated for ConstraintEnum only
}

// ParseConstraint parses the payload between the angle brackets of a marker
// annotation. Valid payloads are the scalar kinds "string", "number", and
// "boolean", or a parenthesized pipe-separated union such as "(a|1|true)".
func ParseConstraint(payload string) (*Constraint, error) {
	switch payload {
	case "string":
		return &Constraint{Kind: ConstraintString}, nil
	case "number":
		return &Constraint{Kind: ConstraintNumber}, nil
	case "boolean":
		return &Constraint{Kind: ConstraintBoolean}, nil
	}

	if strings.HasPrefix(payload, "(") && strings.HasSuffix(payload, ")") {
		return parseUnion(payload[1 : len(payload)-1])
	}

	return nil, fmt.Errorf("unknown constraint %q", payload)
}

// parseUnion parses the pipe-separated body of a literal-union constraint.
// Tokens are taken verbatim; no whitespace trimming is applied.
func parseUnion(body string) (*Constraint, error) {
	if body == "" {
		return nil, fmt.Errorf("empty union constraint")
	}

	tokens := strings.Split(body, "|")
	values := make([]EnumValue, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("empty value in union constraint %q", body)
		}
		values = append(values, EnumValue{Kind: literalKind(tok), Raw: tok})
	}

	return &Constraint{Kind: ConstraintEnum, Enum: values}, nil
}

// literalKind types a single union token: number, boolean, or string.
func literalKind(tok string) ConstraintKind {
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return ConstraintNumber
	}
	if tok == "true" || tok == "false" {
		return ConstraintBoolean
	}

	return ConstraintString
}

// Validate checks a runtime value against the constraint. It returns a
// descriptive error when the value does not satisfy the declared kind;
// callers wrap it with their own sentinel.
func (c *Constraint) Validate(v any) error {
	switch c.Kind {
	case ConstraintString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("expected string, got %T", v)
		}
	case ConstraintNumber:
		switch v.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
		default:
			return fmt.Errorf("expected number, got %T", v)
		}
	case ConstraintBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", v)
		}
	case ConstraintEnum:
		s, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("value %v is not comparable to union %s", v, c)
		}
		for _, ev := range c.Enum {
			if ev.Raw == s {
				return nil
			}
		}
		return fmt.Errorf("value %q is not a member of union %s", s, c)
	}

	return nil
}

// String renders the constraint payload as it appears between brackets,
// e.g. "number" or "(a|b|c)". Used for introspection and error messages.
func (c *Constraint) String() string {
	switch c.Kind {
	case ConstraintString:
		return "string"
	case ConstraintNumber:
		return "number"
	case ConstraintBoolean:
		return "boolean"
	case ConstraintEnum:
		raw := make([]string, 0, len(c.Enum))
		for _, ev := range c.Enum {
			raw = append(raw, ev.Raw)
		}
		return "(" + strings.Join(raw, "|") + ")"
	default:
		return "unknown"
	}
}
