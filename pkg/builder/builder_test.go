// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder

import (
	"reflect"
	"testing"
)

func checkSchema(t *testing.T, b *Builder, want map[string]any) {
	t.Helper()
	if got := b.Schema(); !reflect.DeepEqual(got, want) {
		t.Errorf("b.Schema() = %#v, want %#v", got, want)
	}
}

func TestType(t *testing.T) {
	checkSchema(t, New().Type("string"), map[string]any{"type": "string"})
	checkSchema(t, New().Type("string", "number"),
		map[string]any{"type": []any{"string", "number"}})
}

func TestStringKeywords(t *testing.T) {
	b := New().Type("string").MinLength(2).MaxLength(8).Pattern("^a").Format("hostname")
	checkSchema(t, b, map[string]any{
		"type":      "string",
		"minLength": 2,
		"maxLength": 8,
		"pattern":   "^a",
		"format":    "hostname",
	})
}

func TestNumberKeywords(t *testing.T) {
	b := New().Type("number").Minimum(1).ExclusiveMaximum(10).MultipleOf(0.5)
	checkSchema(t, b, map[string]any{
		"type":             "number",
		"minimum":          1.0,
		"exclusiveMaximum": 10.0,
		"multipleOf":       0.5,
	})
}

func TestObjectKeywords(t *testing.T) {
	b := New().
		Type("object").
		Property("name", New().Type("string")).
		Property("age", New().Type("integer").Minimum(0)).
		Required("name").
		AdditionalProperties(false)
	checkSchema(t, b, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "integer", "minimum": 0.0},
		},
		"required":             []any{"name"},
		"additionalProperties": false,
	})
}

func TestArrayKeywords(t *testing.T) {
	b := New().
		Type("array").
		PrefixItems(New().Type("string"), New().Type("number")).
		ItemsAllowed(false).
		MinItems(1).
		UniqueItems(true)
	checkSchema(t, b, map[string]any{
		"type": "array",
		"prefixItems": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "number"},
		},
		"items":       false,
		"minItems":    1,
		"uniqueItems": true,
	})
}

func TestCombinators(t *testing.T) {
	b := New().
		OneOf(New().Type("string"), New().Type("number")).
		Not(New().Const("forbidden"))
	checkSchema(t, b, map[string]any{
		"oneOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "number"},
		},
		"not": map[string]any{"const": "forbidden"},
	})
}

func TestConditional(t *testing.T) {
	b := New().
		If(New().Required("k")).
		Then(New().Required("v")).
		Else(New().Required("w"))
	checkSchema(t, b, map[string]any{
		"if":   map[string]any{"required": []any{"k"}},
		"then": map[string]any{"required": []any{"v"}},
		"else": map[string]any{"required": []any{"w"}},
	})
}

func TestSchemaIsolated(t *testing.T) {
	// A schema snapshot must not observe later builder calls,
	// including additions under an already-set keyword map.
	b := New().Type("object").Property("a", New().Type("string"))
	first := b.Schema()

	b.Property("b", New().Type("number")).MinProperties(1)

	want := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "string"},
		},
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("earlier snapshot changed: got %#v, want %#v", first, want)
	}
}

func TestSetReplaces(t *testing.T) {
	checkSchema(t, New().MinLength(1).MinLength(3), map[string]any{"minLength": 3})
}
