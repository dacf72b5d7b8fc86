// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsontype maps decoded JSON values to JSON schema type names.
//
// A value is one of the six JSON kinds: null, boolean, string, number,
// array, or object. Integers are numbers with a zero fractional part,
// not a distinct kind. Booleans are never treated as numbers.
package jsontype

import (
	"fmt"
	"math"
)

// TypeOf returns the JSON schema type name for a decoded JSON value.
// Integral numbers report "integer". A value that is not a decoded
// JSON kind reports its Go type.
func TypeOf(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if f, ok := Float(v); ok {
		if IsIntegral(f) {
			return "integer"
		}
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

// Is reports whether v is a member of the named JSON schema type.
// An unrecognized type name is an error in the schema, not a mismatch.
func Is(v any, typ string) (bool, error) {
	switch typ {
	case "null":
		return v == nil, nil
	case "boolean":
		_, ok := v.(bool)
		return ok, nil
	case "string":
		_, ok := v.(string)
		return ok, nil
	case "object":
		_, ok := v.(map[string]any)
		return ok, nil
	case "array":
		_, ok := v.([]any)
		return ok, nil
	case "number":
		_, ok := Float(v)
		return ok, nil
	case "integer":
		f, ok := Float(v)
		return ok && IsIntegral(f), nil
	default:
		return false, fmt.Errorf("unsupported type name %q", typ)
	}
}

// Float extracts the numeric value of v.
// It accepts every numeric Go kind a decoder may produce.
// Booleans are not numbers.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// IsIntegral reports whether f has a zero fractional part.
func IsIntegral(f float64) bool {
	return math.Trunc(f) == f && !math.IsInf(f, 0)
}
