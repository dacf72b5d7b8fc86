// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontype

import "testing"

func TestTypeOf(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{nil, "null"},
		{true, "boolean"},
		{"s", "string"},
		{map[string]any{}, "object"},
		{[]any{}, "array"},
		{3.0, "integer"},
		{3.5, "number"},
		{3, "integer"},
		{int64(3), "integer"},
		{struct{}{}, "struct {}"},
	}
	for _, test := range tests {
		if got := TypeOf(test.v); got != test.want {
			t.Errorf("TypeOf(%#v) = %q, want %q", test.v, got, test.want)
		}
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		v    any
		typ  string
		want bool
	}{
		{nil, "null", true},
		{false, "null", false},
		{true, "boolean", true},
		{"s", "string", true},
		{map[string]any{}, "object", true},
		{[]any{}, "array", true},
		{3.5, "number", true},
		{3.0, "number", true},
		{3.0, "integer", true},
		{3.5, "integer", false},
		{int32(7), "integer", true},

		// Booleans are not numbers.
		{true, "number", false},
		{true, "integer", false},
	}
	for _, test := range tests {
		got, err := Is(test.v, test.typ)
		if err != nil {
			t.Errorf("Is(%#v, %q): %v", test.v, test.typ, err)
			continue
		}
		if got != test.want {
			t.Errorf("Is(%#v, %q) = %t, want %t", test.v, test.typ, got, test.want)
		}
	}

	if _, err := Is("s", "strange"); err == nil {
		t.Error("Is with unsupported type name: got nil, want error")
	}
}

func TestFloat(t *testing.T) {
	for _, v := range []any{3.0, float32(3), 3, int8(3), int16(3), int32(3), int64(3), uint(3), uint8(3), uint16(3), uint32(3), uint64(3)} {
		f, ok := Float(v)
		if !ok || f != 3 {
			t.Errorf("Float(%T(%v)) = %v, %t, want 3, true", v, v, f, ok)
		}
	}
	for _, v := range []any{true, "3", nil, []any{}} {
		if _, ok := Float(v); ok {
			t.Errorf("Float(%#v) = _, true, want false", v)
		}
	}
}

func TestIsIntegral(t *testing.T) {
	tests := []struct {
		f    float64
		want bool
	}{
		{0, true},
		{3, true},
		{-3, true},
		{3.5, false},
		{1e18, true},
	}
	for _, test := range tests {
		if got := IsIntegral(test.f); got != test.want {
			t.Errorf("IsIntegral(%v) = %t, want %t", test.f, got, test.want)
		}
	}
}
