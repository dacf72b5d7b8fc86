// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalid_test

import (
	"encoding/json"
	"testing"

	"github.com/altshiftab/jsonvalid/pkg/builder"
	"github.com/altshiftab/jsonvalid/pkg/jsonvalid"
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// mustSchema parses raw schema JSON.
func mustSchema(t *testing.T, data string) *jsonvalid.Schema {
	t.Helper()
	s, err := jsonvalid.New([]byte(data))
	if err != nil {
		t.Fatalf("jsonvalid.New(%q): %v", data, err)
	}
	return s
}

// mustValue unmarshals an instance document.
func mustValue(t *testing.T, data string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return v
}

func TestNew(t *testing.T) {
	s := mustSchema(t, `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"port": {"type": "integer", "minimum": 1, "maximum": 65535}
		}
	}`)

	if err := s.Validate(mustValue(t, `{"name": "api", "port": 8080}`)); err != nil {
		t.Errorf("valid document: got %v, want nil", err)
	}

	err := s.Validate(mustValue(t, `{"name": "", "port": 0}`))
	ves, ok := err.(*jsonvalid.Errors)
	if !ok {
		t.Fatalf("got %T: %v, want *jsonvalid.Errors", err, err)
	}
	if len(ves.Errs) != 2 {
		t.Fatalf("got %d errors %v, want 2", len(ves.Errs), ves)
	}
	if ves.Errs[0].Path != "name" || ves.Errs[1].Path != "port" {
		t.Errorf("paths: got %q, %q, want name, port", ves.Errs[0].Path, ves.Errs[1].Path)
	}
}

func TestNewBadJSON(t *testing.T) {
	_, err := jsonvalid.New([]byte(`{not json`))
	if err == nil {
		t.Fatal("got nil, want error")
	}
	if jsonvalid.IsValidationError(err) {
		t.Errorf("parse failure reported as validation error: %v", err)
	}
}

func TestFromValue(t *testing.T) {
	for _, v := range []any{
		true,
		map[string]any{"type": "string"},
		builder.New().Type("string"),
	} {
		if _, err := jsonvalid.FromValue(v); err != nil {
			t.Errorf("FromValue(%T): %v", v, err)
		}
	}

	for _, v := range []any{nil, "x", 3.0, []any{}} {
		if _, err := jsonvalid.FromValue(v); err == nil {
			t.Errorf("FromValue(%#v): got nil, want error", v)
		}
	}
}

func TestBuiltSchema(t *testing.T) {
	b := builder.New().
		Type("object").
		Required("kind").
		Property("kind", builder.New().Enum("tcp", "udp")).
		Property("tags", builder.New().
			Type("array").
			Items(builder.New().Type("string")).
			UniqueItems(true))

	s, err := jsonvalid.FromValue(b)
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}

	if err := s.Validate(mustValue(t, `{"kind": "tcp", "tags": ["a", "b"]}`)); err != nil {
		t.Errorf("valid document: got %v, want nil", err)
	}
	if err := s.Validate(mustValue(t, `{"kind": "sctp"}`)); err == nil {
		t.Error("enum violation: got nil, want error")
	}
}

func TestPackageValidate(t *testing.T) {
	if err := jsonvalid.Validate("s", map[string]any{"type": "string"}); err != nil {
		t.Errorf("got %v, want nil", err)
	}
	if err := jsonvalid.Validate(1.0, map[string]any{"type": "string"}); err == nil {
		t.Error("got nil, want error")
	}
	if err := jsonvalid.Validate("s", "not a schema"); err == nil {
		t.Error("bad schema: got nil, want error")
	} else if jsonvalid.IsValidationError(err) {
		t.Errorf("bad schema reported as validation error: %v", err)
	}
}

func TestValidateWithOpts(t *testing.T) {
	s := mustSchema(t, `{"type": "string", "format": "uuid"}`)

	if err := s.Validate("not-a-uuid"); err == nil {
		t.Error("enforced format: got nil, want error")
	}
	if err := s.ValidateWithOpts("not-a-uuid", &jsonvalid.Opts{FormatAdvisory: true}); err != nil {
		t.Errorf("advisory format: got %v, want nil", err)
	}
}

func TestErrorRendering(t *testing.T) {
	s := mustSchema(t, `{
		"type": "object",
		"properties": {"name": {"type": "string", "minLength": 3}}
	}`)

	err := s.Validate(mustValue(t, `{"name": "ab"}`))
	if err == nil {
		t.Fatal("got nil, want error")
	}
	want := `#/name: length 2 too short for "minLength" argument 3`
	if got := err.Error(); got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}

	err = s.Validate("not an object")
	if err == nil {
		t.Fatal("got nil, want error")
	}
	ves := err.(*jsonvalid.Errors)
	if len(ves.Errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(ves.Errs))
	}
	if ves.Errs[0].Path != "" {
		t.Errorf("root error path: got %q, want empty", ves.Errs[0].Path)
	}
}

func TestDetailInspection(t *testing.T) {
	s := mustSchema(t, `{"type": "object", "required": ["a"]}`)

	err := s.Validate(mustValue(t, `{}`))
	ves, ok := err.(*jsonvalid.Errors)
	if !ok {
		t.Fatalf("got %T, want *jsonvalid.Errors", err)
	}
	d, ok := ves.Errs[0].Detail.(*validerr.RequiredPropertyMissing)
	if !ok {
		t.Fatalf("got %#v, want *validerr.RequiredPropertyMissing", ves.Errs[0].Detail)
	}
	if d.Property != "a" {
		t.Errorf("Property: got %q, want %q", d.Property, "a")
	}
}

func TestConcurrentValidate(t *testing.T) {
	s := mustSchema(t, `{"type": "array", "items": {"type": "integer"}}`)
	good := mustValue(t, `[1, 2, 3]`)
	bad := mustValue(t, `[1, "x"]`)

	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				if err := s.Validate(good); err != nil {
					t.Errorf("got %v, want nil", err)
					return
				}
				if err := s.Validate(bad); err == nil {
					t.Error("got nil, want error")
					return
				}
			}
		}()
	}
	for range 8 {
		<-done
	}
}
