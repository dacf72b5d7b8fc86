// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonvalid validates decoded JSON values against JSON
// schemas.
//
// The caller owns decoding and schema loading: values are the result
// of unmarshaling JSON (map[string]any, []any, string, float64, bool,
// nil), and schemas handed to this package must already be fully
// dereferenced ($ref is not resolved here). Validation is pure and
// stateless; a Schema may be used concurrently.
package jsonvalid

import (
	"encoding/json"
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"

	"github.com/altshiftab/jsonvalid/internal/validator"
	"github.com/altshiftab/jsonvalid/pkg/builder"
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// Schema is a JSON schema ready for validation.
type Schema struct {
	root any
}

// New parses a schema from raw JSON.
func New(data []byte) (*Schema, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("json unmarshal: %w", err))
	}
	return FromValue(root)
}

// FromValue normalizes an already-decoded schema value: a keyword
// map, a boolean schema, or a [*builder.Builder]. All forms validate
// identically.
func FromValue(v any) (*Schema, error) {
	switch s := v.(type) {
	case bool:
		return &Schema{root: s}, nil
	case map[string]any:
		return &Schema{root: s}, nil
	case *builder.Builder:
		return &Schema{root: s.Schema()}, nil
	default:
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("schema has type %T, want object or bool", v))
	}
}

// Opts describes validation options.
type Opts = validator.Opts

// Validate reports whether value satisfies the schema.
// If it does, this returns nil. If it does not, this returns an
// error of type [*Errors] holding one [*Error] per violation, in a
// deterministic order. A non-nil error of a different type indicates
// a problem during validation processing, not an invalid value.
func (s *Schema) Validate(value any) error {
	return validator.Validate(value, s.root, nil)
}

// ValidateWithOpts is like Validate but supports options.
func (s *Schema) ValidateWithOpts(value any, opts *Opts) error {
	return validator.Validate(value, s.root, opts)
}

// Validate checks value against a schema given in any accepted form.
func Validate(value, schema any) error {
	s, err := FromValue(schema)
	if err != nil {
		return err
	}
	return s.Validate(value)
}

// Error is a single validation failure.
type Error = validerr.Error

// Errors is the collection of failures returned by Validate.
type Errors = validerr.Errors

// Detail is the closed interface over the failure kinds defined in
// [github.com/altshiftab/jsonvalid/pkg/validerr].
type Detail = validerr.Detail

// IsValidationError reports whether err describes an invalid value,
// as opposed to an error in validation processing.
func IsValidationError(err error) bool {
	return validerr.IsValidationError(err)
}
