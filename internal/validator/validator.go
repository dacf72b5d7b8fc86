// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validator implements structural validation of decoded JSON
// values against JSON schemas.
//
// A schema is the decoded form of a JSON schema document: a
// map[string]any of keywords, or a bool. Validation walks the value
// and the schema together, appending every failure to an error list;
// no failure is signaled through control flow.
package validator

import (
	"errors"
	"fmt"

	"github.com/altshiftab/jsonvalid/internal/jsontype"
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// Opts describes validation options.
// These are uncommon so we use a separate entry point for them.
type Opts struct {
	// FormatAdvisory makes the format keyword always match,
	// turning recognized formats into annotations only.
	// By default recognized formats are enforced.
	FormatAdvisory bool
}

// maxDepth bounds schema recursion.
const maxDepth = 1000

// ErrTooDeep is returned when validation recurses too deeply.
// It is a processing error, not a validation error.
var ErrTooDeep = errors.New("recursion while validating schema too deep")

// State is the state threaded through one validation call.
// It holds no per-value data; paths and error lists travel as
// arguments so that sub-schema checks stay independent.
type State struct {
	opts  Opts
	depth int
	err   error
}

// enter records one level of descent. It reports false once the
// depth bound is exceeded, after recording the processing error.
func (st *State) enter() bool {
	st.depth++
	if st.depth > maxDepth {
		if st.err == nil {
			st.err = ErrTooDeep
		}
		return false
	}
	return true
}

// exit undoes enter.
func (st *State) exit() {
	st.depth--
}

// Validate checks value against schema and returns nil if the value
// is valid, a [*validerr.Errors] if it is not, and a different error
// type if validation processing itself failed.
func Validate(value, schema any, opts *Opts) error {
	st := &State{}
	if opts != nil {
		st.opts = *opts
	}
	var errs validerr.List
	Value(value, schema, "", st, &errs)
	if st.err != nil {
		return st.err
	}
	return errs.Err()
}

// constraintFunc checks the constraints of one type family.
// The value is the full instance value; a constraint func that does
// not apply to the value's runtime shape does nothing.
type constraintFunc func(value any, s map[string]any, path string, st *State, errs *validerr.List)

// typeValidators is the fixed dispatch table from a matched type name
// to the constraint validator for that type family.
// The null and boolean types carry no constraints of their own.
// Populated in init: a map literal here would form an initialization
// cycle, since the constraint validators recurse through [Value].
var typeValidators map[string]constraintFunc

func init() {
	typeValidators = map[string]constraintFunc{
		"string":  validateString,
		"number":  validateNumber,
		"integer": validateNumber,
		"object":  validateObject,
		"array":   validateArray,
	}
}

// Keyword sets that imply a type family when the type keyword
// is absent.
var (
	stringKeywords = []string{"minLength", "maxLength", "pattern", "format"}
	numberKeywords = []string{"minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "multipleOf"}
	objectKeywords = []string{"properties", "required", "patternProperties", "additionalProperties", "minProperties", "maxProperties"}
	arrayKeywords  = []string{"items", "prefixItems", "minItems", "maxItems", "uniqueItems", "contains", "minContains", "maxContains"}
)

// combinatorKeywords are the keywords handled by the combinators.
var combinatorKeywords = []string{"allOf", "anyOf", "oneOf", "not", "if"}

// Value checks value against schema at the given instance path,
// appending any failures to errs. All applicable keyword families
// are checked; combinators never suppress type-specific checks.
func Value(value, schema any, path string, st *State, errs *validerr.List) {
	if !st.enter() {
		return
	}
	defer st.exit()

	switch s := schema.(type) {
	case bool:
		// The boolean schema true matches everything,
		// false matches nothing.
		if !s {
			errs.Add(path, &validerr.FalseSchema{})
		}
	case map[string]any:
		validateKeywords(value, s, path, st, errs)
	default:
		errs.Add(path, &validerr.InvalidSchema{
			Reason: fmt.Sprintf("schema has type %T, want object or bool", schema),
		})
	}
}

// validateKeywords applies every applicable keyword family of an
// object schema, in fixed order: combinators, enum/const, then
// type-specific constraints.
func validateKeywords(value any, s map[string]any, path string, st *State, errs *validerr.List) {
	if hasAny(s, combinatorKeywords) {
		validateCombinators(value, s, path, st, errs)
	}

	if arg, ok := s["enum"]; ok {
		validateEnum(value, arg, path, errs)
	}
	if arg, ok := s["const"]; ok {
		validateConst(value, arg, path, errs)
	}

	if arg, ok := s["type"]; ok {
		validateTyped(value, arg, s, path, st, errs)
	} else {
		validateInferred(value, s, path, st, errs)
	}
}

// validateTyped handles the type keyword: exact membership in one of
// the named types, then the constraint validator for the first type
// that matched.
func validateTyped(value, arg any, s map[string]any, path string, st *State, errs *validerr.List) {
	names, ok := typeNames(arg)
	if !ok {
		badArg(errs, path, "type", arg, "string or array of strings")
		return
	}

	for _, name := range names {
		match, err := jsontype.Is(value, name)
		if err != nil {
			errs.Add(path, &validerr.InvalidSchema{Keyword: "type", Reason: err.Error()})
			return
		}
		if match {
			if tv := typeValidators[name]; tv != nil {
				tv(value, s, path, st, errs)
			}
			return
		}
	}

	errs.Add(path, &validerr.TypeMismatch{
		Expected: names,
		Actual:   jsontype.TypeOf(value),
	})
}

// validateInferred applies type-specific constraints when the schema
// has no type keyword: a family applies when the schema carries one
// of its keywords and the value has the matching runtime shape.
// This supports conditional sub-schemas that omit an explicit type.
func validateInferred(value any, s map[string]any, path string, st *State, errs *validerr.List) {
	switch value.(type) {
	case string:
		if hasAny(s, stringKeywords) {
			validateString(value, s, path, st, errs)
		}
	case map[string]any:
		if hasAny(s, objectKeywords) {
			validateObject(value, s, path, st, errs)
		}
	case []any:
		if hasAny(s, arrayKeywords) {
			validateArray(value, s, path, st, errs)
		}
	default:
		if _, ok := jsontype.Float(value); ok && hasAny(s, numberKeywords) {
			validateNumber(value, s, path, st, errs)
		}
	}
}

// typeNames converts a type keyword argument to a list of type names.
func typeNames(arg any) ([]string, bool) {
	switch t := arg.(type) {
	case string:
		return []string{t}, true
	case []any:
		names := make([]string, 0, len(t))
		for _, e := range t {
			name, ok := e.(string)
			if !ok {
				return nil, false
			}
			names = append(names, name)
		}
		return names, true
	default:
		return nil, false
	}
}

// hasAny reports whether s has any of the named keywords.
func hasAny(s map[string]any, keywords []string) bool {
	for _, k := range keywords {
		if _, ok := s[k]; ok {
			return true
		}
	}
	return false
}
