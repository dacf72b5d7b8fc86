// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// validateCombinators applies the allOf, anyOf, oneOf, not and
// if/then/else keywords. All of them may be present on one schema;
// each is evaluated independently against the unmodified value and
// their results are unioned into errs.
func validateCombinators(value any, s map[string]any, path string, st *State, errs *validerr.List) {
	if arg, ok := s["allOf"]; ok {
		validateAllOf(value, arg, path, st, errs)
	}
	if arg, ok := s["anyOf"]; ok {
		validateAnyOf(value, arg, path, st, errs)
	}
	if arg, ok := s["oneOf"]; ok {
		validateOneOf(value, arg, path, st, errs)
	}
	if arg, ok := s["not"]; ok {
		validateNot(value, arg, path, st, errs)
	}
	if arg, ok := s["if"]; ok {
		validateConditional(value, arg, s, path, st, errs)
	}
}

// validateAllOf implements the allOf keyword. The value must match
// every sub-schema; the errors of all failing sub-schemas are
// collected, in sub-schema order, into a single wrapping error at
// the parent path.
func validateAllOf(value, arg any, path string, st *State, errs *validerr.List) {
	schemas, ok := toSchemas(arg)
	if !ok {
		badArg(errs, path, "allOf", arg, "non-empty array of schemas")
		return
	}

	var nested validerr.List
	for _, sub := range schemas {
		Value(value, sub, path, st, &nested)
	}
	if nested.Len() > 0 {
		errs.Add(path, &validerr.AllOfFailed{Errors: nested.Errors()})
	}
}

// validateAnyOf implements the anyOf keyword. Sub-schemas are tried
// in order and the first match short-circuits the search. A failure
// reports only that nothing matched; the per-sub-schema errors are
// discarded.
func validateAnyOf(value, arg any, path string, st *State, errs *validerr.List) {
	schemas, ok := toSchemas(arg)
	if !ok {
		badArg(errs, path, "anyOf", arg, "non-empty array of schemas")
		return
	}

	for _, sub := range schemas {
		var subErrs validerr.List
		Value(value, sub, path, st, &subErrs)
		if subErrs.Len() == 0 {
			return
		}
	}
	errs.Add(path, &validerr.AnyOfFailed{})
}

// validateOneOf implements the oneOf keyword. Every sub-schema is
// checked; success requires exactly one match, and a failure carries
// the number of matches found.
func validateOneOf(value, arg any, path string, st *State, errs *validerr.List) {
	schemas, ok := toSchemas(arg)
	if !ok {
		badArg(errs, path, "oneOf", arg, "non-empty array of schemas")
		return
	}

	matches := 0
	for _, sub := range schemas {
		var subErrs validerr.List
		Value(value, sub, path, st, &subErrs)
		if subErrs.Len() == 0 {
			matches++
		}
	}
	if matches != 1 {
		errs.Add(path, &validerr.OneOfFailed{MatchCount: matches})
	}
}

// validateNot implements the not keyword: the value is valid only if
// the sub-schema does not match it.
func validateNot(value, arg any, path string, st *State, errs *validerr.List) {
	var subErrs validerr.List
	Value(value, arg, path, st, &subErrs)
	if subErrs.Len() == 0 {
		errs.Add(path, &validerr.NotFailed{})
	}
}

// validateConditional implements if/then/else. The if sub-schema is
// a probe only: its own errors never reach the parent. It selects
// then on a match and else otherwise, and the errors of the selected
// branch flow directly into errs, unwrapped.
func validateConditional(value, ifArg any, s map[string]any, path string, st *State, errs *validerr.List) {
	var probe validerr.List
	Value(value, ifArg, path, st, &probe)

	if probe.Len() == 0 {
		if thenArg, ok := s["then"]; ok {
			Value(value, thenArg, path, st, errs)
		}
	} else {
		if elseArg, ok := s["else"]; ok {
			Value(value, elseArg, path, st, errs)
		}
	}
}
