// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"fmt"

	"github.com/altshiftab/jsonvalid/internal/jsontype"
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// Schema keyword arguments arrive as decoded JSON, so an integer
// argument may be a float64 with a zero fractional part. The
// coercions below accept that; anything else is a malformed schema
// fragment, reported through badArg.

// toInt converts a keyword argument into an int.
func toInt(arg any) (int, bool) {
	f, ok := jsontype.Float(arg)
	if !ok || !jsontype.IsIntegral(f) {
		return 0, false
	}
	return int(f), true
}

// toFloat converts a keyword argument into a float64.
// Booleans are not numbers.
func toFloat(arg any) (float64, bool) {
	return jsontype.Float(arg)
}

// toStrings converts a keyword argument into a list of strings.
func toStrings(arg any) ([]string, bool) {
	a, ok := arg.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(a))
	for _, e := range a {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// toSchemas converts a keyword argument into a non-empty list of
// sub-schemas. The elements themselves are checked when validated.
func toSchemas(arg any) ([]any, bool) {
	a, ok := arg.([]any)
	if !ok || len(a) == 0 {
		return nil, false
	}
	return a, true
}

// toMapSchema converts a keyword argument into a map from names to
// sub-schemas.
func toMapSchema(arg any) (map[string]any, bool) {
	m, ok := arg.(map[string]any)
	return m, ok
}

// badArg records an InvalidSchema error for a keyword whose argument
// has the wrong type. Only the fragment is abandoned; validation of
// the rest of the schema continues.
func badArg(errs *validerr.List, path, keyword string, arg any, want string) {
	errs.Add(path, &validerr.InvalidSchema{
		Keyword: keyword,
		Reason:  fmt.Sprintf("got %T, want %s", arg, want),
	})
}
