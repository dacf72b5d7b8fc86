// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"math"

	"github.com/altshiftab/jsonvalid/internal/jsontype"
)

// numericEpsilon is the relative tolerance used when comparing
// numbers, for both equality and multipleOf.
const numericEpsilon = 1e-9

// floatEqual reports whether two numbers are equal within an
// epsilon scaled to their magnitude.
func floatEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= numericEpsilon*math.Max(math.Abs(a), math.Abs(b))
}

// deepEqual reports structural equality of two decoded JSON values,
// as used by enum, const and uniqueItems. Numbers compare with
// tolerance for binary floating-point imprecision. Booleans are
// never equal to numbers, regardless of storage representation.
// Object key order is irrelevant; array order is not.
func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !deepEqual(v, bvv) {
				return false
			}
		}
		return true
	}

	af, aok := jsontype.Float(a)
	bf, bok := jsontype.Float(b)
	return aok && bok && floatEqual(af, bf)
}
