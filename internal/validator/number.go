// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"math"

	"github.com/altshiftab/jsonvalid/internal/jsontype"
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// validateNumber applies the numeric constraint keywords. Inclusive
// and exclusive bounds may both be present and are each evaluated.
// The integrality requirement of type integer is enforced during
// type matching, not here.
func validateNumber(value any, s map[string]any, path string, st *State, errs *validerr.List) {
	f, ok := jsontype.Float(value)
	if !ok {
		return
	}

	if arg, ok := s["minimum"]; ok {
		if limit, ok := toFloat(arg); !ok {
			badArg(errs, path, "minimum", arg, "number")
		} else if f < limit {
			errs.Add(path, &validerr.NumberTooSmall{Limit: limit, Value: f})
		}
	}

	if arg, ok := s["exclusiveMinimum"]; ok {
		if limit, ok := toFloat(arg); !ok {
			badArg(errs, path, "exclusiveMinimum", arg, "number")
		} else if f <= limit {
			errs.Add(path, &validerr.NumberTooSmall{Limit: limit, Exclusive: true, Value: f})
		}
	}

	if arg, ok := s["maximum"]; ok {
		if limit, ok := toFloat(arg); !ok {
			badArg(errs, path, "maximum", arg, "number")
		} else if f > limit {
			errs.Add(path, &validerr.NumberTooLarge{Limit: limit, Value: f})
		}
	}

	if arg, ok := s["exclusiveMaximum"]; ok {
		if limit, ok := toFloat(arg); !ok {
			badArg(errs, path, "exclusiveMaximum", arg, "number")
		} else if f >= limit {
			errs.Add(path, &validerr.NumberTooLarge{Limit: limit, Exclusive: true, Value: f})
		}
	}

	if arg, ok := s["multipleOf"]; ok {
		if m, ok := toFloat(arg); !ok || m <= 0 {
			badArg(errs, path, "multipleOf", arg, "positive number")
		} else if !isMultipleOf(f, m) {
			errs.Add(path, &validerr.NotMultipleOf{MultipleOf: m, Value: f})
		}
	}
}

// isMultipleOf reports whether f divides evenly by m.
// The quotient is checked against the nearest integer with a
// tolerance scaled to its magnitude, since the division is not
// exact in binary floating point.
func isMultipleOf(f, m float64) bool {
	quo := f / m
	if math.IsInf(quo, 0) {
		return false
	}
	return math.Abs(quo-math.Round(quo)) <= numericEpsilon*math.Max(1, math.Abs(quo))
}
