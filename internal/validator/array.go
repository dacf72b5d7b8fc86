// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"github.com/altshiftab/jsonvalid/pkg/jsonpointer"
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// validateArray applies the array constraint keywords.
// The steps are independent and all evaluated.
func validateArray(value any, s map[string]any, path string, st *State, errs *validerr.List) {
	a, ok := value.([]any)
	if !ok {
		return
	}
	ln := len(a)

	if arg, ok := s["minItems"]; ok {
		if n, ok := toInt(arg); !ok || n < 0 {
			badArg(errs, path, "minItems", arg, "non-negative integer")
		} else if ln < n {
			errs.Add(path, &validerr.TooFewItems{MinItems: n, Length: ln})
		}
	}

	if arg, ok := s["maxItems"]; ok {
		if n, ok := toInt(arg); !ok || n < 0 {
			badArg(errs, path, "maxItems", arg, "non-negative integer")
		} else if ln > n {
			errs.Add(path, &validerr.TooManyItems{MaxItems: n, Length: ln})
		}
	}

	if arg, ok := s["uniqueItems"]; ok {
		if unique, ok := arg.(bool); !ok {
			badArg(errs, path, "uniqueItems", arg, "bool")
		} else if unique {
			validateUniqueItems(a, path, errs)
		}
	}

	// Tuple-shape validation: elements covered by prefixItems are
	// checked positionally, and items governs only the rest.
	// Without prefixItems, items applies to every element.
	start := 0
	if arg, ok := s["prefixItems"]; ok {
		if schemas, ok := toSchemas(arg); !ok {
			badArg(errs, path, "prefixItems", arg, "non-empty array of schemas")
		} else {
			for i, sub := range schemas {
				if i >= ln {
					break
				}
				Value(a[i], sub, jsonpointer.JoinIndex(path, i), st, errs)
			}
			start = len(schemas)
		}
	}
	if arg, ok := s["items"]; ok {
		if b, isBool := arg.(bool); isBool {
			if !b && ln > start {
				errs.Add(path, &validerr.TooManyItems{MaxItems: start, Length: ln})
			}
		} else {
			for i := start; i < ln; i++ {
				Value(a[i], arg, jsonpointer.JoinIndex(path, i), st, errs)
			}
		}
	}

	if arg, ok := s["contains"]; ok {
		validateContains(a, arg, s, path, st, errs)
	}
}

// validateUniqueItems checks all elements for pairwise structural
// equality. A duplicate produces one error for the whole array,
// not one per duplicated pair.
func validateUniqueItems(a []any, path string, errs *validerr.List) {
	for i := 1; i < len(a); i++ {
		for j := 0; j < i; j++ {
			if deepEqual(a[i], a[j]) {
				errs.Add(path, &validerr.DuplicateItems{Index: i})
				return
			}
		}
	}
}

// validateContains counts the elements that match the contains
// schema and checks the count against minContains (1 if absent) and
// maxContains. Violations are reported once, at the array's own path.
func validateContains(a []any, arg any, s map[string]any, path string, st *State, errs *validerr.List) {
	matched := 0
	for _, e := range a {
		var subErrs validerr.List
		Value(e, arg, path, st, &subErrs)
		if subErrs.Len() == 0 {
			matched++
		}
	}

	minContains := 1
	if marg, ok := s["minContains"]; ok {
		if n, ok := toInt(marg); !ok || n < 0 {
			badArg(errs, path, "minContains", marg, "non-negative integer")
		} else {
			minContains = n
		}
	}
	if matched < minContains {
		errs.Add(path, &validerr.ContainsTooFew{MinContains: minContains, Matched: matched})
	}

	if marg, ok := s["maxContains"]; ok {
		if n, ok := toInt(marg); !ok || n < 0 {
			badArg(errs, path, "maxContains", marg, "non-negative integer")
		} else if matched > n {
			errs.Add(path, &validerr.ContainsTooMany{MaxContains: n, Matched: matched})
		}
	}
}
