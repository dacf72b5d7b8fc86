// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"maps"
	"slices"

	"github.com/altshiftab/jsonvalid/pkg/jsonpointer"
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// validateObject applies the object constraint keywords. The steps
// are independent; property names are visited in sorted order so
// that repeated validation of the same input yields the same error
// list.
func validateObject(value any, s map[string]any, path string, st *State, errs *validerr.List) {
	m, ok := value.(map[string]any)
	if !ok {
		return
	}

	if arg, ok := s["required"]; ok {
		if names, ok := toStrings(arg); !ok {
			badArg(errs, path, "required", arg, "array of strings")
		} else {
			for _, name := range names {
				// Presence is required, not non-null.
				if _, present := m[name]; !present {
					errs.Add(path, &validerr.RequiredPropertyMissing{Property: name})
				}
			}
		}
	}

	// covered records the value keys matched by properties or
	// patternProperties; additionalProperties applies to the rest.
	covered := make(map[string]bool)

	if arg, ok := s["properties"]; ok {
		if props, ok := toMapSchema(arg); !ok {
			badArg(errs, path, "properties", arg, "object of schemas")
		} else {
			for _, name := range slices.Sorted(maps.Keys(props)) {
				covered[name] = true
				if v, present := m[name]; present {
					Value(v, props[name], jsonpointer.Join(path, name), st, errs)
				}
			}
		}
	}

	if arg, ok := s["patternProperties"]; ok {
		if pats, ok := toMapSchema(arg); !ok {
			badArg(errs, path, "patternProperties", arg, "object of schemas")
		} else {
			for _, pat := range slices.Sorted(maps.Keys(pats)) {
				re := compileRegexp(pat)
				if re == nil {
					// A pattern that does not compile
					// matches no keys.
					continue
				}
				for _, name := range slices.Sorted(maps.Keys(m)) {
					if !re.MatchString(name) {
						continue
					}
					covered[name] = true
					// A key can be validated by several
					// pattern schemas, and by properties
					// as well.
					Value(m[name], pats[pat], jsonpointer.Join(path, name), st, errs)
				}
			}
		}
	}

	if arg, ok := s["additionalProperties"]; ok {
		for _, name := range slices.Sorted(maps.Keys(m)) {
			if covered[name] {
				continue
			}
			if b, isBool := arg.(bool); isBool {
				if !b {
					errs.Add(path, &validerr.AdditionalPropertyNotAllowed{Property: name})
				}
			} else {
				Value(m[name], arg, jsonpointer.Join(path, name), st, errs)
			}
		}
	}

	if arg, ok := s["minProperties"]; ok {
		if n, ok := toInt(arg); !ok || n < 0 {
			badArg(errs, path, "minProperties", arg, "non-negative integer")
		} else if len(m) < n {
			errs.Add(path, &validerr.TooFewProperties{MinProperties: n, Count: len(m)})
		}
	}

	if arg, ok := s["maxProperties"]; ok {
		if n, ok := toInt(arg); !ok || n < 0 {
			badArg(errs, path, "maxProperties", arg, "non-negative integer")
		} else if len(m) > n {
			errs.Add(path, &validerr.TooManyProperties{MaxProperties: n, Count: len(m)})
		}
	}
}
