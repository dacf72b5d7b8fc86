// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"unicode/utf8"

	"github.com/altshiftab/jsonvalid/pkg/format"
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// validateString applies the string constraint keywords. Every check
// is independent; all are evaluated even after a failure.
func validateString(value any, s map[string]any, path string, st *State, errs *validerr.List) {
	str, ok := value.(string)
	if !ok {
		return
	}

	// Lengths are measured in Unicode code points, not bytes.
	length := utf8.RuneCountInString(str)

	if arg, ok := s["minLength"]; ok {
		if n, ok := toInt(arg); !ok || n < 0 {
			badArg(errs, path, "minLength", arg, "non-negative integer")
		} else if length < n {
			errs.Add(path, &validerr.StringTooShort{MinLength: n, Length: length})
		}
	}

	if arg, ok := s["maxLength"]; ok {
		if n, ok := toInt(arg); !ok || n < 0 {
			badArg(errs, path, "maxLength", arg, "non-negative integer")
		} else if length > n {
			errs.Add(path, &validerr.StringTooLong{MaxLength: n, Length: length})
		}
	}

	if arg, ok := s["pattern"]; ok {
		if pat, ok := arg.(string); !ok {
			badArg(errs, path, "pattern", arg, "string")
		} else if re := compileRegexp(pat); re == nil || !re.MatchString(str) {
			// A match anywhere in the string satisfies the
			// constraint. A pattern that does not compile
			// matches nothing.
			errs.Add(path, &validerr.PatternMismatch{Pattern: pat, Value: str})
		}
	}

	if arg, ok := s["format"]; ok {
		if name, ok := arg.(string); !ok {
			badArg(errs, path, "format", arg, "string")
		} else if !st.opts.FormatAdvisory && !format.Check(name, str) {
			errs.Add(path, &validerr.FormatMismatch{Format: name, Value: str})
		}
	}
}
