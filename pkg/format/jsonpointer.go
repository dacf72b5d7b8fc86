// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strings"
)

// isValidJSONPointer reports whether s is a valid JSON pointer.
func isValidJSONPointer(s string) bool {
	if len(s) == 0 {
		return true
	}
	if !strings.HasPrefix(s, "/") {
		return false
	}
	return checkJSONPointerEscapes(s)
}

// isValidRelativeJSONPointer reports whether s is a valid relative
// JSON pointer.
func isValidRelativeJSONPointer(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] == '0' {
		s = s[1:]
	} else {
		if s[0] < '1' || s[0] > '9' {
			return false
		}
		s = s[1:]
		for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
			s = s[1:]
		}
	}
	if len(s) == 0 || s == "#" {
		return true
	}
	if s[0] != '/' {
		return false
	}
	return checkJSONPointerEscapes(s)
}

// checkJSONPointerEscapes reports whether s has valid escapes.
// Every "~" must be followed by "0" or "1".
func checkJSONPointerEscapes(s string) bool {
	for {
		_, after, ok := strings.Cut(s, "~")
		if !ok {
			return true
		}
		if len(after) == 0 || (after[0] != '0' && after[0] != '1') {
			return false
		}
		s = after
	}
}
