// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strings"
)

// isValidURITemplate reports whether s is a syntactically valid
// RFC6570 URI template. Only the template syntax is checked;
// the literal parts are not validated as URI characters.
func isValidURITemplate(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			j := strings.IndexByte(s[i+1:], '}')
			if j < 0 {
				return false
			}
			if !checkTemplateExpr(s[i+1 : i+1+j]) {
				return false
			}
			i += j + 1
		case '}':
			// A close brace with no matching open brace.
			return false
		}
	}
	return true
}

// checkTemplateExpr reports whether expr is a valid RFC6570
// expression body, without the surrounding braces.
func checkTemplateExpr(expr string) bool {
	if expr == "" {
		return false
	}

	// operator = op-level2 / op-level3 / op-reserve
	switch expr[0] {
	case '+', '#', '.', '/', ';', '?', '&', '=', ',', '!', '@', '|':
		expr = expr[1:]
	}

	if expr == "" {
		return false
	}

	// variable-list = varspec *("," varspec)
	// varspec       = varname [modifier-level4]
	for _, varspec := range strings.Split(expr, ",") {
		// modifier-level4 = prefix / explode
		if cut, ok := strings.CutSuffix(varspec, "*"); ok {
			varspec = cut
		} else if name, length, ok := strings.Cut(varspec, ":"); ok {
			// prefix = ":" max-length ; 1*4DIGIT, positive
			if length == "" || len(length) > 4 || length[0] == '0' {
				return false
			}
			for i := range len(length) {
				if length[i] < '0' || length[i] > '9' {
					return false
				}
			}
			varspec = name
		}
		if !checkTemplateVarname(varspec) {
			return false
		}
	}
	return true
}

// checkTemplateVarname reports whether s is a valid RFC6570 varname.
func checkTemplateVarname(s string) bool {
	if s == "" || s[0] == '.' || s[len(s)-1] == '.' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '_' || c == '.':
		case c == '%':
			// pct-encoded = "%" HEXDIG HEXDIG
			if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'F':
		return true
	case c >= 'a' && c <= 'f':
		return true
	}
	return false
}
