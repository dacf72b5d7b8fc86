// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"regexp/syntax"
)

// isValidRegex reports whether s is a valid regexp.
// Note that only Go style regexps are supported.
func isValidRegex(s string) bool {
	_, err := syntax.Parse(s, syntax.Perl)
	return err == nil
}
