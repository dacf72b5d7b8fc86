// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

// uuidGroups is the number of hex octets in each dash-separated
// group of a UUID.
var uuidGroups = [...]int{4, 2, 2, 2, 6}

// isValidUUID reports whether s is a valid UUID.
func isValidUUID(s string) bool {
	hexOctets := func(want int) bool {
		if len(s) < 2*want {
			return false
		}
		for i := range 2 * want {
			if !isHexDigit(s[i]) {
				return false
			}
		}
		s = s[2*want:]
		return true
	}

	dash := func() bool {
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
		return true
	}

	for i, n := range uuidGroups {
		if i > 0 && !dash() {
			return false
		}
		if !hexOctets(n) {
			return false
		}
	}
	return len(s) == 0
}
