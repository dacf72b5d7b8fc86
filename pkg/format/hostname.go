// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/netip"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/net/idna"
)

// isValidHostname reports whether s is a valid hostname.
func isValidHostname(s string) bool {
	return checkHostname(s, false)
}

// isValidIDNHostname reports whether s is a valid internationalized
// hostname.
func isValidIDNHostname(s string) bool {
	return checkHostname(s, true)
}

// hostnameProfile returns the IDNA profile to use for hostnames.
var hostnameProfile = sync.OnceValue(func() *idna.Profile {
	return idna.New(idna.ValidateForRegistration())
})

// checkHostname reports whether s is a valid hostname.
// If idn is true, this permits internationalized hostnames.
func checkHostname(s string, idn bool) bool {
	if _, err := netip.ParseAddr(s); err == nil {
		// Valid IP address.
		return true
	}

	// Underscores are permitted by idna but not by hostname syntax.
	if strings.Contains(s, "_") {
		return false
	}

	if !idn {
		for i := range len(s) {
			if s[i]&0x80 != 0 {
				return false
			}
		}
	} else {
		// Permit all stops (RFC3490 section 3.1).
		s = strings.ReplaceAll(s, "。", ".")
		s = strings.ReplaceAll(s, "．", ".")
		s = strings.ReplaceAll(s, "｡", ".")

		// Check the RFC5892 contextual rules that the idna package
		// doesn't check.
		var last, nextMustBe rune
		var nextMustBeGreek bool
		for _, c := range s {
			if nextMustBe != 0 && nextMustBe != c {
				return false
			}
			nextMustBe = 0

			if nextMustBeGreek {
				if !unicode.Is(unicode.Greek, c) {
					return false
				}
			}
			nextMustBeGreek = false

			switch c {
			case 'ـ', 'ߺ', '〮', '〯',
				'〱', '〲', '〳', '〴',
				'〵', '〻':
				// Disallowed rune.
				return false

			case '·':
				if last != 'l' {
					return false
				}
				nextMustBe = 'l'

			case '͵':
				nextMustBeGreek = true

			case '׳', '״':
				if !unicode.Is(unicode.Hebrew, last) {
					return false
				}

			case '・':
				found := false
				for _, c := range s {
					if unicode.Is(unicode.Hiragana, c) || unicode.Is(unicode.Katakana, c) || unicode.Is(unicode.Han, c) {
						found = true
						break
					}
				}
				if !found {
					return false
				}
			}

			last = c
		}
		if nextMustBe != 0 || nextMustBeGreek {
			return false
		}
	}

	if _, err := hostnameProfile().ToASCII(s); err != nil {
		return false
	}

	return true
}
