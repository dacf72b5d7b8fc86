// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/mail"
	"strings"
)

// isValidEmail reports whether s is a valid RFC5321 email address.
func isValidEmail(s string) bool {
	return checkEmail(s, false)
}

// isValidIDNEmail reports whether s is a valid RFC6531
// internationalized email address.
func isValidIDNEmail(s string) bool {
	return checkEmail(s, true)
}

// checkEmail reports whether s is a valid email address.
// If idn is true, this permits internationalized addresses.
// Rather than parsing the RFC5321 Mailbox syntax by hand we defer
// to the net/mail package, which is more likely to implement what
// the user expects anyhow.
func checkEmail(s string, idn bool) bool {
	// RFC5321 permits IPv6 literals as "[IPv6:literal]" but net/mail
	// doesn't parse that.
	s = strings.Replace(s, "[IPv6:", "[", 1)

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" {
		return false
	}

	// The email format doesn't accept non-ASCII in the domain.
	// Use idn-email for that.
	if !idn {
		idx := strings.LastIndex(addr.Address, "@")
		if idx >= 0 {
			domain := addr.Address[idx+1:]
			if domain[0] != '[' {
				if !isNonIDNDomain(domain) {
					return false
				}
			}
		}
	}

	return true
}

// isNonIDNDomain reports whether s might be a non-internationalized
// domain name.
func isNonIDNDomain(s string) bool {
	for i := range len(s) {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '.':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
