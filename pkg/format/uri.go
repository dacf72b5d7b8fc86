// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/netip"
	"net/url"
	"strings"
)

// uriOrIRI is an enum
type uriOrIRI int

const (
	isURI uriOrIRI = iota + 1
	isIRI
)

// isValidURI reports whether s is a valid absolute URI.
func isValidURI(s string) bool {
	return checkAbsolute(s, isURI)
}

// isValidIRI reports whether s is a valid absolute IRI.
func isValidIRI(s string) bool {
	return checkAbsolute(s, isIRI)
}

// checkAbsolute checks for an absolute URI or IRI.
func checkAbsolute(s string, ui uriOrIRI) bool {
	uri, err := url.Parse(s)
	if err != nil {
		return false
	}
	if !uri.IsAbs() {
		return false
	}
	return checkURI(uri, ui)
}

// isValidURIReference reports whether s is a valid URI,
// which may be a reference.
func isValidURIReference(s string) bool {
	return checkReference(s, isURI)
}

// isValidIRIReference reports whether s is a valid IRI,
// which may be a reference.
func isValidIRIReference(s string) bool {
	return checkReference(s, isIRI)
}

// checkReference checks for a URI or IRI, which may be a reference.
func checkReference(s string, ui uriOrIRI) bool {
	// Avoid parsing what looks like an absolute URI as a relative one.
	if strings.HasPrefix(s, `\\`) {
		return false
	}

	uri, err := url.Parse(s)
	if err != nil {
		return false
	}

	return checkURI(uri, ui)
}

// checkURI reports whether the URI meets the checks that JSON schema
// expects beyond what url.Parse enforces.
func checkURI(uri *url.URL, ui uriOrIRI) bool {
	// An IPv6 address should be in square brackets;
	// otherwise the colons can confuse the parse.
	if addr, err := netip.ParseAddr(uri.Host); err == nil && addr.Is6() {
		return false
	}

	// Backslashes are not permitted in fragments.
	if strings.Contains(uri.Fragment, `\`) {
		return false
	}

	// We apply further checks to URIs.
	if ui == isIRI {
		return true
	}

	for i := range uri.RawPath {
		c := uri.RawPath[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		switch c {
		case '-', '_', '.', '~', '@', '&', '=', '+', '$', '/', ';', ',', '(', ')', '#':
			continue
		default:
			return false
		}
	}

	return true
}
