// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format defines checkers for the format keyword.
// A checker is a pure predicate over the instance string.
// Unknown format names are always valid, as the JSON schema docs
// treat format as advisory unless the implementation recognizes it.
package format

import (
	"sync"
)

// A Checker reports whether s is a valid value for a format.
type Checker func(s string) bool

// checkersLock guards checkers. The map is fully populated by init
// and only grows afterward through [Register].
var checkersLock sync.Mutex

// checkers maps format names to the functions that check them.
var checkers map[string]Checker

// init registers the defined formats.
func init() {
	Register("date", isValidDate)
	Register("date-time", isValidDateTime)
	Register("duration", isValidDuration)
	Register("email", isValidEmail)
	Register("hostname", isValidHostname)
	Register("idn-email", isValidIDNEmail)
	Register("idn-hostname", isValidIDNHostname)
	Register("ipv4", isValidIPv4)
	Register("ipv6", isValidIPv6)
	Register("iri", isValidIRI)
	Register("iri-reference", isValidIRIReference)
	Register("json-pointer", isValidJSONPointer)
	Register("regex", isValidRegex)
	Register("relative-json-pointer", isValidRelativeJSONPointer)
	Register("time", isValidTime)
	Register("uri", isValidURI)
	Register("uri-reference", isValidURIReference)
	Register("uri-template", isValidURITemplate)
	Register("uuid", isValidUUID)
}

// Register records the checker to use for a format name.
// Registering a name again replaces the earlier checker.
func Register(format string, c Checker) {
	checkersLock.Lock()
	defer checkersLock.Unlock()
	if checkers == nil {
		checkers = make(map[string]Checker)
	}
	checkers[format] = c
}

// Check reports whether s is valid for the named format.
// An unrecognized format name always reports true.
func Check(format, s string) bool {
	checkersLock.Lock()
	c := checkers[format]
	checkersLock.Unlock()
	if c == nil {
		return true
	}
	return c(s)
}
