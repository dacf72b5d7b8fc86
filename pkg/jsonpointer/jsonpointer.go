// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonpointer builds the instance paths used in validation
// errors. This is not a fully general package.
//
// A path is a JSON-pointer-like string: reference tokens escaped per
// RFC 6901 and joined by "/". The root path is the empty string, so a
// path never starts with "/".
package jsonpointer

import (
	"strconv"
	"strings"
)

// Escape mangles a reference token for use in a path.
// Per RFC 6901, "~" becomes "~0" and "/" becomes "~1".
func Escape(tok string) string {
	if !strings.ContainsAny(tok, "~/") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

// Unescape unmangles a reference token taken from a path.
func Unescape(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}

// Join appends a reference token to a path, escaping the token.
func Join(path, tok string) string {
	if path == "" {
		return Escape(tok)
	}
	return path + "/" + Escape(tok)
}

// JoinIndex appends an array index to a path.
func JoinIndex(path string, i int) string {
	if path == "" {
		return strconv.Itoa(i)
	}
	return path + "/" + strconv.Itoa(i)
}
