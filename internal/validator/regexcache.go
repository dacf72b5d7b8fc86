// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"regexp"
	"sync"
)

// regexpCacheLock guards regexpCache.
var regexpCacheLock sync.Mutex

// regexpCache maps pattern strings to compiled regexps.
// A nil entry records a pattern that failed to compile;
// such a pattern matches nothing.
var regexpCache = make(map[string]*regexp.Regexp)

// compileRegexp returns the compiled regexp for pat, or nil if pat
// does not compile. Results are cached across calls; entries are
// never replaced, so concurrent validations share one compilation.
func compileRegexp(pat string) *regexp.Regexp {
	regexpCacheLock.Lock()
	defer regexpCacheLock.Unlock()
	re, ok := regexpCache[pat]
	if !ok {
		re, _ = regexp.Compile(pat)
		regexpCache[pat] = re
	}
	return re
}
