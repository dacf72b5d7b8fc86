// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/netip"
)

// isValidIPv4 reports whether s is a valid IPv4 address.
// netip rejects leading-zero octets, as the format requires.
func isValidIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// isValidIPv6 reports whether s is a valid IPv6 address.
func isValidIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6() && addr.Zone() == ""
}
