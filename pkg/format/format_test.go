// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "testing"

func checkFormat(t *testing.T, format string, valid []string, invalid []string) {
	t.Helper()
	for _, s := range valid {
		if !Check(format, s) {
			t.Errorf("Check(%q, %q) = false, want true", format, s)
		}
	}
	for _, s := range invalid {
		if Check(format, s) {
			t.Errorf("Check(%q, %q) = true, want false", format, s)
		}
	}
}

func TestDate(t *testing.T) {
	checkFormat(t, "date",
		[]string{"2024-06-01", "2024-02-29", "0000-01-01"},
		[]string{"2023-02-29", "2024-13-01", "2024-00-10", "2024-06-31", "2024-6-01", "20240601", "2024-06-01T", ""},
	)
}

func TestTime(t *testing.T) {
	checkFormat(t, "time",
		[]string{"12:34:56Z", "12:34:56.789Z", "12:34:56+01:00", "12:34:56-23:59", "23:59:60Z", "00:00:00z"},
		[]string{"12:34:56", "24:00:00Z", "12:60:00Z", "12:34:60Z", "12:34:56+0100", "12:34", ""},
	)
}

func TestDateTime(t *testing.T) {
	checkFormat(t, "date-time",
		[]string{"2024-06-01T12:34:56Z", "2024-06-01t12:34:56.5+02:00"},
		[]string{"2024-06-01 12:34:56Z", "2024-06-01T12:34:56", "2024-06-01", "12:34:56Z", ""},
	)
}

func TestDuration(t *testing.T) {
	checkFormat(t, "duration",
		[]string{"P1D", "P1W", "P1Y2M3DT4H5M6S", "PT1H", "PT1M", "PT1S", "PT1H30M", "P2M"},
		[]string{"", "P", "PT", "P1", "1D", "T1H", "P1D2H"},
	)
}

func TestEmail(t *testing.T) {
	checkFormat(t, "email",
		[]string{"user@example.com", "user.name+tag@example.com"},
		[]string{"plainaddress", "user@bücher.example", "Name <user@example.com>", "@example.com", ""},
	)
}

func TestIDNEmail(t *testing.T) {
	checkFormat(t, "idn-email",
		[]string{"user@example.com", "user@bücher.example"},
		[]string{"plainaddress", ""},
	)
}

func TestHostname(t *testing.T) {
	checkFormat(t, "hostname",
		[]string{"example.com", "localhost", "a-b.example"},
		[]string{"a_b.example", "-leading.example", "exa mple", "bücher.example", ""},
	)
}

func TestIDNHostname(t *testing.T) {
	checkFormat(t, "idn-hostname",
		[]string{"example.com", "bücher.example"},
		[]string{"a_b.example", "a·b", "〮x", ""},
	)
}

func TestIPv4(t *testing.T) {
	checkFormat(t, "ipv4",
		[]string{"192.168.0.1", "0.0.0.0", "255.255.255.255"},
		[]string{"256.0.0.1", "192.168.01.1", "192.168.0", "::1", "192.168.0.1.2", ""},
	)
}

func TestIPv6(t *testing.T) {
	checkFormat(t, "ipv6",
		[]string{"::1", "2001:db8::8a2e:370:7334", "::"},
		[]string{"192.168.0.1", "2001:db8::1%eth0", ":::", "12345::", ""},
	)
}

func TestJSONPointer(t *testing.T) {
	checkFormat(t, "json-pointer",
		[]string{"", "/a/b", "/", "/~0/~1", "/a~1b"},
		[]string{"a", "a/b", "/~2", "/~"},
	)
}

func TestRelativeJSONPointer(t *testing.T) {
	checkFormat(t, "relative-json-pointer",
		[]string{"0", "1/a", "12/a/b", "0#", "1"},
		[]string{"", "/a", "-1/a", "01/a", "1#x", "1a"},
	)
}

func TestRegex(t *testing.T) {
	checkFormat(t, "regex",
		[]string{"^a+b*$", "[a-z]{2,4}", ""},
		[]string{"(", "[", "a{2,1}"},
	)
}

func TestURI(t *testing.T) {
	checkFormat(t, "uri",
		[]string{"https://example.com/path?q=1#frag", "mailto:user@example.com", "urn:isbn:0451450523"},
		[]string{"/relative/path", "not a uri at all", "%zz", ""},
	)
}

func TestURIReference(t *testing.T) {
	checkFormat(t, "uri-reference",
		[]string{"https://example.com/path", "/relative/path", "?query", "#frag", ""},
		[]string{"%zz", `\\host\share`},
	)
}

func TestURITemplate(t *testing.T) {
	checkFormat(t, "uri-template",
		[]string{
			"http://example.com/~{username}/",
			"http://example.com/dictionary/{term:1}/{term}",
			"http://example.com/search{?q,lang}",
			"{+path}",
			"{/list*}",
			"no-expressions",
			"",
		},
		[]string{"{", "{}", "un}matched", "{var:0}", "{$bad}", "{a,}", "{.}"},
	)
}

func TestUUID(t *testing.T) {
	checkFormat(t, "uuid",
		[]string{
			"123e4567-e89b-12d3-a456-426614174000",
			"00000000-0000-0000-0000-000000000000",
			"ABCDEF01-2345-6789-ABCD-EF0123456789",
		},
		[]string{
			"123e4567-e89b-12d3-a456-42661417400",
			"123e4567-e89b-12d3-a456-4266141740000",
			"123e4567e89b12d3a456426614174000",
			"123e4567-e89b-12d3-a456-42661417400g",
			"",
		},
	)
}

func TestUnknownFormat(t *testing.T) {
	if !Check("no-such-format", "anything") {
		t.Error(`Check("no-such-format", ...) = false, want true`)
	}
}

func TestRegister(t *testing.T) {
	Register("test-even-length", func(s string) bool { return len(s)%2 == 0 })
	checkFormat(t, "test-even-length", []string{"", "ab"}, []string{"a"})
}
