// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validerr

import (
	"fmt"
	"strings"
)

// TypeMismatch reports that the instance does not have one of the
// types required by the "type" keyword, or has a fractional part
// where an integer is required.
type TypeMismatch struct {
	Expected []string
	Actual   string
}

func (d *TypeMismatch) Message() string {
	if len(d.Expected) == 1 {
		return fmt.Sprintf("instance has type %q, want %q", d.Actual, d.Expected[0])
	}
	return fmt.Sprintf("instance has type %q, want one of %v", d.Actual, d.Expected)
}

// InvalidSchema reports a malformed schema fragment, such as a
// keyword whose argument has the wrong type. Processing of the
// fragment stops, but validation of the rest of the schema continues.
type InvalidSchema struct {
	Keyword string
	Reason  string
}

func (d *InvalidSchema) Message() string {
	return fmt.Sprintf("invalid schema: %q argument: %s", d.Keyword, d.Reason)
}

// FalseSchema reports that the instance was checked against the
// boolean schema false, which matches no values.
type FalseSchema struct{}

func (d *FalseSchema) Message() string {
	return "schema is false and matches no instance"
}

// StringTooShort reports a "minLength" failure.
// Lengths are measured in Unicode code points, not bytes.
type StringTooShort struct {
	MinLength int
	Length    int
}

func (d *StringTooShort) Message() string {
	return fmt.Sprintf(`length %d too short for "minLength" argument %d`, d.Length, d.MinLength)
}

// StringTooLong reports a "maxLength" failure.
type StringTooLong struct {
	MaxLength int
	Length    int
}

func (d *StringTooLong) Message() string {
	return fmt.Sprintf(`length %d too long for "maxLength" argument %d`, d.Length, d.MaxLength)
}

// PatternMismatch reports that the "pattern" regexp did not match
// anywhere in the instance string.
type PatternMismatch struct {
	Pattern string
	Value   string
}

func (d *PatternMismatch) Message() string {
	return fmt.Sprintf(`"pattern" regexp %q did not match %q`, d.Pattern, d.Value)
}

// FormatMismatch reports that the instance string is not valid for
// the named format.
type FormatMismatch struct {
	Format string
	Value  string
}

func (d *FormatMismatch) Message() string {
	return fmt.Sprintf("%q is not a valid %s", d.Value, d.Format)
}

// NumberTooSmall reports a "minimum" or, with Exclusive set,
// an "exclusiveMinimum" failure.
type NumberTooSmall struct {
	Limit     float64
	Exclusive bool
	Value     float64
}

func (d *NumberTooSmall) Message() string {
	keyword := "minimum"
	if d.Exclusive {
		keyword = "exclusiveMinimum"
	}
	return fmt.Sprintf("value %v is smaller than %q limit %v", d.Value, keyword, d.Limit)
}

// NumberTooLarge reports a "maximum" or, with Exclusive set,
// an "exclusiveMaximum" failure.
type NumberTooLarge struct {
	Limit     float64
	Exclusive bool
	Value     float64
}

func (d *NumberTooLarge) Message() string {
	keyword := "maximum"
	if d.Exclusive {
		keyword = "exclusiveMaximum"
	}
	return fmt.Sprintf("value %v is larger than %q limit %v", d.Value, keyword, d.Limit)
}

// NotMultipleOf reports a "multipleOf" failure.
type NotMultipleOf struct {
	MultipleOf float64
	Value      float64
}

func (d *NotMultipleOf) Message() string {
	return fmt.Sprintf("value %v is not a multiple of %v", d.Value, d.MultipleOf)
}

// RequiredPropertyMissing reports that a property listed in
// "required" is absent from the instance.
type RequiredPropertyMissing struct {
	Property string
}

func (d *RequiredPropertyMissing) Message() string {
	return fmt.Sprintf("missing required property %q", d.Property)
}

// AdditionalPropertyNotAllowed reports a property that is covered by
// neither "properties" nor "patternProperties" while
// "additionalProperties" is false.
type AdditionalPropertyNotAllowed struct {
	Property string
}

func (d *AdditionalPropertyNotAllowed) Message() string {
	return fmt.Sprintf("additional property %q is not allowed", d.Property)
}

// TooFewProperties reports a "minProperties" failure.
type TooFewProperties struct {
	MinProperties int
	Count         int
}

func (d *TooFewProperties) Message() string {
	return fmt.Sprintf(`number of properties %d is less than "minProperties" argument %d`, d.Count, d.MinProperties)
}

// TooManyProperties reports a "maxProperties" failure.
type TooManyProperties struct {
	MaxProperties int
	Count         int
}

func (d *TooManyProperties) Message() string {
	return fmt.Sprintf(`number of properties %d is more than "maxProperties" argument %d`, d.Count, d.MaxProperties)
}

// TooFewItems reports a "minItems" failure.
type TooFewItems struct {
	MinItems int
	Length   int
}

func (d *TooFewItems) Message() string {
	return fmt.Sprintf(`length %d too short for "minItems" argument %d`, d.Length, d.MinItems)
}

// TooManyItems reports a "maxItems" failure, or an array element
// beyond "prefixItems" where "items" is false.
type TooManyItems struct {
	MaxItems int
	Length   int
}

func (d *TooManyItems) Message() string {
	return fmt.Sprintf(`length %d too long for "maxItems" argument %d`, d.Length, d.MaxItems)
}

// ContainsTooFew reports that fewer elements matched the "contains"
// schema than "minContains" requires (one, if unspecified).
type ContainsTooFew struct {
	MinContains int
	Matched     int
}

func (d *ContainsTooFew) Message() string {
	return fmt.Sprintf(`%d array elements match "contains" schema, want at least %d`, d.Matched, d.MinContains)
}

// ContainsTooMany reports that more elements matched the "contains"
// schema than "maxContains" allows.
type ContainsTooMany struct {
	MaxContains int
	Matched     int
}

func (d *ContainsTooMany) Message() string {
	return fmt.Sprintf(`%d array elements match "contains" schema, want at most %d`, d.Matched, d.MaxContains)
}

// DuplicateItems reports a "uniqueItems" failure. Index is the index
// of the first element that duplicates an earlier one.
type DuplicateItems struct {
	Index int
}

func (d *DuplicateItems) Message() string {
	return fmt.Sprintf(`"uniqueItems" failure: element %d appears more than once`, d.Index)
}

// NotInEnum reports that the instance equals no "enum" member.
type NotInEnum struct {
	Value any
}

func (d *NotInEnum) Message() string {
	return `no "enum" value matched`
}

// ConstMismatch reports that the instance does not equal the
// "const" value.
type ConstMismatch struct {
	Expected any
	Actual   any
}

func (d *ConstMismatch) Message() string {
	return fmt.Sprintf(`"const" failed: got %v, want %v`, d.Actual, d.Expected)
}

// AllOfFailed reports that one or more "allOf" subschemas did not
// match. Errors holds every error produced by the failing subschemas,
// in subschema order.
type AllOfFailed struct {
	Errors []*Error
}

func (d *AllOfFailed) Message() string {
	var sb strings.Builder
	sb.WriteString(`"allOf" schemas did not all match`)
	for _, ve := range d.Errors {
		sb.WriteString("\n\t")
		sb.WriteString(ve.Error())
	}
	return sb.String()
}

// AnyOfFailed reports that no "anyOf" subschema matched.
type AnyOfFailed struct{}

func (d *AnyOfFailed) Message() string {
	return `no "anyOf" schema matched`
}

// OneOfFailed reports that the number of matching "oneOf" subschemas
// is not exactly one.
type OneOfFailed struct {
	MatchCount int
}

func (d *OneOfFailed) Message() string {
	if d.MatchCount == 0 {
		return `no match for "oneOf" schema`
	}
	return fmt.Sprintf(`%d matches for "oneOf" schema`, d.MatchCount)
}

// NotFailed reports that the "not" subschema matched.
type NotFailed struct{}

func (d *NotFailed) Message() string {
	return `"not" schema matched`
}

// Define a detail method for each permitted Detail type.
// This implements the [Detail] interface.

func (*TypeMismatch) detail()                 {}
func (*InvalidSchema) detail()                {}
func (*FalseSchema) detail()                  {}
func (*StringTooShort) detail()               {}
func (*StringTooLong) detail()                {}
func (*PatternMismatch) detail()              {}
func (*FormatMismatch) detail()               {}
func (*NumberTooSmall) detail()               {}
func (*NumberTooLarge) detail()               {}
func (*NotMultipleOf) detail()                {}
func (*RequiredPropertyMissing) detail()      {}
func (*AdditionalPropertyNotAllowed) detail() {}
func (*TooFewProperties) detail()             {}
func (*TooManyProperties) detail()            {}
func (*TooFewItems) detail()                  {}
func (*TooManyItems) detail()                 {}
func (*ContainsTooFew) detail()               {}
func (*ContainsTooMany) detail()              {}
func (*DuplicateItems) detail()               {}
func (*NotInEnum) detail()                    {}
func (*ConstMismatch) detail()                {}
func (*AllOfFailed) detail()                  {}
func (*AnyOfFailed) detail()                  {}
func (*OneOfFailed) detail()                  {}
func (*NotFailed) detail()                    {}
