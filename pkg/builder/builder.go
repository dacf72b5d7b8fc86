// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder defines a [Builder] type that may be used to build
// a schema step by step.
//
// The builder produces the same untyped form that unmarshaled schema
// JSON has, so built schemas and decoded schemas validate
// identically.
package builder

import (
	"maps"
)

// Builder is a schema builder. Builder provides a list of methods
// that may be used to add new keywords to the schema. This should be
// used by programs that need to create a schema from scratch, rather
// than unmarshaling it from a JSON representation.
//
// There is no support for references to other schemas via $ref;
// schemas handed to validation must already be fully dereferenced.
type Builder struct {
	s map[string]any
}

// New returns a new empty [Builder].
func New() *Builder {
	return &Builder{s: make(map[string]any)}
}

// Schema returns the built schema in its normalized untyped form.
// The returned map is a copy; later Builder calls do not affect it.
func (b *Builder) Schema() map[string]any {
	return maps.Clone(b.s)
}

// set records a keyword, replacing any earlier argument.
func (b *Builder) set(keyword string, v any) *Builder {
	b.s[keyword] = v
	return b
}

// subSchemas converts builders to a list of schema values.
func subSchemas(bs []*Builder) []any {
	out := make([]any, len(bs))
	for i, sub := range bs {
		out[i] = sub.Schema()
	}
	return out
}

// anyStrings converts strings to the decoded-JSON array form.
func anyStrings(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// Type adds the type keyword. A single name is stored as a string,
// several names as an array.
func (b *Builder) Type(names ...string) *Builder {
	if len(names) == 1 {
		return b.set("type", names[0])
	}
	return b.set("type", anyStrings(names))
}

// Enum adds the enum keyword.
func (b *Builder) Enum(values ...any) *Builder {
	return b.set("enum", values)
}

// Const adds the const keyword.
func (b *Builder) Const(v any) *Builder {
	return b.set("const", v)
}

// MinLength adds the minLength keyword.
func (b *Builder) MinLength(n int) *Builder {
	return b.set("minLength", n)
}

// MaxLength adds the maxLength keyword.
func (b *Builder) MaxLength(n int) *Builder {
	return b.set("maxLength", n)
}

// Pattern adds the pattern keyword.
func (b *Builder) Pattern(pat string) *Builder {
	return b.set("pattern", pat)
}

// Format adds the format keyword.
func (b *Builder) Format(name string) *Builder {
	return b.set("format", name)
}

// Minimum adds the minimum keyword.
func (b *Builder) Minimum(f float64) *Builder {
	return b.set("minimum", f)
}

// Maximum adds the maximum keyword.
func (b *Builder) Maximum(f float64) *Builder {
	return b.set("maximum", f)
}

// ExclusiveMinimum adds the exclusiveMinimum keyword.
func (b *Builder) ExclusiveMinimum(f float64) *Builder {
	return b.set("exclusiveMinimum", f)
}

// ExclusiveMaximum adds the exclusiveMaximum keyword.
func (b *Builder) ExclusiveMaximum(f float64) *Builder {
	return b.set("exclusiveMaximum", f)
}

// MultipleOf adds the multipleOf keyword.
func (b *Builder) MultipleOf(f float64) *Builder {
	return b.set("multipleOf", f)
}

// Property adds one property schema under the properties keyword.
// The keyword map is rebuilt rather than mutated so that schemas
// returned by earlier [Builder.Schema] calls are unaffected.
func (b *Builder) Property(name string, sub *Builder) *Builder {
	props := make(map[string]any)
	if old, ok := b.s["properties"].(map[string]any); ok {
		maps.Copy(props, old)
	}
	props[name] = sub.Schema()
	return b.set("properties", props)
}

// Required adds the required keyword.
func (b *Builder) Required(names ...string) *Builder {
	return b.set("required", anyStrings(names))
}

// PatternProperty adds one schema under the patternProperties
// keyword, applying to every property whose name matches pattern.
func (b *Builder) PatternProperty(pattern string, sub *Builder) *Builder {
	pats := make(map[string]any)
	if old, ok := b.s["patternProperties"].(map[string]any); ok {
		maps.Copy(pats, old)
	}
	pats[pattern] = sub.Schema()
	return b.set("patternProperties", pats)
}

// AdditionalProperties adds the boolean form of the
// additionalProperties keyword.
func (b *Builder) AdditionalProperties(allowed bool) *Builder {
	return b.set("additionalProperties", allowed)
}

// AdditionalPropertiesSchema adds the schema form of the
// additionalProperties keyword.
func (b *Builder) AdditionalPropertiesSchema(sub *Builder) *Builder {
	return b.set("additionalProperties", sub.Schema())
}

// MinProperties adds the minProperties keyword.
func (b *Builder) MinProperties(n int) *Builder {
	return b.set("minProperties", n)
}

// MaxProperties adds the maxProperties keyword.
func (b *Builder) MaxProperties(n int) *Builder {
	return b.set("maxProperties", n)
}

// Items adds the schema form of the items keyword.
func (b *Builder) Items(sub *Builder) *Builder {
	return b.set("items", sub.Schema())
}

// ItemsAllowed adds the boolean form of the items keyword.
// With prefixItems present, ItemsAllowed(false) rejects elements
// beyond the tuple prefix.
func (b *Builder) ItemsAllowed(allowed bool) *Builder {
	return b.set("items", allowed)
}

// PrefixItems adds the prefixItems keyword, validating array
// elements positionally.
func (b *Builder) PrefixItems(subs ...*Builder) *Builder {
	return b.set("prefixItems", subSchemas(subs))
}

// MinItems adds the minItems keyword.
func (b *Builder) MinItems(n int) *Builder {
	return b.set("minItems", n)
}

// MaxItems adds the maxItems keyword.
func (b *Builder) MaxItems(n int) *Builder {
	return b.set("maxItems", n)
}

// UniqueItems adds the uniqueItems keyword.
func (b *Builder) UniqueItems(unique bool) *Builder {
	return b.set("uniqueItems", unique)
}

// Contains adds the contains keyword.
func (b *Builder) Contains(sub *Builder) *Builder {
	return b.set("contains", sub.Schema())
}

// MinContains adds the minContains keyword.
func (b *Builder) MinContains(n int) *Builder {
	return b.set("minContains", n)
}

// MaxContains adds the maxContains keyword.
func (b *Builder) MaxContains(n int) *Builder {
	return b.set("maxContains", n)
}

// AllOf adds the allOf keyword.
func (b *Builder) AllOf(subs ...*Builder) *Builder {
	return b.set("allOf", subSchemas(subs))
}

// AnyOf adds the anyOf keyword.
func (b *Builder) AnyOf(subs ...*Builder) *Builder {
	return b.set("anyOf", subSchemas(subs))
}

// OneOf adds the oneOf keyword.
func (b *Builder) OneOf(subs ...*Builder) *Builder {
	return b.set("oneOf", subSchemas(subs))
}

// Not adds the not keyword.
func (b *Builder) Not(sub *Builder) *Builder {
	return b.set("not", sub.Schema())
}

// If adds the if keyword.
func (b *Builder) If(sub *Builder) *Builder {
	return b.set("if", sub.Schema())
}

// Then adds the then keyword.
func (b *Builder) Then(sub *Builder) *Builder {
	return b.set("then", sub.Schema())
}

// Else adds the else keyword.
func (b *Builder) Else(sub *Builder) *Builder {
	return b.set("else", sub.Schema())
}
