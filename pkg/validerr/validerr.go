// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validerr defines the errors returned by a failure to validate.
//
// Every way an instance can fail validation is represented by its own
// [Detail] type, so callers can switch over the detail to inspect the
// failure programmatically rather than parsing messages.
package validerr

import (
	"errors"
)

// Detail describes one kind of validation failure.
// The set of types implementing Detail is closed;
// they are all defined in this package.
type Detail interface {
	detail() // restrict to types defined in this package

	// Message returns the human-readable description of the failure,
	// without any location information.
	Message() string
}

// Error is returned by validation when an instance fails validation.
// Path locates the failing value within the instance being validated:
// it is a JSON-pointer-like string with segments joined by "/",
// and is empty at the document root.
type Error struct {
	Path   string
	Detail Detail
}

// Error returns the error message that a user should see.
// This implements the error interface.
func (ve *Error) Error() string {
	loc := "#"
	if ve.Path != "" {
		loc = "#/" + ve.Path
	}
	return loc + ": " + ve.Detail.Message()
}

// Errors is a collection of Error values.
type Errors struct {
	Errs []*Error
}

// Error returns the error message that a user should see.
// This implements the error interface.
func (ves *Errors) Error() string {
	if len(ves.Errs) == 1 {
		return ves.Errs[0].Error()
	}
	errs := make([]error, len(ves.Errs))
	for i, ve := range ves.Errs {
		errs[i] = ve
	}
	return errors.Join(errs...).Error()
}

// IsValidationError reports whether err is a validation error,
// as opposed to an error in validation processing itself.
func IsValidationError(err error) bool {
	switch err.(type) {
	case *Error, *Errors:
		return true
	}
	return false
}

// List accumulates validation errors during recursive descent.
// Validation functions append to a List and keep going;
// no failure is signaled through control flow until the
// top-level entry point converts a non-empty List with [List.Err].
type List struct {
	errs []*Error
}

// Add appends a new error for the given instance path.
func (l *List) Add(path string, d Detail) {
	l.errs = append(l.errs, &Error{Path: path, Detail: d})
}

// AddError appends an existing error.
func (l *List) AddError(ve *Error) {
	l.errs = append(l.errs, ve)
}

// Merge appends all errors accumulated in other.
func (l *List) Merge(other *List) {
	l.errs = append(l.errs, other.errs...)
}

// Len returns the number of accumulated errors.
func (l *List) Len() int {
	return len(l.errs)
}

// Errors returns the accumulated errors in insertion order.
func (l *List) Errors() []*Error {
	return l.errs
}

// Err returns nil if the list is empty, and otherwise an
// [*Errors] holding the accumulated errors.
func (l *List) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return &Errors{Errs: l.errs}
}
