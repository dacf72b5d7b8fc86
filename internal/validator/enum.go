// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"github.com/altshiftab/jsonvalid/pkg/validerr"
)

// validateEnum implements the enum keyword: the value must be
// structurally equal to one of the listed members.
func validateEnum(value, arg any, path string, errs *validerr.List) {
	members, ok := arg.([]any)
	if !ok {
		badArg(errs, path, "enum", arg, "array")
		return
	}
	for _, e := range members {
		if deepEqual(value, e) {
			return
		}
	}
	errs.Add(path, &validerr.NotInEnum{Value: value})
}

// validateConst implements the const keyword.
func validateConst(value, arg any, path string, errs *validerr.List) {
	if !deepEqual(value, arg) {
		errs.Add(path, &validerr.ConstMismatch{Expected: arg, Actual: value})
	}
}
