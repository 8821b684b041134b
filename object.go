//-----------------------------------------------------------------------------
// Copyright (c) 2026-present The Yalix Authors
//
// This file is part of yalix.
//
// yalix is licensed under the terms of the MIT License. Please see file
// LICENSE.txt for your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

// Package yalix provides the runtime value model for the Yalix dialect: the
// tagged union of nil, booleans, numbers, strings, symbols and cons-cells
// that every evaluated form reduces to. Closures, promises, forward
// references, foreign functions and special-form sentinels also satisfy
// Object but live in package eval, since they need *eval.Environment and
// *eval.Node to exist.
package yalix

import (
	"fmt"
	"io"
)

// Object is the value every Yalix expression evaluates to.
type Object interface {
	fmt.Stringer

	// IsNil reports whether the concrete object is the nil value.
	IsNil() bool

	// IsAtom reports whether the object is not further decomposable.
	IsAtom() bool

	// IsEqual compares two objects for deep equality.
	IsEqual(Object) bool
}

// IsNil reports whether obj is nil itself (a Go nil interface) or the Yalix
// nil value.
func IsNil(obj Object) bool { return obj == nil || obj.IsNil() }

// Printable is an Object with a representation distinct from String().
type Printable interface {
	Print(io.Writer) (int, error)
}

// Print writes obj's representation to w, falling back to String() when obj
// does not implement Printable.
func Print(w io.Writer, obj Object) (int, error) {
	if pr, ok := obj.(Printable); ok {
		return pr.Print(w)
	}
	if IsNil(obj) {
		return Nil().Print(w)
	}
	return io.WriteString(w, obj.String())
}
