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

package yalix

import "io"

// Bool is a boolean value. #t reads as Bool(true), #f as Bool(false).
type Bool bool

// MakeBool returns the Bool object for b.
func MakeBool(b bool) Bool { return Bool(b) }

// IsNil always returns false; a boolean is never nil, even Bool(false).
func (Bool) IsNil() bool { return false }

// IsAtom always returns true; a boolean is atomic.
func (Bool) IsAtom() bool { return true }

// IsEqual compares two booleans by value.
func (b Bool) IsEqual(other Object) bool {
	ob, ok := other.(Bool)
	return ok && b == ob
}

// String renders #t or #f.
func (b Bool) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// Print writes the same representation as String.
func (b Bool) Print(w io.Writer) (int, error) { return io.WriteString(w, b.String()) }

// GetBool returns obj as a Bool, if possible.
func GetBool(obj Object) (Bool, bool) {
	b, ok := obj.(Bool)
	return b, ok
}

// IsTrue reports whether obj is a truthy value. Nil and Bool(false) are
// falsy; everything else, including the empty string and Int(0), is truthy.
func IsTrue(obj Object) bool {
	if IsNil(obj) {
		return false
	}
	if b, ok := obj.(Bool); ok {
		return bool(b)
	}
	return true
}

// IsFalse is the complement of IsTrue.
func IsFalse(obj Object) bool { return !IsTrue(obj) }
