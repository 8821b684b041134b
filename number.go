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

import (
	"io"
	"strconv"
)

// Number is satisfied by Int and Float, the two members of the (deliberately
// small, per the Non-goals) numeric tower.
type Number interface {
	Object
	Float() float64
}

// Int is a signed 64-bit integer value.
type Int int64

// MakeInt creates an Int object.
func MakeInt(i int64) Int { return Int(i) }

// IsNil always returns false.
func (Int) IsNil() bool { return false }

// IsAtom always returns true.
func (Int) IsAtom() bool { return true }

// IsEqual compares two numbers. An Int is only ever equal to another Int;
// Int(2) and Float(2.0) are distinct values, per the tagged union in the
// data model.
func (i Int) IsEqual(other Object) bool {
	oi, ok := other.(Int)
	return ok && i == oi
}

// String renders the decimal representation.
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Print writes the same representation as String.
func (i Int) Print(w io.Writer) (int, error) { return io.WriteString(w, i.String()) }

// Float returns the value widened to float64, satisfying Number.
func (i Int) Float() float64 { return float64(i) }

// GetInt returns obj as an Int, if possible.
func GetInt(obj Object) (Int, bool) {
	i, ok := obj.(Int)
	return i, ok
}

// Float is an IEEE-754 double precision value.
type Float float64

// MakeFloat creates a Float object.
func MakeFloat(f float64) Float { return Float(f) }

// IsNil always returns false.
func (Float) IsNil() bool { return false }

// IsAtom always returns true.
func (Float) IsAtom() bool { return true }

// IsEqual compares two floats; an Int never equals a Float.
func (f Float) IsEqual(other Object) bool {
	of, ok := other.(Float)
	return ok && f == of
}

// String renders the value in Go's shortest 'g' form; a whole-valued float
// prints without a decimal point (1000.0 as "1000", 0.0 as "0").
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Print writes the same representation as String.
func (f Float) Print(w io.Writer) (int, error) { return io.WriteString(w, f.String()) }

// Float returns f itself, satisfying Number.
func (f Float) Float() float64 { return float64(f) }

// GetFloat returns obj as a Float, if possible.
func GetFloat(obj Object) (Float, bool) {
	f, ok := obj.(Float)
	return f, ok
}

// GetNumber returns obj as a Number, if possible.
func GetNumber(obj Object) (Number, bool) {
	if IsNil(obj) {
		return nil, false
	}
	n, ok := obj.(Number)
	return n, ok
}
