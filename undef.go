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

// Unbound is the marker value returned when define is called with a name
// but no value form. (A ForwardRef that letrec has not yet filled reads as
// Nil, not Unbound.)
type Unbound struct{}

// MakeUnbound returns the Unbound value.
func MakeUnbound() Unbound { return Unbound{} }

// IsNil always returns false; Unbound is a distinct marker, not nil.
func (Unbound) IsNil() bool { return false }

// IsAtom always returns false: Unbound carries no printable/atomic value.
func (Unbound) IsAtom() bool { return false }

// IsEqual returns true only if other is also Unbound.
func (Unbound) IsEqual(other Object) bool { return IsUnbound(other) }

// String renders the marker's printed form.
func (Unbound) String() string { return "#<unbound>" }

// IsUnbound reports whether obj is the Unbound marker.
func IsUnbound(obj Object) bool {
	_, ok := obj.(Unbound)
	return ok
}
