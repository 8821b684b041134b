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

// Symbol is an interned name. Two symbols with the same name are always
// the same *Symbol, so callers may compare symbols by pointer; the global
// frame is keyed by this same interned name.
type Symbol struct{ name string }

// MakeSymbol interns name and returns its Symbol. An empty name interns
// just as any other; callers that need to reject it do so themselves.
func MakeSymbol(name string) *Symbol { return internSymbol(name) }

// FindSymbol returns the Symbol already interned for name, if any, without
// creating one.
func FindSymbol(name string) (*Symbol, bool) { return findSymbol(name) }

// IsNil is false for every interned symbol; only a nil *Symbol reports true.
func (sym *Symbol) IsNil() bool { return sym == nil }

// IsAtom always returns true.
func (sym *Symbol) IsAtom() bool { return true }

// IsEqual compares by identity: since every Symbol is interned, two equal
// symbols are always the same pointer.
func (sym *Symbol) IsEqual(other Object) bool {
	osym, ok := other.(*Symbol)
	return ok && sym == osym
}

// String returns the symbol's name.
func (sym *Symbol) String() string {
	if sym == nil {
		return ""
	}
	return sym.name
}

// Print writes the same representation as String.
func (sym *Symbol) Print(w io.Writer) (int, error) { return io.WriteString(w, sym.String()) }

// Name returns the symbol's interned name.
func (sym *Symbol) Name() string { return sym.String() }

// GetSymbol returns obj as a *Symbol, if possible.
func GetSymbol(obj Object) (*Symbol, bool) {
	if IsNil(obj) {
		return nil, false
	}
	sym, ok := obj.(*Symbol)
	return sym, ok
}
