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

package yalix_test

import (
	"testing"

	"yalix.dev/yalix"
)

func TestMakeSymbolInterns(t *testing.T) {
	t.Parallel()

	sym1 := yalix.MakeSymbol("greeting")
	sym2 := yalix.MakeSymbol("greeting")
	if sym1 != sym2 {
		t.Errorf("MakeSymbol should return the same *Symbol for the same name, got %p and %p", sym1, sym2)
	}
	if !sym1.IsEqual(sym2) {
		t.Error("interned symbols with the same name must be IsEqual")
	}
	if sym1.IsEqual(yalix.MakeSymbol("other")) {
		t.Error("symbols with different names must not be IsEqual")
	}
}

func TestFindSymbol(t *testing.T) {
	t.Parallel()

	name := "symboltest-findme"
	if sym, found := yalix.FindSymbol(name); found {
		t.Errorf("expected %q not to be interned yet, got %v", name, sym)
	}
	made := yalix.MakeSymbol(name)
	found, ok := yalix.FindSymbol(name)
	if !ok {
		t.Fatalf("expected %q to be found after MakeSymbol", name)
	}
	if found != made {
		t.Errorf("FindSymbol returned a different symbol than MakeSymbol made")
	}
}

func TestGetSymbol(t *testing.T) {
	t.Parallel()

	if _, ok := yalix.GetSymbol(nil); ok {
		t.Error("nil is not a symbol")
	}
	sym := yalix.MakeSymbol("x")
	got, ok := yalix.GetSymbol(sym)
	if !ok || got != sym {
		t.Errorf("GetSymbol(%v) = %v, %v; want %v, true", sym, got, ok, sym)
	}
	if _, ok := yalix.GetSymbol(yalix.MakeInt(1)); ok {
		t.Error("an Int is not a symbol")
	}
}

func TestSymbolName(t *testing.T) {
	t.Parallel()
	sym := yalix.MakeSymbol("lambda")
	if got := sym.Name(); got != "lambda" {
		t.Errorf("Name() = %q, want %q", got, "lambda")
	}
	if got := sym.String(); got != "lambda" {
		t.Errorf("String() = %q, want %q", got, "lambda")
	}
}
