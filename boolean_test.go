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

func TestIsTrue(t *testing.T) {
	t.Parallel()
	if yalix.IsTrue(yalix.Nil()) {
		t.Error("Nil is true")
	}
	if yalix.IsTrue(yalix.MakeBool(false)) {
		t.Error("#f is true")
	}
	if !yalix.IsTrue(yalix.MakeUnbound()) {
		t.Error("Unbound must be truthy in Yalix")
	}
	if !yalix.IsTrue(yalix.MakeString("")) {
		t.Error("the empty string must be truthy in Yalix")
	}
	if !yalix.IsTrue(yalix.MakeInt(0)) {
		t.Error("0 must be truthy in Yalix")
	}
	if !yalix.IsTrue(yalix.MakeBool(true)) {
		t.Error("#t is not true")
	}
}

func TestIsFalse(t *testing.T) {
	t.Parallel()
	if !yalix.IsFalse(yalix.Nil()) {
		t.Error("Nil is not false")
	}
	if !yalix.IsFalse(yalix.MakeBool(false)) {
		t.Error("#f is not false")
	}
	if yalix.IsFalse(yalix.MakeString("")) {
		t.Error("the empty string must not be false")
	}
}

func TestBoolPrint(t *testing.T) {
	t.Parallel()
	if got, want := yalix.MakeBool(true).String(), "#t"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := yalix.MakeBool(false).String(), "#f"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
