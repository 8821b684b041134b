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

func TestStringPrint(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want string }{
		{"hello", `"hello"`},
		{"a\"b", `"a\"b"`},
		{"a\\b", `"a\\b"`},
		{"a\tb", `"a\tb"`},
		{"a\nb", `"a\nb"`},
	}
	for _, test := range tests {
		if got := yalix.MakeString(test.in).String(); got != test.want {
			t.Errorf("MakeString(%q).String() = %s, want %s", test.in, got, test.want)
		}
	}
}

func TestStringIsEqual(t *testing.T) {
	t.Parallel()
	if !yalix.MakeString("x").IsEqual(yalix.MakeString("x")) {
		t.Error(`"x" != "x"`)
	}
	if yalix.MakeString("x").IsEqual(yalix.MakeString("y")) {
		t.Error(`"x" == "y"`)
	}
	if yalix.MakeString("x").IsEqual(yalix.MakeSymbol("x")) {
		t.Error(`"x" == 'x`)
	}
}

func TestGetString(t *testing.T) {
	t.Parallel()
	if _, ok := yalix.GetString(nil); ok {
		t.Error("nil is not a string")
	}
	s := yalix.MakeString("v")
	got, ok := yalix.GetString(s)
	if !ok || got != s {
		t.Errorf("GetString(%v) = %v, %v; want %v, true", s, got, ok, s)
	}
}
