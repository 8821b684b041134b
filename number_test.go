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

func TestGetNumber(t *testing.T) {
	if _, ok := yalix.GetNumber(nil); ok {
		t.Error("nil is not a number")
	}
	var o yalix.Object = yalix.MakeInt(17)
	res, ok := yalix.GetNumber(o)
	if !ok {
		t.Error("is a number:", o)
	} else if !o.IsEqual(res) {
		t.Error("different numbers, expected:", o, "but got:", res)
	}
}

func TestIntFloatNotEqual(t *testing.T) {
	if yalix.MakeInt(2).IsEqual(yalix.MakeFloat(2.0)) {
		t.Error("Int(2) must not equal Float(2.0)")
	}
	if yalix.MakeFloat(2.0).IsEqual(yalix.MakeInt(2)) {
		t.Error("Float(2.0) must not equal Int(2)")
	}
}

func TestFloatString(t *testing.T) {
	tests := []struct {
		in   yalix.Float
		want string
	}{
		{yalix.MakeFloat(1.5), "1.5"},
		{yalix.MakeFloat(0), "0"},
	}
	for _, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("Float(%v).String() = %q, want %q", float64(test.in), got, test.want)
		}
	}
}
