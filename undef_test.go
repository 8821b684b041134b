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

func TestIsUnbound(t *testing.T) {
	t.Parallel()
	if !yalix.IsUnbound(yalix.MakeUnbound()) {
		t.Error("MakeUnbound() is not Unbound")
	}
	if yalix.IsUnbound(yalix.Nil()) {
		t.Error("Nil() is Unbound")
	}
	if !yalix.MakeUnbound().IsEqual(yalix.MakeUnbound()) {
		t.Error("two Unbound values must be IsEqual")
	}
}
