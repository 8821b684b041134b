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

package eval_test

import (
	"errors"
	"testing"

	"yalix.dev/yalix/eval"
)

func TestErrorStringWithoutBrand(t *testing.T) {
	err := eval.NewError(eval.KindHostError, "boom: %d", 42)
	if got, want := err.Error(), "HostError: boom: 42"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrorStringWithBrand(t *testing.T) {
	brand := eval.Brand{Source: "(foo)", Offset: 1}
	err := eval.NewErrorAt(eval.KindUnboundReference, brand, "symbol %q not bound", "foo")
	want := `UnboundReference: symbol "foo" not bound at line:1, col:2`
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrorUnwrapExposesCause(t *testing.T) {
	cause := errors.New("underlying failure")
	err := eval.NewError(eval.KindHostError, "wrapped").WithCause(cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestKindStringNames(t *testing.T) {
	cases := map[eval.Kind]string{
		eval.KindUnboundReference: "UnboundReference",
		eval.KindArityMismatch:    "ArityMismatch",
		eval.KindNotCallable:      "NotCallable",
		eval.KindMalformedForm:    "MalformedForm",
		eval.KindAssignToUnbound:  "AssignToUnbound",
		eval.KindHostError:        "HostError",
		eval.KindParseError:       "ParseError",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", kind, got, want)
		}
	}
}
