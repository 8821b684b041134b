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
	"testing"

	"yalix.dev/yalix/eval"
)

func TestBrandIsZero(t *testing.T) {
	var zero eval.Brand
	if !zero.IsZero() {
		t.Error("a Brand with no Source should be zero")
	}
	branded := eval.Brand{Source: "(+ 1 2)", Offset: 1}
	if branded.IsZero() {
		t.Error("a Brand with a Source should not be zero")
	}
}

func TestBrandLineCol(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		offset   int
		wantLine int
		wantCol  int
	}{
		{"start-of-source", "(+ 1 2)", 0, 1, 1},
		{"first-line-mid", "(+ 1 2)", 3, 1, 4},
		{"second-line", "(+ 1\n   2)", 8, 2, 4},
		{"third-line", "\n\n(x)", 3, 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := eval.Brand{Source: tc.src, Offset: tc.offset}
			line, col := b.LineCol()
			if line != tc.wantLine || col != tc.wantCol {
				t.Errorf("LineCol() = %d:%d, want %d:%d", line, col, tc.wantLine, tc.wantCol)
			}
		})
	}
}

func TestBrandSourceView(t *testing.T) {
	src := "(define (f x)\n  (+ x 1))\n(define (g y) y)"
	b := eval.Brand{Source: src, Offset: 18} // a byte inside f's body
	view := b.SourceView()
	if view != "(define (f x)\n  (+ x 1))" {
		t.Errorf("SourceView() = %q", view)
	}
}

func TestBrandSourceViewWithNoEnclosingForm(t *testing.T) {
	b := eval.Brand{Source: "bare-symbol", Offset: 3}
	if got := b.SourceView(); got != "bare-symbol" {
		t.Errorf("SourceView() = %q, want the whole source", got)
	}
}
