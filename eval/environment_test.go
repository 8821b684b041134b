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

	"yalix.dev/yalix"
	"yalix.dev/yalix/eval"
)

func TestLookupFallsThroughToGlobal(t *testing.T) {
	env := eval.NewEnvironment()
	x := yalix.MakeSymbol("x")
	env.DefineGlobal(x, yalix.MakeInt(1))

	frame := env.Extend(nil, "body", 0)
	got, found := env.Lookup(x, frame)
	if !found {
		t.Fatal("expected x to be found via the global frame")
	}
	if i, ok := got.(yalix.Int); !ok || i != 1 {
		t.Errorf("got %v, want Int(1)", got)
	}
}

func TestLookupPrefersNearestLexicalBinding(t *testing.T) {
	env := eval.NewEnvironment()
	x := yalix.MakeSymbol("shadowed")
	env.DefineGlobal(x, yalix.MakeInt(0))

	outer := env.Extend(nil, "outer", 0)
	outer.Bind(x, yalix.MakeInt(1))
	inner := env.Extend(outer, "inner", 0)
	inner.Bind(x, yalix.MakeInt(2))

	got, found := env.Lookup(x, inner)
	if !found {
		t.Fatal("expected x to be found")
	}
	if i, ok := got.(yalix.Int); !ok || i != 2 {
		t.Errorf("got %v, want the innermost binding Int(2)", got)
	}
}

func TestSetLocalMutatesNearestBinding(t *testing.T) {
	env := eval.NewEnvironment()
	x := yalix.MakeSymbol("x")
	env.DefineGlobal(x, yalix.MakeInt(0))

	outer := env.Extend(nil, "outer", 0)
	outer.Bind(x, yalix.MakeInt(1))
	inner := env.Extend(outer, "inner", 0)

	if !env.SetLocal(x, yalix.MakeInt(9), inner) {
		t.Fatal("expected SetLocal to find an existing binding")
	}
	got, _ := env.Lookup(x, inner)
	if i, ok := got.(yalix.Int); !ok || i != 9 {
		t.Errorf("got %v, want Int(9) in the outer frame", got)
	}
	if glob, _ := env.LookupGlobal(x); glob.(yalix.Int) != 0 {
		t.Errorf("SetLocal should not have touched the global binding, got %v", glob)
	}
}

func TestSetLocalReportsUnboundName(t *testing.T) {
	env := eval.NewEnvironment()
	if env.SetLocal(yalix.MakeSymbol("never-bound"), yalix.MakeInt(1), nil) {
		t.Fatal("expected SetLocal to report no binding found")
	}
}

func TestSetLocalDoesNotFallThroughToGlobal(t *testing.T) {
	env := eval.NewEnvironment()
	x := yalix.MakeSymbol("g")
	env.DefineGlobal(x, yalix.MakeInt(1))
	frame := env.Extend(nil, "body", 0)
	if env.SetLocal(x, yalix.MakeInt(2), frame) {
		t.Fatal("expected SetLocal to report no lexical binding found")
	}
	got, _ := env.LookupGlobal(x)
	if i, ok := got.(yalix.Int); !ok || i != 1 {
		t.Errorf("got %v, want the global binding left untouched at Int(1)", got)
	}
}

func TestFrameNameOnNilFrameIsGlobal(t *testing.T) {
	var f *eval.Frame
	if got := f.Name(); got != "<global>" {
		t.Errorf("got %q, want <global>", got)
	}
	if f.Parent() != nil {
		t.Error("nil frame's parent should be nil")
	}
}

func TestGensymProducesDistinctSymbols(t *testing.T) {
	env := eval.NewEnvironment()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sym := env.Gensym()
		if seen[sym.Name()] {
			t.Fatalf("gensym produced a repeat: %s", sym.Name())
		}
		seen[sym.Name()] = true
	}
}
