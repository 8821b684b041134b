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

func TestForwardRefUnsetReadsAsUnset(t *testing.T) {
	ref := &eval.ForwardRef{}
	if _, written := ref.Get(); written {
		t.Error("a fresh ForwardRef should report unwritten")
	}
}

func TestForwardRefWritesOnce(t *testing.T) {
	ref := &eval.ForwardRef{}
	if err := ref.Set(yalix.MakeInt(1)); err != nil {
		t.Fatalf("first Set: unexpected error: %v", err)
	}
	if err := ref.Set(yalix.MakeInt(2)); err == nil {
		t.Fatal("expected the second Set to fail")
	}
	got, written := ref.Get()
	if !written {
		t.Fatal("expected the ref to report written after Set")
	}
	if i, ok := got.(yalix.Int); !ok || i != 1 {
		t.Errorf("got %v, want the first value Int(1) to stick", got)
	}
}

func TestPromiseForceMemoizesValue(t *testing.T) {
	env := eval.NewEnvironment()
	calls := 0
	body := []eval.Node{
		&countingNode{fn: func() (yalix.Object, error) {
			calls++
			return yalix.MakeInt(int64(calls)), nil
		}},
	}
	p := eval.NewPromise(nil, body)
	first, err := p.Force(env)
	if err != nil {
		t.Fatalf("first Force: unexpected error: %v", err)
	}
	second, err := p.Force(env)
	if err != nil {
		t.Fatalf("second Force: unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("body ran %d times, want 1", calls)
	}
	if !first.IsEqual(second) {
		t.Errorf("Force should return the same memoised value both times: %v vs %v", first, second)
	}
}

// countingNode is a minimal Node whose Compute runs an arbitrary thunk,
// used to observe how many times Promise.Force evaluates its body.
type countingNode struct {
	fn func() (yalix.Object, error)
}

func (c *countingNode) Source() eval.Brand { return eval.Brand{} }

func (c *countingNode) Compute(*eval.Environment, *eval.Frame) (yalix.Object, error) {
	return c.fn()
}
