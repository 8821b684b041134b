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

package builtins

import (
	"yalix.dev/yalix"
	"yalix.dev/yalix/eval"
)

func cmpChain(op string, args []yalix.Object, ok func(cmp int) bool) (yalix.Object, error) {
	acc, err := wantNumber(args, 0, op)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		n, err := wantNumber(args, i, op)
		if err != nil {
			return nil, err
		}
		if !ok(numCmp(acc, n)) {
			return yalix.MakeBool(false), nil
		}
		acc = n
	}
	return yalix.MakeBool(true), nil
}

func registerComparisons(env *eval.Environment) {
	eval.InjectForeign(env, "<", 2, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return cmpChain("<", args, func(c int) bool { return c < 0 })
	})
	eval.InjectForeign(env, "<=", 2, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return cmpChain("<=", args, func(c int) bool { return c <= 0 })
	})
	eval.InjectForeign(env, ">", 2, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return cmpChain(">", args, func(c int) bool { return c > 0 })
	})
	eval.InjectForeign(env, ">=", 2, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return cmpChain(">=", args, func(c int) bool { return c >= 0 })
	})
	eval.InjectForeign(env, "=", 2, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		for i := 1; i < len(args); i++ {
			if !args[0].IsEqual(args[i]) {
				return yalix.MakeBool(false), nil
			}
		}
		return yalix.MakeBool(true), nil
	})
	eval.InjectForeign(env, "not=", 2, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		for i := 1; i < len(args); i++ {
			if args[0].IsEqual(args[i]) {
				return yalix.MakeBool(false), nil
			}
		}
		return yalix.MakeBool(true), nil
	})
}
