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

func wantNumber(args []yalix.Object, i int, op string) (yalix.Number, error) {
	n, ok := yalix.GetNumber(args[i])
	if !ok {
		return nil, eval.NewError(eval.KindMalformedForm, "%s: expected a number, got %v", op, args[i])
	}
	return n, nil
}

// numAdd/numSub/numMul widen to Float as soon as either operand is a
// Float, and stay Int otherwise — the only two members of the numeric
// tower (§4.1 Non-goals: no rationals, no bignums).
func numAdd(a, b yalix.Number) yalix.Number {
	if ai, ok := a.(yalix.Int); ok {
		if bi, ok := b.(yalix.Int); ok {
			return yalix.MakeInt(int64(ai) + int64(bi))
		}
	}
	return yalix.MakeFloat(a.Float() + b.Float())
}

func numSub(a, b yalix.Number) yalix.Number {
	if ai, ok := a.(yalix.Int); ok {
		if bi, ok := b.(yalix.Int); ok {
			return yalix.MakeInt(int64(ai) - int64(bi))
		}
	}
	return yalix.MakeFloat(a.Float() - b.Float())
}

func numMul(a, b yalix.Number) yalix.Number {
	if ai, ok := a.(yalix.Int); ok {
		if bi, ok := b.(yalix.Int); ok {
			return yalix.MakeInt(int64(ai) * int64(bi))
		}
	}
	return yalix.MakeFloat(a.Float() * b.Float())
}

func numCmp(a, b yalix.Number) int {
	af, bf := a.Float(), b.Float()
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

func registerArithmetic(env *eval.Environment) {
	eval.InjectForeign(env, "+", 0, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		acc := yalix.Number(yalix.MakeInt(0))
		for i := range args {
			n, err := wantNumber(args, i, "+")
			if err != nil {
				return nil, err
			}
			acc = numAdd(acc, n)
		}
		return acc, nil
	})
	eval.InjectForeign(env, "-", 2, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		acc, err := wantNumber(args, 0, "-")
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return numSub(yalix.MakeInt(0), acc), nil
		}
		for i := 1; i < len(args); i++ {
			n, err := wantNumber(args, i, "-")
			if err != nil {
				return nil, err
			}
			acc = numSub(acc, n)
		}
		return acc, nil
	})
	eval.InjectForeign(env, "*", 0, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		acc := yalix.Number(yalix.MakeInt(1))
		for i := range args {
			n, err := wantNumber(args, i, "*")
			if err != nil {
				return nil, err
			}
			acc = numMul(acc, n)
		}
		return acc, nil
	})
	eval.InjectForeign(env, "/", 2, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		acc, err := wantNumber(args, 0, "/")
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(args); i++ {
			n, err := wantNumber(args, i, "/")
			if err != nil {
				return nil, err
			}
			if n.Float() == 0 {
				return nil, eval.NewError(eval.KindHostError, "/: division by zero")
			}
			acc = yalix.MakeFloat(acc.Float() / n.Float())
		}
		return acc, nil
	})
	eval.InjectForeign(env, "mod", 2, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		a, err := wantNumber(args, 0, "mod")
		if err != nil {
			return nil, err
		}
		b, err := wantNumber(args, 1, "mod")
		if err != nil {
			return nil, err
		}
		ai, aok := a.(yalix.Int)
		bi, bok := b.(yalix.Int)
		if !aok || !bok {
			return nil, eval.NewError(eval.KindMalformedForm, "mod: expects two integers")
		}
		if bi == 0 {
			return nil, eval.NewError(eval.KindHostError, "mod: division by zero")
		}
		return yalix.MakeInt(int64(ai) % int64(bi)), nil
	})
}
