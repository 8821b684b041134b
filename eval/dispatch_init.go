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

package eval

import "yalix.dev/yalix"

// init wires specialFormDispatch: the rarely-taken path where a special
// form's name was bound to a variable (aliasing it) and then applied as an
// ordinary value (§4.4). Each entry reconstructs the matching typed node
// from the raw, unevaluated argument nodes and delegates to its Compute.
func init() {
	registerSpecialForm(kwIf, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromIf(args, brand)
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
	registerSpecialForm(kwLambda1, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromLambda("", args, brand)
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
	registerSpecialForm(kwLambda2, specialFormDispatch[kwLambda1])
	registerSpecialForm(kwDefine, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromDefine(args, brand)
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
	registerSpecialForm(kwLet, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromLet(args, brand)
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
	registerSpecialForm(kwLetStar, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromLetStar(args, brand)
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
	registerSpecialForm(kwLetRec, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromLetRec(args, brand)
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
	registerSpecialForm(kwSet, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromSet(args, brand)
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
	registerSpecialForm(kwBegin, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		return evalBody(env, args, frame)
	})
	registerSpecialForm(kwDelay, func(_ *Environment, frame *Frame, args []Node, _ Brand) (yalix.Object, error) {
		return NewPromise(frame, args), nil
	})
	registerSpecialForm(kwQuote, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromUnary(args, brand, func(e Node) Node { return &Quote{Expr: e, Brand: brand} })
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
	registerSpecialForm(kwSyntaxQuote, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromUnary(args, brand, func(e Node) Node { return &SyntaxQuote{Expr: e, Brand: brand} })
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
	registerSpecialForm(kwEval, func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error) {
		n, err := fromUnary(args, brand, func(e Node) Node { return &EvalForm{Expr: e, Brand: brand} })
		if err != nil {
			return nil, err
		}
		return n.Compute(env, frame)
	})
}

// BindSpecialForms installs a *SpecialForm sentinel under each recognised
// keyword's name in env's global frame (§3, §4.4): the binding a name like
// `if` or `lambda` resolves to when referenced as a bare symbol rather than
// applied directly as `(if ...)`. This is what makes aliasing a special
// form — `(define my-if if)`, then calling `(my-if ...)` — dispatch through
// specialFormDispatch instead of failing as an unbound reference.
func BindSpecialForms(env *Environment) {
	for name := range specialFormDispatch {
		env.DefineGlobal(yalix.MakeSymbol(name), &SpecialForm{Name: name})
	}
}
