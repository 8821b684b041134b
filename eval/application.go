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

// dispatchApply routes a call to callee's kind (§4.4): Closure and Foreign
// evaluate args in the caller's frame (applicative order, left-to-right);
// SpecialForm hands args unevaluated to the matching builtin; ForwardRef
// forwards transparently to its referent.
func dispatchApply(env *Environment, frame *Frame, callee yalix.Object, args []Node, brand Brand) (yalix.Object, error) {
	switch fn := callee.(type) {
	case *Closure:
		return applyClosure(env, frame, fn, args, brand)
	case *Foreign:
		return applyForeign(env, frame, fn, args, brand)
	case *SpecialForm:
		return applySpecialForm(env, frame, fn, args, brand)
	case *ForwardRef:
		target, written := fn.Get()
		if !written {
			return nil, NewErrorAt(KindNotCallable, brand, "cannot invoke unset forward reference")
		}
		return dispatchApply(env, frame, target, args, brand)
	default:
		return nil, NewErrorAt(KindNotCallable, brand, "cannot invoke %v", callee)
	}
}

func evalArgs(env *Environment, frame *Frame, args []Node) ([]yalix.Object, error) {
	out := make([]yalix.Object, len(args))
	for i, arg := range args {
		val, err := arg.Compute(env, frame)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func applyClosure(env *Environment, frame *Frame, fn *Closure, args []Node, brand Brand) (yalix.Object, error) {
	fixed := fn.FixedArity()
	if fn.Variadic {
		if len(args) < fixed {
			return nil, NewErrorAt(KindArityMismatch, brand,
				"%s: at least %d argument(s) required, but %d given", calleeName(fn), fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, NewErrorAt(KindArityMismatch, brand,
			"%s: exactly %d argument(s) required, but %d given", calleeName(fn), fixed, len(args))
	}

	callFrame := env.Extend(fn.Env, fn.Name, len(fn.Formals))
	for i := 0; i < fixed; i++ {
		val, err := args[i].Compute(env, frame)
		if err != nil {
			return nil, err
		}
		callFrame.Bind(fn.Formals[i], val)
	}
	if fn.Variadic {
		rest, err := buildArgList(env, frame, args[fixed:])
		if err != nil {
			return nil, err
		}
		callFrame.Bind(fn.Formals[fixed], rest)
	}
	return evalBody(env, fn.Body, callFrame)
}

// buildArgList evaluates the trailing, variadic argument expressions
// left-to-right and collects them into a lazy cons-list (§4.4, §4.5): the
// tail of each cell is a Promise so that variadic collection shares the
// same shape as a quoted or spliced list.
func buildArgList(env *Environment, frame *Frame, args []Node) (yalix.Object, error) {
	if len(args) == 0 {
		return yalix.Nil(), nil
	}
	head, err := args[0].Compute(env, frame)
	if err != nil {
		return nil, err
	}
	rest := args[1:]
	tailPromise := NewPromise(frame, nil)
	tailPromise.forced = true
	tailPromise.value, tailPromise.err = buildArgList(env, frame, rest)
	if tailPromise.err != nil {
		return nil, tailPromise.err
	}
	return yalix.Cons(head, tailPromise), nil
}

func applyForeign(env *Environment, frame *Frame, fn *Foreign, args []Node, brand Brand) (yalix.Object, error) {
	fixed := fn.Arity
	if fn.Variadic {
		fixed = fn.Arity - 1
	}
	if fn.Variadic {
		if len(args) < fixed {
			return nil, NewErrorAt(KindArityMismatch, brand,
				"%s: at least %d argument(s) required, but %d given", fn.Name, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, NewErrorAt(KindArityMismatch, brand,
			"%s: exactly %d argument(s) required, but %d given", fn.Name, fixed, len(args))
	}

	evaluated, err := evalArgs(env, frame, args)
	if err != nil {
		return nil, err
	}
	if fn.Variadic {
		restList := yalix.MakeList(evaluated[fixed:]...)
		evaluated = append(evaluated[:fixed:fixed], restList)
	}

	result, err := func() (res yalix.Object, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = NewErrorAt(KindHostError, brand, "foreign function %q panicked: %v", fn.Name, rec)
			}
		}()
		return fn.Fn(env, evaluated)
	}()
	if err != nil {
		if yerr, ok := err.(*Error); ok {
			return nil, yerr
		}
		return nil, NewErrorAt(KindHostError, brand, "foreign function %q failed: %v", fn.Name, err).WithCause(err)
	}
	return result, nil
}

func applySpecialForm(env *Environment, frame *Frame, fn *SpecialForm, args []Node, brand Brand) (yalix.Object, error) {
	impl, found := specialFormDispatch[fn.Name]
	if !found {
		return nil, NewErrorAt(KindNotCallable, brand, "no implementation bound for special form %q", fn.Name)
	}
	return impl(env, frame, args, brand)
}

func calleeName(fn *Closure) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "closure"
}
