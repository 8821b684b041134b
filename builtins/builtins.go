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

// Package builtins installs the native Go primitives that the embedded
// core library (the lib/*.yx files bootstrapped by eval.Bootstrap) is
// written against: pair/list access, arithmetic, comparisons, printing,
// and the handful of type predicates and host hooks that cannot be
// expressed in Yalix itself. Grounded on the teacher's sxbuiltins
// package, one Go function per primitive rather than one struct value
// per primitive (the simpler Foreign calling convention needs no
// Fn0/Fn1/Fn2 arity specialisation).
package builtins

import (
	"fmt"
	"io"
	"os"

	"yalix.dev/yalix"
	"yalix.dev/yalix/eval"
	"yalix.dev/yalix/reader"
)

// Register installs every native primitive into env's global frame. It is
// called once, before the embedded core library is parsed, so that the
// library source can already call car, +, print, and friends.
func Register(env *eval.Environment) {
	env.DefineGlobal(yalix.MakeSymbol("nil"), yalix.Nil())
	eval.BindSpecialForms(env)
	eval.SetPrintLength(env, 0)
	registerPairs(env)
	registerArithmetic(env)
	registerComparisons(env)
	registerPredicates(env)
	registerPrinting(env)
	registerMisc(env)
}

func wantPair(args []yalix.Object, i int) (*yalix.Pair, error) {
	pair, ok := yalix.GetPair(args[i])
	if !ok {
		return nil, eval.NewError(eval.KindMalformedForm, "expected a pair, got %v", args[i])
	}
	return pair, nil
}

func registerPairs(env *eval.Environment) {
	eval.InjectForeign(env, "cons", 2, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return yalix.Cons(args[0], args[1]), nil
	})
	eval.InjectForeign(env, "car", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		pair, err := wantPair(args, 0)
		if err != nil {
			return nil, err
		}
		return pair.Car(), nil
	})
	eval.InjectForeign(env, "cdr", 1, false, func(e *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		pair, err := wantPair(args, 0)
		if err != nil {
			return nil, err
		}
		cdr := pair.Cdr()
		if p, ok := cdr.(*eval.Promise); ok {
			return p.Force(e)
		}
		return cdr, nil
	})
	eval.InjectForeign(env, "first", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return eval.First(args[0])
	})
	eval.InjectForeign(env, "rest", 1, false, func(e *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return eval.Rest(e, args[0])
	})
	eval.InjectForeign(env, "next", 1, false, func(e *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		tail, err := eval.Rest(e, args[0])
		if err != nil {
			return nil, err
		}
		if pair, ok := yalix.GetPair(tail); ok && pair.IsNil() {
			return yalix.Nil(), nil
		}
		return tail, nil
	})
	eval.InjectForeign(env, "list", 0, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return yalix.MakeList(args...), nil
	})
}

func registerMisc(env *eval.Environment) {
	eval.InjectForeign(env, "gensym", 0, false, func(e *eval.Environment, _ []yalix.Object) (yalix.Object, error) {
		return e.Gensym(), nil
	})
	eval.InjectForeign(env, "error", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		if s, ok := yalix.GetString(args[0]); ok {
			return nil, eval.NewError(eval.KindHostError, "%s", s.GoString())
		}
		return nil, eval.NewError(eval.KindHostError, "%s", args[0].String())
	})
	eval.InjectForeign(env, "read-string", 1, false, func(e *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		s, ok := yalix.GetString(args[0])
		if !ok {
			return nil, eval.NewError(eval.KindMalformedForm, "read-string: expected a string, got %v", args[0])
		}
		rd := reader.New("read-string", s.GoString())
		node, err := rd.ReadForm()
		if err != nil {
			return nil, eval.NewError(eval.KindParseError, "read-string: %s", err)
		}
		// Wrapping in Quote reuses the same node->datum conversion that
		// `'expr` itself uses, so read-string yields unevaluated data
		// regardless of what kind of form it parsed.
		return (&eval.Quote{Expr: node}).Compute(e, nil)
	})
	eval.InjectForeign(env, "interop", 2, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		name, ok := yalix.GetString(args[0])
		if !ok {
			return nil, eval.NewError(eval.KindMalformedForm, "interop: expected a name string")
		}
		arity, ok := yalix.GetInt(args[1])
		if !ok {
			return nil, eval.NewError(eval.KindMalformedForm, "interop: expected an integer arity")
		}
		return eval.Interop(name.GoString(), int(arity))
	})
	eval.InjectForeign(env, "format", 1, true, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		tmpl, ok := yalix.GetString(args[0])
		if !ok {
			return nil, eval.NewError(eval.KindMalformedForm, "format: expected a format string")
		}
		rendered := make([]any, len(args)-1)
		for i, a := range args[1:] {
			if s, isString := yalix.GetString(a); isString {
				rendered[i] = s.GoString()
				continue
			}
			rendered[i] = a.String()
		}
		return yalix.MakeString(fmt.Sprintf(tmpl.GoString(), rendered...)), nil
	})
	eval.InjectForeign(env, "doc", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		clo, ok := args[0].(*eval.Closure)
		if !ok {
			return yalix.MakeString(""), nil
		}
		return yalix.MakeString(clo.Docstring), nil
	})
	eval.InjectForeign(env, "->string", 1, false, func(e *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return yalix.MakeString(eval.Repr(e, args[0])), nil
	})
	eval.InjectForeign(env, "force", 1, false, func(e *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		p, ok := args[0].(*eval.Promise)
		if !ok {
			return nil, eval.NewError(eval.KindMalformedForm, "force: expected a promise, got %v", args[0])
		}
		return p.Force(e)
	})
}

func registerPredicates(env *eval.Environment) {
	eval.InjectForeign(env, "nil?", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return yalix.MakeBool(yalix.IsNil(args[0])), nil
	})
	eval.InjectForeign(env, "symbol?", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		_, ok := args[0].(*yalix.Symbol)
		return yalix.MakeBool(ok), nil
	})
	eval.InjectForeign(env, "atom?", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		pair, ok := yalix.GetPair(args[0])
		return yalix.MakeBool(!ok || pair.IsNil()), nil
	})
	eval.InjectForeign(env, "pair?", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		pair, ok := yalix.GetPair(args[0])
		return yalix.MakeBool(ok && !pair.IsNil()), nil
	})
	eval.InjectForeign(env, "number?", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		_, ok := yalix.GetNumber(args[0])
		return yalix.MakeBool(ok), nil
	})
	eval.InjectForeign(env, "string?", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		_, ok := yalix.GetString(args[0])
		return yalix.MakeBool(ok), nil
	})
	eval.InjectForeign(env, "procedure?", 1, false, func(_ *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		switch args[0].(type) {
		case *eval.Closure, *eval.Foreign:
			return yalix.MakeBool(true), nil
		default:
			return yalix.MakeBool(false), nil
		}
	})
}

func registerPrinting(env *eval.Environment) {
	eval.InjectForeign(env, "print", 1, true, func(e *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return writeAll(e, os.Stdout, args, false)
	})
	eval.InjectForeign(env, "println", 1, true, func(e *eval.Environment, args []yalix.Object) (yalix.Object, error) {
		return writeAll(e, os.Stdout, args, true)
	})
}

func writeAll(e *eval.Environment, w io.Writer, args []yalix.Object, newline bool) (yalix.Object, error) {
	for _, a := range args {
		if _, err := io.WriteString(w, eval.Repr(e, a)); err != nil {
			return nil, eval.NewError(eval.KindHostError, "print: %s", err).WithCause(err)
		}
	}
	if newline {
		io.WriteString(w, "\n")
	}
	return yalix.Nil(), nil
}
