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

// InjectForeign installs a host Go function as a Yalix-callable global
// (§6 foreign-function injection). fn receives already-evaluated
// arguments; if variadic, the caller's trailing args beyond arity-1 are
// collected into a realised list bound as the last parameter.
func InjectForeign(env *Environment, name string, arity int, variadic bool, fn func(env *Environment, args []yalix.Object) (yalix.Object, error)) {
	env.DefineGlobal(yalix.MakeSymbol(name), &Foreign{Name: name, Arity: arity, Variadic: variadic, Fn: fn})
}

// hostRegistry backs the `interop` primitive (SPEC_FULL §Supplemented
// Features 5): only Go functions pre-registered here by the host program
// may be named from Yalix code — this is a lookup, not code injection.
var hostRegistry = map[string]func(env *Environment, args []yalix.Object) (yalix.Object, error){}

// RegisterHostFunction makes fn nameable from Yalix via (interop "name" arity).
func RegisterHostFunction(name string, fn func(env *Environment, args []yalix.Object) (yalix.Object, error)) {
	hostRegistry[name] = fn
}

// Interop builds a Foreign wrapping the host function registered under
// name, with the given arity and non-variadic calling convention. It
// returns an error if no such host function was registered.
func Interop(name string, arity int) (*Foreign, error) {
	fn, found := hostRegistry[name]
	if !found {
		return nil, NewError(KindHostError, "interop: no host function registered under %q", name)
	}
	return &Foreign{Name: name, Arity: arity, Fn: fn}, nil
}
