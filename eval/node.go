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

// Node is the tagged union of parsed forms (§3): every concrete type in
// this package that a reader can produce implements Compute, dispatching
// per §4.2/§4.3 on its own kind rather than through a generic interpreter
// loop switch.
type Node interface {
	Branded

	// Compute evaluates the node in env, against the lexical frame chain
	// rooted at frame (nil for top level).
	Compute(env *Environment, frame *Frame) (yalix.Object, error)
}

// Atom is a self-evaluating literal: an already-built Value produced
// directly by the reader (bool, int, float, string; §4.2 "Atom(v) → v").
type Atom struct {
	Value yalix.Object
	Brand Brand
}

func (a *Atom) Source() Brand { return a.Brand }

func (a *Atom) Compute(*Environment, *Frame) (yalix.Object, error) { return a.Value, nil }

// Docstring is a `;^ ...` comment the reader kept instead of discarding,
// distinct from Atom so fromLambda/fromDefine can tell a documentation
// comment apart from an ordinary string literal occupying the same
// position. It self-evaluates to its text, so one left in an odd spot
// (not a lambda's first body form) still behaves like a string constant.
type Docstring struct {
	Text  string
	Brand Brand
}

func (d *Docstring) Source() Brand { return d.Brand }

func (d *Docstring) Compute(*Environment, *Frame) (yalix.Object, error) {
	return yalix.MakeString(d.Text), nil
}

// SymbolRef looks up a name at evaluation time (§4.2).
type SymbolRef struct {
	Sym   *yalix.Symbol
	Brand Brand
}

func (s *SymbolRef) Source() Brand { return s.Brand }

func (s *SymbolRef) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	if obj, found := env.Lookup(s.Sym, frame); found {
		return obj, nil
	}
	return nil, NewErrorAt(KindUnboundReference, s.Brand, "symbol %q not bound", s.Sym.Name())
}

// Apply is a function-call form whose head is not a special-form keyword
// recognised at parse time (§3, §4.2, §4.4).
type Apply struct {
	Fun   Node
	Args  []Node
	Brand Brand
}

func (a *Apply) Source() Brand { return a.Brand }

func (a *Apply) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	if a.Fun == nil {
		return yalix.Nil(), nil
	}
	callee, err := a.Fun.Compute(env, frame)
	if err != nil {
		return nil, err
	}
	return dispatchApply(env, frame, callee, a.Args, a.Brand)
}

// Begin evaluates its body left-to-right, returning the last value (or Nil
// if empty) — §4.3 begin, and the implicit body of lambda/let/letrec/etc.
type Begin struct {
	Body  []Node
	Brand Brand
}

func (b *Begin) Source() Brand { return b.Brand }

func (b *Begin) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	return evalBody(env, b.Body, frame)
}

// evalBody evaluates body left-to-right in frame, returning the last
// result or Nil for an empty body.
func evalBody(env *Environment, body []Node, frame *Frame) (yalix.Object, error) {
	if len(body) == 0 {
		return yalix.Nil(), nil
	}
	var (
		result yalix.Object = yalix.Nil()
		err    error
	)
	for _, node := range body {
		if result, err = node.Compute(env, frame); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// evalBodySequence is evalBody under the name Promise.Force reaches for —
// a delayed thunk's body runs in its captured frame, not the forcing
// call's frame.
func evalBodySequence(env *Environment, body []Node, frame *Frame) (yalix.Object, error) {
	return evalBody(env, body, frame)
}
