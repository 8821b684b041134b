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

// Package eval implements the Yalix evaluator: the AST node model, the
// lexical environment, the special forms, application, the lazy-list
// protocol, source provenance and structured errors. Closures, promises,
// forward references, foreign functions and the special-form sentinel all
// live here rather than in package yalix, because each one closes over a
// *Node or an *Environment and putting them in the value-model package
// would create an import cycle.
package eval

import (
	"log/slog"

	"yalix.dev/yalix"
)

// Frame is one level of lexical scope: a flat map from interned symbol to
// bound value, with a link to its enclosing frame. A nil *Frame is the
// empty, bottommost lexical scope — lookups that reach it fall through to
// the Environment's global frame.
type Frame struct {
	name   string
	parent *Frame
	vars   map[*yalix.Symbol]yalix.Object
}

// NewFrame creates a child frame of parent (which may be nil for a
// top-level lambda body) with the given diagnostic name.
func NewFrame(parent *Frame, name string, sizeHint int) *Frame {
	if sizeHint <= 0 {
		sizeHint = 4
	}
	return &Frame{name: name, parent: parent, vars: make(map[*yalix.Symbol]yalix.Object, sizeHint)}
}

// Name returns the frame's diagnostic name, used in not-bound error traces.
func (f *Frame) Name() string {
	if f == nil {
		return "<global>"
	}
	return f.name
}

// Parent returns the enclosing frame, or nil at the top of the lexical
// stack.
func (f *Frame) Parent() *Frame {
	if f == nil {
		return nil
	}
	return f.parent
}

// Lookup searches only this frame, not its parents.
func (f *Frame) Lookup(sym *yalix.Symbol) (yalix.Object, bool) {
	if f == nil {
		return nil, false
	}
	obj, found := f.vars[sym]
	return obj, found
}

// Bind creates or overwrites a local binding. Used for lambda-parameter
// binding and for let/let*/letrec frame construction (§4.3).
func (f *Frame) Bind(sym *yalix.Symbol, val yalix.Object) {
	f.vars[sym] = val
}

// Environment is the runtime evaluation context: the lexical frame chain
// in effect at a call site, plus the single global frame shared by the
// whole program (§5: the only shared mutable state). A zero Environment is
// not usable; build one with NewEnvironment.
type Environment struct {
	global *Frame

	// Logger is a host-supplied logger (cmd/yalix sets it and uses it for
	// its own error reports). Nothing in this package writes to it;
	// evaluation itself never logs, and nil is a valid value.
	Logger *slog.Logger

	gensym gensymCounter
}

// NewEnvironment creates an Environment with a fresh, empty global frame.
func NewEnvironment() *Environment {
	return &Environment{global: NewFrame(nil, "<global>", 64)}
}

// DefineGlobal binds sym to val in the global frame, overwriting any
// previous binding — the effect of a top-level (define ...) or library
// bootstrap form.
func (env *Environment) DefineGlobal(sym *yalix.Symbol, val yalix.Object) {
	env.global.Bind(sym, val)
}

// LookupGlobal searches only the global frame.
func (env *Environment) LookupGlobal(sym *yalix.Symbol) (yalix.Object, bool) {
	return env.global.Lookup(sym)
}

// IterGlobals yields every symbol currently bound in the global frame, for
// introspection (e.g. a REPL's tab-completion, or (doc name) scanning for a
// closure to describe). Order is unspecified.
func (env *Environment) IterGlobals(yield func(*yalix.Symbol, yalix.Object) bool) {
	for sym, val := range env.global.vars {
		if !yield(sym, val) {
			return
		}
	}
}

// Lookup resolves sym by walking the lexical frame chain from frame
// outward, falling back to the global frame if no lexical binding is
// found (§4.1).
func (env *Environment) Lookup(sym *yalix.Symbol, frame *Frame) (yalix.Object, bool) {
	for f := frame; f != nil; f = f.parent {
		if obj, found := f.vars[sym]; found {
			return obj, true
		}
	}
	return env.global.Lookup(sym)
}

// SetLocal mutates the nearest existing lexical binding of sym and reports
// whether one was found. It never touches the global frame: a lexical miss
// is a failure, not a fall-through (§4.1) — mirroring the behavior Set.Compute
// implements inline for set!.
func (env *Environment) SetLocal(sym *yalix.Symbol, val yalix.Object, frame *Frame) bool {
	for f := frame; f != nil; f = f.parent {
		if _, found := f.vars[sym]; found {
			f.vars[sym] = val
			return true
		}
	}
	return false
}

// Extend returns a new child frame of frame, for entering a lambda body,
// a let/let*/letrec body, or any other form that introduces new lexical
// names.
func (env *Environment) Extend(frame *Frame, name string, sizeHint int) *Frame {
	return NewFrame(frame, name, sizeHint)
}
