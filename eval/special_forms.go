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

import (
	"t73f.de/r/zero/set"

	"yalix.dev/yalix"
)

// dotSymbol is the variadic marker recognised in a formals list (§4.7: the
// reader's surface syntax is literally the symbol ".").
var dotSymbol = yalix.MakeSymbol(".")

// specialFormDispatch lets a SpecialForm sentinel value (bound in the
// global frame purely for introspection, §3) be applied directly — the
// edge case where a form name was aliased to a variable and then called
// as if it were an ordinary value (§4.4). Each entry shares its
// implementation with the matching typed AST node's Compute method.
var specialFormDispatch = map[string]func(env *Environment, frame *Frame, args []Node, brand Brand) (yalix.Object, error){}

func registerSpecialForm(name string, impl func(*Environment, *Frame, []Node, Brand) (yalix.Object, error)) {
	specialFormDispatch[name] = impl
}

// --- lambda -----------------------------------------------------------

// Lambda builds a Closure capturing the defining frame (§4.3).
type Lambda struct {
	Name      string // "" for (lambda ...); set for define's function-sugar form
	Formals   []*yalix.Symbol
	Variadic  bool
	Body      []Node
	Docstring string
	Brand     Brand
}

func (l *Lambda) Source() Brand { return l.Brand }

func (l *Lambda) Compute(_ *Environment, frame *Frame) (yalix.Object, error) {
	return &Closure{
		Name:      l.Name,
		Env:       frame,
		Formals:   l.Formals,
		Variadic:  l.Variadic,
		Body:      l.Body,
		Docstring: l.Docstring,
		Brand:     l.Brand,
	}, nil
}

// NewLambda validates raw formals (a symbol list that may contain the `.`
// marker) and builds a Lambda node, per §3's invariants: all distinct, at
// most one variadic marker, and if present it must sit at len-2 followed
// by exactly one trailing name.
func NewLambda(name string, rawFormals []*yalix.Symbol, body []Node, docstring string, brand Brand) (*Lambda, error) {
	formals, variadic, err := parseFormals(rawFormals, brand)
	if err != nil {
		return nil, err
	}
	return &Lambda{Name: name, Formals: formals, Variadic: variadic, Body: body, Docstring: docstring, Brand: brand}, nil
}

func parseFormals(raw []*yalix.Symbol, brand Brand) ([]*yalix.Symbol, bool, error) {
	dotCount := 0
	dotPos := -1
	for i, sym := range raw {
		if sym == dotSymbol {
			dotCount++
			dotPos = i
		}
	}
	if dotCount > 1 {
		return nil, false, NewErrorAt(KindMalformedForm, brand, "at most one variadic marker '.' allowed in formals")
	}
	if dotCount == 1 {
		if dotPos != len(raw)-2 {
			return nil, false, NewErrorAt(KindMalformedForm, brand,
				"variadic marker '.' must be followed by exactly one trailing name")
		}
		formals := make([]*yalix.Symbol, 0, len(raw)-1)
		formals = append(formals, raw[:dotPos]...)
		formals = append(formals, raw[dotPos+1])
		if err := requireDistinct(formals, brand); err != nil {
			return nil, false, err
		}
		return formals, true, nil
	}
	if err := requireDistinct(raw, brand); err != nil {
		return nil, false, err
	}
	return raw, false, nil
}

// requireDistinct rejects a formals or letrec-bindings list carrying the
// same symbol twice (§3 invariant). The uniqueness count itself is
// set.New(syms...).Length(), the same dedup `zero/set` gives the
// teacher's let* for stack sizing; here a short count mismatch against
// len(syms) is the fast path, and the linear scan below only runs to name
// which symbol repeats for the error message.
func requireDistinct(syms []*yalix.Symbol, brand Brand) error {
	if set.New(syms...).Length() == len(syms) {
		return nil
	}
	seen := make(map[*yalix.Symbol]struct{}, len(syms))
	for _, sym := range syms {
		if _, found := seen[sym]; found {
			return NewErrorAt(KindMalformedForm, brand, "duplicate formal %q", sym.Name())
		}
		seen[sym] = struct{}{}
	}
	return nil
}

// --- if -----------------------------------------------------------------

// If evaluates Test for truthiness (§4.3): Nil and Bool(false) are falsy,
// everything else truthy; a missing Else behaves as Nil.
type If struct {
	Test, Then, Else Node
	Brand            Brand
}

func (n *If) Source() Brand { return n.Brand }

func (n *If) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	test, err := n.Test.Compute(env, frame)
	if err != nil {
		return nil, err
	}
	if yalix.IsTrue(test) {
		return n.Then.Compute(env, frame)
	}
	if n.Else == nil {
		return yalix.Nil(), nil
	}
	return n.Else.Compute(env, frame)
}

// --- let ------------------------------------------------------------------

// Let evaluates Value in the enclosing frame, extends with (Name, v), then
// evaluates Body in the extended frame (§4.3).
type Let struct {
	Name  *yalix.Symbol
	Value Node
	Body  []Node
	Brand Brand
}

func (n *Let) Source() Brand { return n.Brand }

func (n *Let) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	val, err := n.Value.Compute(env, frame)
	if err != nil {
		return nil, err
	}
	inner := env.Extend(frame, "let", 1)
	inner.Bind(n.Name, val)
	return evalBody(env, n.Body, inner)
}

// Binding is one (name, value-expression) pair of a let*/letrec bindings
// list.
type Binding struct {
	Name  *yalix.Symbol
	Value Node
}

// LetStar evaluates each binding's value in the frame extended by all
// earlier bindings; later duplicate names shadow earlier ones (§4.3).
type LetStar struct {
	Bindings []Binding
	Body     []Node
	Brand    Brand
}

func (n *LetStar) Source() Brand { return n.Brand }

func (n *LetStar) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	cur := frame
	for _, b := range n.Bindings {
		val, err := b.Value.Compute(env, cur)
		if err != nil {
			return nil, err
		}
		next := env.Extend(cur, "let*", 1)
		next.Bind(b.Name, val)
		cur = next
	}
	return evalBody(env, n.Body, cur)
}

// LetRec first installs a forward reference per name into one shared
// extended frame, then evaluates each value expression in that same frame
// and writes the result into its forward-ref, finally evaluating Body
// (§4.3). Names must be distinct — NewLetRec enforces this.
type LetRec struct {
	Bindings []Binding
	Body     []Node
	Brand    Brand
}

func (n *LetRec) Source() Brand { return n.Brand }

func (n *LetRec) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	inner := env.Extend(frame, "letrec", len(n.Bindings))
	refs := make([]*ForwardRef, len(n.Bindings))
	for i, b := range n.Bindings {
		ref := &ForwardRef{}
		refs[i] = ref
		inner.Bind(b.Name, ref)
	}
	for i, b := range n.Bindings {
		val, err := b.Value.Compute(env, inner)
		if err != nil {
			return nil, err
		}
		if err := refs[i].Set(val); err != nil {
			return nil, err
		}
		inner.Bind(b.Name, val)
	}
	return evalBody(env, n.Body, inner)
}

// NewLetRec validates that bindings carry distinct names (§3 invariant)
// before building a LetRec node.
func NewLetRec(bindings []Binding, body []Node, brand Brand) (*LetRec, error) {
	names := make([]*yalix.Symbol, len(bindings))
	for i, b := range bindings {
		names[i] = b.Name
	}
	if err := requireDistinct(names, brand); err != nil {
		return nil, err
	}
	return &LetRec{Bindings: bindings, Body: body, Brand: brand}, nil
}

// --- set! -------------------------------------------------------------

// Set mutates the nearest lexical binding of Name; it never falls through
// to the global frame, and fails if no lexical binding exists (§4.3).
type Set struct {
	Name  *yalix.Symbol
	Value Node
	Brand Brand
}

func (n *Set) Source() Brand { return n.Brand }

func (n *Set) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	val, err := n.Value.Compute(env, frame)
	if err != nil {
		return nil, err
	}
	for f := frame; f != nil; f = f.parent {
		if _, found := f.vars[n.Name]; found {
			f.vars[n.Name] = val
			return val, nil
		}
	}
	return nil, NewErrorAt(KindAssignToUnbound, n.Brand, "set!: %q not bound in any enclosing scope", n.Name.Name())
}

// --- define -------------------------------------------------------------

// Define covers both the value form (a bare symbol, at most one body
// expression) and the function-sugar form ((name formal…) body…), which is
// equivalent to (define name (lambda (formal…) body…)) (§4.3). It always
// writes the global frame — see DESIGN.md on the open question
// of whether this should honor a lexical shadow.
type Define struct {
	Name  *yalix.Symbol
	Value Node // nil for a bare (define x) — binds Unbound
	Brand Brand
}

func (n *Define) Source() Brand { return n.Brand }

func (n *Define) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	if n.Value == nil {
		env.DefineGlobal(n.Name, yalix.MakeUnbound())
		return n.Name, nil
	}
	val, err := n.Value.Compute(env, frame)
	if err != nil {
		return nil, err
	}
	if cl, ok := val.(*Closure); ok && cl.Name == "" {
		cl.Name = n.Name.Name()
	}
	env.DefineGlobal(n.Name, val)
	return n.Name, nil
}

// --- begin is defined in node.go (shared with the implicit body form) --

// --- delay ----------------------------------------------------------------

// Delay returns a Promise wrapping Body, to be evaluated in frame on first
// force (§4.3).
type Delay struct {
	Body  []Node
	Brand Brand
}

func (n *Delay) Source() Brand { return n.Brand }

func (n *Delay) Compute(_ *Environment, frame *Frame) (yalix.Object, error) {
	return NewPromise(frame, n.Body), nil
}

// --- eval -----------------------------------------------------------------

// EvalForm implements (eval e): it evaluates Expr to obtain a (typically
// quoted) value, reconstructs it as AST via FromValue, and evaluates that
// AST in frame — the current lexical frame at the call site, per the
// recorded decision on the open question in DESIGN.md.
type EvalForm struct {
	Expr  Node
	Brand Brand
}

func (n *EvalForm) Source() Brand { return n.Brand }

func (n *EvalForm) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	quoted, err := n.Expr.Compute(env, frame)
	if err != nil {
		return nil, err
	}
	reconstructed, err := FromValue(quoted, n.Brand)
	if err != nil {
		return nil, err
	}
	return reconstructed.Compute(env, frame)
}
