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

// Quote returns the literal shape of Expr as a value (§4.3): atoms and
// symbols quote to themselves; an Apply quotes to a lazy cons-list of its
// recursively-quoted elements, with any UnquoteSplice expanded in place.
// Unquote nested inside is not expected under plain quote (only under
// SyntaxQuote) but is honored the same way if present.
type Quote struct {
	Expr  Node
	Brand Brand
}

func (n *Quote) Source() Brand { return n.Brand }

func (n *Quote) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	return quoteNode(env, frame, n.Expr, nil)
}

// SyntaxQuote is Quote plus hygienic renaming: any symbol whose literal
// name ends in "#" is rewritten to "<name>__<id>__auto__" (§4.3, §5).
// Each distinct name# draws its own id from the environment's counter;
// repeated occurrences of the same name# within one expansion share that
// rewrite, while different names in one template get different ids.
type SyntaxQuote struct {
	Expr  Node
	Brand Brand
}

func (n *SyntaxQuote) Source() Brand { return n.Brand }

func (n *SyntaxQuote) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	renames := make(map[string]*yalix.Symbol)
	return quoteNode(env, frame, n.Expr, renames)
}

// Unquote evaluates Expr in env; if the result is itself a Node value (of
// any node type, e.g. one produced by FromValue), it is evaluated again — matching the
// corpus's conditional re-evaluation (§4.2; see DESIGN.md for the open
// question this resolves).
type Unquote struct {
	Expr  Node
	Brand Brand
}

func (n *Unquote) Source() Brand { return n.Brand }

func (n *Unquote) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	val, err := n.Expr.Compute(env, frame)
	if err != nil {
		return nil, err
	}
	if node, ok := val.(Node); ok {
		return node.Compute(env, frame)
	}
	return val, nil
}

// UnquoteSplice evaluates Expr and fully realises the resulting lazy list
// (§4.2); meaningful only nested inside a Quote/SyntaxQuote list being
// built, where quoteNode splices its elements into the surrounding list.
type UnquoteSplice struct {
	Expr  Node
	Brand Brand
}

func (n *UnquoteSplice) Source() Brand { return n.Brand }

func (n *UnquoteSplice) Compute(env *Environment, frame *Frame) (yalix.Object, error) {
	val, err := n.Expr.Compute(env, frame)
	if err != nil {
		return nil, err
	}
	elems, err := Realize(env, val)
	if err != nil {
		return nil, err
	}
	return realizedElems(elems), nil
}

// realizedElems carries a materialised slice of values from
// UnquoteSplice.Compute to appendRealized. It never escapes this file:
// nothing else constructs or prints it.
type realizedElems []yalix.Object

func (r realizedElems) IsNil() bool  { return len(r) == 0 }
func (r realizedElems) IsAtom() bool { return false }

func (r realizedElems) IsEqual(other yalix.Object) bool {
	o, ok := other.(realizedElems)
	if !ok || len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].IsEqual(o[i]) {
			return false
		}
	}
	return true
}

func (r realizedElems) String() string { return "#<realized-elems>" }

// quoteNode converts a Node into its quoted Value, recursively. renames is
// nil under plain quote; under syntax-quote it accumulates the hygienic
// rewrite for each trailing-# symbol seen anywhere in this one expansion,
// so two occurrences of the same name# resolve to the same generated name.
func quoteNode(env *Environment, frame *Frame, node Node, renames map[string]*yalix.Symbol) (yalix.Object, error) {
	switch n := node.(type) {
	case nil:
		return yalix.Nil(), nil
	case *Atom:
		return n.Value, nil
	case *Docstring:
		return yalix.MakeString(n.Text), nil
	case *SymbolRef:
		return quoteSymbol(env, n.Sym, renames), nil
	case *SyntaxQuote:
		if renames == nil {
			return quoteGenericForm(env, frame, n, renames)
		}
		return n.Compute(env, frame)
	case *Unquote:
		return n.Compute(env, frame)
	case *Apply:
		return quoteList(env, frame, n.Fun, n.Args, renames)
	default:
		// Any other special-form node appearing inside a quoted form
		// quotes as the application it textually was: (name arg...).
		return quoteGenericForm(env, frame, n, renames)
	}
}

func quoteSymbol(env *Environment, sym *yalix.Symbol, renames map[string]*yalix.Symbol) yalix.Object {
	if renames == nil {
		return sym
	}
	name := sym.Name()
	if len(name) == 0 || name[len(name)-1] != '#' {
		return sym
	}
	if renamed, found := renames[name]; found {
		return renamed
	}
	base := name[:len(name)-1]
	renamed := yalix.MakeSymbol(env.hygienicRename(base))
	renames[name] = renamed
	return renamed
}

func quoteList(env *Environment, frame *Frame, fun Node, args []Node, renames map[string]*yalix.Symbol) (yalix.Object, error) {
	elems := make([]Node, 0, len(args)+1)
	if fun != nil {
		elems = append(elems, fun)
	}
	elems = append(elems, args...)
	return quoteElems(env, frame, elems, renames)
}

func quoteGenericForm(env *Environment, frame *Frame, node Node, renames map[string]*yalix.Symbol) (yalix.Object, error) {
	elems, ok := unparseForm(node)
	if !ok {
		return yalix.Nil(), NewErrorAt(KindMalformedForm, node.Source(), "cannot quote this form")
	}
	return quoteElems(env, frame, elems, renames)
}

// quoteElems builds the lazy cons-list (cons q1 (delay (cons q2 ...)))
// described in §4.3, expanding any UnquoteSplice element in place.
func quoteElems(env *Environment, frame *Frame, elems []Node, renames map[string]*yalix.Symbol) (yalix.Object, error) {
	if len(elems) == 0 {
		return yalix.Nil(), nil
	}
	head := elems[0]
	rest := elems[1:]

	if splice, ok := head.(*UnquoteSplice); ok {
		spliced, err := splice.Compute(env, frame)
		if err != nil {
			return nil, err
		}
		tail, err := quoteElems(env, frame, rest, renames)
		if err != nil {
			return nil, err
		}
		return appendRealized(spliced, tail), nil
	}

	q, err := quoteNode(env, frame, head, renames)
	if err != nil {
		return nil, err
	}
	tailPromise := &Promise{}
	tailVal, err := quoteElems(env, frame, rest, renames)
	if err != nil {
		return nil, err
	}
	tailPromise.forced = true
	tailPromise.value = tailVal
	return yalix.Cons(q, tailPromise), nil
}

// appendRealized conses each already-realised element of spliced (a
// materialised slice of values, from Realize) onto tail.
func appendRealized(spliced yalix.Object, tail yalix.Object) yalix.Object {
	values, ok := spliced.(realizedElems)
	if !ok {
		return tail
	}
	result := tail
	for i := len(values) - 1; i >= 0; i-- {
		p := &Promise{forced: true, value: result}
		result = yalix.Cons(values[i], p)
	}
	return result
}
