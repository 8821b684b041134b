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

// symbolName table of recognised special-form keywords, shared by
// FromValue (value → AST, for `eval`) and unparseForm (AST → value, for
// quoting a literal special-form node that appears inside a quasiquote
// template).
const (
	kwLambda1       = "lambda"
	kwLambda2       = "λ" // λ, the reader-level synonym (§4.3)
	kwIf            = "if"
	kwDefine        = "define"
	kwLet           = "let"
	kwLetStar       = "let*"
	kwLetRec        = "letrec"
	kwSet           = "set!"
	kwBegin         = "begin"
	kwDelay         = "delay"
	kwQuote         = "quote"
	kwSyntaxQuote   = "syntax-quote"
	kwUnquote       = "unquote"
	kwUnquoteSplice = "unquote-splice"
	kwEval          = "eval"
)

// FromValue reconstructs a Node from a runtime Value — typically a quoted
// list produced by `quote`/`read-string` — so that `(eval e)` can evaluate
// it (§4.3 eval). Lists whose head symbol names a special form become the
// matching typed node; anything else becomes Apply/Atom/SymbolRef.
func FromValue(val yalix.Object, brand Brand) (Node, error) {
	switch v := val.(type) {
	case *yalix.Symbol:
		return &SymbolRef{Sym: v, Brand: brand}, nil
	case *yalix.Pair:
		return fromList(v, brand)
	default:
		return &Atom{Value: val, Brand: brand}, nil
	}
}

func fromList(pair *yalix.Pair, brand Brand) (Node, error) {
	if pair.IsNil() {
		return &Atom{Value: yalix.Nil(), Brand: brand}, nil
	}
	elems, err := listElements(pair, brand)
	if err != nil {
		return nil, err
	}
	return BuildForm(elems, brand)
}

// BuildForm assembles a parenthesised form already broken into element
// Nodes (as the reader produces them) into the matching typed AST node:
// a recognised special-form keyword head yields its typed node, anything
// else an Apply. This is the list side of the grammar in §4.7, and the
// forward half of the fromList/unparseForm round trip used when quoting.
func BuildForm(elems []Node, brand Brand) (Node, error) {
	if len(elems) == 0 {
		return &Atom{Value: yalix.Nil(), Brand: brand}, nil
	}
	sym, isSym := headSymbol(elems[0])
	if !isSym {
		return buildApply(elems, brand)
	}

	rest := elems[1:]
	switch sym.Name() {
	case kwLambda1, kwLambda2:
		return fromLambda("", rest, brand)
	case kwIf:
		return fromIf(rest, brand)
	case kwDefine:
		return fromDefine(rest, brand)
	case kwLet:
		return fromLet(rest, brand)
	case kwLetStar:
		return fromLetStar(rest, brand)
	case kwLetRec:
		return fromLetRec(rest, brand)
	case kwSet:
		return fromSet(rest, brand)
	case kwBegin:
		return &Begin{Body: rest, Brand: brand}, nil
	case kwDelay:
		return &Delay{Body: rest, Brand: brand}, nil
	case kwQuote:
		return fromUnary(rest, brand, func(e Node) Node { return &Quote{Expr: e, Brand: brand} })
	case kwSyntaxQuote:
		return fromUnary(rest, brand, func(e Node) Node { return &SyntaxQuote{Expr: e, Brand: brand} })
	case kwUnquote:
		return fromUnary(rest, brand, func(e Node) Node { return &Unquote{Expr: e, Brand: brand} })
	case kwUnquoteSplice:
		return fromUnary(rest, brand, func(e Node) Node { return &UnquoteSplice{Expr: e, Brand: brand} })
	case kwEval:
		return fromUnary(rest, brand, func(e Node) Node { return &EvalForm{Expr: e, Brand: brand} })
	default:
		return buildApply(elems, brand)
	}
}

func headSymbol(n Node) (*yalix.Symbol, bool) {
	ref, ok := n.(*SymbolRef)
	if !ok {
		return nil, false
	}
	return ref.Sym, true
}

func listElements(pair *yalix.Pair, brand Brand) ([]Node, error) {
	var elems []Node
	for cur := pair; !cur.IsNil(); {
		n, err := FromValue(cur.Car(), brand)
		if err != nil {
			return nil, err
		}
		elems = append(elems, n)
		cdr := cur.Cdr()
		if p, isPromise := cdr.(*Promise); isPromise && p.forced {
			cdr = p.value
		}
		next, isPair := yalix.GetPair(cdr)
		if !isPair {
			break
		}
		cur = next
	}
	return elems, nil
}

func buildApply(elems []Node, brand Brand) (Node, error) {
	if len(elems) == 0 {
		return &Atom{Value: yalix.Nil(), Brand: brand}, nil
	}
	return &Apply{Fun: elems[0], Args: elems[1:], Brand: brand}, nil
}

func fromUnary(rest []Node, brand Brand, build func(Node) Node) (Node, error) {
	if len(rest) != 1 {
		return nil, NewErrorAt(KindMalformedForm, brand, "expected exactly one argument")
	}
	return build(rest[0]), nil
}

func fromIf(rest []Node, brand Brand) (Node, error) {
	if len(rest) != 2 && len(rest) != 3 {
		return nil, NewErrorAt(KindMalformedForm, brand, "if requires a test, a then and an optional else")
	}
	n := &If{Test: rest[0], Then: rest[1], Brand: brand}
	if len(rest) == 3 {
		n.Else = rest[2]
	}
	return n, nil
}

func nodeSymbol(n Node, brand Brand) (*yalix.Symbol, error) {
	ref, ok := n.(*SymbolRef)
	if !ok {
		return nil, NewErrorAt(KindMalformedForm, brand, "expected a symbol")
	}
	return ref.Sym, nil
}

func fromLambda(name string, rest []Node, brand Brand) (Node, error) {
	if len(rest) == 0 {
		return nil, NewErrorAt(KindMalformedForm, brand, "lambda requires a formals list")
	}
	formalsNode, ok := rest[0].(*Apply)
	var raw []Node
	if ok {
		raw = append([]Node{formalsNode.Fun}, formalsNode.Args...)
	} else if atom, isAtom := rest[0].(*Atom); isAtom && yalix.IsNil(atom.Value) {
		raw = nil
	} else {
		return nil, NewErrorAt(KindMalformedForm, brand, "malformed formals list")
	}
	formals := make([]*yalix.Symbol, 0, len(raw))
	for _, r := range raw {
		if r == nil {
			continue
		}
		sym, err := nodeSymbol(r, brand)
		if err != nil {
			return nil, err
		}
		formals = append(formals, sym)
	}
	doc, body := splitDocstring(rest[1:])
	return NewLambda(name, formals, body, doc, brand)
}

// splitDocstring strips a leading *Docstring element from body, the shape
// the reader produces when a `;^ ...` comment sits as a lambda's first
// body form (§4.7), and returns its text plus the remaining forms.
func splitDocstring(body []Node) (string, []Node) {
	if len(body) == 0 {
		return "", body
	}
	doc, ok := body[0].(*Docstring)
	if !ok {
		return "", body
	}
	return doc.Text, body[1:]
}

func fromDefine(rest []Node, brand Brand) (Node, error) {
	if len(rest) == 0 {
		return nil, NewErrorAt(KindMalformedForm, brand, "define requires a head")
	}
	switch head := rest[0].(type) {
	case *SymbolRef:
		body := rest[1:]
		if len(body) > 1 {
			return nil, NewErrorAt(KindMalformedForm, brand, "define: at most one value expression allowed")
		}
		def := &Define{Name: head.Sym, Brand: brand}
		if len(body) == 1 {
			def.Value = body[0]
		}
		return def, nil
	case *Apply:
		nameSym, err := nodeSymbol(head.Fun, brand)
		if err != nil {
			return nil, err
		}
		formals := make([]*yalix.Symbol, 0, len(head.Args))
		for _, a := range head.Args {
			sym, err := nodeSymbol(a, brand)
			if err != nil {
				return nil, err
			}
			formals = append(formals, sym)
		}
		doc, body := splitDocstring(rest[1:])
		lambda, err := NewLambda(nameSym.Name(), formals, body, doc, brand)
		if err != nil {
			return nil, err
		}
		return &Define{Name: nameSym, Value: lambda, Brand: brand}, nil
	default:
		return nil, NewErrorAt(KindMalformedForm, brand, "define: malformed head")
	}
}

func fromLet(rest []Node, brand Brand) (Node, error) {
	if len(rest) == 0 {
		return nil, NewErrorAt(KindMalformedForm, brand, "let requires a binding")
	}
	bindPair, ok := rest[0].(*Apply)
	if !ok {
		return nil, NewErrorAt(KindMalformedForm, brand, "let: malformed binding")
	}
	if inner, isApply := bindPair.Fun.(*Apply); isApply && len(bindPair.Args) == 0 {
		bindPair = inner
	}
	sym, err := nodeSymbol(bindPair.Fun, brand)
	if err != nil {
		return nil, err
	}
	if len(bindPair.Args) != 1 {
		return nil, NewErrorAt(KindMalformedForm, brand, "let: binding requires exactly one value")
	}
	return &Let{Name: sym, Value: bindPair.Args[0], Body: rest[1:], Brand: brand}, nil
}

func fromBindings(node Node, brand Brand) ([]Binding, error) {
	list, ok := node.(*Apply)
	bindings := []Binding{}
	if !ok {
		if atom, isAtom := node.(*Atom); isAtom && yalix.IsNil(atom.Value) {
			return bindings, nil
		}
		return nil, NewErrorAt(KindMalformedForm, brand, "malformed bindings list")
	}
	raw := append([]Node{list.Fun}, list.Args...)
	for _, b := range raw {
		pair, ok := b.(*Apply)
		if !ok || len(pair.Args) != 1 {
			return nil, NewErrorAt(KindMalformedForm, brand, "malformed binding")
		}
		sym, err := nodeSymbol(pair.Fun, brand)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, Binding{Name: sym, Value: pair.Args[0]})
	}
	return bindings, nil
}

func fromLetStar(rest []Node, brand Brand) (Node, error) {
	if len(rest) == 0 {
		return nil, NewErrorAt(KindMalformedForm, brand, "let* requires a bindings list")
	}
	bindings, err := fromBindings(rest[0], brand)
	if err != nil {
		return nil, err
	}
	return &LetStar{Bindings: bindings, Body: rest[1:], Brand: brand}, nil
}

func fromLetRec(rest []Node, brand Brand) (Node, error) {
	if len(rest) == 0 {
		return nil, NewErrorAt(KindMalformedForm, brand, "letrec requires a bindings list")
	}
	bindings, err := fromBindings(rest[0], brand)
	if err != nil {
		return nil, err
	}
	return NewLetRec(bindings, rest[1:], brand)
}

func fromSet(rest []Node, brand Brand) (Node, error) {
	if len(rest) != 2 {
		return nil, NewErrorAt(KindMalformedForm, brand, "set! requires a name and a value")
	}
	sym, err := nodeSymbol(rest[0], brand)
	if err != nil {
		return nil, err
	}
	return &Set{Name: sym, Value: rest[1], Brand: brand}, nil
}

// unparseForm converts a typed special-form node back into its literal
// list shape (a head symbol plus argument nodes), used when such a node
// is found while quoting (§4.3): the quoted datum is the syntax, not the
// semantics.
func unparseForm(node Node) ([]Node, bool) {
	brand := node.Source()
	sf := func(name string) Node { return &SymbolRef{Sym: yalix.MakeSymbol(name), Brand: brand} }
	symsToNode := func(syms []*yalix.Symbol) Node {
		values := make([]yalix.Object, len(syms))
		for i, s := range syms {
			values[i] = s
		}
		return &Atom{Value: yalix.MakeList(values...), Brand: brand}
	}
	bindingsToNode := func(bindings []Binding) []Node {
		out := make([]Node, len(bindings))
		for i, b := range bindings {
			out[i] = &Apply{Fun: &SymbolRef{Sym: b.Name, Brand: brand}, Args: []Node{b.Value}, Brand: brand}
		}
		return out
	}

	switch n := node.(type) {
	case *Lambda:
		formals := n.Formals
		if n.Variadic {
			formals = append(append([]*yalix.Symbol{}, n.Formals[:len(n.Formals)-1]...), dotSymbol, n.Formals[len(n.Formals)-1])
		}
		elems := []Node{sf(kwLambda1), symsToNode(formals)}
		if n.Docstring != "" {
			elems = append(elems, &Docstring{Text: n.Docstring, Brand: brand})
		}
		elems = append(elems, n.Body...)
		return elems, true
	case *If:
		elems := []Node{sf(kwIf), n.Test, n.Then}
		if n.Else != nil {
			elems = append(elems, n.Else)
		}
		return elems, true
	case *Define:
		elems := []Node{sf(kwDefine), &SymbolRef{Sym: n.Name, Brand: brand}}
		if n.Value != nil {
			elems = append(elems, n.Value)
		}
		return elems, true
	case *Let:
		binding := &Apply{Fun: &SymbolRef{Sym: n.Name, Brand: brand}, Args: []Node{n.Value}, Brand: brand}
		elems := append([]Node{sf(kwLet), binding}, n.Body...)
		return elems, true
	case *LetStar:
		bindingsList := &Apply{Args: bindingsToNode(n.Bindings), Brand: brand}
		elems := append([]Node{sf(kwLetStar), bindingsList}, n.Body...)
		return elems, true
	case *LetRec:
		bindingsList := &Apply{Args: bindingsToNode(n.Bindings), Brand: brand}
		elems := append([]Node{sf(kwLetRec), bindingsList}, n.Body...)
		return elems, true
	case *Set:
		return []Node{sf(kwSet), &SymbolRef{Sym: n.Name, Brand: brand}, n.Value}, true
	case *Begin:
		return append([]Node{sf(kwBegin)}, n.Body...), true
	case *Delay:
		return append([]Node{sf(kwDelay)}, n.Body...), true
	case *EvalForm:
		return []Node{sf(kwEval), n.Expr}, true
	case *Quote:
		return []Node{sf(kwQuote), n.Expr}, true
	case *SyntaxQuote:
		return []Node{sf(kwSyntaxQuote), n.Expr}, true
	case *Unquote:
		return []Node{sf(kwUnquote), n.Expr}, true
	case *UnquoteSplice:
		return []Node{sf(kwUnquoteSplice), n.Expr}, true
	default:
		return nil, false
	}
}
