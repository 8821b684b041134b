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
	"io"
	"strings"

	"yalix.dev/yalix"
)

// First returns the head of a cons-list value; obj that is not a *Pair is
// an error (§4.5: atom? is true for everything that is not a cons-cell).
func First(obj yalix.Object) (yalix.Object, error) {
	pair, ok := yalix.GetPair(obj)
	if !ok || pair.IsNil() {
		return nil, NewError(KindMalformedForm, "first: not a pair: %v", obj)
	}
	return pair.Car(), nil
}

// Rest forces the tail of a cons-list value once, unlike (*yalix.Pair).Tail
// which only succeeds if the cdr is already realised (§4.5).
func Rest(env *Environment, obj yalix.Object) (yalix.Object, error) {
	pair, ok := yalix.GetPair(obj)
	if !ok || pair.IsNil() {
		return nil, NewError(KindMalformedForm, "rest: not a pair: %v", obj)
	}
	cdr := pair.Cdr()
	if p, ok := cdr.(*Promise); ok {
		return p.Force(env)
	}
	return cdr, nil
}

// Realize eagerly materialises a (possibly lazy) cons-list into a Go
// slice, forcing every tail promise along the way (§4.5). It must not be
// called on a known-infinite stream — the evaluator does not detect
// cycles or track boundedness, matching the corpus it is grounded on.
func Realize(env *Environment, obj yalix.Object) ([]yalix.Object, error) {
	var out []yalix.Object
	cur := obj
	for {
		pair, ok := yalix.GetPair(cur)
		if !ok {
			return nil, NewError(KindMalformedForm, "realize: improper list, found %v", cur)
		}
		if pair.IsNil() {
			return out, nil
		}
		out = append(out, pair.Car())
		cdr := pair.Cdr()
		if p, isPromise := cdr.(*Promise); isPromise {
			next, err := p.Force(env)
			if err != nil {
				return nil, err
			}
			cur = next
			continue
		}
		cur = cdr
	}
}

// printLengthSym is the global binding Repr reads to cap list printing
// (§4.5). It is an ordinary Yalix variable, rebindable with a top-level
// (define *print-length* n) the same as any other global — not a
// distinguished Go field.
var printLengthSym = yalix.MakeSymbol("*print-length*")

// SetPrintLength binds *print-length* to n, or to Nil if n <= 0 (the
// unbounded case), for a host (e.g. cmd/yalix's CLI flags/config) that
// wants to set it from outside Yalix source.
func SetPrintLength(env *Environment, n int) {
	if n <= 0 {
		env.DefineGlobal(printLengthSym, yalix.Nil())
		return
	}
	env.DefineGlobal(printLengthSym, yalix.MakeInt(int64(n)))
}

// printLength reads *print-length* out of the global frame, treating
// anything other than a positive Int (missing, Nil, zero, negative) as
// unbounded.
func printLength(env *Environment) int {
	val, found := env.LookupGlobal(printLengthSym)
	if !found {
		return 0
	}
	n, ok := val.(yalix.Int)
	if !ok || n <= 0 {
		return 0
	}
	return int(n)
}

// Repr renders obj the way the printer does: an iterative walk over
// cons-lists honouring *print-length* (the dynamic variable read via
// printLength; unbound or non-positive means unbounded) — once the cap
// is reached the remainder prints as "..." and no further tail is forced
// (§4.5). Atoms print via String/Print; Nil prints as "()", both
// standalone and as a list element.
func Repr(env *Environment, obj yalix.Object) string {
	var sb strings.Builder
	_ = reprTo(env, &sb, obj)
	return sb.String()
}

func reprTo(env *Environment, w io.Writer, obj yalix.Object) error {
	pair, isPair := yalix.GetPair(obj)
	if !isPair {
		_, err := yalix.Print(w, obj)
		return err
	}
	if pair.IsNil() {
		_, err := io.WriteString(w, "()")
		return err
	}
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	limit := printLength(env)
	count := 0
	cur := pair
	first := true
	for {
		if limit > 0 && count >= limit {
			if !first {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, "...")
			if err != nil {
				return err
			}
			break
		}
		if !first {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := reprTo(env, w, cur.Car()); err != nil {
			return err
		}
		first = false
		count++

		cdr := cur.Cdr()
		if p, isPromise := cdr.(*Promise); isPromise {
			if limit > 0 && count >= limit && !p.forced {
				if _, err := io.WriteString(w, " ..."); err != nil {
					return err
				}
				break
			}
			forced, err := p.Force(env)
			if err != nil {
				return err
			}
			cdr = forced
		}
		next, isPair := yalix.GetPair(cdr)
		if !isPair {
			if _, err := io.WriteString(w, " . "); err != nil {
				return err
			}
			if _, err := yalix.Print(w, cdr); err != nil {
				return err
			}
			break
		}
		if next.IsNil() {
			break
		}
		cur = next
	}
	_, err := io.WriteString(w, ")")
	return err
}
