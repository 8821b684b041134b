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

package yalix

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Pair is a cons-cell: a car and a cdr. In Yalix, as in most Lisps, lists
// are built as right-nested pairs terminated by Nil; the cdr of a pair used
// for lazy-list construction (§4.5 of the spec) is frequently a Promise
// rather than another Pair or Nil, and callers must force it before
// treating it as a list.
type Pair struct {
	car Object
	cdr Object
}

// Nil returns the nil value. Yalix represents nil as a nil *Pair, following
// the teacher's convention that every list-shaped operation on a typed nil
// pointer degrades gracefully instead of panicking.
func Nil() *Pair { return (*Pair)(nil) }

// Cons creates a pair, the basic list-building block.
func Cons(car, cdr Object) *Pair { return &Pair{car: car, cdr: cdr} }

// MakeList creates a proper list out of the given objects.
func MakeList(objs ...Object) *Pair {
	var lb ListBuilder
	for _, obj := range objs {
		lb.Add(obj)
	}
	return lb.List()
}

// IsNil reports whether pair is the nil pair.
func (pair *Pair) IsNil() bool { return pair == nil }

// IsAtom reports whether pair is atomic — true only for nil, since any real
// cons-cell is, by definition, decomposable into car and cdr.
func (pair *Pair) IsAtom() bool { return pair == nil }

// IsEqual compares two objects structurally. A Promise tail compares equal
// only to another Promise sharing the same identity — forcing during a
// generic equality check could run arbitrary side effects, so it is never
// done implicitly.
func (pair *Pair) IsEqual(other Object) bool {
	if pair == other {
		return true
	}
	if pair.IsNil() {
		return IsNil(other)
	}
	otherPair, ok := other.(*Pair)
	if !ok {
		return false
	}
	node, otherNode := pair, otherPair
	for {
		if !node.car.IsEqual(otherNode.car) {
			return false
		}
		nextNode, nodeIsPair := node.cdr.(*Pair)
		nextOther, otherIsPair := otherNode.cdr.(*Pair)
		if nodeIsPair != otherIsPair {
			return false
		}
		if !nodeIsPair {
			return node.cdr.IsEqual(otherNode.cdr)
		}
		if nextNode == nil || nextOther == nil {
			return nextNode == nextOther
		}
		node, otherNode = nextNode, nextOther
	}
}

// String returns the printed representation.
func (pair *Pair) String() string {
	var sb strings.Builder
	_, _ = pair.Print(&sb)
	return sb.String()
}

// Print writes the printed representation to w: "(a b c)" for a proper
// list, "(a b . c)" for an improper one.
func (pair *Pair) Print(w io.Writer) (int, error) {
	if pair == nil {
		return io.WriteString(w, "()")
	}
	total, err := io.WriteString(w, "(")
	if err != nil {
		return total, err
	}
	for node := pair; ; {
		n, err := Print(w, node.car)
		total += n
		if err != nil {
			return total, err
		}

		switch cdr := node.cdr.(type) {
		case *Pair:
			if cdr == nil {
				n, err = io.WriteString(w, ")")
				total += n
				return total, err
			}
			n, err = io.WriteString(w, " ")
			total += n
			if err != nil {
				return total, err
			}
			node = cdr
			continue
		default:
			n, err = io.WriteString(w, " . ")
			total += n
			if err != nil {
				return total, err
			}
			n, err = Print(w, cdr)
			total += n
			if err != nil {
				return total, err
			}
			n, err = io.WriteString(w, ")")
			total += n
			return total, err
		}
	}
}

// Car returns the first element of pair, or Nil if pair is nil.
func (pair *Pair) Car() Object {
	if pair == nil {
		return Nil()
	}
	return pair.car
}

// Cdr returns the second element of pair, or Nil if pair is nil.
func (pair *Pair) Cdr() Object {
	if pair == nil {
		return Nil()
	}
	return pair.cdr
}

// SetCar mutates the car of pair. A nil pair is left untouched.
func (pair *Pair) SetCar(obj Object) {
	if pair != nil {
		pair.car = obj
	}
}

// SetCdr mutates the cdr of pair. A nil pair is left untouched.
func (pair *Pair) SetCdr(obj Object) {
	if pair != nil {
		pair.cdr = obj
	}
}

// Tail returns the cdr as a *Pair, if it already is one. It does not force
// a Promise tail — see eval.Rest for that.
func (pair *Pair) Tail() *Pair {
	if pair == nil {
		return nil
	}
	if next, ok := pair.cdr.(*Pair); ok {
		return next
	}
	return nil
}

// GetPair returns obj as a *Pair, if possible. Nil itself is a valid pair.
func GetPair(obj Object) (*Pair, bool) {
	if IsNil(obj) {
		return nil, true
	}
	p, ok := obj.(*Pair)
	return p, ok
}

// IsList reports whether obj is a proper, promise-free list: a chain of
// pairs ending in Nil.
func IsList(obj Object) bool {
	pair, isPair := GetPair(obj)
	if !isPair {
		return false
	}
	for node := pair; node != nil; {
		next, ok := GetPair(node.cdr)
		if !ok {
			return false
		}
		node = next
	}
	return true
}

// Values iterates the car of every pair node, stopping at the first non-pair
// cdr (so a lazy, unforced tail simply ends the iteration rather than
// panicking).
func (pair *Pair) Values() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for node := pair; node != nil; {
			if !yield(node.car) {
				return
			}
			next, ok := node.cdr.(*Pair)
			if !ok {
				return
			}
			node = next
		}
	}
}

// Length returns the number of pair nodes reachable without forcing a
// promise (the printer does not use it); for anything that must
// walk a (possibly lazy) list to completion, go through eval.Realize.
func (pair *Pair) Length() int {
	n := 0
	for range pair.Values() {
		n++
	}
	return n
}

// ErrImproper is returned when an operation that requires a proper,
// Nil-terminated list encounters something else at the end of the chain.
type ErrImproper struct{ Pair *Pair }

func (err ErrImproper) Error() string { return fmt.Sprintf("improper list: %v", err.Pair) }

// ListBuilder builds a list incrementally from first element to last.
type ListBuilder struct {
	first, last *Pair
}

// Add appends obj to the list being built.
func (lb *ListBuilder) Add(obj Object) {
	elem := Cons(obj, Nil())
	if lb.first == nil {
		lb.first, lb.last = elem, elem
		return
	}
	lb.last.cdr = elem
	lb.last = elem
}

// List returns the list built so far (Nil if nothing was added).
func (lb *ListBuilder) List() *Pair {
	if lb.first == nil {
		return Nil()
	}
	return lb.first
}
