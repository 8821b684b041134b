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
	"strconv"
	"sync"

	"yalix.dev/yalix"
)

// gensymCounter is the single process-wide counter backing both ad hoc
// (gensym) calls and syntax-quote's hygienic renaming (§5: "must not
// collide"). One counter, two call sites, one mutex.
type gensymCounter struct {
	mu   sync.Mutex
	next uint64
}

func (g *gensymCounter) nextID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return g.next
}

// Gensym returns a freshly interned symbol named "G__<n>", distinct from
// anything a program could have written by hand.
func (env *Environment) Gensym() *yalix.Symbol {
	return yalix.MakeSymbol("G__" + strconv.FormatUint(env.gensym.nextID(), 10))
}

// hygienicRename returns the syntax-quote hygienic form of name: "name__<n>__auto__".
func (env *Environment) hygienicRename(name string) string {
	return name + "__" + strconv.FormatUint(env.gensym.nextID(), 10) + "__auto__"
}
