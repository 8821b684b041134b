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

import "sync"

// symbolRegistry interns every Symbol ever made, by name, so that two
// symbols with the same name are always the same *Symbol and can be
// compared by pointer — the property the global frame (keyed by symbol
// name) and letrec/lambda distinct-name checks both rely on. This is the
// teacher's Package/Symbol two-tier registry, collapsed to the single
// implicit package Yalix itself needs.
var symbolRegistry = struct {
	mu   sync.RWMutex
	syms map[string]*Symbol
}{syms: map[string]*Symbol{}}

func internSymbol(name string) *Symbol {
	symbolRegistry.mu.RLock()
	sym, found := symbolRegistry.syms[name]
	symbolRegistry.mu.RUnlock()
	if found {
		return sym
	}

	symbolRegistry.mu.Lock()
	defer symbolRegistry.mu.Unlock()
	if sym, found = symbolRegistry.syms[name]; found {
		return sym
	}
	sym = &Symbol{name: name}
	symbolRegistry.syms[name] = sym
	return sym
}

func findSymbol(name string) (*Symbol, bool) {
	symbolRegistry.mu.RLock()
	defer symbolRegistry.mu.RUnlock()
	sym, found := symbolRegistry.syms[name]
	return sym, found
}

// symbolRegistrySize reports how many distinct symbols have been interned.
// Exercised only by tests.
func symbolRegistrySize() int {
	symbolRegistry.mu.RLock()
	defer symbolRegistry.mu.RUnlock()
	return len(symbolRegistry.syms)
}
