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

// Parser is the subset of reader.Reader that Bootstrap depends on. The
// eval package cannot import reader directly (reader imports eval to
// build nodes), so the host program supplies a constructor instead.
type Parser interface {
	ReadForm() (Node, error)
}

// NewParser builds a Parser over a named source document. Set by the
// reader package's init, mirroring the dependency-inversion the teacher
// uses to keep sxeval free of a sxreader import.
var NewParser func(name, source string) Parser

// CoreLibraryFile names the fixed, ordered set of library sources loaded
// by Bootstrap (§6): each one may depend only on primitives and files
// that loaded before it.
var CoreLibraryFile = []string{"core", "hof", "num", "macros", "repr", "test"}

// Bootstrap parses and evaluates each of CoreLibraryFile's sources, in
// order, against env's global frame. sources maps a bare file name (no
// extension) to its content, letting the host supply go:embed'd
// defaults or files loaded from a search path. A parse error is fatal:
// the library is trusted, internally-consistent source, not user input.
func Bootstrap(env *Environment, sources map[string]string) error {
	if NewParser == nil {
		return NewError(KindHostError, "bootstrap: no reader registered (reader package not imported)")
	}
	for _, name := range CoreLibraryFile {
		src, ok := sources[name]
		if !ok {
			return NewError(KindHostError, "bootstrap: missing core library file %q", name)
		}
		if err := evalSource(env, name, src); err != nil {
			return err
		}
	}
	return nil
}

func evalSource(env *Environment, name, src string) error {
	p := NewParser(name, src)
	frame := env.Extend(nil, name, 0)
	for {
		node, err := p.ReadForm()
		if err != nil {
			if isReaderEOF(err) {
				return nil
			}
			return NewError(KindParseError, "bootstrap: %s: %s", name, err)
		}
		if _, err := node.Compute(env, frame); err != nil {
			return err
		}
	}
}

// isReaderEOF is overridden by the reader package via SetEOFPredicate,
// mirroring NewParser: eval cannot import reader to call reader.IsEOF
// directly.
var isReaderEOF = func(error) bool { return false }

// SetEOFPredicate installs the reader package's end-of-input test so
// Bootstrap can tell a normal end of a library file from a real parse
// error.
func SetEOFPredicate(fn func(error) bool) { isReaderEOF = fn }
