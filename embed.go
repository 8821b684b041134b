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
	"embed"
	"strings"
)

//go:embed lib/*.yx
var libraryFS embed.FS

// DefaultLibrarySources reads the embedded core library, keyed by bare
// file name (no directory, no ".yx" extension) — the form
// eval.Bootstrap expects, grounded on the teacher's //go:embed prelude
// pattern (sxbuiltins/prelude.go) generalised from one file to a
// directory of them.
func DefaultLibrarySources() (map[string]string, error) {
	entries, err := libraryFS.ReadDir("lib")
	if err != nil {
		return nil, err
	}
	sources := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := libraryFS.ReadFile("lib/" + entry.Name())
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(entry.Name(), ".yx")
		sources[name] = string(data)
	}
	return sources, nil
}
