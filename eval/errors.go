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

import "fmt"

// Kind names one of the seven error kinds of §7. Kept as a small enum
// rather than distinct Go types per kind, since every kind shares the same
// shape (a message plus an optional brand) and host code discriminates by
// Kind rather than by type-switching seven types.
type Kind uint8

const (
	// KindUnboundReference: lookup missed in both lexical and global frames.
	KindUnboundReference Kind = iota
	// KindArityMismatch: insufficient or excessive argument count.
	KindArityMismatch
	// KindNotCallable: an Apply head evaluated to a non-callable value.
	KindNotCallable
	// KindMalformedForm: a special form's syntax violates its own grammar.
	KindMalformedForm
	// KindAssignToUnbound: set! target not found in the lexical stack.
	KindAssignToUnbound
	// KindHostError: a foreign call raised a host-language exception.
	KindHostError
	// KindParseError: emitted at the reader boundary.
	KindParseError
)

// String names the kind the way the error surface (§6) prints it.
func (k Kind) String() string {
	switch k {
	case KindUnboundReference:
		return "UnboundReference"
	case KindArityMismatch:
		return "ArityMismatch"
	case KindNotCallable:
		return "NotCallable"
	case KindMalformedForm:
		return "MalformedForm"
	case KindAssignToUnbound:
		return "AssignToUnbound"
	case KindHostError:
		return "HostError"
	case KindParseError:
		return "ParseError"
	default:
		return "Error"
	}
}

// Error is a structured evaluation error: a kind, a message, the brand of
// the offending node (if any — the zero Brand when none was available),
// and an optional wrapped cause (a host exception for KindHostError).
type Error struct {
	Kind    Kind
	Message string
	Brand   Brand
	Cause   error
}

// NewError builds an Error with no provenance. Callers that have a Branded
// node should prefer NewErrorAt.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewErrorAt builds an Error branded with node's source location, if any.
func NewErrorAt(kind Kind, brand Brand, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Brand: brand}
}

// Error implements the `error` interface, rendering the §6 surface format
// "<Kind>: <message> at line:<L>, col:<C>" when a brand is present.
func (e *Error) Error() string {
	if e.Brand.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, formatLineCol(e.Brand))
}

// Unwrap exposes the wrapped host cause, if any, to errors.As/errors.Is.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause attaches a wrapped cause and returns the receiver, for chained
// construction at the host-error call site.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}
