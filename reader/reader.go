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

// Package reader implements the parser boundary (§4.7 of the interpreter's
// component design): it consumes Unicode source text and produces a
// sequence of eval.Node values, each branded with the full source text and
// the byte offset of its opening character, grounded in the teacher's
// rune-at-a-time sxreader.Reader with its rune→macro dispatch table.
package reader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"yalix.dev/yalix"
	"yalix.dev/yalix/eval"
)

// ErrUnmatchedParen is returned when a ")" is read with no matching "(".
var ErrUnmatchedParen = errors.New("reader: unmatched )")

// macroFn reads one form, having already consumed the triggering rune at
// the given start offset.
type macroFn func(rd *Reader, start int) (eval.Node, error)

// Reader parses one source document into a sequence of branded eval.Node
// forms.
type Reader struct {
	name   string
	src    string
	pos    int // byte offset of the next unread rune
	macros map[rune]macroFn
}

func init() {
	eval.NewParser = func(name, src string) eval.Parser { return New(name, src) }
	eval.SetEOFPredicate(IsEOF)
}

// New creates a Reader over src; name is used only for diagnostics.
func New(name, src string) *Reader {
	rd := &Reader{name: name, src: src}
	rd.macros = map[rune]macroFn{
		'\'': rd.readQuote,
		'`':  rd.readSyntaxQuote,
		'~':  rd.readUnquote,
		'(':  rd.readList,
		')':  rd.readUnmatched,
		'"':  rd.readString,
		';':  rd.readComment,
	}
	return rd
}

func (rd *Reader) brand(offset int) eval.Brand { return eval.Brand{Source: rd.src, Offset: offset} }

func (rd *Reader) peekRune() (rune, int, bool) {
	if rd.pos >= len(rd.src) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(rd.src[rd.pos:])
	return r, size, true
}

func (rd *Reader) nextRune() (rune, bool) {
	r, size, ok := rd.peekRune()
	if !ok {
		return 0, false
	}
	rd.pos += size
	return r, true
}

func (rd *Reader) skipSpace() {
	for {
		r, _, ok := rd.peekRune()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		rd.nextRune()
	}
}

// ReadForm reads the next top-level form, skipping whitespace and
// comments. It returns an end-of-input error, recognised by IsEOF, when
// the source is exhausted.
func (rd *Reader) ReadForm() (eval.Node, error) {
	for {
		rd.skipSpace()
		r, _, ok := rd.peekRune()
		if !ok {
			return nil, errEOF
		}
		if r == ';' {
			start := rd.pos
			rd.nextRune()
			node, err := rd.readComment(rd, start)
			if err != nil {
				return nil, err
			}
			if node != nil {
				// a docstring token at top level, outside any form; inside
				// a form readList keeps it as an element, but here it is
				// simply skipped as if it were a comment.
				continue
			}
			continue
		}
		return rd.readOne()
	}
}

var errEOF = errors.New("reader: end of input")

// IsEOF reports whether err is the sentinel ReadForm returns at end of
// input.
func IsEOF(err error) bool { return errors.Is(err, errEOF) }

func (rd *Reader) readOne() (eval.Node, error) {
	rd.skipSpace()
	start := rd.pos
	r, _, ok := rd.peekRune()
	if !ok {
		return nil, errEOF
	}
	if macro, found := rd.macros[r]; found {
		rd.nextRune()
		return macro(rd, start)
	}
	return rd.readAtomOrSymbol(start)
}

func (rd *Reader) readUnmatched(_ *Reader, start int) (eval.Node, error) {
	return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedParen, start)
}

func (rd *Reader) readComment(_ *Reader, start int) (eval.Node, error) {
	isDoc := false
	if r, _, ok := rd.peekRune(); ok && r == '^' {
		isDoc = true
		rd.nextRune()
	}
	textStart := rd.pos
	for {
		r, _, ok := rd.peekRune()
		if !ok || r == '\n' {
			break
		}
		rd.nextRune()
	}
	if isDoc {
		text := strings.TrimSpace(rd.src[textStart:rd.pos])
		return &eval.Docstring{Text: text, Brand: rd.brand(start)}, nil
	}
	return nil, nil
}

func (rd *Reader) readQuote(_ *Reader, start int) (eval.Node, error) {
	inner, err := rd.readOne()
	if err != nil {
		return nil, err
	}
	return &eval.Quote{Expr: inner, Brand: rd.brand(start)}, nil
}

func (rd *Reader) readSyntaxQuote(_ *Reader, start int) (eval.Node, error) {
	inner, err := rd.readOne()
	if err != nil {
		return nil, err
	}
	return &eval.SyntaxQuote{Expr: inner, Brand: rd.brand(start)}, nil
}

func (rd *Reader) readUnquote(_ *Reader, start int) (eval.Node, error) {
	splice := false
	if r, _, ok := rd.peekRune(); ok && r == '@' {
		splice = true
		rd.nextRune()
	}
	inner, err := rd.readOne()
	if err != nil {
		return nil, err
	}
	if splice {
		return &eval.UnquoteSplice{Expr: inner, Brand: rd.brand(start)}, nil
	}
	return &eval.Unquote{Expr: inner, Brand: rd.brand(start)}, nil
}

func (rd *Reader) readString(_ *Reader, start int) (eval.Node, error) {
	var sb strings.Builder
	for {
		r, ok := rd.nextRune()
		if !ok {
			return nil, fmt.Errorf("reader: unterminated string starting at offset %d", start)
		}
		if r == '"' {
			break
		}
		if r == '\\' {
			esc, ok := rd.nextRune()
			if !ok {
				return nil, fmt.Errorf("reader: unterminated escape at offset %d", rd.pos)
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteRune(esc)
			}
			continue
		}
		sb.WriteRune(r)
	}
	return &eval.Atom{Value: yalix.MakeString(sb.String()), Brand: rd.brand(start)}, nil
}

// readList reads a parenthesised form, recognising special-form keywords
// by the head symbol once every element has been read (§4.3; see
// eval.FromValue/reconstruct.go for the symmetric reverse conversion).
func (rd *Reader) readList(_ *Reader, start int) (eval.Node, error) {
	var elems []eval.Node
	for {
		rd.skipSpace()
		r, _, ok := rd.peekRune()
		if !ok {
			return nil, fmt.Errorf("reader: unterminated list starting at offset %d", start)
		}
		if r == ')' {
			rd.nextRune()
			break
		}
		if r == ';' {
			cstart := rd.pos
			rd.nextRune()
			node, err := rd.readComment(rd, cstart)
			if err != nil {
				return nil, err
			}
			if node != nil {
				elems = append(elems, node) // docstring token, kept for (define ...)
			}
			continue
		}
		elem, err := rd.readOne()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return eval.BuildForm(elems, rd.brand(start))
}

// readAtomOrSymbol reads a token not introduced by a reader macro: a
// number, #t/#f, or a symbol (§4.7).
func (rd *Reader) readAtomOrSymbol(start int) (eval.Node, error) {
	for {
		r, _, ok := rd.peekRune()
		if !ok || unicode.IsSpace(r) || r == '(' || r == ')' || r == '"' || r == ';' {
			break
		}
		rd.nextRune()
	}
	tok := rd.src[start:rd.pos]
	brand := rd.brand(start)
	if tok == "#t" {
		return &eval.Atom{Value: yalix.MakeBool(true), Brand: brand}, nil
	}
	if tok == "#f" {
		return &eval.Atom{Value: yalix.MakeBool(false), Brand: brand}, nil
	}
	if isNumberToken(tok) {
		val, err := parseNumber(tok)
		if err != nil {
			return nil, fmt.Errorf("reader: %w at offset %d", err, start)
		}
		return &eval.Atom{Value: val, Brand: brand}, nil
	}
	return &eval.SymbolRef{Sym: yalix.MakeSymbol(tok), Brand: brand}, nil
}

func isNumberToken(tok string) bool {
	if tok == "" {
		return false
	}
	i := 0
	if tok[0] == '+' || tok[0] == '-' {
		i = 1
	}
	if i >= len(tok) {
		return false
	}
	return tok[i] >= '0' && tok[i] <= '9'
}

func parseNumber(tok string) (yalix.Object, error) {
	body, neg := tok, false
	if body[0] == '+' || body[0] == '-' {
		neg = body[0] == '-'
		body = body[1:]
	}
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		n, err := strconv.ParseInt(body[2:], 16, 64)
		if err != nil {
			return nil, err
		}
		if neg {
			n = -n
		}
		return yalix.MakeInt(n), nil
	}
	if strings.HasSuffix(body, "L") || strings.HasSuffix(body, "l") {
		n, err := strconv.ParseInt(body[:len(body)-1], 10, 64)
		if err != nil {
			return nil, err
		}
		if neg {
			n = -n
		}
		return yalix.MakeInt(n), nil
	}
	if strings.ContainsAny(body, ".eE") {
		f, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return nil, err
		}
		if neg {
			f = -f
		}
		return yalix.MakeFloat(f), nil
	}
	n, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return nil, err
	}
	if neg {
		n = -n
	}
	return yalix.MakeInt(n), nil
}
