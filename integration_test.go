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

package yalix_test

import (
	"strings"
	"testing"

	"yalix.dev/yalix"
	"yalix.dev/yalix/builtins"
	"yalix.dev/yalix/eval"
	"yalix.dev/yalix/reader"
)

// newTestEnv builds an Environment with every native primitive and the
// embedded core library loaded, mirroring what cmd/yalix does at
// startup (grounded on the teacher's sxeval_test.go createTestBinding
// helper).
func newTestEnv(t *testing.T) *eval.Environment {
	t.Helper()
	env := eval.NewEnvironment()
	builtins.Register(env)
	sources, err := yalix.DefaultLibrarySources()
	if err != nil {
		t.Fatalf("DefaultLibrarySources: %v", err)
	}
	if err := eval.Bootstrap(env, sources); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	return env
}

// evalAll reads and evaluates every top-level form in src in order,
// returning the value of the last one.
func evalAll(env *eval.Environment, src string) (yalix.Object, error) {
	rd := reader.New("test", src)
	var last yalix.Object = yalix.Nil()
	for {
		node, err := rd.ReadForm()
		if err != nil {
			if reader.IsEOF(err) {
				return last, nil
			}
			return nil, err
		}
		last, err = node.Compute(env, nil)
		if err != nil {
			return nil, err
		}
	}
}

type evalCase struct {
	name string
	src  string
	want string
}

func runEvalCases(t *testing.T, cases []evalCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			got, err := evalAll(env, tc.src)
			if err != nil {
				t.Fatalf("eval %q: unexpected error: %v", tc.src, err)
			}
			if rendered := eval.Repr(env, got); rendered != tc.want {
				t.Errorf("eval %q = %s, want %s", tc.src, rendered, tc.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"sum", "(+ 1 2 3 4)", "10"},
		{"sub-unary-negates", "(- 5)", "-5"},
		{"sub-chain", "(- 10 1 2)", "7"},
		{"mul", "(* 2 3 4)", "24"},
		{"div-widens-to-float", "(/ 1 2)", "0.5"},
		{"mod", "(mod 7 3)", "1"},
		{"mixed-int-float-widens", "(+ 1 2.5)", "3.5"},
	})
}

func TestLetForms(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"let", "(let ((x 5)) (+ x 7))", "12"},
		{"let*-sees-earlier-binding", "(let* ((x 5) (y (+ x 1))) y)", "6"},
		{"letrec-mutual-recursion",
			`(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
			          (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
			   (even? 10))`, "#t"},
	})
}

func TestRecursiveDefine(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"fact", "(define (fact n) (if (<= n 1) 1 (* n (fact (- n 1))))) (fact 5)", "120"},
		{"sum-to-n",
			`(define (sum-to n)
			   (if (= n 0) 0 (+ n (sum-to (- n 1)))))
			 (sum-to 10)`, "55"},
	})
}

func TestDefineWritesGlobalEvenWhenShadowed(t *testing.T) {
	env := newTestEnv(t)
	src := `
		(define x 1)
		(let ((x 2)) (define x 99))
		x`
	got, err := evalAll(env, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rendered := eval.Repr(env, got); rendered != "99" {
		t.Errorf("got %s, want 99", rendered)
	}
}

func TestSetBangRequiresExistingBinding(t *testing.T) {
	env := newTestEnv(t)
	_, err := evalAll(env, "(set! never-defined 1)")
	if err == nil {
		t.Fatal("expected an error assigning to an unbound name")
	}
	var evalErr *eval.Error
	if !asEvalError(err, &evalErr) {
		t.Fatalf("expected *eval.Error, got %T: %v", err, err)
	}
	if evalErr.Kind != eval.KindAssignToUnbound {
		t.Errorf("got kind %v, want KindAssignToUnbound", evalErr.Kind)
	}
}

func asEvalError(err error, target **eval.Error) bool {
	e, ok := err.(*eval.Error)
	if ok {
		*target = e
	}
	return ok
}

func TestDelayForcesOnce(t *testing.T) {
	env := newTestEnv(t)
	// calls and p share one let* frame so the delayed body's set! finds
	// calls lexically in scope — set! never falls through to the global
	// frame (§4.1), so a top-level define would not do here.
	src := `
		(let* ((calls 0) (p (delay (begin (set! calls (+ calls 1)) calls))))
		  (force p)
		  (force p)
		  calls)`
	got, err := evalAll(env, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rendered := eval.Repr(env, got); rendered != "1" {
		t.Errorf("thunk body ran %s times, want 1", rendered)
	}
}

func TestQuoteStructuralEquality(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"quote-list", "'(1 2 3)", "(1 2 3)"},
		{"quote-symbol", "'foo", "foo"},
		{"quote-nested", "'(a (b c) d)", "(a (b c) d)"},
	})
}

func TestSyntaxQuoteUnquote(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"unquote-splices-value", "(let ((x 5)) `(a ~x c))", "(a 5 c)"},
		{"unquote-splice-list", "(let ((xs '(1 2 3))) `(a ~@xs b))", "(a 1 2 3 b)"},
	})
}

func TestPrintLengthTruncates(t *testing.T) {
	env := newTestEnv(t)
	eval.SetPrintLength(env, 3)
	got, err := evalAll(env, "'(1 2 3 4 5 6)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "(1 2 3 ...)"
	if rendered := eval.Repr(env, got); rendered != want {
		t.Errorf("got %s, want %s", rendered, want)
	}
}

// TestPrintLengthBoundsInfiniteStream covers the infinite-stream scenario:
// Repr must truncate (iterate inc 0) at *print-length* without forcing any
// tail promise past the cap, or this test would never return.
func TestPrintLengthBoundsInfiniteStream(t *testing.T) {
	env := newTestEnv(t)
	eval.SetPrintLength(env, 12)
	got, err := evalAll(env, "(iterate inc 0)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "(0 1 2 3 4 5 6 7 8 9 10 11 ...)"
	if rendered := eval.Repr(env, got); rendered != want {
		t.Errorf("got %s, want %s", rendered, want)
	}
}

func TestHigherOrderFunctions(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"map", "(map (lambda (x) (* x x)) '(1 2 3))", "(1 4 9)"},
		{"filter", "(filter even? '(1 2 3 4 5 6))", "(2 4 6)"},
		{"foldl-sum", "(foldl + 0 '(1 2 3 4))", "10"},
		{"foldr-cons", "(foldr cons nil '(1 2 3))", "(1 2 3)"},
	})
}

func TestVariadicLambda(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"rest-args-realize", "(define (f a . rest) rest) (f 1 2 3)", "(2 3)"},
		{"rest-args-empty", "(define (f a . rest) rest) (f 1)", "()"},
	})
}

func TestAliasedSpecialFormDispatches(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"if-aliased", "(define my-if if) (my-if #t 1 2)", "1"},
		{"begin-aliased", "(define my-begin begin) (my-begin 1 2 3)", "3"},
	})
}

func TestApplyErrors(t *testing.T) {
	env := newTestEnv(t)
	cases := []struct {
		name string
		src  string
		kind eval.Kind
	}{
		{"unbound", "undefined-name", eval.KindUnboundReference},
		{"not-callable", "(1 2 3)", eval.KindNotCallable},
		{"arity-mismatch", "(define (f x y) x) (f 1)", eval.KindArityMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := evalAll(env, tc.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			var evalErr *eval.Error
			if !asEvalError(err, &evalErr) {
				t.Fatalf("expected *eval.Error, got %T: %v", err, err)
			}
			if evalErr.Kind != tc.kind {
				t.Errorf("got kind %v, want %v", evalErr.Kind, tc.kind)
			}
		})
	}
}

func TestErrorMessageIncludesLineCol(t *testing.T) {
	env := newTestEnv(t)
	_, err := evalAll(env, "\n\n(undefined-name)")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "line:3") {
		t.Errorf("error %q does not report the source line", err.Error())
	}
}

func TestNumLibrary(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"fact", "(fact 6)", "720"},
		{"even", "(even? 4)", "#t"},
		{"odd", "(odd? 4)", "#f"},
		{"min-max", "(list (min 3 1 2) (max 3 1 2))", "(1 3)"},
		{"abs", "(abs -7)", "7"},
	})
}

func TestReadString(t *testing.T) {
	env := newTestEnv(t)
	got, err := evalAll(env, `(eval (read-string "(+ 1 2)"))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rendered := eval.Repr(env, got); rendered != "3" {
		t.Errorf("got %s, want 3", rendered)
	}
}
