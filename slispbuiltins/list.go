//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2023-present Detlef Stern
//-----------------------------------------------------------------------------

package slispbuiltins

import "t73f.de/r/slisp"

// List implements `(list <args...>)`: wraps its already-evaluated
// argument frame into a QExpr.
var List = slisp.MakeBuiltin("list", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	return slisp.MakeQExpr(args.Values()...), nil
})

// Head implements `(head <q>)`: q must be a non-empty QExpr.
var Head = slisp.MakeBuiltin("head", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() != 1 {
		return slisp.MakeError("head requires exactly 1 argument"), nil
	}
	v, _ := args.Nth(0)
	q, ok := slisp.GetQExpr(v)
	if !ok {
		return slisp.MakeError("head requires a quoted expression"), nil
	}
	if q.IsEmpty() {
		return slisp.MakeError("head requires a non-empty quoted expression"), nil
	}
	first, _ := q.Nth(0)
	return slisp.MakeQExpr(first), nil
})

// Tail implements `(tail <q>)`: q must be a non-empty QExpr.
var Tail = slisp.MakeBuiltin("tail", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() != 1 {
		return slisp.MakeError("tail requires exactly 1 argument"), nil
	}
	v, _ := args.Nth(0)
	q, ok := slisp.GetQExpr(v)
	if !ok {
		return slisp.MakeError("tail requires a quoted expression"), nil
	}
	if q.IsEmpty() {
		return slisp.MakeError("tail requires a non-empty quoted expression"), nil
	}
	_, rest := q.PopFront()
	return rest, nil
})

// Join implements `(join <q1> <q2> ...)`: every argument must be a
// QExpr; the result concatenates their children in order.
var Join = slisp.MakeBuiltin("join", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() == 0 {
		return slisp.NilQExpr(), nil
	}
	first, _ := args.Nth(0)
	result, ok := slisp.GetQExpr(first)
	if !ok {
		return slisp.MakeError("join requires quoted expressions"), nil
	}
	for i := 1; i < args.Size(); i++ {
		v, _ := args.Nth(i)
		q, ok := slisp.GetQExpr(v)
		if !ok {
			return slisp.MakeError("join requires quoted expressions"), nil
		}
		result = result.Join(q)
	}
	return result, nil
})

// Eval implements `(eval <q>)`: q must be a QExpr; its children are
// reinterpreted as an Sexpr and evaluated in the current environment.
var Eval = slisp.MakeBuiltin("eval", func(env *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() != 1 {
		return slisp.MakeError("eval requires exactly 1 argument"), nil
	}
	v, _ := args.Nth(0)
	q, ok := slisp.GetQExpr(v)
	if !ok {
		return slisp.MakeError("eval requires a quoted expression"), nil
	}
	return slisp.Evaluate(env, q.ToSexpr()), nil
})
