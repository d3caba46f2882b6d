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

func makeOrderBuiltin(
	name string,
	cmpInt func(a, b slisp.Integer) bool,
	cmpDouble func(a, b slisp.Double) bool,
) slisp.Builtin {
	return slisp.MakeBuiltin(name, func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
		if args.Size() != 2 {
			return slisp.MakeError(name + " requires exactly 2 arguments"), nil
		}
		a, _ := args.Nth(0)
		b, _ := args.Nth(1)
		if ai, ok := slisp.GetInteger(a); ok {
			if !slisp.IsSameNumericKind(a, b) {
				return slisp.MakeError(name + " requires arguments of the same numeric type"), nil
			}
			bi, _ := slisp.GetInteger(b)
			return slisp.MakeBoolean(cmpInt(ai, bi)), nil
		}
		if ad, ok := slisp.GetDouble(a); ok {
			if !slisp.IsSameNumericKind(a, b) {
				return slisp.MakeError(name + " requires arguments of the same numeric type"), nil
			}
			bd, _ := slisp.GetDouble(b)
			return slisp.MakeBoolean(cmpDouble(ad, bd)), nil
		}
		return slisp.MakeError(name + " requires numeric arguments"), nil
	})
}

// Lt, Le, Gt, Ge implement < <= > >=: exactly two arguments of the
// same numeric variant.
var (
	Lt = makeOrderBuiltin("<", func(a, b slisp.Integer) bool { return a < b }, func(a, b slisp.Double) bool { return a < b })
	Le = makeOrderBuiltin("<=", func(a, b slisp.Integer) bool { return a <= b }, func(a, b slisp.Double) bool { return a <= b })
	Gt = makeOrderBuiltin(">", func(a, b slisp.Integer) bool { return a > b }, func(a, b slisp.Double) bool { return a > b })
	Ge = makeOrderBuiltin(">=", func(a, b slisp.Integer) bool { return a >= b }, func(a, b slisp.Double) bool { return a >= b })
)

// Eq implements `eq`: true iff every pair of its >=2 arguments is
// structurally equal. Since IsEqual is itself transitive over the
// value algebra's variants, checking every argument against the first is
// equivalent to checking all pairs.
var Eq = slisp.MakeBuiltin("eq", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() < 2 {
		return slisp.MakeError("eq requires at least 2 arguments"), nil
	}
	first, _ := args.Nth(0)
	for i := 1; i < args.Size(); i++ {
		v, _ := args.Nth(i)
		if !first.IsEqual(v) {
			return slisp.False, nil
		}
	}
	return slisp.True, nil
})

// Neq implements `neq`, the complement of `eq`.
var Neq = slisp.MakeBuiltin("neq", func(env *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	res, err := Eq.Call(env, args)
	if err != nil {
		return nil, err
	}
	if slisp.IsError(res) {
		return res, nil
	}
	b, _ := slisp.GetBoolean(res)
	return slisp.MakeBoolean(!bool(b)), nil
})
