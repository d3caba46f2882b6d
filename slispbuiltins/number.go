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

// Package slispbuiltins contains all of the language's primitive
// procedures and the prelude binder that installs them into a root
// environment.
package slispbuiltins

import "t73f.de/r/slisp"

// Add is the builtin that implements (+ n...).
var Add = slisp.MakeBuiltin("+", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	return foldNumeric(args, "+",
		func(acc, x slisp.Integer) slisp.Integer { return acc + x },
		func(acc, x slisp.Double) slisp.Double { return acc + x },
	)
})

// Sub is the builtin that implements (- n n...), with the one-argument
// form negating its argument.
var Sub = slisp.MakeBuiltin("-", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() == 0 {
		return slisp.MakeError("- requires at least 1 argument"), nil
	}
	if args.Size() == 1 {
		v, _ := args.Nth(0)
		if i, ok := slisp.GetInteger(v); ok {
			return -i, nil
		}
		if d, ok := slisp.GetDouble(v); ok {
			return -d, nil
		}
		return slisp.MakeError("- requires a numeric argument"), nil
	}
	return foldNumeric(args, "-",
		func(acc, x slisp.Integer) slisp.Integer { return acc - x },
		func(acc, x slisp.Double) slisp.Double { return acc - x },
	)
})

// Mul is the builtin that implements (* n...).
var Mul = slisp.MakeBuiltin("*", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	return foldNumeric(args, "*",
		func(acc, x slisp.Integer) slisp.Integer { return acc * x },
		func(acc, x slisp.Double) slisp.Double { return acc * x },
	)
})

// Div is the builtin that implements (/ n n...). Integer division by zero
// is an Error; Double division by zero follows IEEE-754.
var Div = slisp.MakeBuiltin("/", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() == 0 {
		return slisp.MakeError("/ requires at least 1 argument"), nil
	}
	first, _ := args.Nth(0)
	if _, ok := slisp.GetInteger(first); ok {
		return foldIntegerDiv(args)
	}
	if _, ok := slisp.GetDouble(first); ok {
		return foldDoubleDiv(args)
	}
	return slisp.MakeError("/ requires numeric arguments"), nil
})

func foldIntegerDiv(args slisp.Sexpr) (slisp.Value, error) {
	acc, _ := args.Nth(0)
	accI := acc.(slisp.Integer)
	for i := 1; i < args.Size(); i++ {
		v, _ := args.Nth(i)
		if !slisp.IsSameNumericKind(acc, v) {
			return slisp.MakeError("/ requires arguments of the same numeric type"), nil
		}
		xi, _ := slisp.GetInteger(v)
		if xi == 0 {
			return slisp.MakeError("Division by zero"), nil
		}
		accI /= xi
	}
	return accI, nil
}

func foldDoubleDiv(args slisp.Sexpr) (slisp.Value, error) {
	acc, _ := args.Nth(0)
	accD := acc.(slisp.Double)
	for i := 1; i < args.Size(); i++ {
		v, _ := args.Nth(i)
		if !slisp.IsSameNumericKind(acc, v) {
			return slisp.MakeError("/ requires arguments of the same numeric type"), nil
		}
		xd, _ := slisp.GetDouble(v)
		accD /= xd
	}
	return accD, nil
}

// foldNumeric implements the shared "all arguments must be the same
// numeric variant, fold left-to-right" shape of +, -, *.
func foldNumeric(
	args slisp.Sexpr,
	name string,
	foldInt func(acc, x slisp.Integer) slisp.Integer,
	foldDouble func(acc, x slisp.Double) slisp.Double,
) (slisp.Value, error) {
	if args.Size() == 0 {
		if name == "+" {
			return slisp.Integer(0), nil
		}
		return slisp.Integer(1), nil
	}
	first, _ := args.Nth(0)
	if accI, ok := slisp.GetInteger(first); ok {
		for i := 1; i < args.Size(); i++ {
			v, _ := args.Nth(i)
			if !slisp.IsSameNumericKind(first, v) {
				return slisp.MakeError(name + " requires arguments of the same numeric type"), nil
			}
			xi, _ := slisp.GetInteger(v)
			accI = foldInt(accI, xi)
		}
		return accI, nil
	}
	if accD, ok := slisp.GetDouble(first); ok {
		for i := 1; i < args.Size(); i++ {
			v, _ := args.Nth(i)
			if !slisp.IsSameNumericKind(first, v) {
				return slisp.MakeError(name + " requires arguments of the same numeric type"), nil
			}
			xd, _ := slisp.GetDouble(v)
			accD = foldDouble(accD, xd)
		}
		return accD, nil
	}
	return slisp.MakeError(name + " requires numeric arguments"), nil
}
