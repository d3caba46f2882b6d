//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Detlef Stern
//-----------------------------------------------------------------------------

package slispbuiltins

import "t73f.de/r/slisp"

// Def implements `(def {s0 s1 ... sk-1} e0 e1 ... ek-1)`: each ei is
// bound at the root environment under si. Reduces to unit `()` on success.
var Def = slisp.MakeBuiltin("def", func(env *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() < 1 {
		return slisp.MakeError("def requires a symbol list"), nil
	}
	first, _ := args.Nth(0)
	names, ok := slisp.GetQExpr(first)
	if !ok {
		return slisp.MakeError("def requires a quoted list of symbols"), nil
	}
	if names.IsEmpty() {
		return slisp.MakeError("def requires at least one symbol"), nil
	}
	symbols := names.Values()
	values := args.Values()[1:]
	if len(values) != len(symbols) {
		return slisp.MakeError("def requires one value per symbol"), nil
	}
	for _, v := range symbols {
		if _, ok := slisp.GetSymbol(v); !ok {
			return slisp.MakeError("def requires a list of symbols"), nil
		}
	}
	for i, v := range symbols {
		sym, _ := slisp.GetSymbol(v)
		env.DefineRoot(sym, values[i])
	}
	return slisp.NilSexpr(), nil
})

// Lambda implements `(\ {formals...} {body...})`: produces a Lambda
// capturing an empty environment, to be parented at call time.
var Lambda = slisp.MakeBuiltin("\\", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() != 2 {
		return slisp.MakeError("\\ requires exactly 2 arguments"), nil
	}
	formalsVal, _ := args.Nth(0)
	bodyVal, _ := args.Nth(1)
	formals, ok := slisp.GetQExpr(formalsVal)
	if !ok {
		return slisp.MakeError("\\ requires a quoted formals list"), nil
	}
	body, ok := slisp.GetQExpr(bodyVal)
	if !ok {
		return slisp.MakeError("\\ requires a quoted body"), nil
	}
	l, errVal := slisp.MakeLambda(formals, body)
	if errVal != nil {
		return errVal, nil
	}
	return l, nil
})
