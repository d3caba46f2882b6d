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

// builtins lists every primitive procedure this package provides, paired
// with the name it is bound to in a root environment.
var builtins = []slisp.Builtin{
	Add, Sub, Mul, Div,
	Lt, Le, Gt, Ge, Eq, Neq,
	If,
	List, Head, Tail, Join, Eval,
	Def, Lambda,
	Load, Print, RaiseError,
}

// BindAll binds every builtin primitive into root.
func BindAll(root *slisp.Environment) {
	for _, b := range builtins {
		root.DefineLocal(slisp.MakeSymbol(b.Name), b)
	}
}
