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

package slispbuiltins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"t73f.de/r/slisp"
	"t73f.de/r/slisp/slispbuiltins"
)

func TestDefBindsAtRoot(t *testing.T) {
	t.Parallel()

	root := slisp.NewRootEnvironment()
	names := slisp.MakeQExpr(slisp.MakeSymbol("x"))
	result, err := slispbuiltins.Def.Call(root, slisp.MakeSexpr(names, slisp.Integer(10)))
	assert.NoError(t, err)
	assert.True(t, result.IsNil())
	assert.Equal(t, slisp.Integer(10), root.Lookup(slisp.MakeSymbol("x")))
}

func TestDefRejectsArityMismatch(t *testing.T) {
	t.Parallel()

	root := slisp.NewRootEnvironment()
	names := slisp.MakeQExpr(slisp.MakeSymbol("x"), slisp.MakeSymbol("y"))
	result, _ := slispbuiltins.Def.Call(root, slisp.MakeSexpr(names, slisp.Integer(10)))
	assert.True(t, slisp.IsError(result))
}

func TestDefRejectsNonSymbolList(t *testing.T) {
	t.Parallel()

	root := slisp.NewRootEnvironment()
	result, _ := slispbuiltins.Def.Call(root, slisp.MakeSexpr(slisp.Integer(1), slisp.Integer(10)))
	assert.True(t, slisp.IsError(result))
}

func TestLambdaBuiltinProducesLambda(t *testing.T) {
	t.Parallel()

	formals := slisp.MakeQExpr(slisp.MakeSymbol("x"))
	body := slisp.MakeQExpr(slisp.MakeSymbol("x"))
	result, err := slispbuiltins.Lambda.Call(slisp.NewRootEnvironment(), slisp.MakeSexpr(formals, body))
	assert.NoError(t, err)

	l, ok := slisp.GetLambda(result)
	assert.True(t, ok)
	assert.Equal(t, formals, l.Formals)
}

func TestLambdaBuiltinRejectsBadFormals(t *testing.T) {
	t.Parallel()

	formals := slisp.MakeQExpr(slisp.Integer(1))
	body := slisp.MakeQExpr(slisp.Integer(1))
	result, err := slispbuiltins.Lambda.Call(slisp.NewRootEnvironment(), slisp.MakeSexpr(formals, body))
	assert.NoError(t, err)
	assert.True(t, slisp.IsError(result))
}
