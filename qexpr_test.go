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

package slisp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"t73f.de/r/slisp"
)

func TestQExprInertUnderEvaluate(t *testing.T) {
	t.Parallel()

	// A QExpr's children are never reduced by the evaluator, even if they
	// look like a callable form.
	env := slisp.NewRootEnvironment()
	q := slisp.MakeQExpr(slisp.MakeSymbol("undefined-fn"), slisp.Integer(1))
	result := slisp.Evaluate(env, q)
	assert.Equal(t, q, result)
}

func TestQExprHeadTailLaw(t *testing.T) {
	t.Parallel()

	e := slisp.Integer(1)
	q := slisp.MakeQExpr(e)
	head, _ := q.Nth(0)
	assert.Equal(t, e, head)

	_, tail := q.PopFront()
	assert.True(t, tail.IsEmpty())
}

func TestQExprJoin(t *testing.T) {
	t.Parallel()

	a := slisp.MakeQExpr(slisp.Integer(1), slisp.Integer(2))
	b := slisp.MakeQExpr(slisp.Integer(3))
	joined := a.Join(b)

	assert.Equal(t, 3, joined.Size())
	assert.Equal(t, 2, a.Size(), "Join must not mutate its receiver")
}

func TestQExprToSexprSharesChildren(t *testing.T) {
	t.Parallel()

	q := slisp.MakeQExpr(slisp.Integer(1), slisp.Integer(2))
	s := q.ToSexpr()
	assert.Equal(t, q.Values(), s.Values())
}

func TestQExprString(t *testing.T) {
	t.Parallel()

	q := slisp.MakeQExpr(slisp.MakeSymbol("a"), slisp.MakeSymbol("b"))
	assert.Equal(t, "{a b}", q.String())
}
