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

package slispbuiltins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"t73f.de/r/slisp"
	"t73f.de/r/slisp/slispbuiltins"
)

func TestIfChoosesThenBranch(t *testing.T) {
	t.Parallel()

	result := call(t, slispbuiltins.If, slisp.True, slisp.MakeQExpr(slisp.Integer(1)), slisp.MakeQExpr(slisp.Integer(2)))
	assert.Equal(t, slisp.Integer(1), result)
}

func TestIfChoosesElseBranch(t *testing.T) {
	t.Parallel()

	result := call(t, slispbuiltins.If, slisp.False, slisp.MakeQExpr(slisp.Integer(1)), slisp.MakeQExpr(slisp.Integer(2)))
	assert.Equal(t, slisp.Integer(2), result)
}

func TestIfNeverEvaluatesUnchosenBranch(t *testing.T) {
	t.Parallel()

	// The unchosen branch references an undefined symbol; if it were
	// evaluated this would produce an Error, so a non-error result proves
	// it was skipped.
	unchosen := slisp.MakeQExpr(slisp.MakeSymbol("undefined-symbol"))
	result := call(t, slispbuiltins.If, slisp.True, slisp.MakeQExpr(slisp.Integer(7)), unchosen)
	assert.Equal(t, slisp.Integer(7), result)
}

func TestIfRequiresBooleanCondition(t *testing.T) {
	t.Parallel()

	result := call(t, slispbuiltins.If, slisp.Integer(1), slisp.MakeQExpr(slisp.Integer(1)), slisp.MakeQExpr(slisp.Integer(2)))
	assert.True(t, slisp.IsError(result))
}

func TestIfRequiresExactlyThreeArguments(t *testing.T) {
	t.Parallel()

	result := call(t, slispbuiltins.If, slisp.True, slisp.MakeQExpr(slisp.Integer(1)))
	assert.True(t, slisp.IsError(result))
}
