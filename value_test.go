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

func TestIsNil(t *testing.T) {
	t.Parallel()

	assert.True(t, slisp.IsNil(nil))
	assert.True(t, slisp.IsNil(slisp.NilSexpr()))
	assert.True(t, slisp.IsNil(slisp.NilQExpr()))
	assert.False(t, slisp.IsNil(slisp.Integer(0)))
	assert.False(t, slisp.IsNil(slisp.False))
}

func TestDeepCopyAtomsUnchanged(t *testing.T) {
	t.Parallel()

	for _, val := range []slisp.Value{
		slisp.Integer(42),
		slisp.Double(1.5),
		slisp.True,
		slisp.MakeString("hi"),
		slisp.MakeSymbol("x"),
	} {
		assert.Equal(t, val, slisp.DeepCopy(val))
	}
}

func TestDeepCopySexprIndependent(t *testing.T) {
	t.Parallel()

	original := slisp.MakeSexpr(slisp.Integer(1), slisp.Integer(2))
	copied := slisp.DeepCopy(original).(slisp.Sexpr)
	mutated := original.PushBack(slisp.Integer(3))

	assert.Equal(t, 2, copied.Size())
	assert.Equal(t, 3, mutated.Size())
	assert.Equal(t, 2, original.Size(), "PushBack must not mutate the receiver")
}
