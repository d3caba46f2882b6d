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

package slisp

import "reflect"

// BuiltinFn is the signature of a native procedure: given the current
// environment and the already-evaluated argument frame, it produces a
// result or an error.
type BuiltinFn func(env *Environment, args Sexpr) (Value, error)

// Builtin is a handle for a native function. Two Builtins are equal iff
// they carry the same name and wrap the same function code: they are never
// compared structurally, only by handle. Closures made from one function
// literal share their code, so two such Builtins with the same name compare
// equal even when they capture different values.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

// MakeBuiltin wraps fn as a named Builtin.
func MakeBuiltin(name string, fn BuiltinFn) Builtin { return Builtin{Name: name, Fn: fn} }

// IsNil always returns false.
func (Builtin) IsNil() bool { return false }

// IsAtom always returns true.
func (Builtin) IsAtom() bool { return true }

// IsEqual compares two values, true iff other is a Builtin with the same
// name wrapping the same function code pointer.
func (b Builtin) IsEqual(other Value) bool {
	otherB, ok := other.(Builtin)
	if !ok || b.Name != otherB.Name {
		return false
	}
	return reflect.ValueOf(b.Fn).Pointer() == reflect.ValueOf(otherB.Fn).Pointer()
}

// String returns a printed form naming the builtin.
func (b Builtin) String() string { return "#<builtin:" + b.Name + ">" }

// Call invokes the builtin.
func (b Builtin) Call(env *Environment, args Sexpr) (Value, error) { return b.Fn(env, args) }

// GetBuiltin returns val as a Builtin, if possible.
func GetBuiltin(val Value) (Builtin, bool) {
	if IsNil(val) {
		return Builtin{}, false
	}
	b, ok := val.(Builtin)
	return b, ok
}
