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

package slisp

import (
	"strings"

	"t73f.de/r/zero/set"
)

// Lambda holds a user-defined function: a captured environment (closure),
// a formals QExpr of Symbols, and a body QExpr.
type Lambda struct {
	Env     *Environment
	Formals QExpr
	Body    QExpr
}

// MakeLambda validates formals and builds a Lambda that captures an empty
// environment, to be parented at call time by ApplyLambda. formals must
// contain only Symbols, with the variadic sentinel `&` appearing at most
// once, immediately followed by exactly one trailing Symbol.
//
// The second return value is nil on success, or the ErrorValue to surface
// as the builtin's result — a formals-shape violation is a language-level
// error returned as a value, not a host-level Go error.
func MakeLambda(formals, body QExpr) (Lambda, Value) {
	if errVal := ValidateFormals(formals); errVal != nil {
		return Lambda{}, errVal
	}
	return Lambda{Env: NewRootEnvironment(), Formals: formals, Body: body}, nil
}

// ValidateFormals checks the shape invariant of a lambda's formals QExpr:
// every child is a Symbol, `&` appears at most once, and when it does it is
// immediately followed by exactly one further Symbol that is the last
// formal. Duplicate formal names are rejected; the check is made with a Set
// rather than a nested loop to count distinct bound names in linear time.
// Returns nil if formals is well-shaped, else the ErrorValue describing the
// violation.
func ValidateFormals(formals QExpr) Value {
	syms := make([]*Symbol, 0, formals.Size())
	values := formals.Values()
	for i, v := range values {
		sym, ok := GetSymbol(v)
		if !ok {
			return MakeError("formal parameter is not a symbol")
		}
		if sym == SymbolAmpersand {
			if i != len(values)-2 {
				return MakeError("'&' must be followed by exactly one symbol")
			}
			continue
		}
		syms = append(syms, sym)
	}
	if set.New(syms...).Length() != len(syms) {
		return MakeError("duplicate formal parameter name")
	}
	return nil
}

// IsNil always returns false.
func (Lambda) IsNil() bool { return false }

// IsAtom always returns true.
func (Lambda) IsAtom() bool { return true }

// IsEqual compares two values. Two Lambdas are equal iff their formals,
// body, and captured environments are all structurally equal.
func (l Lambda) IsEqual(other Value) bool {
	otherL, ok := other.(Lambda)
	if !ok {
		return false
	}
	if !l.Formals.IsEqual(otherL.Formals) || !l.Body.IsEqual(otherL.Body) {
		return false
	}
	return envIsEqual(l.Env, otherL.Env)
}

func envIsEqual(a, b *Environment) bool {
	if len(a.vars) != len(b.vars) {
		return false
	}
	for sym, val := range a.vars {
		otherVal, found := b.vars[sym]
		if !found || !val.IsEqual(otherVal) {
			return false
		}
	}
	return true
}

// String returns "\ formals body".
func (l Lambda) String() string {
	var sb strings.Builder
	sb.WriteString("\\ ")
	sb.WriteString(l.Formals.String())
	sb.WriteString(" ")
	sb.WriteString(l.Body.String())
	return sb.String()
}

// DeepCopy deep-copies the captured environment, formals, and body. This is
// what guarantees closure independence: mutating the original's captured
// environment afterward never affects the copy.
func (l Lambda) DeepCopy() Value {
	return Lambda{
		Env:     l.Env.DeepCopy(),
		Formals: QExpr(l.Formals.DeepCopy().(QExpr)),
		Body:    QExpr(l.Body.DeepCopy().(QExpr)),
	}
}

// GetLambda returns val as a Lambda, if possible.
func GetLambda(val Value) (Lambda, bool) {
	l, ok := val.(Lambda)
	return l, ok
}
