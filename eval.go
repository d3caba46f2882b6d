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

// Evaluate reduces val within env:
//
//  1. A Symbol resolves to its bound value (or an Error).
//  2. An Sexpr is reduced per reduceSexpr.
//  3. Anything else (an already-reduced value, including QExpr, which the
//     evaluator never looks inside) is returned unchanged.
func Evaluate(env *Environment, val Value) Value {
	if sym, ok := GetSymbol(val); ok {
		return env.Lookup(sym)
	}
	if sexpr, ok := GetSexpr(val); ok {
		return reduceSexpr(env, sexpr)
	}
	return val
}

// reduceSexpr evaluates every child left to right, short-circuiting on the
// first error, then applies the reduced operator to the reduced operands.
func reduceSexpr(env *Environment, sexpr Sexpr) Value {
	children := sexpr.Values()
	reduced := make([]Value, len(children))
	for i, child := range children {
		r := Evaluate(env, child)
		if IsError(r) {
			return r
		}
		reduced[i] = r
	}

	switch len(reduced) {
	case 0:
		return NilSexpr()
	case 1:
		return reduced[0]
	}

	op, args := reduced[0], MakeSexpr(reduced[1:]...)
	switch fn := op.(type) {
	case Builtin:
		v, _ := fn.Call(env, args)
		return v
	case Lambda:
		return ApplyLambda(env, fn, reduced[1:])
	case Sexpr:
		if fn.IsEmpty() {
			// A leading `()` is dropped so that stacked top-level forms,
			// e.g. `(def {x} 10) (+ x x)` read as one parser-level Sexpr,
			// continue reducing the remaining children.
			return reduceSexpr(env, MakeSexpr(reduced[1:]...))
		}
		return MakeError("Operation is not callable")
	default:
		return MakeError("Operation is not callable")
	}
}

// ApplyLambda binds args against l.Formals and, once all formals are bound,
// evaluates the lambda body.
//
// Binding happens into a fresh, parentless copy of l.Env rather than into
// l.Env itself. Parenting l.Env directly at the caller's environment and
// binding into it in place would mutate the one environment a Lambda value
// carries; since `def` stores a Lambda once and every lookup thereafter
// returns that same value, two calls to the same Lambda — most importantly a
// recursive call from within its own body — would then share and clobber one
// binding frame. Binding into l.Env.DeepCopy() instead gives every call (and
// every step of a curried partial application) its own frame holding all
// bindings made so far, which is what closure independence and re-entrant
// recursion both require.
func ApplyLambda(callerEnv *Environment, l Lambda, args []Value) Value {
	bindEnv := l.Env.DeepCopy()
	formals := l.Formals.Values()

	i := 0
	for i < len(formals) {
		formalSym, _ := GetSymbol(formals[i])

		if formalSym == SymbolAmpersand {
			restSym, _ := GetSymbol(formals[i+1])
			bindEnv.DefineLocal(restSym, MakeQExpr(args...))
			return finishApply(callerEnv, bindEnv, l.Body)
		}

		if len(args) == 0 {
			// Arguments exhausted with formals remaining: partial
			// application.
			return partialApply(callerEnv, l, bindEnv, i)
		}

		bindEnv.DefineLocal(formalSym, args[0])
		args = args[1:]
		i++
	}

	if len(args) != 0 {
		return MakeError("Passed too many arguments to function")
	}
	return finishApply(callerEnv, bindEnv, l.Body)
}

// partialApply returns a new Lambda equal to l but with the first bound
// formals removed, its environment holding the bindings already made.
func partialApply(callerEnv *Environment, l Lambda, bindEnv *Environment, bound int) Value {
	formals := l.Formals.Values()

	if bound < len(formals) {
		if sym, ok := GetSymbol(formals[bound]); ok && sym == SymbolAmpersand {
			// All positional args were consumed exactly at the `&`
			// sentinel: bind the rest formal to an empty QExpr and the
			// application is complete.
			restSym, _ := GetSymbol(formals[bound+1])
			bindEnv.DefineLocal(restSym, NilQExpr())
			return finishApply(callerEnv, bindEnv, l.Body)
		}
	}

	remaining := make([]Value, len(formals)-bound)
	copy(remaining, formals[bound:])
	return Lambda{Env: bindEnv, Formals: MakeQExpr(remaining...), Body: l.Body}
}

// finishApply parents callEnv at the caller's environment and evaluates the
// body.
//
// callEnv is the per-call copy made by ApplyLambda: it already holds every
// formal bound in earlier partial-application steps as well as this one, and
// no Lambda value refers to it, so setting its parent changes no environment
// that another call can see.
func finishApply(callerEnv, callEnv *Environment, body QExpr) Value {
	callEnv.parent = callerEnv
	return Evaluate(callEnv, body.ToSexpr())
}
