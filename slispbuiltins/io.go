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

import (
	"fmt"
	"os"
	"strings"

	"t73f.de/r/slisp"
	"t73f.de/r/slisp/slispreader"
)

// Load implements `(load <path-string>)`: reads the file,
// parses it, evaluates each top-level form, and prints any Error result.
// A bad form does not abort loading.
var Load = slisp.MakeBuiltin("load", func(env *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() != 1 {
		return slisp.MakeError("load requires exactly 1 argument"), nil
	}
	pathVal, _ := args.Nth(0)
	path, ok := slisp.GetString(pathVal)
	if !ok {
		return slisp.MakeError("load requires a string argument"), nil
	}
	if err := LoadFile(env, path.GetValue()); err != nil {
		return slisp.MakeError(fmt.Sprintf("could not load %q: %v", path.GetValue(), err)), nil
	}
	return slisp.NilSexpr(), nil
})

// LoadFile reads path, parses it as a sequence of top-level forms, and
// evaluates each one in env, printing any Error result to stdout. It is
// used both by the `load` builtin and by the CLI/REPL driver's
// standard-library discovery.
func LoadFile(env *slisp.Environment, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	forms, err := slispreader.ReadAll(f, path)
	if err != nil {
		return err
	}
	for _, form := range forms {
		result := slisp.Evaluate(env, form)
		if slisp.IsError(result) {
			fmt.Println(result)
		}
	}
	return nil
}

// Print implements `(print <v1> <v2> ...)`: prints each argument's
// display form separated by spaces, then a newline.
var Print = slisp.MakeBuiltin("print", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	parts := make([]string, args.Size())
	for i, v := range args.Values() {
		parts[i] = v.String()
	}
	fmt.Println(strings.Join(parts, " "))
	return slisp.NilSexpr(), nil
})

// RaiseError implements `(error <string>)`: reduces to an
// ErrorValue carrying the given string.
var RaiseError = slisp.MakeBuiltin("error", func(_ *slisp.Environment, args slisp.Sexpr) (slisp.Value, error) {
	if args.Size() != 1 {
		return slisp.MakeError("error requires exactly 1 argument"), nil
	}
	msgVal, _ := args.Nth(0)
	msg, ok := slisp.GetString(msgVal)
	if !ok {
		return slisp.MakeError("error requires a string argument"), nil
	}
	return slisp.MakeError(msg.GetValue()), nil
})
