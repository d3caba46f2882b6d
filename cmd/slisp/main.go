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

// Package main provides a simple interpreter for slisp programs: a REPL
// when run without arguments, or a batch loader of a single source file
// when given one.
package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"t73f.de/r/slisp"
	"t73f.de/r/slisp/slispbuiltins"
	"t73f.de/r/slisp/slispreader"
)

const standardLibraryDir = "standard"

func main() {
	root := slisp.NewRootEnvironment()
	slispbuiltins.BindAll(root)

	if err := loadStandardLibrary(root); err != nil {
		fmt.Fprintf(os.Stderr, "unable to load standard library: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		if err := slispbuiltins.LoadFile(root, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "unable to load %q: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		return
	}

	repl(root)
}

// loadStandardLibrary discovers every *.slisp file under standardLibraryDir
// relative to the current working directory, in deterministic (lexical)
// order, and loads each into root. A missing directory is not an error:
// the standard library is optional.
func loadStandardLibrary(root *slisp.Environment) error {
	var paths []string
	err := filepath.WalkDir(standardLibraryDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == standardLibraryDir {
				return nil
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".slisp") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Strings(paths)
	for _, path := range paths {
		if err := slispbuiltins.LoadFile(root, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// repl runs an interactive read-eval-print loop over stdin. `exit`
// terminates it; `env` pretty-prints the current root environment's
// bindings; a blank line is skipped; anything else is read as one slisp
// form, evaluated, and its display form printed.
func repl(root *slisp.Environment) {
	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("slisp> ")
		if !in.Scan() {
			fmt.Println("Exiting")
			return
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "exit":
			fmt.Println("Exiting")
			return
		case "env":
			fmt.Println(root.Bindings())
			continue
		}
		forms, err := slispreader.ReadAll(strings.NewReader(line), "<repl>")
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		for _, form := range forms {
			fmt.Println(slisp.Evaluate(root, form))
		}
	}
}
