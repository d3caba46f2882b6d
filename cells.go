//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2024-present Detlef Stern
//-----------------------------------------------------------------------------

package slisp

import (
	"io"
	"strings"
)

// cells is the shared ordered-sequence-of-children representation used by
// both Sexpr and QExpr. A slice backing gives O(1) indexed access and a
// natural splice-by-append for join/eval/apply, compared to a cons-Pair
// list.
type cells []Value

// Size returns the number of child cells.
func (c cells) Size() int { return len(c) }

// IsEmptyCells returns true iff there are no child cells.
func (c cells) IsEmptyCells() bool { return len(c) == 0 }

// Nth returns the n-th child, or ok=false if n is out of range.
func (c cells) Nth(n int) (Value, bool) {
	if n < 0 || n >= len(c) {
		return nil, false
	}
	return c[n], true
}

// PushBack appends a child, returning the extended cells.
func (c cells) PushBack(child Value) cells { return append(c, child) }

// PopFront removes and returns the first child, along with the remaining
// cells.
func (c cells) PopFront() (Value, cells) {
	if len(c) == 0 {
		return nil, c
	}
	return c[0], c[1:]
}

// Splice appends the children of other after c's own children, leaving both
// untouched (a fresh slice is returned so neither argument is mutated).
func (c cells) Splice(other cells) cells {
	result := make(cells, 0, len(c)+len(other))
	result = append(result, c...)
	result = append(result, other...)
	return result
}

func (c cells) isEqualCells(other cells) bool {
	if len(c) != len(other) {
		return false
	}
	for i, v := range c {
		if !v.IsEqual(other[i]) {
			return false
		}
	}
	return true
}

func (c cells) deepCopyCells() cells {
	if c == nil {
		return nil
	}
	result := make(cells, len(c))
	for i, v := range c {
		result[i] = DeepCopy(v)
	}
	return result
}

func printCells(w io.Writer, c cells, open, close string) (int, error) {
	length, err := io.WriteString(w, open)
	if err != nil {
		return length, err
	}
	for i, v := range c {
		if i > 0 {
			l, err2 := io.WriteString(w, " ")
			length += l
			if err2 != nil {
				return length, err2
			}
		}
		l, err2 := Print(w, v)
		length += l
		if err2 != nil {
			return length, err2
		}
	}
	l, err := io.WriteString(w, close)
	length += l
	return length, err
}

func stringCells(c cells, open, close string) string {
	var sb strings.Builder
	_, _ = printCells(&sb, c, open, close)
	return sb.String()
}
