// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usage

import (
	"github.com/usagekit/usagekit/pkg/param"
)

// Element is the compiled form of one descriptor. Elements live for a
// single parse call; nothing is cached across calls.
type Element struct {
	// Name is the owning descriptor's identifier.
	Name     string
	Category param.Category
	// Display is the token shown in the reference table, including the
	// short alias when present.
	Display string
	// Token is the form used inside usage lines: "<name>" for arguments,
	// "--name" or "--name=<value>" for options.
	Token string
	// Short is the short option form, e.g. "-v"; "" if none.
	Short    string
	Required bool
	Vector   bool
	// Desc is the rendered description column: help text, serialized
	// default, and the parenthesized type annotation.
	Desc string
}

// Table holds compiled elements keyed by descriptor name, preserving
// declaration order.
type Table struct {
	order  []*Element
	byName map[string]*Element
}

func newTable() *Table {
	return &Table{byName: make(map[string]*Element)}
}

func (t *Table) add(e *Element) {
	t.order = append(t.order, e)
	t.byName[e.Name] = e
}

// Get returns the element for the given descriptor name.
func (t *Table) Get(name string) (*Element, bool) {
	e, ok := t.byName[name]
	return e, ok
}

// Elements returns the elements in declaration order.
func (t *Table) Elements() []*Element { return t.order }

// Len returns the number of elements.
func (t *Table) Len() int { return len(t.order) }
