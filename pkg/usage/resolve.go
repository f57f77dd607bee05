// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usage

import (
	"strconv"
	"strings"

	"github.com/usagekit/usagekit/pkg/param"
)

// Resolve maps the matcher's raw output back onto descriptor names. The
// first raw key matching a descriptor consumes it, so a matcher emitting
// both the long and the short form of one flag contributes one value.
// Resolution is pure mapping over already-validated input and never
// fails; raw keys owned by no descriptor are dropped.
func Resolve(raw map[string]any, args, opts *Table, descriptors []param.Descriptor) map[string]any {
	byName := make(map[string]param.Descriptor, len(descriptors))
	for _, d := range descriptors {
		byName[d.Name()] = d
	}

	consumed := make(map[string]bool, len(raw))
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		e := findOwner(key, args, opts)
		if e == nil || consumed[e.Name] {
			continue
		}
		consumed[e.Name] = true
		out[e.Name] = normalize(byName[e.Name], value)
	}
	return out
}

// findOwner locates the element whose usage token (the portion before any
// "=") or short option form equals the raw key. Arguments are checked
// before options.
func findOwner(key string, tables ...*Table) *Element {
	for _, t := range tables {
		for _, e := range t.Elements() {
			name := e.Token
			if i := strings.Index(name, "="); i >= 0 {
				name = name[:i]
			}
			if key == name || (e.Short != "" && key == e.Short) {
				return e
			}
		}
	}
	return nil
}

// normalize shapes a raw value for the descriptor that owns it.
func normalize(d param.Descriptor, value any) any {
	if d != nil && d.BooleanScalar() {
		if v, ok := value.(bool); ok {
			// The flag's name already describes the override of the
			// configured default, so observing it yields the opposite
			// of that default.
			return strconv.FormatBool(d.BoolValue() != v)
		}
	}
	if d != nil && d.Vector() {
		// A single occurrence of a repeatable element arrives as a
		// scalar; downstream consumers always see a list.
		if s, ok := value.(string); ok {
			return []string{s}
		}
	}
	if v, ok := value.(bool); ok {
		return strconv.FormatBool(v)
	}
	return value
}
