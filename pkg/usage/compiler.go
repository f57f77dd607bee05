// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usage

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/usagekit/usagekit/pkg/param"
)

// Compile maps descriptors to compiled elements, split into positional
// arguments and named options. Both tables preserve declaration order.
//
// A boolean-scalar descriptor whose current value is true gets a "no-"
// prefixed name: the flag's absence already means "default", so only the
// overriding state needs a name. Boolean toggles are never required in
// the grammar for the same reason.
func Compile(descriptors []param.Descriptor) (args, opts *Table, err error) {
	defaults, err := serializeDefaults(descriptors)
	if err != nil {
		return nil, nil, err
	}

	args, opts = newTable(), newTable()
	seen := make(map[string]bool, len(descriptors))
	for i, d := range descriptors {
		name := dashName(d.Name())
		if d.BooleanScalar() && !d.Empty() && d.BoolValue() {
			name = "no-" + name
		}
		if seen[name] {
			return nil, nil, &DuplicateNameError{Name: name}
		}
		seen[name] = true

		e := &Element{
			Name:     d.Name(),
			Category: d.Category(),
			Required: d.Required() && d.Empty() && !d.BooleanScalar(),
			Vector:   d.Vector(),
			Desc:     renderDesc(d, defaults[i]),
		}
		if d.Category() == param.Argument {
			e.Token = "<" + name + ">"
			e.Display = e.Token
			args.add(e)
			continue
		}
		e.Token = "--" + name
		if !d.BooleanScalar() {
			e.Token += "=<value>"
		}
		e.Display = e.Token
		if s := d.Short(); s != "" {
			e.Short = "-" + s
			short := e.Short
			if !d.BooleanScalar() {
				short += "=<value>"
			}
			e.Display += ", " + short
		}
		opts.add(e)
	}
	return args, opts, nil
}

// serializeDefaults renders every descriptor's default display string.
// The calls are independent, so they fan out one task per descriptor and
// join back in declaration order regardless of completion order.
func serializeDefaults(descriptors []param.Descriptor) ([]string, error) {
	out := make([]string, len(descriptors))
	var g errgroup.Group
	for i, d := range descriptors {
		i, d := i, d
		g.Go(func() error {
			s, err := d.DefaultString()
			if err != nil {
				return fmt.Errorf("serialize default of %s: %w", d.Name(), err)
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// dashName converts an identifier like "outputPath" to "output-path",
// splitting at lower-to-upper case transitions.
func dashName(id string) string {
	var b strings.Builder
	b.Grow(len(id) + 2)
	runes := []rune(id)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// renderDesc builds the table description column: the help text, the
// serialized default when the descriptor has one, and the parenthesized
// type annotation ("type" or "type[]" for vectors).
func renderDesc(d param.Descriptor, def string) string {
	parts := make([]string, 0, 3)
	if h := d.Help(); h != "" {
		parts = append(parts, h)
	}
	if def != "" && !d.Empty() {
		parts = append(parts, quoteDefault(def))
	}
	typ := d.TypeName()
	if d.Vector() {
		typ += "[]"
	}
	parts = append(parts, "("+typ+")")
	return strings.Join(parts, " ")
}

// quoteDefault leaves numeric and boolean defaults bare and quotes
// everything else.
func quoteDefault(s string) string {
	if s == "true" || s == "false" {
		return s
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return s
	}
	return strconv.Quote(s)
}
