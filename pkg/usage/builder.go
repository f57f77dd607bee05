// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usage

import (
	"fmt"
	"strings"
)

const usagePrefix = "Usage: "

// BuildDoc assembles the full usage document: the optional description
// block, the primary usage line, one secondary line per vector option,
// and the two-section reference table. Callers rebuild the document on
// every parse because descriptor defaults may mutate between calls.
func BuildDoc(name, description string, args, opts *Table) string {
	var b strings.Builder
	if description != "" {
		if !strings.HasSuffix(description, ".") {
			description += "."
		}
		b.WriteString(description)
		b.WriteString("\n\n")
	}

	b.WriteString(usagePrefix)
	b.WriteString(primaryLine(name, args, opts))
	b.WriteString("\n")
	indent := strings.Repeat(" ", len(usagePrefix))
	for _, line := range secondaryLines(name, args, opts) {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if args.Len() > 0 {
		writeSection(&b, "Arguments:", args)
		if opts.Len() > 0 {
			b.WriteString("\n")
		}
	}
	if opts.Len() > 0 {
		writeSection(&b, "Options:", opts)
	}
	return b.String()
}

// primaryLine renders the main usage line: required options, the
// [options] marker, required arguments (non-vector first), then optional
// arguments individually bracketed.
//
// The trailing "..." lands on the last required vector argument only when
// no optional argument exists. With optional arguments present the
// repetition goes undocumented on this line; external tooling depends on
// that exact shape, so it stays.
func primaryLine(name string, args, opts *Table) string {
	parts := []string{name}
	for _, e := range opts.Elements() {
		if e.Required {
			parts = append(parts, e.Token)
		}
	}
	parts = append(parts, "[options]")

	required := orderArgs(args, true)
	optional := orderArgs(args, false)

	ellipsisAt := -1
	for _, e := range required {
		parts = append(parts, e.Token)
		if e.Vector && len(optional) == 0 {
			ellipsisAt = len(parts) - 1
		}
	}
	if ellipsisAt >= 0 {
		parts[ellipsisAt] += "..."
	}
	for _, e := range optional {
		parts = append(parts, "["+e.Token+"]")
	}
	return strings.Join(parts, " ")
}

// secondaryLines emits one extra usage line per vector option. A
// repeatable option cannot share an unambiguous line with another
// repeatable construct, so each one gets a dedicated line isolating its
// repetition: the required arguments, the [options] marker, the other
// required options, and finally the repeated option itself.
func secondaryLines(name string, args, opts *Table) []string {
	var lines []string
	for _, v := range opts.Elements() {
		if !v.Vector {
			continue
		}
		parts := []string{name}
		for _, e := range args.Elements() {
			if e.Required {
				parts = append(parts, e.Token)
			}
		}
		parts = append(parts, "[options]")
		for _, e := range opts.Elements() {
			if e.Required && e != v {
				parts = append(parts, e.Token)
			}
		}
		tok := v.Token + "..."
		if !v.Required {
			tok = "[" + tok + "]"
		}
		parts = append(parts, tok)
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

// orderArgs returns the argument elements with the given required state,
// non-vector elements first, each group in declaration order.
func orderArgs(args *Table, required bool) []*Element {
	var out []*Element
	for _, e := range args.Elements() {
		if e.Required == required && !e.Vector {
			out = append(out, e)
		}
	}
	for _, e := range args.Elements() {
		if e.Required == required && e.Vector {
			out = append(out, e)
		}
	}
	return out
}

// writeSection renders one headed table section. Display tokens are
// left-padded to the widest token in the section so the description
// column lines up.
func writeSection(b *strings.Builder, header string, t *Table) {
	width := 0
	for _, e := range t.Elements() {
		if len(e.Display) > width {
			width = len(e.Display)
		}
	}
	b.WriteString(header)
	b.WriteString("\n")
	for _, e := range t.Elements() {
		fmt.Fprintf(b, "  %*s  %s\n", width, e.Display, e.Desc)
	}
}
