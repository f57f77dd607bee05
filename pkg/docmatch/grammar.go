// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmatch

import (
	"strings"
)

// optionSpec describes one named option learned from the document.
type optionSpec struct {
	long     string // "--name"
	short    string // "-n", "" if none
	hasValue bool
	repeat   bool // marked with "..." in some usage line
	required bool // appears unbracketed in the primary usage line
}

// positionalSpec describes one positional argument from the primary
// usage line, in order of appearance.
type positionalSpec struct {
	name     string // "<name>"
	required bool
	repeat   bool
}

// grammar is the matchable form of a usage document.
type grammar struct {
	options     []*optionSpec
	positionals []positionalSpec
}

func (g *grammar) byLong(long string) *optionSpec {
	for _, o := range g.options {
		if o.long == long {
			return o
		}
	}
	return nil
}

func (g *grammar) byShort(short string) *optionSpec {
	for _, o := range g.options {
		if o.short == short {
			return o
		}
	}
	return nil
}

// parseDoc extracts the grammar from a usage document: the "Usage:" line
// and its indented continuation lines, plus the "Options:" table rows for
// short aliases and value arity.
func parseDoc(doc string) (*grammar, error) {
	g := &grammar{}

	lines := strings.Split(doc, "\n")
	var usageLines []string
	for i, line := range lines {
		rest, ok := strings.CutPrefix(line, "Usage:")
		if !ok {
			continue
		}
		usageLines = append(usageLines, rest)
		for j := i + 1; j < len(lines); j++ {
			cont := lines[j]
			if strings.TrimSpace(cont) == "" || !strings.HasPrefix(cont, " ") {
				break
			}
			usageLines = append(usageLines, cont)
		}
		break
	}
	if len(usageLines) == 0 {
		return nil, &MatchError{Msg: "usage document has no Usage: line"}
	}

	parseOptionsSection(g, lines)
	for i, line := range usageLines {
		parseUsageLine(g, line, i == 0)
	}
	return g, nil
}

// parseOptionsSection reads the rows under an "Options:" header. Each row
// holds comma-separated option forms followed by at least two spaces and
// the description.
func parseOptionsSection(g *grammar, lines []string) {
	inSection := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "Options:" {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if !strings.HasPrefix(line, "  ") || strings.TrimSpace(line) == "" {
			inSection = false
			continue
		}
		row := strings.TrimSpace(line)
		if i := strings.Index(row, "  "); i >= 0 {
			row = row[:i]
		}
		spec := &optionSpec{}
		for _, form := range strings.Split(row, ",") {
			form = strings.TrimSpace(form)
			name, _, hasEq := strings.Cut(form, "=")
			switch {
			case strings.HasPrefix(name, "--"):
				spec.long = name
				spec.hasValue = spec.hasValue || hasEq
			case strings.HasPrefix(name, "-"):
				spec.short = name
				spec.hasValue = spec.hasValue || hasEq
			}
		}
		if spec.long == "" && spec.short == "" {
			continue
		}
		if spec.long == "" {
			spec.long = spec.short
		}
		g.options = append(g.options, spec)
	}
}

// parseUsageLine folds one usage line into the grammar. The first field is
// the program name. Positional order is taken from the primary line only;
// secondary lines contribute repeat markers for options.
func parseUsageLine(g *grammar, line string, primary bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	for _, raw := range fields[1:] {
		if raw == "[options]" {
			continue
		}
		tok := raw
		optional := false
		if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
			optional = true
			tok = tok[1 : len(tok)-1]
		}
		repeat := strings.HasSuffix(tok, "...")
		tok = strings.TrimSuffix(tok, "...")

		if strings.HasPrefix(tok, "--") {
			name, _, hasEq := strings.Cut(tok, "=")
			spec := g.byLong(name)
			if spec == nil {
				spec = &optionSpec{long: name}
				g.options = append(g.options, spec)
			}
			spec.hasValue = spec.hasValue || hasEq
			spec.repeat = spec.repeat || repeat
			if primary && !optional {
				spec.required = true
			}
			continue
		}
		if primary && strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">") {
			g.positionals = append(g.positionals, positionalSpec{
				name:     tok,
				required: !optional,
				repeat:   repeat,
			})
		}
	}
}
