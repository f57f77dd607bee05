// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docmatch matches argument vectors against generated usage
// documents. It covers the grammar subset the usage engine emits: long
// and short options with optional values, grouped short options,
// repeatable options and positionals marked with "...", bracketed
// optional constructs, the [options] shortcut, and inline -h/--help and
// --version handling. Errors never terminate the process unless Exit is
// set.
package docmatch

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrHelp is returned when argv contains -h or --help.
var ErrHelp = errors.New("help requested")

// VersionError is returned when argv contains --version and a version
// string was configured.
type VersionError struct {
	Version string
}

func (e *VersionError) Error() string { return e.Version }

// MatchError is returned when argv does not satisfy the grammar: an
// unknown token, a malformed value, or a missing required element.
type MatchError struct {
	Msg string
}

func (e *MatchError) Error() string { return e.Msg }

// Config controls a single Match call.
type Config struct {
	// SmartOptions enables grouped short options, so -ab means -a -b.
	SmartOptions bool
	// Accumulate collects repeated occurrences of repeatable elements:
	// one occurrence stays a string, further occurrences grow a list.
	Accumulate bool
	// Exit prints the outcome and terminates the process on help or
	// mismatch, mirroring classic matchers. The usage engine always runs
	// with Exit false.
	Exit bool
	// Version is reported for a --version query; empty disables the flag.
	Version string
}

// Match parses argv against the usage document and returns the raw
// key/value map: "--name" keys for options (true for presence flags,
// string or []string for valued ones) and "<name>" keys for positionals.
// Elements never supplied are omitted from the map.
func Match(doc string, argv []string, cfg Config) (map[string]any, error) {
	out, err := match(doc, argv, cfg)
	if err != nil && cfg.Exit {
		exitOn(doc, cfg, err)
	}
	return out, err
}

func exitOn(doc string, cfg Config, err error) {
	if errors.Is(err, ErrHelp) {
		fmt.Println(strings.TrimRight(doc, "\n"))
		os.Exit(0)
	}
	var ve *VersionError
	if errors.As(err, &ve) {
		fmt.Println(ve.Version)
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func match(doc string, argv []string, cfg Config) (map[string]any, error) {
	g, err := parseDoc(doc)
	if err != nil {
		return nil, err
	}

	// Help and version are recognized anywhere before a "--" separator,
	// even when the rest of argv would not match.
	for _, a := range argv {
		if a == "--" {
			break
		}
		if a == "-h" || a == "--help" {
			return nil, ErrHelp
		}
		if a == "--version" && cfg.Version != "" {
			return nil, &VersionError{Version: cfg.Version}
		}
	}

	out := make(map[string]any)
	var positionals []string
	onlyPositionals := false

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case onlyPositionals:
			positionals = append(positionals, arg)
		case arg == "--":
			onlyPositionals = true
		case strings.HasPrefix(arg, "--"):
			consumed, err := scanLong(g, out, argv, i, cfg)
			if err != nil {
				return nil, err
			}
			i += consumed
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			consumed, err := scanShort(g, out, argv, i, cfg)
			if err != nil {
				return nil, err
			}
			i += consumed
		default:
			positionals = append(positionals, arg)
		}
	}

	if err := bindPositionals(g, out, positionals, cfg); err != nil {
		return nil, err
	}
	for _, spec := range g.options {
		if spec.required {
			if _, ok := out[spec.long]; !ok {
				return nil, &MatchError{Msg: "missing required option " + spec.long}
			}
		}
	}
	return out, nil
}

// scanLong handles one --name or --name=value token. It returns how many
// extra argv tokens were consumed.
func scanLong(g *grammar, out map[string]any, argv []string, i int, cfg Config) (int, error) {
	name, value, hasEq := strings.Cut(argv[i], "=")
	spec := g.byLong(name)
	if spec == nil {
		return 0, &MatchError{Msg: "unknown option: " + name}
	}
	if !spec.hasValue {
		if hasEq {
			return 0, &MatchError{Msg: name + " takes no value"}
		}
		out[spec.long] = true
		return 0, nil
	}
	if hasEq {
		store(out, spec, value, cfg)
		return 0, nil
	}
	if i+1 >= len(argv) {
		return 0, &MatchError{Msg: name + " requires a value"}
	}
	store(out, spec, argv[i+1], cfg)
	return 1, nil
}

// scanShort handles one -x token, walking grouped letters when
// SmartOptions is set. A letter whose option takes a value consumes the
// rest of the token, or the next argv token when nothing follows it.
func scanShort(g *grammar, out map[string]any, argv []string, i int, cfg Config) (int, error) {
	token := argv[i][1:]
	for pos := 0; pos < len(token); pos++ {
		short := "-" + string(token[pos])
		spec := g.byShort(short)
		if spec == nil {
			return 0, &MatchError{Msg: "unknown option: " + short}
		}
		if !spec.hasValue {
			out[spec.long] = true
			if !cfg.SmartOptions && pos+1 < len(token) {
				return 0, &MatchError{Msg: "unknown option: -" + token}
			}
			continue
		}
		rest := strings.TrimPrefix(token[pos+1:], "=")
		if rest != "" {
			store(out, spec, rest, cfg)
			return 0, nil
		}
		if i+1 >= len(argv) {
			return 0, &MatchError{Msg: short + " requires a value"}
		}
		store(out, spec, argv[i+1], cfg)
		return 1, nil
	}
	return 0, nil
}

// bindPositionals assigns collected positional tokens to the primary
// usage line's positional slots in order. A repeatable slot consumes all
// remaining tokens.
func bindPositionals(g *grammar, out map[string]any, values []string, cfg Config) error {
	i := 0
	for _, spec := range g.positionals {
		if spec.repeat {
			if i >= len(values) {
				if spec.required {
					return &MatchError{Msg: "missing required argument " + spec.name}
				}
				continue
			}
			for ; i < len(values); i++ {
				accumulate(out, spec.name, values[i], cfg)
			}
			continue
		}
		if i < len(values) {
			out[spec.name] = values[i]
			i++
			continue
		}
		if spec.required {
			return &MatchError{Msg: "missing required argument " + spec.name}
		}
	}
	if i < len(values) {
		return &MatchError{Msg: fmt.Sprintf("unexpected argument %q", values[i])}
	}
	return nil
}

func store(out map[string]any, spec *optionSpec, value string, cfg Config) {
	if spec.repeat {
		accumulate(out, spec.long, value, cfg)
		return
	}
	out[spec.long] = value
}

// accumulate grows a repeatable element's value: the first occurrence is
// stored as a plain string, later ones promote it to a list.
func accumulate(out map[string]any, key, value string, cfg Config) {
	if !cfg.Accumulate {
		out[key] = value
		return
	}
	switch prev := out[key].(type) {
	case nil:
		out[key] = value
	case string:
		out[key] = []string{prev, value}
	case []string:
		out[key] = append(prev, value)
	}
}
