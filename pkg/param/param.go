// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package param defines the read-only descriptor contract consumed by the
// usage engine, a concrete descriptor backed by plain fields, and a YAML
// loader for declaring parameter sets in files.
package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Category classifies a parameter as a positional argument or a named
// option. The set is closed; Option is the zero value and the default.
type Category int

const (
	Option Category = iota
	Argument
)

func (c Category) String() string {
	switch c {
	case Argument:
		return "argument"
	default:
		return "option"
	}
}

// ParseCategory parses "argument" or "option" (the default for "").
func ParseCategory(s string) (Category, error) {
	switch s {
	case "", "option":
		return Option, nil
	case "argument":
		return Argument, nil
	}
	return Option, fmt.Errorf("unknown category %q", s)
}

// Descriptor is a read-only view of one named, typed command-line
// parameter. Descriptors are owned and mutated outside the engine; a
// parse call only reads them.
type Descriptor interface {
	// Name returns the unique identifier, e.g. "outputPath".
	Name() string
	// TypeName returns the semantic type tag, e.g. "text" or "bool".
	TypeName() string
	// Vector reports whether the parameter accepts repeated values.
	Vector() bool
	// Required reports whether the parameter was declared required.
	Required() bool
	// Empty reports whether the parameter has no current or default value.
	Empty() bool
	// Category returns Argument or Option.
	Category() Category
	// Short returns the optional single-letter option code, "" if none.
	Short() string
	// Help returns the optional human description, "" if none.
	Help() string
	// BooleanScalar reports whether this is a non-vector boolean
	// parameter. Decided once at construction so the engine never
	// inspects value types at runtime.
	BooleanScalar() bool
	// BoolValue returns the current value of a boolean-scalar parameter.
	// Only meaningful when BooleanScalar is true and Empty is false.
	BoolValue() bool
	// DefaultString serializes the current/default value for display.
	DefaultString() (string, error)
}

// Static is a self-contained Descriptor backed by plain fields. The demo
// binary and tests use it; applications with their own parameter objects
// adapt those to the Descriptor interface instead.
type Static struct {
	ID         string
	Type       string
	IsVector   bool
	IsRequired bool
	Cat        Category
	ShortOpt   string
	Desc       string
	// Value holds the current/default value; nil means the parameter is
	// empty. Accepted kinds: string, bool, int, int64, float64, []string.
	Value any
}

func (s *Static) Name() string       { return s.ID }
func (s *Static) TypeName() string   { return s.Type }
func (s *Static) Vector() bool       { return s.IsVector }
func (s *Static) Required() bool     { return s.IsRequired }
func (s *Static) Empty() bool        { return s.Value == nil }
func (s *Static) Category() Category { return s.Cat }
func (s *Static) Short() string      { return s.ShortOpt }
func (s *Static) Help() string       { return s.Desc }

func (s *Static) BooleanScalar() bool {
	return s.Type == "bool" && !s.IsVector
}

func (s *Static) BoolValue() bool {
	v, _ := s.Value.(bool)
	return v
}

func (s *Static) DefaultString() (string, error) {
	switch v := s.Value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case []string:
		return strings.Join(v, ","), nil
	}
	return "", fmt.Errorf("parameter %s: unsupported default type %T", s.ID, s.Value)
}
