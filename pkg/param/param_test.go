// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStaticDefaultString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float", 1.5, "1.5"},
		{"list", []string{"a", "b"}, "a,b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Static{ID: "x", Type: "text", Value: tt.value}
			got, err := s.DefaultString()
			if err != nil {
				t.Fatalf("DefaultString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DefaultString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStaticDefaultStringUnsupported(t *testing.T) {
	s := &Static{ID: "x", Type: "text", Value: struct{}{}}
	if _, err := s.DefaultString(); err == nil {
		t.Fatal("DefaultString() accepted an unsupported kind")
	}
}

func TestStaticBooleanScalar(t *testing.T) {
	tests := []struct {
		name string
		s    *Static
		want bool
	}{
		{"scalar bool", &Static{ID: "x", Type: "bool"}, true},
		{"vector bool", &Static{ID: "x", Type: "bool", IsVector: true}, false},
		{"scalar text", &Static{ID: "x", Type: "text"}, false},
	}
	for _, tt := range tests {
		if got := tt.s.BooleanScalar(); got != tt.want {
			t.Errorf("%s: BooleanScalar() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	src := `
params:
  - name: outputPath
    type: text
    required: true
    category: argument
    help: Where to write
  - name: verbose
    type: bool
    short: v
    default: false
  - name: tags
    type: text
    vector: true
    default: [a, b]
`
	ds, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []Descriptor{
		&Static{ID: "outputPath", Type: "text", IsRequired: true, Cat: Argument, Desc: "Where to write"},
		&Static{ID: "verbose", Type: "bool", ShortOpt: "v", Value: false},
		&Static{ID: "tags", Type: "text", IsVector: true, Value: []string{"a", "b"}},
	}
	if diff := cmp.Diff(want, ds); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing name", "params:\n  - type: text\n"},
		{"missing type", "params:\n  - name: x\n"},
		{"long short option", "params:\n  - name: x\n    type: text\n    short: xy\n"},
		{"bad category", "params:\n  - name: x\n    type: text\n    category: flag\n"},
		{"unknown field", "params:\n  - name: x\n    type: text\n    bogus: 1\n"},
		{"mixed default list", "params:\n  - name: x\n    type: text\n    default: [a, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.src)); err == nil {
				t.Fatal("Load() accepted invalid input")
			}
		})
	}
}
