// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usage

import (
	"errors"
	"testing"

	"github.com/usagekit/usagekit/pkg/param"
)

func TestDashName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"outputPath", "output-path"},
		{"maxRetryCount", "max-retry-count"},
		{"name", "name"},
		{"Name", "name"},
		{"HTTPPort", "httpport"},
		{"a", "a"},
	}
	for _, tt := range tests {
		if got := dashName(tt.in); got != tt.want {
			t.Errorf("dashName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompileToggleNaming(t *testing.T) {
	tests := []struct {
		name      string
		d         *param.Static
		wantToken string
	}{
		{
			name:      "true default gets no- prefix",
			d:         &param.Static{ID: "force", Type: "bool", Value: true},
			wantToken: "--no-force",
		},
		{
			name:      "false default keeps plain name",
			d:         &param.Static{ID: "verbose", Type: "bool", Value: false},
			wantToken: "--verbose",
		},
		{
			name:      "empty boolean keeps plain name",
			d:         &param.Static{ID: "dryRun", Type: "bool"},
			wantToken: "--dry-run",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, opts, err := Compile([]param.Descriptor{tt.d})
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			e, ok := opts.Get(tt.d.ID)
			if !ok {
				t.Fatalf("element %s missing from option table", tt.d.ID)
			}
			if e.Token != tt.wantToken {
				t.Errorf("Token = %q, want %q", e.Token, tt.wantToken)
			}
		})
	}
}

func TestCompileDuplicateName(t *testing.T) {
	ds := []param.Descriptor{
		&param.Static{ID: "outputPath", Type: "text", Cat: param.Argument},
		&param.Static{ID: "OutputPath", Type: "text"},
	}
	_, _, err := Compile(ds)
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("Compile() error = %v, want *DuplicateNameError", err)
	}
	if dup.Name != "output-path" {
		t.Errorf("duplicate name = %q, want %q", dup.Name, "output-path")
	}
}

func TestCompileRequired(t *testing.T) {
	tests := []struct {
		name string
		d    *param.Static
		want bool
	}{
		{
			name: "required and empty",
			d:    &param.Static{ID: "src", Type: "text", IsRequired: true, Cat: param.Argument},
			want: true,
		},
		{
			name: "required with a default is satisfied",
			d:    &param.Static{ID: "src", Type: "text", IsRequired: true, Value: "a", Cat: param.Argument},
			want: false,
		},
		{
			name: "boolean toggles are never required",
			d:    &param.Static{ID: "force", Type: "bool", IsRequired: true},
			want: false,
		},
		{
			name: "optional and empty",
			d:    &param.Static{ID: "src", Type: "text", Cat: param.Argument},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, opts, err := Compile([]param.Descriptor{tt.d})
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			e, ok := args.Get(tt.d.ID)
			if !ok {
				e, ok = opts.Get(tt.d.ID)
			}
			if !ok {
				t.Fatalf("element %s missing", tt.d.ID)
			}
			if e.Required != tt.want {
				t.Errorf("Required = %v, want %v", e.Required, tt.want)
			}
		})
	}
}

func TestCompileTokens(t *testing.T) {
	ds := []param.Descriptor{
		&param.Static{ID: "outputPath", Type: "text", IsRequired: true, Cat: param.Argument, Desc: "Where to write"},
		&param.Static{ID: "verbose", Type: "bool", ShortOpt: "v", Value: false, Desc: "Chatty output"},
		&param.Static{ID: "host", Type: "text", ShortOpt: "H", Value: "localhost"},
		&param.Static{ID: "retries", Type: "number", Value: 3},
		&param.Static{ID: "tags", Type: "text", IsVector: true},
	}
	args, opts, err := Compile(ds)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	tests := []struct {
		name        string
		wantToken   string
		wantDisplay string
		wantDesc    string
	}{
		{"outputPath", "<output-path>", "<output-path>", "Where to write (text)"},
		{"verbose", "--verbose", "--verbose, -v", "Chatty output false (bool)"},
		{"host", "--host=<value>", "--host=<value>, -H=<value>", `"localhost" (text)`},
		{"retries", "--retries=<value>", "--retries=<value>", "3 (number)"},
		{"tags", "--tags=<value>", "--tags=<value>", "(text[])"},
	}
	for _, tt := range tests {
		e, ok := args.Get(tt.name)
		if !ok {
			e, ok = opts.Get(tt.name)
		}
		if !ok {
			t.Fatalf("element %s missing", tt.name)
		}
		if e.Token != tt.wantToken {
			t.Errorf("%s: Token = %q, want %q", tt.name, e.Token, tt.wantToken)
		}
		if e.Display != tt.wantDisplay {
			t.Errorf("%s: Display = %q, want %q", tt.name, e.Display, tt.wantDisplay)
		}
		if e.Desc != tt.wantDesc {
			t.Errorf("%s: Desc = %q, want %q", tt.name, e.Desc, tt.wantDesc)
		}
	}
}

func TestCompilePreservesDeclarationOrder(t *testing.T) {
	ds := []param.Descriptor{
		&param.Static{ID: "zeta", Type: "text"},
		&param.Static{ID: "alpha", Type: "text"},
		&param.Static{ID: "mid", Type: "text"},
	}
	_, opts, err := Compile(ds)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := []string{"zeta", "alpha", "mid"}
	for i, e := range opts.Elements() {
		if e.Name != want[i] {
			t.Errorf("element %d = %s, want %s", i, e.Name, want[i])
		}
	}
}

type errDescriptor struct {
	param.Static
}

func (e *errDescriptor) DefaultString() (string, error) {
	return "", errors.New("boom")
}

func TestCompileDefaultError(t *testing.T) {
	ds := []param.Descriptor{
		&errDescriptor{param.Static{ID: "bad", Type: "text", Value: struct{}{}}},
	}
	if _, _, err := Compile(ds); err == nil {
		t.Fatal("Compile() did not surface default serialization error")
	}
}
