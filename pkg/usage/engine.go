// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usage turns declarative parameter descriptors into a usage
// grammar, drives a grammar matcher over real argument vectors, and
// resolves the matcher's raw output back onto named, typed parameters.
//
// A parse runs compile → build → match → resolve. Compiled elements and
// the generated document live for a single call; descriptors are owned
// and mutated entirely outside the engine.
package usage

import (
	"errors"

	"github.com/usagekit/usagekit/pkg/docmatch"
	"github.com/usagekit/usagekit/pkg/param"
)

// Matcher is the pluggable grammar-matching engine. Implementations match
// argv against the generated usage document and return the raw key/value
// map: "--name" keys for options, "<name>" keys for positionals. A help
// request surfaces as docmatch.ErrHelp, a version query as a
// *docmatch.VersionError, and a grammar violation as a
// *docmatch.MatchError.
type Matcher interface {
	Match(doc string, argv []string, cfg docmatch.Config) (map[string]any, error)
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(doc string, argv []string, cfg docmatch.Config) (map[string]any, error)

func (f MatcherFunc) Match(doc string, argv []string, cfg docmatch.Config) (map[string]any, error) {
	return f(doc, argv, cfg)
}

// Config configures an Engine.
type Config struct {
	// Name is the executable name used in generated usage lines.
	Name string
	// Description is the optional leading paragraph of the document.
	Description string
	// Version is reported for a --version query.
	Version string
	// ErrStatus is the status marker attached to HelpError and
	// MismatchError. It is the only machine-readable signal separating
	// those two conditions from general validation failures.
	ErrStatus int
	// Matcher overrides the grammar matcher; nil selects docmatch.Match.
	Matcher Matcher
}

// Engine performs parse calls for one executable. It holds no state
// across calls; concurrent parses of different descriptor sets are safe.
type Engine struct {
	cfg     Config
	matcher Matcher
}

// New returns an Engine for the given configuration.
func New(cfg Config) *Engine {
	m := cfg.Matcher
	if m == nil {
		m = MatcherFunc(docmatch.Match)
	}
	return &Engine{cfg: cfg, matcher: m}
}

// Doc renders the usage document for the descriptors without parsing
// anything, for callers that print usage on their own validation
// failures.
func (e *Engine) Doc(descriptors []param.Descriptor) (string, error) {
	args, opts, err := Compile(descriptors)
	if err != nil {
		return "", err
	}
	return BuildDoc(e.cfg.Name, e.cfg.Description, args, opts), nil
}

// Parse compiles the descriptors, builds the usage document, matches argv
// against it, and resolves the raw output back onto descriptor names.
// argv must already exclude the platform-reserved leading tokens.
//
// Descriptors never supplied on the command line are absent from the
// result; the caller applies its own defaults.
func (e *Engine) Parse(descriptors []param.Descriptor, argv []string) (map[string]any, error) {
	args, opts, err := Compile(descriptors)
	if err != nil {
		return nil, err
	}
	doc := BuildDoc(e.cfg.Name, e.cfg.Description, args, opts)
	raw, err := e.match(doc, argv)
	if err != nil {
		return nil, err
	}
	return Resolve(raw, args, opts, descriptors), nil
}

// match drives the matcher and rewraps its failures so every consumer can
// branch on the shared status marker instead of inspecting message text.
func (e *Engine) match(doc string, argv []string) (map[string]any, error) {
	raw, err := e.matcher.Match(doc, argv, docmatch.Config{
		SmartOptions: true,
		Accumulate:   true,
		Version:      e.cfg.Version,
	})
	if err == nil {
		return raw, nil
	}
	if errors.Is(err, docmatch.ErrHelp) {
		return nil, &HelpError{Text: doc, Status: e.cfg.ErrStatus}
	}
	var ve *docmatch.VersionError
	if errors.As(err, &ve) {
		return nil, &HelpError{Text: ve.Version, Status: e.cfg.ErrStatus}
	}
	var me *docmatch.MatchError
	if errors.As(err, &me) {
		return nil, &MismatchError{Msg: me.Msg, Status: e.cfg.ErrStatus}
	}
	return nil, err
}
