// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command usagekit inspects parameter sets declared in YAML files: it
// renders their generated usage document or parses an argument vector
// against them and prints the resolved values. The tool eats its own dog
// food, describing its command line with the same descriptors it parses.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/usagekit/usagekit/pkg/param"
	"github.com/usagekit/usagekit/pkg/settings"
	"github.com/usagekit/usagekit/pkg/usage"
)

// Exit status shared by help requests and grammar mismatches so wrappers
// can tell both apart from ordinary failures.
const parseErrStatus = 2

func main() {
	log.SetFlags(0)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	if err := run(os.Args[1:]); err != nil {
		var he *usage.HelpError
		if errors.As(err, &he) {
			fmt.Println(strings.TrimRight(he.Text, "\n"))
			return
		}
		var me *usage.MismatchError
		if errors.As(err, &me) {
			color.New(color.FgRed).Fprintf(os.Stderr, "usagekit: %s\n", me.Msg)
			os.Exit(me.Status)
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "usagekit: %v\n", err)
		os.Exit(1)
	}
}

func ownDescriptors() []param.Descriptor {
	return []param.Descriptor{
		&param.Static{
			ID:         "paramsFile",
			Type:       "text",
			IsRequired: true,
			Cat:        param.Argument,
			Desc:       "YAML parameter-set declaration",
		},
		&param.Static{
			ID:       "arg",
			Type:     "text",
			IsVector: true,
			ShortOpt: "a",
			Desc:     "Argument token to parse against the set (repeatable)",
		},
		&param.Static{
			ID:       "docOnly",
			Type:     "bool",
			ShortOpt: "d",
			Value:    false,
			Desc:     "Print the generated document instead of parsing",
		},
		&param.Static{
			ID:       "settingsFile",
			Type:     "text",
			ShortOpt: "s",
			Value:    settings.DefaultFile,
			Desc:     "Settings file sourcing the version string",
		},
	}
}

func run(argv []string) error {
	own := ownDescriptors()
	boot := usage.New(usage.Config{
		Name:        "usagekit",
		Description: "Inspect and exercise declarative command-line parameter sets",
		ErrStatus:   parseErrStatus,
	})
	vals, err := boot.Parse(own, argv)
	if err != nil {
		return err
	}

	settingsFile, _ := vals["settingsFile"].(string)
	cfg, err := settings.Load(settingsFile)
	if err != nil {
		return err
	}

	paramsFile, _ := vals["paramsFile"].(string)
	ds, err := param.LoadFile(paramsFile)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(paramsFile), filepath.Ext(paramsFile))
	eng := usage.New(usage.Config{
		Name:      name,
		Version:   cfg.Version,
		ErrStatus: parseErrStatus,
	})

	if docOnly, _ := vals["docOnly"].(string); docOnly == "true" {
		doc, err := eng.Doc(ds)
		if err != nil {
			return err
		}
		fmt.Print(doc)
		return nil
	}

	var tokens []string
	if vs, ok := vals["arg"].([]string); ok {
		tokens = vs
	}
	resolved, err := eng.Parse(ds, tokens)
	if err != nil {
		return err
	}
	printResolved(ds, resolved)
	return nil
}

// printResolved emits name=value lines in declaration order.
func printResolved(ds []param.Descriptor, vals map[string]any) {
	bold := color.New(color.Bold)
	for _, d := range ds {
		v, ok := vals[d.Name()]
		if !ok {
			continue
		}
		switch vv := v.(type) {
		case []string:
			bold.Printf("%s", d.Name())
			fmt.Printf("=%s\n", strings.Join(vv, ","))
		default:
			bold.Printf("%s", d.Name())
			fmt.Printf("=%v\n", vv)
		}
	}
}
