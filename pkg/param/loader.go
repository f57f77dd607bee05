// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDescriptor is the YAML shape of one parameter declaration.
type fileDescriptor struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Vector   bool   `yaml:"vector"`
	Required bool   `yaml:"required"`
	Category string `yaml:"category"`
	Short    string `yaml:"short"`
	Help     string `yaml:"help"`
	Default  any    `yaml:"default"`
}

type fileSet struct {
	Params []fileDescriptor `yaml:"params"`
}

// LoadFile reads a parameter-set declaration from a YAML file.
func LoadFile(path string) ([]Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Load decodes a parameter set from r. Declaration order is preserved.
func Load(r io.Reader) ([]Descriptor, error) {
	var set fileSet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}

	ds := make([]Descriptor, 0, len(set.Params))
	for i, fd := range set.Params {
		if fd.Name == "" {
			return nil, fmt.Errorf("param %d: missing name", i)
		}
		if fd.Type == "" {
			return nil, fmt.Errorf("param %s: missing type", fd.Name)
		}
		if len(fd.Short) > 1 {
			return nil, fmt.Errorf("param %s: short option %q must be a single letter", fd.Name, fd.Short)
		}
		cat, err := ParseCategory(fd.Category)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", fd.Name, err)
		}
		value, err := convertDefault(fd)
		if err != nil {
			return nil, err
		}
		ds = append(ds, &Static{
			ID:         fd.Name,
			Type:       fd.Type,
			IsVector:   fd.Vector,
			IsRequired: fd.Required,
			Cat:        cat,
			ShortOpt:   fd.Short,
			Desc:       fd.Help,
			Value:      value,
		})
	}
	return ds, nil
}

// convertDefault maps the decoded YAML default onto the kinds Static
// accepts. YAML sequences become []string.
func convertDefault(fd fileDescriptor) (any, error) {
	switch v := fd.Default.(type) {
	case nil:
		return nil, nil
	case string, bool, int, int64, float64:
		return v, nil
	case []any:
		ss := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("param %s: default list must hold strings, got %T", fd.Name, item)
			}
			ss = append(ss, s)
		}
		return ss, nil
	}
	return nil, fmt.Errorf("param %s: unsupported default type %T", fd.Name, fd.Default)
}
