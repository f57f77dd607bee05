// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings loads process-wide configuration. The usage engine
// only consumes the version string; the file may grow more keys as the
// surrounding application does.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

const (
	// DefaultFile is the settings file looked up when no path is given.
	DefaultFile = "usagekit.toml"

	envVersion = "USAGEKIT_VERSION"
)

// Settings is the on-disk configuration.
type Settings struct {
	Version string `toml:"version,omitempty"`
}

// Load reads settings from path (DefaultFile when empty). A missing file
// yields zero settings without error. The USAGEKIT_VERSION environment
// variable overrides the file, mirroring how hosts override prefs.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultFile
	}
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load settings %s: %w", path, err)
	}
	if v := os.Getenv(envVersion); v != "" {
		s.Version = v
	}
	if s.Version != "" {
		if _, err := semver.NewVersion(s.Version); err != nil {
			return nil, fmt.Errorf("settings version %q: %w", s.Version, err)
		}
	}
	return &s, nil
}
