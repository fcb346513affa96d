// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for escalate demo
// binaries.
//
// Configuration is loaded from a single file specified by:
//   - ESCALATE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. The bootstrap library
// itself takes everything as parameters; this package only feeds the
// binaries built on top of it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for an escalate binary.
type Config struct {
	// FrontEnd is the elevation front-end binary used by the Elevated
	// strategy. Defaults to "pkexec" resolved via PATH.
	FrontEnd string `yaml:"front_end"`

	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		FrontEnd: "pkexec",
	}
}

// Load reads the configuration file at path, applying defaults for
// fields the file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.FrontEnd == "" {
		cfg.FrontEnd = Default().FrontEnd
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by ESCALATE_CONFIG, or the defaults
// when the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("ESCALATE_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
