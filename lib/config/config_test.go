// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.FrontEnd != "pkexec" {
		t.Errorf("expected front_end=pkexec, got %s", cfg.FrontEnd)
	}
	if cfg.Debug {
		t.Error("expected debug=false by default")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escalate.yaml")
	content := "front_end: /usr/local/bin/pkexec\ndebug: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FrontEnd != "/usr/local/bin/pkexec" {
		t.Errorf("front_end: got %s", cfg.FrontEnd)
	}
	if !cfg.Debug {
		t.Error("debug not set")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escalate.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FrontEnd != "pkexec" {
		t.Errorf("front_end default lost: got %s", cfg.FrontEnd)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestLoadFromEnvUnset(t *testing.T) {
	t.Setenv("ESCALATE_CONFIG", "")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.FrontEnd != "pkexec" {
		t.Errorf("expected defaults, got front_end=%s", cfg.FrontEnd)
	}
}

func TestLoadFromEnvSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escalate.yaml")
	if err := os.WriteFile(path, []byte("front_end: /opt/elevate/pkexec\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ESCALATE_CONFIG", path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.FrontEnd != "/opt/elevate/pkexec" {
		t.Errorf("front_end: got %s", cfg.FrontEnd)
	}
}
