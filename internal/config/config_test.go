package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if fromYAML != Default() {
		t.Errorf("embedded default = %+v, expected %+v", fromYAML, Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	content := `
log_level: debug
puzzles:
  octopus:
    steps: 10
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected debug", cfg.LogLevel)
	}
	if cfg.Puzzles.Octopus.Steps != 10 {
		t.Errorf("Octopus.Steps = %d, expected 10", cfg.Puzzles.Octopus.Steps)
	}
	// Untouched values keep their defaults
	if cfg.Puzzles.Octopus.FlashThreshold != 9 {
		t.Errorf("Octopus.FlashThreshold = %d, expected default 9", cfg.Puzzles.Octopus.FlashThreshold)
	}
	if cfg.Puzzles.Lanternfish.Part2Days != 256 {
		t.Errorf("Lanternfish.Part2Days = %d, expected default 256", cfg.Puzzles.Lanternfish.Part2Days)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("puzzles: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("puzzles:\n  sonar:\n    window: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "puzzles.sonar.window") {
		t.Errorf("expected window validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"empty log level", func(c *Config) { c.LogLevel = "" }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"zero steps", func(c *Config) { c.Puzzles.Octopus.Steps = 0 }, true},
		{"negative days", func(c *Config) { c.Puzzles.Lanternfish.Part1Days = -1 }, true},
		{"zero ceiling", func(c *Config) { c.Puzzles.Smoke.BasinCeiling = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/.aoc2021/history.db"); got != filepath.Join(home, ".aoc2021", "history.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("ExpandHome(absolute) = %q", got)
	}
	if got := ExpandHome("~user/x"); got != "~user/x" {
		t.Errorf("ExpandHome(~user) = %q, expected unchanged", got)
	}
}

func TestInputPath(t *testing.T) {
	cfg := Default()
	cfg.InputDir = "/data/inputs"
	if got := cfg.InputPath("day09"); got != filepath.Join("/data/inputs", "day09.txt") {
		t.Errorf("InputPath() = %q", got)
	}
}
