// Package config provides YAML-based configuration loading for the
// puzzle runner and the per-puzzle tunables.
package config

import "fmt"

// Config is the top-level runner configuration.
type Config struct {
	Database string       `yaml:"database"`  // Path to the run history database
	LogLevel string       `yaml:"log_level"` // debug, info, warn or error
	InputDir string       `yaml:"input_dir"` // Directory holding dayNN.txt inputs
	Puzzles  PuzzleConfig `yaml:"puzzles"`
}

// PuzzleConfig groups the tunables of individual puzzles.
type PuzzleConfig struct {
	Sonar       SonarConfig       `yaml:"sonar"`
	Lanternfish LanternfishConfig `yaml:"lanternfish"`
	Smoke       SmokeConfig       `yaml:"smoke"`
	Octopus     OctopusConfig     `yaml:"octopus"`
}

// SonarConfig defines the depth sweep parameters (day 1).
type SonarConfig struct {
	Window int `yaml:"window"` // Sliding window length for part 2
}

// LanternfishConfig defines the simulation lengths (day 6).
type LanternfishConfig struct {
	Part1Days int `yaml:"part1_days"`
	Part2Days int `yaml:"part2_days"`
}

// SmokeConfig defines basin parameters (day 9).
type SmokeConfig struct {
	BasinCeiling  uint8 `yaml:"basin_ceiling"`  // Heights at or above this bound basins
	LargestBasins int   `yaml:"largest_basins"` // How many basin sizes are multiplied
}

// OctopusConfig defines the flash simulation parameters (day 11).
type OctopusConfig struct {
	Steps          int   `yaml:"steps"`           // Steps counted for part 1
	FlashThreshold uint8 `yaml:"flash_threshold"` // Energy a cell must exceed to flash
	SyncLimit      int   `yaml:"sync_limit"`      // Give up searching for a synchronized flash after this many steps
}

// Validate reports the first tunable that cannot drive a puzzle.
func (c Config) Validate() error {
	p := c.Puzzles
	checks := []struct {
		name  string
		value int
	}{
		{"puzzles.sonar.window", p.Sonar.Window},
		{"puzzles.lanternfish.part1_days", p.Lanternfish.Part1Days},
		{"puzzles.lanternfish.part2_days", p.Lanternfish.Part2Days},
		{"puzzles.smoke.basin_ceiling", int(p.Smoke.BasinCeiling)},
		{"puzzles.smoke.largest_basins", p.Smoke.LargestBasins},
		{"puzzles.octopus.steps", p.Octopus.Steps},
		{"puzzles.octopus.flash_threshold", int(p.Octopus.FlashThreshold)},
		{"puzzles.octopus.sync_limit", p.Octopus.SyncLimit},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", chk.name, chk.value)
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}
