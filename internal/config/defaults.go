package config

import (
	_ "embed"
)

//go:embed defaults/aoc.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: "~/.aoc2021/history.db",
		LogLevel: "info",
		InputDir: "~/.aoc2021/inputs",
		Puzzles: PuzzleConfig{
			Sonar: SonarConfig{
				Window: 3,
			},
			Lanternfish: LanternfishConfig{
				Part1Days: 80,
				Part2Days: 256,
			},
			Smoke: SmokeConfig{
				BasinCeiling:  9,
				LargestBasins: 3,
			},
			Octopus: OctopusConfig{
				Steps:          100,
				FlashThreshold: 9,
				SyncLimit:      10000,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
