// aoc solves Advent of Code 2021 puzzles from the terminal.
//
// Usage:
//
//	aoc list                 - List available days
//	aoc run <day>            - Solve a day and record the run
//	aoc history [day]        - Show recorded runs
//	aoc watch <day>          - Animate the grid of day 9 or day 11
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.aoc2021, ./configs)
//	--db <path>         - Run history database (overrides config)
//	--log-level <level> - debug, info, warn or error (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc2021/internal/config"
	"github.com/vovakirdan/aoc2021/internal/puzzles/day01"
	"github.com/vovakirdan/aoc2021/internal/puzzles/day06"
	"github.com/vovakirdan/aoc2021/internal/puzzles/day09"
	"github.com/vovakirdan/aoc2021/internal/puzzles/day11"

	// Import puzzles to register them
	_ "github.com/vovakirdan/aoc2021/internal/puzzles/day02"
	_ "github.com/vovakirdan/aoc2021/internal/puzzles/day03"
	_ "github.com/vovakirdan/aoc2021/internal/puzzles/day04"
	_ "github.com/vovakirdan/aoc2021/internal/puzzles/day05"
	_ "github.com/vovakirdan/aoc2021/internal/puzzles/day07"
	_ "github.com/vovakirdan/aoc2021/internal/puzzles/day08"
	_ "github.com/vovakirdan/aoc2021/internal/puzzles/day10"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Resolved in setup before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2021 - solve puzzles in your terminal",
	Long: `aoc solves Advent of Code 2021 puzzles, records every run and can
animate the grid puzzles.

Available commands:
  list     - Show all available days
  run      - Solve a day
  history  - Show recorded runs
  watch    - Animate the flashes of day 11 or the basins of day 9

Examples:
  aoc list
  aoc run 9 --input day09.txt
  aoc run day11 < input.txt
  aoc history 11
  aoc watch 11 --rate 4`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchCmd)
}

// setup loads the configuration, builds the logger and hands the
// per-puzzle tunables to the puzzle packages.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Database = flagDBPath
	}

	logger, err = newLogger(firstNonEmpty(flagLogLevel, cfg.LogLevel))
	if err != nil {
		return err
	}

	day01.SetConfig(cfg.Puzzles.Sonar)
	day06.SetConfig(cfg.Puzzles.Lanternfish)
	day09.SetConfig(cfg.Puzzles.Smoke)
	day11.SetConfig(cfg.Puzzles.Octopus)

	logger.Debug("configuration loaded", "database", cfg.Database, "inputs", cfg.InputDir)
	return nil
}

func newLogger(level string) (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "aoc",
	})
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
