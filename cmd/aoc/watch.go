package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc2021/internal/core"
	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/platform/tui"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

var flagRate int

var watchCmd = &cobra.Command{
	Use:   "watch <day>",
	Short: "Animate a grid puzzle",
	Long: `Animate the octopus flashes of day 11 or fill in the basins of day 9.

Controls:
  Space/P    - Pause
  N/Right    - Single step
  +/-        - Faster / slower
  R          - Restart
  Q/Esc      - Quit

Examples:
  aoc watch 11 --input day11.txt
  aoc watch 9 --rate 2`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Input file ('-' for stdin)")
	watchCmd.Flags().IntVar(&flagRate, "rate", 8, "Steps per second")
}

func runWatch(cmd *cobra.Command, args []string) {
	puzzleID := registry.Normalize(args[0])
	if puzzleID != "day09" && puzzleID != "day11" {
		fmt.Fprintf(os.Stderr, "Error: only day09 and day11 can be watched, got %q\n", args[0])
		os.Exit(1)
	}

	lines, _, err := readInput(flagInput, puzzleID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	g, err := core.ParseGrid(input.TrimBlank(lines))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var scene tui.Scene
	if puzzleID == "day09" {
		smoke := cfg.Puzzles.Smoke
		scene = tui.NewBasinScene(g, smoke.BasinCeiling, smoke.LargestBasins)
	} else {
		octopus := cfg.Puzzles.Octopus
		scene = tui.NewFlashScene(g, octopus.FlashThreshold, octopus.SyncLimit)
	}

	logger.Debug("watching", "puzzle", puzzleID, "width", g.Width(), "height", g.Height())
	width, height := terminalSize()
	if err := tui.Run(scene, flagRate, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
