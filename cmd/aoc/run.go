package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc2021/internal/registry"
	"github.com/vovakirdan/aoc2021/internal/runner"
	"github.com/vovakirdan/aoc2021/internal/storage"
)

var (
	flagInput  string
	flagNoSave bool
)

var runCmd = &cobra.Command{
	Use:   "run <day>",
	Short: "Solve a day",
	Long: `Solve both parts of the given day and record the run.

The day may be written as 9, 09, day9 or day09.
Input is read from --input, from piped stdin, or from <input_dir>/dayNN.txt.

Examples:
  aoc run 9 --input day09.txt
  aoc run day11 < input.txt
  aoc run 1 --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Input file ('-' for stdin)")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the history database")
}

func runRun(cmd *cobra.Command, args []string) {
	puzzle := mustPuzzle(args[0])

	lines, source, err := readInput(flagInput, puzzle.ID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("input read", "puzzle", puzzle.ID(), "source", source, "lines", len(lines))

	res, err := runner.New(logger).Run(puzzle, lines)
	if err != nil {
		if res.Answer.Part1 != "" {
			fmt.Printf("%s - %s\n", puzzle.ID(), puzzle.Title())
			fmt.Printf("Part 1: %s\n", res.Answer.Part1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n", puzzle.ID(), puzzle.Title())
	fmt.Printf("Part 1: %s\n", res.Answer.Part1)
	fmt.Printf("Part 2: %s\n", res.Answer.Part2)
	logger.Info("solved", "puzzle", puzzle.ID(), "elapsed", res.Elapsed)

	if flagNoSave {
		return
	}
	record(res)
}

// record saves a run, warning when the answer differs from the previous
// run on the same input. Storage failures never fail the command.
func record(res runner.Result) {
	store, err := storage.Open(cfg.Database)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	prev, err := store.LastRun(res.PuzzleID, res.Digest)
	if err != nil {
		logger.Warn("could not look up previous run", "error", err)
	} else if prev != nil && (prev.Part1 != res.Answer.Part1 || prev.Part2 != res.Answer.Part2) {
		logger.Warn("answer changed since last run on this input",
			"puzzle", res.PuzzleID,
			"part1", prev.Part1,
			"part2", prev.Part2,
		)
	}

	if _, err := store.SaveRun(res); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}

// mustPuzzle resolves a user-facing day name or exits.
func mustPuzzle(name string) registry.Puzzle {
	if !registry.Exists(name) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'aoc list' to see available days.")
		os.Exit(1)
	}

	puzzle, err := registry.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
		os.Exit(1)
	}
	return puzzle
}
