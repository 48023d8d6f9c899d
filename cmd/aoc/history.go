package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc2021/internal/platform/tui"
	"github.com/vovakirdan/aoc2021/internal/registry"
	"github.com/vovakirdan/aoc2021/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
	flagLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "Show recorded runs",
	Long: `Without a day, summarize every puzzle that has been run.
With a day, list its most recent runs.

Examples:
  aoc history
  aoc history 11 --limit 5
  aoc history 9 --browse
  aoc history 9 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVarP(&flagBrowse, "browse", "b", false, "Open the interactive history browser")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the day")
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to list")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var puzzleID string
	if len(args) == 1 {
		puzzleID = mustPuzzle(args[0]).ID()
	}

	switch {
	case flagBrowse:
		width, height := terminalSize()
		if err := tui.RunHistory(store, puzzleID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case flagClear:
		if puzzleID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a day")
			os.Exit(1)
		}
		if err := store.ClearRuns(puzzleID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared history of %s.\n", puzzleID)
	case puzzleID == "":
		printStats(store)
	default:
		printRuns(store, puzzleID)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-6s  %-6s  %-6s  %-12s  %-12s  %s\n", "Day", "Runs", "Inputs", "Fastest", "Average", "Last")
	fmt.Printf("  %-6s  %-6s  %-6s  %-12s  %-12s  %s\n", "---", "----", "------", "-------", "-------", "----")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-6s  %-6s  %-6d  %-12s  %-12s  %s\n",
			id, humanize.Comma(int64(s.Runs)), s.Inputs, s.Fastest, s.AvgElapsed, humanize.Time(s.LastSolved))
	}
}

func printRuns(store *storage.Store, puzzleID string) {
	runs, err := store.RecentRuns(puzzleID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := puzzleID
	if p, err := registry.Create(puzzleID); err == nil {
		title += " - " + p.Title()
	}
	fmt.Printf("Recent runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'aoc run %s' to record the first one.\n", puzzleID)
		return
	}

	fmt.Printf("  %-16s  %-16s  %-12s  %-8s  %s\n", "Part 1", "Part 2", "Time", "Input", "When")
	fmt.Printf("  %-16s  %-16s  %-12s  %-8s  %s\n", "------", "------", "----", "-----", "----")
	for _, r := range runs {
		digest := r.InputDigest
		if len(digest) > 8 {
			digest = digest[:8]
		}
		fmt.Printf("  %-16s  %-16s  %-12s  %-8s  %s\n",
			r.Part1, r.Part2, r.Elapsed, digest, humanize.Time(r.CreatedAt))
	}
}
