package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc2021/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available days",
	Long:  `Shows a list of all puzzles registered with the runner.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	puzzles := registry.List()

	if len(puzzles) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range puzzles {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range puzzles {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'aoc run <id>' to solve a day.")
}
