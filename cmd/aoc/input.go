package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/aoc2021/internal/input"
)

// readInput picks the puzzle input: an explicit path ("-" for stdin),
// else piped stdin, else <input_dir>/<id>.txt from the config.
func readInput(path, puzzleID string) ([]string, string, error) {
	switch {
	case path == "-":
		lines, err := input.ReadLines(os.Stdin)
		return lines, "stdin", err
	case path != "":
		lines, err := input.ReadFile(path)
		return lines, path, err
	case !term.IsTerminal(int(os.Stdin.Fd())):
		lines, err := input.ReadLines(os.Stdin)
		return lines, "stdin", err
	}

	path = cfg.InputPath(puzzleID)
	lines, err := input.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("no --input given and stdin is a terminal: %w", err)
	}
	return lines, path, nil
}

// terminalSize returns the stdout size, falling back to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
