// Package day01 solves "Sonar Sweep": counting depth increases.
package day01

import (
	"github.com/vovakirdan/aoc2021/internal/config"
	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

var window = 3

// SetConfig applies the sonar tunables to puzzles created afterwards.
func SetConfig(cfg config.SonarConfig) {
	window = cfg.Window
}

// Puzzle implements registry.Puzzle.
type Puzzle struct {
	window int
}

// New creates a puzzle using the current configuration.
func New() *Puzzle {
	return &Puzzle{window: window}
}

func init() {
	registry.Register("day01", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day01" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Sonar Sweep" }

// Solve computes both parts. Lines that are not depths are ignored.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	depths := input.ParseInts[uint64](lines)
	if len(depths) == 0 {
		return registry.Answer{}, input.ErrEmptyInput
	}
	return registry.NewAnswer(
		CountIncreases(depths),
		CountWindowIncreases(depths, p.window),
	), nil
}

// CountIncreases counts measurements larger than the previous one.
func CountIncreases(depths []uint64) int {
	return CountWindowIncreases(depths, 1)
}

// CountWindowIncreases counts sliding-window sums larger than the previous
// window. Consecutive windows share all but one element, so comparing the
// entering and leaving measurements is enough.
func CountWindowIncreases(depths []uint64, window int) int {
	count := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			count++
		}
	}
	return count
}
