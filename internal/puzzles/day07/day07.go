// Package day07 solves "The Treachery of Whales": aligning crab submarines.
package day07

import (
	"slices"

	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

// CostFunc returns the fuel spent moving one crab a distance.
type CostFunc func(distance int) int

// Linear charges one unit per step.
func Linear(distance int) int { return distance }

// Triangular charges 1, 2, 3, ... for successive steps.
func Triangular(distance int) int { return distance * (distance + 1) / 2 }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FuelTo returns the total fuel for every crab to reach target.
func FuelTo(crabs []int, target int, cost CostFunc) int {
	total := 0
	for _, c := range crabs {
		total += cost(abs(c - target))
	}
	return total
}

// MinFuel tries every position between the outermost crabs.
func MinFuel(crabs []int, cost CostFunc) int {
	lo, hi := slices.Min(crabs), slices.Max(crabs)
	best := FuelTo(crabs, lo, cost)
	for t := lo + 1; t <= hi; t++ {
		best = min(best, FuelTo(crabs, t, cost))
	}
	return best
}

// Puzzle implements registry.Puzzle.
type Puzzle struct{}

// New creates the puzzle.
func New() *Puzzle { return &Puzzle{} }

func init() {
	registry.Register("day07", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day07" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "The Treachery of Whales" }

// Solve computes both parts from the first non-blank line.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	lines = input.TrimBlank(lines)
	if len(lines) == 0 {
		return registry.Answer{}, input.ErrEmptyInput
	}
	crabs, err := input.SplitInts[int](lines[0], ",")
	if err != nil {
		return registry.Answer{}, err
	}
	return registry.NewAnswer(MinFuel(crabs, Linear), MinFuel(crabs, Triangular)), nil
}
