// Package day09 solves "Smoke Basin": low points and basins of a height map.
package day09

import (
	"github.com/vovakirdan/aoc2021/internal/config"
	"github.com/vovakirdan/aoc2021/internal/core"
	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

var (
	basinCeiling  = core.DefaultBasinCeiling
	largestBasins = 3
)

// SetConfig applies the basin tunables to puzzles created afterwards.
func SetConfig(cfg config.SmokeConfig) {
	basinCeiling = cfg.BasinCeiling
	largestBasins = cfg.LargestBasins
}

// Puzzle implements registry.Puzzle.
type Puzzle struct {
	ceiling uint8
	largest int
}

// New creates a puzzle using the current configuration.
func New() *Puzzle {
	return &Puzzle{ceiling: basinCeiling, largest: largestBasins}
}

func init() {
	registry.Register("day09", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day09" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Smoke Basin" }

// Solve computes the total risk level and the product of the largest
// basin sizes.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	g, err := core.ParseGrid(input.TrimBlank(lines))
	if err != nil {
		return registry.Answer{}, err
	}
	return registry.NewAnswer(
		core.RiskLevel(g),
		core.LargestBasinsProduct(g, p.largest, p.ceiling),
	), nil
}
