// Package day11 solves "Dumbo Octopus": cascading energy flashes.
package day11

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/aoc2021/internal/config"
	"github.com/vovakirdan/aoc2021/internal/core"
	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

var settings = config.OctopusConfig{
	Steps:          100,
	FlashThreshold: core.DefaultFlashThreshold,
	SyncLimit:      10000,
}

// SetConfig applies the simulation tunables to puzzles created afterwards.
func SetConfig(cfg config.OctopusConfig) {
	settings = cfg
}

// Puzzle implements registry.Puzzle.
type Puzzle struct {
	cfg config.OctopusConfig
}

// New creates a puzzle using the current configuration.
func New() *Puzzle {
	return &Puzzle{cfg: settings}
}

func init() {
	registry.Register("day11", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day11" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Dumbo Octopus" }

// Simulator parses lines into a fresh grid and returns a flash simulation
// that owns it.
func (p *Puzzle) Simulator(lines []string) (*core.FlashSim, error) {
	g, err := core.ParseGrid(input.TrimBlank(lines))
	if err != nil {
		return nil, err
	}
	return core.NewFlashSim(g, p.cfg.FlashThreshold), nil
}

// ErrNotSynchronized is returned when no step within the sync limit
// flashes every octopus. Part 1 of the answer is still reported.
var ErrNotSynchronized = errors.New("day11: no synchronized flash")

// Solve counts flashes over the configured steps and finds the first
// step on which every octopus flashes.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	counting, err := p.Simulator(lines)
	if err != nil {
		return registry.Answer{}, err
	}
	syncing := core.NewFlashSim(counting.Grid().Clone(), p.cfg.FlashThreshold)

	flashes := counting.Run(p.cfg.Steps)
	step, ok := syncing.RunUntilSynchronized(p.cfg.SyncLimit)
	if !ok {
		partial := registry.Answer{Part1: fmt.Sprint(flashes)}
		return partial, fmt.Errorf("%w within %d steps", ErrNotSynchronized, p.cfg.SyncLimit)
	}
	return registry.NewAnswer(flashes, step), nil
}
