// Package day06 solves "Lanternfish": exponential population growth.
package day06

import (
	"fmt"

	"github.com/vovakirdan/aoc2021/internal/config"
	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

const (
	resetTimer = 6
	newTimer   = 8
)

var (
	part1Days = 80
	part2Days = 256
)

// SetConfig applies the simulation lengths to puzzles created afterwards.
func SetConfig(cfg config.LanternfishConfig) {
	part1Days = cfg.Part1Days
	part2Days = cfg.Part2Days
}

// School counts fish by timer value.
type School [newTimer + 1]uint64

// ParseSchool reads the comma-separated timer list.
func ParseSchool(line string) (School, error) {
	var s School
	timers, err := input.SplitInts[int](line, ",")
	if err != nil {
		return s, err
	}
	for _, t := range timers {
		if t < 0 || t > newTimer {
			return s, fmt.Errorf("day06: timer %d out of range", t)
		}
		s[t]++
	}
	return s, nil
}

// Advance returns the school after the given number of days.
func (s School) Advance(days int) School {
	for d := 0; d < days; d++ {
		spawning := s[0]
		copy(s[:], s[1:])
		s[newTimer] = spawning
		s[resetTimer] += spawning
	}
	return s
}

// Total returns the population size.
func (s School) Total() uint64 {
	var n uint64
	for _, c := range s {
		n += c
	}
	return n
}

// Puzzle implements registry.Puzzle.
type Puzzle struct {
	part1Days, part2Days int
}

// New creates a puzzle using the current configuration.
func New() *Puzzle {
	return &Puzzle{part1Days: part1Days, part2Days: part2Days}
}

func init() {
	registry.Register("day06", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day06" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Lanternfish" }

// Solve computes both parts from the first non-blank line.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	lines = input.TrimBlank(lines)
	if len(lines) == 0 {
		return registry.Answer{}, input.ErrEmptyInput
	}
	school, err := ParseSchool(lines[0])
	if err != nil {
		return registry.Answer{}, err
	}
	return registry.NewAnswer(
		school.Advance(p.part1Days).Total(),
		school.Advance(p.part2Days).Total(),
	), nil
}
