// Package day02 solves "Dive!": following submarine commands.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

// Direction is the verb of a command.
type Direction uint8

const (
	Forward Direction = iota
	Down
	Up
)

// Command is one parsed input line such as "forward 5".
type Command struct {
	Dir   Direction
	Units int64
}

// ParseCommand parses "<direction> <units>".
func ParseCommand(s string) (Command, error) {
	verb, units, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Command{}, fmt.Errorf("day02: malformed command %q", s)
	}
	n, err := strconv.ParseInt(units, 10, 64)
	if err != nil {
		return Command{}, fmt.Errorf("day02: units in %q: %w", s, err)
	}
	switch verb {
	case "forward":
		return Command{Dir: Forward, Units: n}, nil
	case "down":
		return Command{Dir: Down, Units: n}, nil
	case "up":
		return Command{Dir: Up, Units: n}, nil
	default:
		return Command{}, fmt.Errorf("day02: unknown direction %q", verb)
	}
}

// Puzzle implements registry.Puzzle.
type Puzzle struct{}

// New creates the puzzle.
func New() *Puzzle { return &Puzzle{} }

func init() {
	registry.Register("day02", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day02" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Dive!" }

// Solve computes both parts. Unparseable lines are ignored.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	cmds := input.ParseLines(lines, ParseCommand)
	if len(cmds) == 0 {
		return registry.Answer{}, input.ErrEmptyInput
	}
	return registry.NewAnswer(Part1(cmds), Part2(cmds)), nil
}

// Part1 treats up/down as direct depth changes.
func Part1(cmds []Command) int64 {
	var pos, depth int64
	for _, c := range cmds {
		switch c.Dir {
		case Forward:
			pos += c.Units
		case Down:
			depth += c.Units
		case Up:
			depth -= c.Units
		}
	}
	return pos * depth
}

// Heading is the submarine state when up/down adjust aim.
type Heading struct {
	Position int64
	Depth    int64
	Aim      int64
}

// Apply returns the heading after one command.
func (h Heading) Apply(c Command) Heading {
	switch c.Dir {
	case Forward:
		h.Position += c.Units
		h.Depth += h.Aim * c.Units
	case Down:
		h.Aim += c.Units
	case Up:
		h.Aim -= c.Units
	}
	return h
}

// Part2 follows the commands with aim.
func Part2(cmds []Command) int64 {
	var h Heading
	for _, c := range cmds {
		h = h.Apply(c)
	}
	return h.Position * h.Depth
}
