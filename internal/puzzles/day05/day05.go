// Package day05 solves "Hydrothermal Venture": counting overlapping vents.
package day05

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/aoc2021/internal/core"
	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

// Segment is a vent line between two inclusive endpoints.
type Segment struct {
	From, To core.Coord
}

func parsePoint(s string) (core.Coord, error) {
	xy, err := input.SplitInts[int](s, ",")
	if err != nil {
		return core.Coord{}, err
	}
	if len(xy) != 2 {
		return core.Coord{}, fmt.Errorf("day05: point %q needs two coordinates", s)
	}
	return core.C(xy[0], xy[1]), nil
}

// ParseSegment parses "x1,y1 -> x2,y2".
func ParseSegment(s string) (Segment, error) {
	a, b, ok := strings.Cut(s, "->")
	if !ok {
		return Segment{}, fmt.Errorf("day05: malformed segment %q", s)
	}
	from, err := parsePoint(a)
	if err != nil {
		return Segment{}, err
	}
	to, err := parsePoint(b)
	if err != nil {
		return Segment{}, err
	}
	return Segment{From: from, To: to}, nil
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// Axial reports whether the segment is horizontal or vertical.
func (s Segment) Axial() bool {
	return s.From.X == s.To.X || s.From.Y == s.To.Y
}

// Diagonal reports whether the segment is at exactly 45 degrees.
func (s Segment) Diagonal() bool {
	dx, dy := s.To.X-s.From.X, s.To.Y-s.From.Y
	return dx != 0 && (dx == dy || dx == -dy)
}

// Points returns every coordinate the segment covers, endpoints included.
// Only axial and diagonal segments are walkable; others yield nil.
func (s Segment) Points() []core.Coord {
	if !s.Axial() && !s.Diagonal() {
		return nil
	}
	step := core.C(sign(s.To.X-s.From.X), sign(s.To.Y-s.From.Y))
	points := []core.Coord{s.From}
	for c := s.From; c != s.To; {
		c = c.Add(step)
		points = append(points, c)
	}
	return points
}

// Overlaps counts points covered by at least two segments. Diagonal
// segments are only drawn when withDiagonals is set.
func Overlaps(segments []Segment, withDiagonals bool) int {
	hits := make(map[core.Coord]int)
	count := 0
	for _, s := range segments {
		if !s.Axial() && !withDiagonals {
			continue
		}
		for _, c := range s.Points() {
			hits[c]++
			if hits[c] == 2 {
				count++
			}
		}
	}
	return count
}

// Puzzle implements registry.Puzzle.
type Puzzle struct{}

// New creates the puzzle.
func New() *Puzzle { return &Puzzle{} }

func init() {
	registry.Register("day05", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day05" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Hydrothermal Venture" }

// Solve computes both parts. Unparseable lines are ignored.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	segments := input.ParseLines(lines, ParseSegment)
	if len(segments) == 0 {
		return registry.Answer{}, input.ErrEmptyInput
	}
	return registry.NewAnswer(Overlaps(segments, false), Overlaps(segments, true)), nil
}
