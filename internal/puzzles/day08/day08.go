// Package day08 solves "Seven Segment Search": decoding scrambled displays.
package day08

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

// Pattern is a set of lit segments, bit i for segment 'a'+i.
type Pattern uint8

// ParsePattern converts letters a-g into a segment set.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	for _, ch := range s {
		if ch < 'a' || ch > 'g' {
			return 0, fmt.Errorf("day08: invalid segment %q in %q", ch, s)
		}
		p |= 1 << (ch - 'a')
	}
	return p, nil
}

// Len returns the number of lit segments.
func (p Pattern) Len() int { return bits.OnesCount8(uint8(p)) }

// Contains reports whether every segment of o is lit in p.
func (p Pattern) Contains(o Pattern) bool { return p&o == o }

// Entry is one display: ten unique patterns and four output digits.
type Entry struct {
	Patterns [10]Pattern
	Outputs  [4]Pattern
}

// ParseEntry parses "<10 patterns> | <4 outputs>".
func ParseEntry(s string) (Entry, error) {
	var e Entry
	left, right, ok := strings.Cut(s, "|")
	if !ok {
		return e, fmt.Errorf("day08: missing separator in %q", s)
	}
	pats, outs := strings.Fields(left), strings.Fields(right)
	if len(pats) != len(e.Patterns) || len(outs) != len(e.Outputs) {
		return e, fmt.Errorf("day08: expected 10 patterns and 4 outputs, got %d and %d", len(pats), len(outs))
	}
	for i, f := range pats {
		p, err := ParsePattern(f)
		if err != nil {
			return e, err
		}
		e.Patterns[i] = p
	}
	for i, f := range outs {
		p, err := ParsePattern(f)
		if err != nil {
			return e, err
		}
		e.Outputs[i] = p
	}
	return e, nil
}

// Decode maps each digit 0-9 to its scrambled pattern.
func (e Entry) Decode() ([10]Pattern, error) {
	var d [10]Pattern
	for _, p := range e.Patterns {
		switch p.Len() {
		case 2:
			d[1] = p
		case 3:
			d[7] = p
		case 4:
			d[4] = p
		case 7:
			d[8] = p
		}
	}
	if d[1] == 0 || d[4] == 0 || d[7] == 0 || d[8] == 0 {
		return d, fmt.Errorf("day08: entry lacks a unique-length digit")
	}
	for _, p := range e.Patterns {
		if p.Len() != 6 {
			continue
		}
		switch {
		case p.Contains(d[4]):
			d[9] = p
		case p.Contains(d[1]):
			d[0] = p
		default:
			d[6] = p
		}
	}
	for _, p := range e.Patterns {
		if p.Len() != 5 {
			continue
		}
		switch {
		case p.Contains(d[1]):
			d[3] = p
		case d[6].Contains(p):
			d[5] = p
		default:
			d[2] = p
		}
	}
	return d, nil
}

// Value decodes the four output digits into a number.
func (e Entry) Value() (int, error) {
	digits, err := e.Decode()
	if err != nil {
		return 0, err
	}
	value := 0
	for _, out := range e.Outputs {
		digit := -1
		for n, p := range digits {
			if p == out {
				digit = n
				break
			}
		}
		if digit < 0 {
			return 0, fmt.Errorf("day08: output pattern %07b matches no digit", out)
		}
		value = value*10 + digit
	}
	return value, nil
}

// CountEasyDigits counts outputs showing 1, 4, 7 or 8.
func CountEasyDigits(entries []Entry) int {
	n := 0
	for _, e := range entries {
		for _, out := range e.Outputs {
			switch out.Len() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n
}

// Puzzle implements registry.Puzzle.
type Puzzle struct{}

// New creates the puzzle.
func New() *Puzzle { return &Puzzle{} }

func init() {
	registry.Register("day08", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day08" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Seven Segment Search" }

// Solve computes both parts. Unparseable lines are ignored.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	entries := input.ParseLines(lines, ParseEntry)
	if len(entries) == 0 {
		return registry.Answer{}, input.ErrEmptyInput
	}
	sum := 0
	for i, e := range entries {
		v, err := e.Value()
		if err != nil {
			return registry.Answer{}, fmt.Errorf("entry %d: %w", i+1, err)
		}
		sum += v
	}
	return registry.NewAnswer(CountEasyDigits(entries), sum), nil
}
