// Package day03 solves "Binary Diagnostic": deriving rates from bit columns.
package day03

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

// ErrNoRating is returned when bit-criteria filtering leaves no candidate.
var ErrNoRating = errors.New("day03: no value satisfies the bit criteria")

// Puzzle implements registry.Puzzle.
type Puzzle struct{}

// New creates the puzzle.
func New() *Puzzle { return &Puzzle{} }

func init() {
	registry.Register("day03", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day03" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Binary Diagnostic" }

// Solve computes both parts.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	report, err := ParseReport(lines)
	if err != nil {
		return registry.Answer{}, err
	}
	power := PowerConsumption(report)
	life, err := LifeSupport(report)
	if err != nil {
		return registry.Answer{}, err
	}
	return registry.NewAnswer(power, life), nil
}

// ParseReport validates that every non-blank line is a binary number of
// the same width.
func ParseReport(lines []string) ([]string, error) {
	lines = input.TrimBlank(lines)
	if len(lines) == 0 {
		return nil, input.ErrEmptyInput
	}
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width || width == 0 {
			return nil, fmt.Errorf("day03: line %d has width %d, expected %d", i+1, len(line), width)
		}
		for _, ch := range line {
			if ch != '0' && ch != '1' {
				return nil, fmt.Errorf("day03: line %d: invalid bit %q", i+1, ch)
			}
		}
	}
	return lines, nil
}

// onesAt counts values with '1' at bit column pos.
func onesAt(values []string, pos int) int {
	n := 0
	for _, v := range values {
		if v[pos] == '1' {
			n++
		}
	}
	return n
}

// PowerConsumption multiplies the gamma rate (most common bits) by the
// epsilon rate (least common bits).
func PowerConsumption(report []string) uint64 {
	var gamma, epsilon uint64
	for pos := range report[0] {
		gamma <<= 1
		epsilon <<= 1
		if 2*onesAt(report, pos) >= len(report) {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return gamma * epsilon
}

// Rating filters values column by column until one remains. keepOnes
// decides from the count of ones and the candidate count whether values
// with '1' survive.
func Rating(report []string, keepOnes func(ones, total int) bool) (uint64, error) {
	candidates := append([]string(nil), report...)
	for pos := 0; len(candidates) > 1 && pos < len(report[0]); pos++ {
		want := byte('0')
		if keepOnes(onesAt(candidates, pos), len(candidates)) {
			want = '1'
		}
		kept := candidates[:0]
		for _, c := range candidates {
			if c[pos] == want {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}
	if len(candidates) != 1 {
		return 0, ErrNoRating
	}
	return strconv.ParseUint(candidates[0], 2, 64)
}

// OxygenRating keeps the most common bit, '1' on ties.
func OxygenRating(report []string) (uint64, error) {
	return Rating(report, func(ones, total int) bool { return 2*ones >= total })
}

// CO2Rating keeps the least common bit, '0' on ties.
func CO2Rating(report []string) (uint64, error) {
	return Rating(report, func(ones, total int) bool { return 2*ones < total })
}

// LifeSupport multiplies the oxygen and CO2 scrubber ratings.
func LifeSupport(report []string) (uint64, error) {
	o2, err := OxygenRating(report)
	if err != nil {
		return 0, fmt.Errorf("oxygen: %w", err)
	}
	co2, err := CO2Rating(report)
	if err != nil {
		return 0, fmt.Errorf("co2: %w", err)
	}
	return o2 * co2, nil
}
