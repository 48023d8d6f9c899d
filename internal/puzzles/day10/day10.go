// Package day10 solves "Syntax Scoring": corrupted and incomplete chunks.
package day10

import (
	"slices"

	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
	"github.com/vovakirdan/aoc2021/internal/stack"
)

var closers = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

var corruptScores = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}

var completionScores = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}

// Status classifies a navigation line.
type Status uint8

const (
	Complete Status = iota
	Corrupted
	Incomplete
)

// Result is the outcome of checking one line.
type Result struct {
	Status Status
	// Illegal is the first unexpected closer of a corrupted line.
	Illegal rune
	// Missing holds the closers that would complete an incomplete line.
	Missing []rune
}

// Check walks the line with a stack of expected closers.
func Check(line string) Result {
	var expect stack.Stack[rune]
	for _, ch := range line {
		if closer, ok := closers[ch]; ok {
			expect.Push(closer)
			continue
		}
		want, ok := expect.Pop()
		if !ok || ch != want {
			return Result{Status: Corrupted, Illegal: ch}
		}
	}
	if expect.Len() == 0 {
		return Result{Status: Complete}
	}
	missing := make([]rune, 0, expect.Len())
	for {
		r, ok := expect.Pop()
		if !ok {
			break
		}
		missing = append(missing, r)
	}
	return Result{Status: Incomplete, Missing: missing}
}

// CompletionScore scores the closers needed to finish a line.
func CompletionScore(missing []rune) int {
	score := 0
	for _, r := range missing {
		score = score*5 + completionScores[r]
	}
	return score
}

// Scores returns the total corruption score and the median completion
// score. The median is 0 when no line is incomplete.
func Scores(lines []string) (corrupt, median int) {
	var completions []int
	for _, line := range lines {
		res := Check(line)
		switch res.Status {
		case Corrupted:
			corrupt += corruptScores[res.Illegal]
		case Incomplete:
			completions = append(completions, CompletionScore(res.Missing))
		}
	}
	if len(completions) == 0 {
		return corrupt, 0
	}
	slices.Sort(completions)
	return corrupt, completions[len(completions)/2]
}

// Puzzle implements registry.Puzzle.
type Puzzle struct{}

// New creates the puzzle.
func New() *Puzzle { return &Puzzle{} }

func init() {
	registry.Register("day10", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day10" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Syntax Scoring" }

// Solve computes both parts.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	lines = input.TrimBlank(lines)
	if len(lines) == 0 {
		return registry.Answer{}, input.ErrEmptyInput
	}
	corrupt, median := Scores(lines)
	return registry.NewAnswer(corrupt, median), nil
}
