// Package day04 solves "Giant Squid": playing bingo against a squid.
package day04

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/aoc2021/internal/input"
	"github.com/vovakirdan/aoc2021/internal/registry"
)

// BoardSize is the side length of a bingo board.
const BoardSize = 5

// ErrNoWinner is returned when the draws never complete a line.
var ErrNoWinner = errors.New("day04: no board wins")

type cell struct {
	row, col int
}

// Board is a bingo board with mark bookkeeping.
type Board struct {
	cells    map[int]cell
	rowMarks [BoardSize]int
	colMarks [BoardSize]int
	unmarked int
	won      bool
}

// NewBoard builds a board from BoardSize rows of BoardSize numbers.
func NewBoard(rows [][]int) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("day04: board has %d rows, expected %d", len(rows), BoardSize)
	}
	b := &Board{cells: make(map[int]cell, BoardSize*BoardSize)}
	for r, row := range rows {
		if len(row) != BoardSize {
			return nil, fmt.Errorf("day04: board row %d has %d numbers, expected %d", r, len(row), BoardSize)
		}
		for c, n := range row {
			if _, dup := b.cells[n]; dup {
				return nil, fmt.Errorf("day04: number %d repeats on a board", n)
			}
			b.cells[n] = cell{r, c}
			b.unmarked += n
		}
	}
	return b, nil
}

// Mark records a draw and reports whether it completes a row or column.
func (b *Board) Mark(n int) bool {
	pos, ok := b.cells[n]
	if !ok || b.won {
		return false
	}
	delete(b.cells, n)
	b.unmarked -= n
	b.rowMarks[pos.row]++
	b.colMarks[pos.col]++
	if b.rowMarks[pos.row] == BoardSize || b.colMarks[pos.col] == BoardSize {
		b.won = true
	}
	return b.won
}

// Won reports whether the board already completed a line.
func (b *Board) Won() bool { return b.won }

// Unmarked returns the sum of numbers not yet drawn.
func (b *Board) Unmarked() int { return b.unmarked }

// Game is the parsed puzzle input.
type Game struct {
	Draws  []int
	Boards []*Board
}

// ParseGame reads the draw line followed by blank-separated boards.
func ParseGame(lines []string) (*Game, error) {
	lines = input.TrimBlank(lines)
	if len(lines) == 0 {
		return nil, input.ErrEmptyInput
	}
	draws, err := input.SplitInts[int](lines[0], ",")
	if err != nil {
		return nil, fmt.Errorf("day04: draws: %w", err)
	}

	g := &Game{Draws: draws}
	var rows [][]int
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		b, err := NewBoard(rows)
		if err != nil {
			return err
		}
		g.Boards = append(g.Boards, b)
		rows = nil
		return nil
	}
	for _, line := range lines[1:] {
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		row, err := input.Fields[int](line)
		if err != nil {
			return nil, fmt.Errorf("day04: board: %w", err)
		}
		rows = append(rows, row)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(g.Boards) == 0 {
		return nil, errors.New("day04: no boards")
	}
	return g, nil
}

// Play runs every draw and returns the scores of the first and last
// boards to win. A score is the unmarked sum times the winning draw.
func (g *Game) Play() (first, last int, err error) {
	wins := 0
	for _, n := range g.Draws {
		for _, b := range g.Boards {
			if !b.Mark(n) {
				continue
			}
			score := b.Unmarked() * n
			if wins == 0 {
				first = score
			}
			last = score
			wins++
		}
		if wins == len(g.Boards) {
			break
		}
	}
	if wins == 0 {
		return 0, 0, ErrNoWinner
	}
	return first, last, nil
}

// Puzzle implements registry.Puzzle.
type Puzzle struct{}

// New creates the puzzle.
func New() *Puzzle { return &Puzzle{} }

func init() {
	registry.Register("day04", func() registry.Puzzle {
		return New()
	})
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return "day04" }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Giant Squid" }

// Solve computes both parts.
func (p *Puzzle) Solve(lines []string) (registry.Answer, error) {
	g, err := ParseGame(lines)
	if err != nil {
		return registry.Answer{}, err
	}
	first, last, err := g.Play()
	if err != nil {
		return registry.Answer{}, err
	}
	return registry.NewAnswer(first, last), nil
}
