package day11

import (
	"errors"
	"testing"

	"github.com/vovakirdan/aoc2021/internal/core"
)

var energyLevels = []string{
	"5483143223",
	"2745854711",
	"5264556173",
	"6141336146",
	"6357385478",
	"4167524645",
	"2176841721",
	"6882881134",
	"4846848554",
	"5283751526",
}

func TestSolve(t *testing.T) {
	ans, err := New().Solve(energyLevels)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if ans.Part1 != "1656" {
		t.Errorf("Part1 = %s, expected 1656", ans.Part1)
	}
	if ans.Part2 != "195" {
		t.Errorf("Part2 = %s, expected 195", ans.Part2)
	}
}

func TestSolveSyncLimit(t *testing.T) {
	defer SetConfig(settings)

	cfg := settings
	cfg.SyncLimit = 100
	SetConfig(cfg)
	ans, err := New().Solve(energyLevels)
	if !errors.Is(err, ErrNotSynchronized) {
		t.Errorf("Solve() error = %v, expected ErrNotSynchronized", err)
	}
	if ans.Part1 != "1656" {
		t.Errorf("Part1 = %q, expected 1656 even without synchronization", ans.Part1)
	}
	if ans.Part2 != "" {
		t.Errorf("Part2 = %q, expected empty", ans.Part2)
	}
}

func TestSimulatorStepsCopy(t *testing.T) {
	p := New()
	sim, err := p.Simulator(energyLevels)
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.Run(10); got != 204 {
		t.Errorf("Run(10) = %d, expected 204", got)
	}

	again, err := p.Simulator(energyLevels)
	if err != nil {
		t.Fatal(err)
	}
	if again.Steps() != 0 || again.TotalFlashes() != 0 {
		t.Error("a new simulator must start from the parsed input")
	}
	if again.Grid() == sim.Grid() {
		t.Error("each simulator must own its own parsed grid")
	}
	if got := again.Grid().Len(); got != 100 {
		t.Errorf("Grid().Len() = %d, expected 100", got)
	}
}

func TestSolveRejectsBadInput(t *testing.T) {
	if _, err := New().Solve([]string{"12a"}); !errors.Is(err, core.ErrFormat) {
		t.Errorf("Solve(non-digit) error = %v, expected ErrFormat", err)
	}
	if _, err := New().Solve(nil); err == nil {
		t.Error("expected error for empty input")
	}
}
