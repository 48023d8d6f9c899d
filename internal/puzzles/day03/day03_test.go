package day03

import (
	"errors"
	"testing"
)

var example = []string{
	"00100", "11110", "10110", "10111", "10101", "01111",
	"00111", "11100", "10000", "11001", "00010", "01010",
}

func TestPowerConsumption(t *testing.T) {
	if got := PowerConsumption(example); got != 198 {
		t.Errorf("PowerConsumption() = %d, expected 198", got)
	}
}

func TestRatings(t *testing.T) {
	o2, err := OxygenRating(example)
	if err != nil || o2 != 23 {
		t.Errorf("OxygenRating() = %d, %v, expected 23", o2, err)
	}
	co2, err := CO2Rating(example)
	if err != nil || co2 != 10 {
		t.Errorf("CO2Rating() = %d, %v, expected 10", co2, err)
	}
}

func TestRatingDuplicatesNeverResolve(t *testing.T) {
	_, err := OxygenRating([]string{"101", "101"})
	if !errors.Is(err, ErrNoRating) {
		t.Errorf("OxygenRating(duplicates) error = %v, expected ErrNoRating", err)
	}
}

func TestSolve(t *testing.T) {
	ans, err := New().Solve(append([]string{""}, example...))
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if ans.Part1 != "198" || ans.Part2 != "230" {
		t.Errorf("Solve() = %+v, expected 198 / 230", ans)
	}
}

func TestParseReportErrors(t *testing.T) {
	tests := [][]string{
		nil,
		{"101", "10"},
		{"102"},
	}
	for _, lines := range tests {
		if _, err := ParseReport(lines); err == nil {
			t.Errorf("ParseReport(%q) expected error", lines)
		}
	}
}
