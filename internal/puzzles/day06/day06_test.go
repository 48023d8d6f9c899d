package day06

import (
	"testing"

	"github.com/vovakirdan/aoc2021/internal/config"
)

func TestAdvance(t *testing.T) {
	s, err := ParseSchool("3,4,3,1,2")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		days int
		want uint64
	}{
		{0, 5},
		{18, 26},
		{80, 5934},
		{256, 26984457539},
	}
	for _, tc := range tests {
		if got := s.Advance(tc.days).Total(); got != tc.want {
			t.Errorf("Advance(%d).Total() = %d, expected %d", tc.days, got, tc.want)
		}
	}
	if s.Total() != 5 {
		t.Error("Advance must not modify the receiver")
	}
}

func TestSolve(t *testing.T) {
	ans, err := New().Solve([]string{"3,4,3,1,2"})
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if ans.Part1 != "5934" || ans.Part2 != "26984457539" {
		t.Errorf("Solve() = %+v", ans)
	}
}

func TestSetConfig(t *testing.T) {
	defer SetConfig(config.LanternfishConfig{Part1Days: 80, Part2Days: 256})

	SetConfig(config.LanternfishConfig{Part1Days: 18, Part2Days: 1})
	ans, err := New().Solve([]string{"3,4,3,1,2"})
	if err != nil {
		t.Fatal(err)
	}
	if ans.Part1 != "26" || ans.Part2 != "5" {
		t.Errorf("Solve() with custom days = %+v, expected 26 / 5", ans)
	}
}

func TestParseSchoolErrors(t *testing.T) {
	for _, s := range []string{"", "3,x", "3,9", "-1"} {
		if _, err := ParseSchool(s); err == nil {
			t.Errorf("ParseSchool(%q) expected error", s)
		}
	}
}
