package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/aoc2021/internal/core"
)

func TestRenderGridMatchesGridText(t *testing.T) {
	g, err := core.ParseGrid([]string{"0123", "4567", "8999"})
	if err != nil {
		t.Fatal(err)
	}

	lit := []core.Coord{core.C(1, 1), core.C(2, 1)}
	got := ansi.Strip(RenderGrid(g, lit, DefaultTheme()))
	if got != g.String() {
		t.Errorf("RenderGrid() = %q, expected %q", got, g.String())
	}
}

func TestRenderGridOverflowGlyph(t *testing.T) {
	g := core.NewGrid(2, 1)
	if err := g.Set(core.C(0, 0), 12); err != nil {
		t.Fatal(err)
	}
	if got := ansi.Strip(RenderGrid(g, nil, DefaultTheme())); got != "+0" {
		t.Errorf("RenderGrid() = %q, expected %q", got, "+0")
	}
}

func TestCellLevel(t *testing.T) {
	tests := []struct {
		v    uint8
		lit  bool
		want int
	}{
		{0, false, 0},
		{9, false, 9},
		{12, false, 9},
		{3, true, litLevel},
	}
	for _, tc := range tests {
		if got := cellLevel(tc.v, tc.lit); got != tc.want {
			t.Errorf("cellLevel(%d, %v) = %d, expected %d", tc.v, tc.lit, got, tc.want)
		}
	}
}
