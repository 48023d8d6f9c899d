package tui

import (
	"strings"

	"github.com/vovakirdan/aoc2021/internal/core"
)

// cellGlyph matches core.Grid.String: digits, with '+' above 9.
func cellGlyph(v uint8) byte {
	if v > 9 {
		return '+'
	}
	return '0' + v
}

func cellLevel(v uint8, lit bool) int {
	if lit {
		return litLevel
	}
	return int(min(v, 9))
}

// RenderGrid converts a grid to a styled string for display, drawing lit
// cells with the highlight style.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderGrid(g *core.Grid, lit []core.Coord, theme Theme) string {
	on := make(map[core.Coord]bool, len(lit))
	for _, c := range lit {
		on[c] = true
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.Len()*2 + g.Height())

	for y := range g.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < g.Width() {
			c := core.C(x, y)
			v, _ := g.Get(c)
			level := cellLevel(v, on[c])

			var run strings.Builder
			for x < g.Width() {
				c = core.C(x, y)
				v, _ = g.Get(c)
				if cellLevel(v, on[c]) != level {
					break
				}
				run.WriteByte(cellGlyph(v))
				x++
			}

			sb.WriteString(theme.Cells[level].Render(run.String()))
		}
	}
	return sb.String()
}
