package tui

import (
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/aoc2021/internal/core"
)

// Scene is a grid simulation the watcher can animate one step at a time.
type Scene interface {
	Title() string
	Grid() *core.Grid
	// Highlighted returns the cells changed by the last step.
	Highlighted() []core.Coord
	// Advance runs one step and reports false once there is nothing left to show.
	Advance() bool
	Status() string
	Reset()
}

// FlashScene animates octopus flashes until every cell flashes together.
type FlashScene struct {
	initial   *core.Grid
	threshold uint8
	limit     int
	sim       *core.FlashSim
	syncedAt  int
}

// NewFlashScene watches flashes on a copy of g, stopping after limit steps.
func NewFlashScene(g *core.Grid, threshold uint8, limit int) *FlashScene {
	s := &FlashScene{initial: g.Clone(), threshold: threshold, limit: limit}
	s.Reset()
	return s
}

// Title returns the scene heading.
func (s *FlashScene) Title() string { return "Dumbo Octopus" }

// Grid returns the energy levels after the last step.
func (s *FlashScene) Grid() *core.Grid { return s.sim.Grid() }

// Highlighted returns the octopuses that flashed on the last step.
func (s *FlashScene) Highlighted() []core.Coord { return s.sim.LastFlashed() }

// Reset restores the starting grid.
func (s *FlashScene) Reset() {
	s.sim = core.NewFlashSim(s.initial.Clone(), s.threshold)
	s.syncedAt = 0
}

// Advance runs one step unless the grid has synchronized or the limit is hit.
func (s *FlashScene) Advance() bool {
	if s.syncedAt > 0 || s.sim.Steps() >= s.limit {
		return false
	}
	if s.sim.Step() == s.sim.Grid().Len() {
		s.syncedAt = s.sim.Steps()
	}
	return true
}

// Status reports the step count and flash totals.
func (s *FlashScene) Status() string {
	status := fmt.Sprintf("step %s  flashes %s  this step %d",
		humanize.Comma(int64(s.sim.Steps())),
		humanize.Comma(int64(s.sim.TotalFlashes())),
		len(s.sim.LastFlashed()),
	)
	if s.syncedAt > 0 {
		status += fmt.Sprintf("  synchronized at step %d", s.syncedAt)
	}
	return status
}

// BasinScene fills in one basin per step, in low point order.
type BasinScene struct {
	grid    *core.Grid
	ceiling uint8
	largest int
	lows    []core.Coord
	next    int
	last    []core.Coord
	sizes   []int
}

// NewBasinScene watches the basins of g; largest is how many of the
// biggest basins the running product covers.
func NewBasinScene(g *core.Grid, ceiling uint8, largest int) *BasinScene {
	return &BasinScene{
		grid:    g,
		ceiling: ceiling,
		largest: largest,
		lows:    core.LowPoints(g),
	}
}

// Title returns the scene heading.
func (s *BasinScene) Title() string { return "Smoke Basin" }

// Grid returns the height map.
func (s *BasinScene) Grid() *core.Grid { return s.grid }

// Highlighted returns the cells of the most recently filled basin.
func (s *BasinScene) Highlighted() []core.Coord { return s.last }

// Reset clears every filled basin.
func (s *BasinScene) Reset() {
	s.next = 0
	s.last = nil
	s.sizes = nil
}

// Advance fills the basin around the next low point.
func (s *BasinScene) Advance() bool {
	if s.next >= len(s.lows) {
		return false
	}
	s.last = core.Basin(s.grid, s.lows[s.next], s.ceiling)
	s.sizes = append(s.sizes, len(s.last))
	s.next++
	return true
}

// product multiplies the largest basin sizes found so far.
func (s *BasinScene) product() int {
	if len(s.sizes) == 0 {
		return 0
	}
	sorted := slices.Clone(s.sizes)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	p := 1
	for _, n := range sorted[:min(s.largest, len(sorted))] {
		p *= n
	}
	return p
}

// Status reports the latest basin size and the running product.
func (s *BasinScene) Status() string {
	size := 0
	if len(s.sizes) > 0 {
		size = s.sizes[len(s.sizes)-1]
	}
	return fmt.Sprintf("basin %d/%d  size %d  product of largest %d: %s",
		s.next, len(s.lows), size, s.largest, humanize.Comma(int64(s.product())))
}
