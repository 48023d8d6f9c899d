package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vovakirdan/aoc2021/internal/core"
)

// TraversalSuite exercises neighbor enumeration and worklist exploration
// on the basin example grid.
type TraversalSuite struct {
	suite.Suite
	grid *core.Grid
}

func (s *TraversalSuite) SetupTest() {
	g, err := core.ParseGrid(heightMap)
	s.Require().NoError(err)
	s.grid = g
}

func (s *TraversalSuite) TestNeighborCounts() {
	cases := []struct {
		c           core.Coord
		four, eight int
	}{
		{core.C(0, 0), 2, 3},
		{core.C(9, 4), 2, 3},
		{core.C(5, 0), 3, 5},
		{core.C(0, 2), 3, 5},
		{core.C(4, 2), 4, 8},
	}
	for _, tc := range cases {
		s.Len(s.grid.Neighbors(tc.c, core.FourWay), tc.four, "4-way at %v", tc.c)
		s.Len(s.grid.Neighbors(tc.c, core.EightWay), tc.eight, "8-way at %v", tc.c)
	}
}

func (s *TraversalSuite) TestFourWaySubsetOfEightWay() {
	for _, c := range s.grid.Coords() {
		eight := make(map[core.Coord]bool)
		for _, n := range s.grid.Neighbors(c, core.EightWay) {
			s.True(s.grid.InBounds(n))
			eight[n] = true
		}
		for _, n := range s.grid.Neighbors(c, core.FourWay) {
			s.True(eight[n], "%v: 4-way neighbor %v missing from 8-way set", c, n)
		}
	}
}

func (s *TraversalSuite) TestExploreIdempotent() {
	include := func(v uint8) bool { return v < 9 }
	start := []core.Coord{core.C(9, 0)}

	first := core.Explore(s.grid, start, core.FourWay, include, core.FIFO)
	second := core.Explore(s.grid, start, core.FourWay, include, core.FIFO)
	s.Equal(first, second)
	s.Len(first, 9)

	lifo := core.Explore(s.grid, start, core.FourWay, include, core.LIFO)
	s.ElementsMatch(first, lifo, "visit order must not change the region")
}

func (s *TraversalSuite) TestExploreVisitsEachCellOnce() {
	region := core.Explore(s.grid, s.grid.Coords(), core.EightWay, func(uint8) bool { return true }, core.LIFO)
	s.Len(region, s.grid.Len())

	seen := make(map[core.Coord]bool)
	for _, c := range region {
		s.False(seen[c], "%v processed twice", c)
		seen[c] = true
	}
}

func (s *TraversalSuite) TestExploreRejectedStart() {
	// (2,0) holds a 9
	region := core.Explore(s.grid, []core.Coord{core.C(2, 0)}, core.FourWay, func(v uint8) bool { return v < 9 }, core.FIFO)
	s.Empty(region)
}

func TestTraversalSuite(t *testing.T) {
	suite.Run(t, new(TraversalSuite))
}

func TestWorklistOrder(t *testing.T) {
	fifo := core.NewWorklist(core.FIFO, 0)
	lifo := core.NewWorklist(core.LIFO, 0)
	items := []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)}
	fifo.Push(items...)
	lifo.Push(items...)

	for i := range items {
		c, ok := fifo.Pop()
		require.True(t, ok)
		assert.Equal(t, items[i], c)

		c, ok = lifo.Pop()
		require.True(t, ok)
		assert.Equal(t, items[len(items)-1-i], c)
	}

	_, ok := fifo.Pop()
	assert.False(t, ok)
	_, ok = lifo.Pop()
	assert.False(t, ok)
	assert.Zero(t, fifo.Len())
}

func TestVisitedAddIsIdempotent(t *testing.T) {
	g := core.NewGrid(2, 2)
	v := core.NewVisited(g)

	assert.True(t, v.Add(core.C(1, 1)))
	assert.False(t, v.Add(core.C(1, 1)))
	assert.True(t, v.Has(core.C(1, 1)))
	assert.False(t, v.Has(core.C(0, 1)))
	assert.False(t, v.Has(core.C(5, 5)))

	assert.Panics(t, func() { v.Add(core.C(2, 0)) }, "out-of-bounds add is a logic defect")
}

func TestSingleCellGrid(t *testing.T) {
	for _, conn := range []core.Connectivity{core.FourWay, core.EightWay} {
		g := core.NewGrid(1, 1)
		assert.Empty(t, g.Neighbors(core.C(0, 0), conn), conn.String())
	}

	low, err := core.ParseGrid([]string{"4"})
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{core.C(0, 0)}, core.LowPoints(low))
	assert.Equal(t, 1, core.BasinSize(low, core.C(0, 0), core.DefaultBasinCeiling))

	high, err := core.ParseGrid([]string{"9"})
	require.NoError(t, err)
	assert.Equal(t, 0, core.BasinSize(high, core.C(0, 0), core.DefaultBasinCeiling))
}
