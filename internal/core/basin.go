package core

import "sort"

// DefaultBasinCeiling is the height that bounds a basin: cells at or above
// it belong to no basin.
const DefaultBasinCeiling uint8 = 9

// IsLowPoint reports whether c is strictly lower than every 4-way neighbor.
// A cell without neighbors is a low point.
func (g *Grid) IsLowPoint(c Coord) bool {
	h := g.at(c)
	for _, n := range g.Neighbors(c, FourWay) {
		if g.at(n) <= h {
			return false
		}
	}
	return true
}

// LowPoints returns all low points in row-major order.
func LowPoints(g *Grid) []Coord {
	var lows []Coord
	for _, c := range g.Coords() {
		if g.IsLowPoint(c) {
			lows = append(lows, c)
		}
	}
	return lows
}

// RiskLevel sums height+1 over all low points.
func RiskLevel(g *Grid) int {
	risk := 0
	for _, c := range LowPoints(g) {
		risk += int(g.at(c)) + 1
	}
	return risk
}

func belowCeiling(ceiling uint8) func(uint8) bool {
	return func(v uint8) bool { return v < ceiling }
}

// Basin returns the cells reachable from low through 4-way neighbors whose
// height is below ceiling.
func Basin(g *Grid, low Coord, ceiling uint8) []Coord {
	return Explore(g, []Coord{low}, FourWay, belowCeiling(ceiling), FIFO)
}

// BasinSize returns the number of cells in the basin around low.
// It is 0 when low itself is at or above ceiling.
func BasinSize(g *Grid, low Coord, ceiling uint8) int {
	return RegionSize(g, low, FourWay, belowCeiling(ceiling))
}

// BasinSizes returns the basin size for every low point, largest first.
func BasinSizes(g *Grid, ceiling uint8) []int {
	lows := LowPoints(g)
	sizes := make([]int, 0, len(lows))
	for _, c := range lows {
		sizes = append(sizes, BasinSize(g, c, ceiling))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}

// LargestBasinsProduct multiplies the n largest basin sizes.
// If fewer than n basins exist, all of them are multiplied; with none the
// product is 0.
func LargestBasinsProduct(g *Grid, n int, ceiling uint8) int {
	sizes := BasinSizes(g, ceiling)
	if len(sizes) == 0 {
		return 0
	}
	if len(sizes) > n {
		sizes = sizes[:n]
	}
	product := 1
	for _, s := range sizes {
		product *= s
	}
	return product
}
