package core

// Connectivity selects which adjacent cells count as neighbors.
type Connectivity uint8

const (
	// FourWay uses orthogonal neighbors: N, E, S, W.
	FourWay Connectivity = iota
	// EightWay adds the diagonals: N, NE, E, SE, S, SW, W, NW.
	EightWay
)

var (
	fourWayOffsets = []Coord{
		{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	}
	eightWayOffsets = []Coord{
		{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
)

// String returns the string representation of a connectivity mode.
func (c Connectivity) String() string {
	switch c {
	case FourWay:
		return "4-way"
	case EightWay:
		return "8-way"
	default:
		return "unknown"
	}
}

// Offsets returns the neighbor deltas for this mode.
// The returned slice is shared and must not be modified.
func (c Connectivity) Offsets() []Coord {
	if c == EightWay {
		return eightWayOffsets
	}
	return fourWayOffsets
}

// Neighbors returns the in-bounds neighbors of c.
// Boundary cells legitimately have fewer neighbors; out-of-range
// candidates are dropped, not reported.
func (g *Grid) Neighbors(c Coord, conn Connectivity) []Coord {
	offsets := conn.Offsets()
	result := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := c.Add(d)
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}
