package core

import "strings"

// Grid is a rectangular array of small unsigned cell values.
// Cells are stored in row-major order: index = y*width + x.
type Grid struct {
	width  int
	height int
	cells  []uint8
}

// NewGrid creates a zero-filled grid with the given dimensions.
// Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// ParseGrid builds a grid from text rows, one decimal digit per cell.
// Every row must have the width of the first one; empty input, non-digit
// characters and ragged rows are rejected with a *FormatError.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, &FormatError{Row: 0, Col: -1, Reason: "empty input"}
	}
	width := len(lines[0])
	if width == 0 {
		return nil, &FormatError{Row: 0, Col: -1, Reason: "empty row"}
	}

	g := NewGrid(width, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return nil, &FormatError{
				Row:    y,
				Col:    -1,
				Reason: "row width differs from first row",
			}
		}
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch < '0' || ch > '9' {
				return nil, &FormatError{Row: y, Col: x, Reason: "not a decimal digit: " + string(rune(ch))}
			}
			g.cells[y*width+x] = ch - '0'
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

func (g *Grid) outOfBounds(c Coord) error {
	return &OutOfBoundsError{Coord: c, Width: g.width, Height: g.height}
}

// Get returns the cell value at c.
func (g *Grid) Get(c Coord) (uint8, error) {
	if !g.InBounds(c) {
		return 0, g.outOfBounds(c)
	}
	return g.cells[g.index(c)], nil
}

// Set stores v at c.
func (g *Grid) Set(c Coord, v uint8) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	g.cells[g.index(c)] = v
	return nil
}

// at is Get for coordinates produced by the grid itself.
// An out-of-range coordinate here is a logic defect, so it panics.
func (g *Grid) at(c Coord) uint8 {
	if !g.InBounds(c) {
		panic(g.outOfBounds(c))
	}
	return g.cells[g.index(c)]
}

func (g *Grid) put(c Coord, v uint8) {
	if !g.InBounds(c) {
		panic(g.outOfBounds(c))
	}
	g.cells[g.index(c)] = v
}

// Coords returns all coordinates of the grid ordered by row then column.
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as newline-separated rows.
// Values 0-9 print as digits, larger values as '+'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			v := g.cells[y*g.width+x]
			if v > 9 {
				sb.WriteByte('+')
				continue
			}
			sb.WriteByte('0' + v)
		}
	}
	return sb.String()
}
