package core

// Order selects the worklist discipline used by a traversal.
type Order uint8

const (
	// FIFO processes coordinates breadth-first.
	FIFO Order = iota
	// LIFO processes the most recently pushed coordinate first.
	LIFO
)

// String returns the string representation of an order.
func (o Order) String() string {
	switch o {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return "unknown"
	}
}

// Worklist is a queue or stack of pending coordinates.
type Worklist struct {
	order Order
	items []Coord
	head  int // first live item for FIFO
}

// NewWorklist creates an empty worklist with the given discipline.
func NewWorklist(order Order, capacity int) *Worklist {
	return &Worklist{
		order: order,
		items: make([]Coord, 0, capacity),
	}
}

// Push appends coordinates to the worklist.
func (w *Worklist) Push(cs ...Coord) {
	w.items = append(w.items, cs...)
}

// Pop removes and returns the next coordinate.
// Returns false when the worklist is empty.
func (w *Worklist) Pop() (Coord, bool) {
	if w.Len() == 0 {
		return Coord{}, false
	}
	if w.order == LIFO {
		last := len(w.items) - 1
		c := w.items[last]
		w.items = w.items[:last]
		return c, true
	}
	c := w.items[w.head]
	w.head++
	if w.head == len(w.items) {
		w.items = w.items[:0]
		w.head = 0
	}
	return c, true
}

// Len returns the number of pending coordinates.
func (w *Worklist) Len() int {
	return len(w.items) - w.head
}

// Visited is a coordinate set scoped to one traversal over one grid.
type Visited struct {
	grid *Grid
	seen []bool
}

// NewVisited creates an empty visited set for g.
func NewVisited(g *Grid) *Visited {
	return &Visited{grid: g, seen: make([]bool, g.Len())}
}

// Add marks c as visited and reports whether it was newly added.
// Adding an already visited coordinate is a no-op.
func (v *Visited) Add(c Coord) bool {
	if !v.grid.InBounds(c) {
		panic(v.grid.outOfBounds(c))
	}
	i := v.grid.index(c)
	if v.seen[i] {
		return false
	}
	v.seen[i] = true
	return true
}

// Has reports whether c has been visited.
func (v *Visited) Has(c Coord) bool {
	if !v.grid.InBounds(c) {
		return false
	}
	return v.seen[v.grid.index(c)]
}

// Explore walks outward from starts, following conn-neighbors whose values
// satisfy include. Each coordinate is processed at most once. It returns
// the accepted coordinates in processing order; start cells whose value is
// rejected by include are visited but not returned.
//
// Time: O(W·H·d) where d is 4 or 8. Memory: O(W·H) for the visited set.
func Explore(g *Grid, starts []Coord, conn Connectivity, include func(uint8) bool, order Order) []Coord {
	visited := NewVisited(g)
	work := NewWorklist(order, len(starts))
	work.Push(starts...)

	var region []Coord
	for {
		c, ok := work.Pop()
		if !ok {
			break
		}
		if !visited.Add(c) {
			continue
		}
		if !include(g.at(c)) {
			continue
		}
		region = append(region, c)
		for _, n := range g.Neighbors(c, conn) {
			if !visited.Has(n) && include(g.at(n)) {
				work.Push(n)
			}
		}
	}
	return region
}

// RegionSize is Explore returning only the number of accepted cells.
func RegionSize(g *Grid, start Coord, conn Connectivity, include func(uint8) bool) int {
	return len(Explore(g, []Coord{start}, conn, include, FIFO))
}
