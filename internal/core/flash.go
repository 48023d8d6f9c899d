package core

// DefaultFlashThreshold is the energy level a cell must exceed to flash.
const DefaultFlashThreshold uint8 = 9

// FlashStep advances g by one discrete step and returns the cells that
// flashed, in flash order.
//
// Every cell gains one unit of energy. A cell pushed past threshold flashes
// exactly once: it resets to 0 and gives one unit to each 8-way neighbor
// that has not flashed yet. Flashed cells stay at 0 for the rest of the
// step. The result does not depend on order.
func FlashStep(g *Grid, threshold uint8, order Order) []Coord {
	flashed := NewVisited(g)
	work := NewWorklist(order, g.Len()*2)
	work.Push(g.Coords()...)

	var flashes []Coord
	for {
		c, ok := work.Pop()
		if !ok {
			break
		}
		if flashed.Has(c) {
			continue
		}
		if g.at(c) < threshold {
			g.put(c, g.at(c)+1)
			continue
		}
		g.put(c, 0)
		flashed.Add(c)
		flashes = append(flashes, c)
		for _, n := range g.Neighbors(c, EightWay) {
			if !flashed.Has(n) {
				work.Push(n)
			}
		}
	}
	return flashes
}

// FlashSim runs repeated flash steps over a grid it owns.
type FlashSim struct {
	grid      *Grid
	threshold uint8
	order     Order
	steps     int
	total     int
	last      []Coord
}

// NewFlashSim creates a simulation over g. The grid is mutated in place;
// pass a Clone to keep the original.
func NewFlashSim(g *Grid, threshold uint8) *FlashSim {
	return &FlashSim{
		grid:      g,
		threshold: threshold,
		order:     LIFO,
	}
}

// SetOrder changes the worklist discipline for subsequent steps.
func (s *FlashSim) SetOrder(o Order) {
	s.order = o
}

// Step advances one step and returns the number of flashes in it.
func (s *FlashSim) Step() int {
	s.last = FlashStep(s.grid, s.threshold, s.order)
	s.steps++
	s.total += len(s.last)
	return len(s.last)
}

// Run advances n steps and returns the flashes counted during them.
func (s *FlashSim) Run(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		count += s.Step()
	}
	return count
}

// RunUntilSynchronized steps until every cell flashes in the same step and
// returns that step's 1-based number. It gives up after limit further steps
// and returns false.
func (s *FlashSim) RunUntilSynchronized(limit int) (int, bool) {
	for i := 0; i < limit; i++ {
		if s.Step() == s.grid.Len() {
			return s.steps, true
		}
	}
	return s.steps, false
}

// Grid returns the simulated grid.
func (s *FlashSim) Grid() *Grid {
	return s.grid
}

// Steps returns how many steps have been taken.
func (s *FlashSim) Steps() int {
	return s.steps
}

// TotalFlashes returns the flashes counted over all steps.
func (s *FlashSim) TotalFlashes() int {
	return s.total
}

// LastFlashed returns the cells that flashed in the most recent step.
func (s *FlashSim) LastFlashed() []Coord {
	return s.last
}
