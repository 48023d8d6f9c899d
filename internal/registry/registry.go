// Package registry provides a global registry for puzzle factories.
// Puzzles register themselves in init() functions, allowing the CLI
// to discover and run days without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Answer holds the two results of a puzzle.
// Values are kept as text so answers wider than int64 print exactly.
type Answer struct {
	Part1 string
	Part2 string
}

// NewAnswer formats two results with their default formatting.
func NewAnswer(part1, part2 any) Answer {
	return Answer{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}

// Puzzle is the interface every day implements.
// Puzzles contain pure logic: they receive already-read lines and never
// touch stdin, the terminal or storage.
type Puzzle interface {
	// ID returns a unique identifier such as "day09".
	// Used for CLI commands and history storage.
	ID() string

	// Title returns the puzzle name for display (e.g., "Smoke Basin").
	Title() string

	// Solve computes both parts from the puzzle input lines.
	Solve(lines []string) (Answer, error)
}

// PuzzleInfo contains metadata about a registered puzzle.
type PuzzleInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a puzzle.
type Factory func() Puzzle

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a puzzle factory to the registry.
// Typically called from a puzzle's init() function.
// Panics if a puzzle with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: puzzle %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered puzzles, sorted by ID.
func List() []PuzzleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PuzzleInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PuzzleInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new puzzle by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[Normalize(id)]
	if !ok {
		return nil, fmt.Errorf("registry: unknown puzzle %q", id)
	}

	return f(), nil
}

// Exists checks if a puzzle with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[Normalize(id)]
	return ok
}

// Normalize maps user-facing day names to registry IDs:
// "9", "09", "day9" and "day09" all become "day09".
// Anything else is returned lower-cased and unchanged.
func Normalize(id string) string {
	s := strings.ToLower(strings.TrimSpace(id))
	num := strings.TrimPrefix(s, "day")
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return s
	}
	return DayID(n)
}

// DayID formats a day number as a registry ID.
func DayID(day int) string {
	return fmt.Sprintf("day%02d", day)
}
