package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/aoc2021/internal/registry"
	"github.com/vovakirdan/aoc2021/internal/runner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(id, part1, digest string, elapsed time.Duration) runner.Result {
	return runner.Result{
		PuzzleID: id,
		Answer:   registry.Answer{Part1: part1, Part2: "p2"},
		Elapsed:  elapsed,
		Digest:   digest,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for i, part1 := range []string{"15", "16", "17"} {
		if _, err := store.SaveRun(result("day09", part1, "abc", time.Duration(i+1)*time.Millisecond)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(result("day11", "1656", "def", time.Millisecond)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("day09", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Part1 != "17" || runs[2].Part1 != "15" {
		t.Errorf("Runs not newest first: %+v", runs)
	}
	if runs[0].Elapsed != 3*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 3ms", runs[0].Elapsed)
	}
	if runs[0].Part2 != "p2" || runs[0].InputDigest != "abc" {
		t.Errorf("Run fields not round-tripped: %+v", runs[0])
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].PuzzleID != "day11" {
		t.Errorf("RecentRuns(all) = %+v", all)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(result("day01", "x", "abc", time.Millisecond))
	}

	runs, err := store.RecentRuns("day01", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
}

func TestStoreLastRun(t *testing.T) {
	store := openTestStore(t)

	last, err := store.LastRun("day09", "abc")
	if err != nil {
		t.Fatalf("LastRun() failed: %v", err)
	}
	if last != nil {
		t.Errorf("Expected nil for unknown input, got %+v", last)
	}

	store.SaveRun(result("day09", "15", "abc", time.Millisecond))
	store.SaveRun(result("day09", "99", "other", time.Millisecond))
	store.SaveRun(result("day09", "16", "abc", time.Millisecond))

	last, err = store.LastRun("day09", "abc")
	if err != nil {
		t.Fatalf("LastRun() failed: %v", err)
	}
	if last == nil || last.Part1 != "16" {
		t.Errorf("LastRun() = %+v, expected part1 16", last)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(result("day09", "15", "abc", time.Millisecond))
	store.SaveRun(result("day11", "1656", "def", time.Millisecond))

	if err := store.ClearRuns("day09"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("day09", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 day09 runs after clear, got %d", len(runs))
	}

	runs, _ = store.RecentRuns("day11", 10)
	if len(runs) != 1 {
		t.Errorf("day11 runs should not be affected by clearing day09")
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(result("day09", "15", "abc", 4*time.Millisecond))
	store.SaveRun(result("day09", "15", "abc", 2*time.Millisecond))
	store.SaveRun(result("day09", "20", "def", 6*time.Millisecond))

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	s, ok := stats["day09"]
	if !ok {
		t.Fatal("Expected stats for day09")
	}
	if s.Runs != 3 || s.Inputs != 2 {
		t.Errorf("Runs/Inputs = %d/%d, expected 3/2", s.Runs, s.Inputs)
	}
	if s.Fastest != 2*time.Millisecond {
		t.Errorf("Fastest = %v, expected 2ms", s.Fastest)
	}
	if s.AvgElapsed != 4*time.Millisecond {
		t.Errorf("AvgElapsed = %v, expected 4ms", s.AvgElapsed)
	}
	if s.LastSolved.IsZero() {
		t.Error("LastSolved should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
