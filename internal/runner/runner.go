// Package runner times puzzle solves and fingerprints their input.
package runner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aoc2021/internal/registry"
)

// Result is the outcome of one solve.
type Result struct {
	PuzzleID string
	Answer   registry.Answer
	Elapsed  time.Duration
	// Digest identifies the input so history rows can be compared.
	Digest string
}

// Runner solves puzzles and logs what it did.
type Runner struct {
	logger *log.Logger
	now    func() time.Time
}

// New creates a runner. A nil logger discards output.
func New(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{logger: logger, now: time.Now}
}

// Run solves p over lines.
func (r *Runner) Run(p registry.Puzzle, lines []string) (Result, error) {
	res := Result{PuzzleID: p.ID(), Digest: Digest(lines)}
	r.logger.Debug("solving", "puzzle", p.ID(), "lines", len(lines), "digest", res.Digest[:12])

	start := r.now()
	ans, err := p.Solve(lines)
	res.Elapsed = r.now().Sub(start)
	// A failed solve may still carry the parts it finished.
	res.Answer = ans
	if err != nil {
		return res, fmt.Errorf("%s: %w", p.ID(), err)
	}

	r.logger.Debug("solved", "puzzle", p.ID(), "elapsed", res.Elapsed)
	return res, nil
}

// Digest returns the hex sha256 of the lines joined by newlines.
func Digest(lines []string) string {
	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
