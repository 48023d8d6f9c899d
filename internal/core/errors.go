package core

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates the input does not decode into a rectangular digit grid.
	ErrFormat = errors.New("core: malformed grid input")
	// ErrOutOfBounds indicates a coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")
)

// FormatError describes where grid decoding failed.
// Col is -1 when the failure concerns a whole row (or the whole input).
type FormatError struct {
	Row    int
	Col    int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("%v: row %d: %s", ErrFormat, e.Row, e.Reason)
	}
	return fmt.Sprintf("%v: row %d col %d: %s", ErrFormat, e.Row, e.Col, e.Reason)
}

// Unwrap lets errors.Is match ErrFormat.
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// OutOfBoundsError reports the offending coordinate and the grid size.
type OutOfBoundsError struct {
	Coord  Coord
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: %v not in %dx%d grid", ErrOutOfBounds, e.Coord, e.Width, e.Height)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
