// Package input provides the line-oriented input helpers shared by all
// puzzles: a line source and generic per-line parsers.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrEmptyInput indicates a puzzle received no usable lines.
var ErrEmptyInput = errors.New("input: no input lines")

// ReadLines reads r to EOF and returns its lines in order, with trailing
// newlines and surrounding whitespace removed.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: reading lines: %w", err)
	}
	return lines, nil
}

// ReadFile is ReadLines over the named file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()
	return ReadLines(f)
}

// TrimBlank drops leading and trailing empty lines.
func TrimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}

// ParseLines converts each line with parse, silently discarding lines
// that fail to parse.
func ParseLines[T any](lines []string, parse func(string) (T, error)) []T {
	result := make([]T, 0, len(lines))
	for _, line := range lines {
		v, err := parse(strings.TrimSpace(line))
		if err != nil {
			continue
		}
		result = append(result, v)
	}
	return result
}

// ParseInt parses a base-10 integer of type T.
func ParseInt[T constraints.Integer](s string) (T, error) {
	var zero T
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return zero, err
	}
	v := T(n)
	if int64(v) != n || (n < 0) != (v < 0) {
		return zero, fmt.Errorf("input: %q overflows %T", s, zero)
	}
	return v, nil
}

// ParseInts parses one integer per line, discarding lines that are not integers.
func ParseInts[T constraints.Integer](lines []string) []T {
	return ParseLines(lines, ParseInt[T])
}

// SplitInts parses a separator-delimited list such as "3,4,3,1,2".
// Unlike ParseInts it fails on the first malformed field.
func SplitInts[T constraints.Integer](s, sep string) ([]T, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}
	fields := strings.Split(s, sep)
	result := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := ParseInt[T](f)
		if err != nil {
			return nil, fmt.Errorf("input: field %q: %w", f, err)
		}
		result = append(result, v)
	}
	return result, nil
}

// Fields parses whitespace-separated integers such as a bingo board row.
func Fields[T constraints.Integer](s string) ([]T, error) {
	fields := strings.Fields(s)
	result := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := ParseInt[T](f)
		if err != nil {
			return nil, fmt.Errorf("input: field %q: %w", f, err)
		}
		result = append(result, v)
	}
	return result, nil
}
