// Package day06 solves Tuning Trouble: find the first run of distinct
// characters in a signal.
package day06

import (
	"strings"

	"aoc2022/internal/puzzle"
	"aoc2022/internal/window"
)

const (
	// PacketWidth is the start-of-packet marker length.
	PacketWidth = 4
	// MessageWidth is the start-of-message marker length.
	MessageWidth = 14
)

// Puzzle is the registered solver.
var Puzzle = &puzzle.Puzzle[[]rune]{
	Day:   6,
	Title: "Tuning Trouble",
	Load:  Load,
	Part1: Marker(PacketWidth),
	Part2: Marker(MessageWidth),
}

// Load takes the first non-blank line as the signal.
func Load(lines []string) ([]rune, error) {
	for _, l := range lines {
		if s := strings.TrimSpace(l); s != "" {
			return []rune(s), nil
		}
	}
	return nil, &puzzle.ParseError{Reason: "empty signal"}
}

// Marker returns a Reducer reporting the number of characters read when
// the first window of w distinct characters completes.
func Marker(w int) puzzle.Reducer[[]rune] {
	return func(signal []rune) (puzzle.Result, error) {
		pos, ok := window.FirstUnique(signal, w)
		if !ok {
			return puzzle.Result{}, puzzle.Logicf("marker", "no run of %d distinct characters in %d-character signal", w, len(signal))
		}
		return puzzle.Uint(uint64(pos)), nil
	}
}
