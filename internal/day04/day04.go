// Package day04 solves Camp Cleanup: pairs of section ranges.
package day04

import (
	"strings"

	"aoc2022/internal/interval"
	"aoc2022/internal/puzzle"
)

// Pair is one line of assignments.
type Pair struct {
	A, B interval.Range
}

// Puzzle is the registered solver.
var Puzzle = &puzzle.Puzzle[[]Pair]{
	Day:   4,
	Title: "Camp Cleanup",
	Load:  Load,
	Part1: Part1,
	Part2: Part2,
}

// Load parses "<lo>-<hi>,<lo>-<hi>" lines.
func Load(lines []string) ([]Pair, error) {
	var pairs []Pair
	for i, l := range lines {
		if l == "" {
			continue
		}
		left, right, ok := strings.Cut(l, ",")
		if !ok {
			return nil, puzzle.Errorf(i, l, "expected two ranges separated by ','")
		}
		a, err := interval.Parse(left)
		if err != nil {
			return nil, puzzle.Errorf(i, l, "%v", err)
		}
		b, err := interval.Parse(right)
		if err != nil {
			return nil, puzzle.Errorf(i, l, "%v", err)
		}
		pairs = append(pairs, Pair{A: a, B: b})
	}
	return pairs, nil
}

// Part1 counts pairs where one range fully contains the other.
func Part1(pairs []Pair) (puzzle.Result, error) {
	return count(pairs, func(p Pair) bool { return p.A.Contains(p.B) || p.B.Contains(p.A) }), nil
}

// Part2 counts pairs that overlap at all.
func Part2(pairs []Pair) (puzzle.Result, error) {
	return count(pairs, func(p Pair) bool { return p.A.Overlaps(p.B) }), nil
}

func count(pairs []Pair, pred func(Pair) bool) puzzle.Result {
	var n uint64
	for _, p := range pairs {
		if pred(p) {
			n++
		}
	}
	return puzzle.Uint(n)
}
