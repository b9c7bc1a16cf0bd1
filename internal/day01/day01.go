// Package day01 solves Calorie Counting: groups of numbers separated by
// blank lines, ranked by their sums.
package day01

import (
	"slices"
	"strconv"
	"strings"

	"aoc2022/internal/puzzle"
)

// Puzzle is the registered solver.
var Puzzle = &puzzle.Puzzle[[]uint64]{
	Day:   1,
	Title: "Calorie Counting",
	Load:  Load,
	Part1: Part1,
	Part2: Part2,
}

// Load returns the sum of every group, in input order.
func Load(lines []string) ([]uint64, error) {
	var sums []uint64
	var cur uint64
	open := false
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			if open {
				sums = append(sums, cur)
			}
			cur, open = 0, false
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(l), 10, 64)
		if err != nil {
			return nil, puzzle.Errorf(i, l, "expected an unsigned integer")
		}
		cur += n
		open = true
	}
	if open {
		sums = append(sums, cur)
	}
	if len(sums) == 0 {
		return nil, &puzzle.ParseError{Reason: "no groups in input"}
	}
	return sums, nil
}

// Part1 returns the largest group sum.
func Part1(sums []uint64) (puzzle.Result, error) {
	return puzzle.Uint(TopSum(sums, 1)), nil
}

// Part2 returns the sum of the three largest group sums.
func Part2(sums []uint64) (puzzle.Result, error) {
	return puzzle.Uint(TopSum(sums, 3)), nil
}

// TopSum adds the k largest values. Fewer than k values are all added.
func TopSum(values []uint64, k int) uint64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	var total uint64
	for _, v := range sorted[:min(k, len(sorted))] {
		total += v
	}
	return total
}
