package day02_test

import (
	"errors"
	"strings"
	"testing"

	"aoc2022/internal/day02"
	"aoc2022/internal/puzzle"
)

func TestSolve_Example(t *testing.T) {
	ans, err := day02.Puzzle.Solve(strings.NewReader("A Y\nB X\nC Z\n"))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if ans.Part1 != "15" || ans.Part2 != "12" {
		t.Errorf("got %s / %s, want 15 / 12", ans.Part1, ans.Part2)
	}
}

// TestScoreTables checks every combination against the rules spelled out
// case by case.
func TestScoreTables(t *testing.T) {
	part1 := map[string]uint64{
		"A X": 4, "A Y": 8, "A Z": 3,
		"B X": 1, "B Y": 5, "B Z": 9,
		"C X": 7, "C Y": 2, "C Z": 6,
	}
	part2 := map[string]uint64{
		"A X": 3, "A Y": 4, "A Z": 8,
		"B X": 1, "B Y": 5, "B Z": 9,
		"C X": 2, "C Y": 6, "C Z": 7,
	}
	for line, want := range part1 {
		rounds, err := day02.Load([]string{line})
		if err != nil {
			t.Fatal(err)
		}
		got, _ := day02.Part1(rounds)
		if got.String() != puzzle.Uint(want).String() {
			t.Errorf("part 1 %q = %s, want %d", line, got, want)
		}
		got, _ = day02.Part2(rounds)
		if got.String() != puzzle.Uint(part2[line]).String() {
			t.Errorf("part 2 %q = %s, want %d", line, got, part2[line])
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	for _, bad := range []string{"A", "D X", "A W", "AX ", "A  X"} {
		_, err := day02.Load([]string{"A X", bad})
		var pe *puzzle.ParseError
		if !errors.As(err, &pe) || pe.Line != 2 {
			t.Errorf("Load(%q): want ParseError on line 2, got %v", bad, err)
		}
	}
}
