// Package day02 solves Rock Paper Scissors scoring.
package day02

import "aoc2022/internal/puzzle"

// Shape is 0 rock, 1 paper, 2 scissors.
type Shape int

// Round is one strategy guide line: the opponent's shape and the second
// column, X/Y/Z decoded as 0/1/2.
type Round struct {
	Opponent Shape
	Column   int
}

// Puzzle is the registered solver.
var Puzzle = &puzzle.Puzzle[[]Round]{
	Day:   2,
	Title: "Rock Paper Scissors",
	Load:  Load,
	Part1: Part1,
	Part2: Part2,
}

// Load parses "<A|B|C> <X|Y|Z>" lines. Blank lines are skipped.
func Load(lines []string) ([]Round, error) {
	var rounds []Round
	for i, l := range lines {
		if l == "" {
			continue
		}
		if len(l) != 3 || l[1] != ' ' || l[0] < 'A' || l[0] > 'C' || l[2] < 'X' || l[2] > 'Z' {
			return nil, puzzle.Errorf(i, l, "expected \"<A|B|C> <X|Y|Z>\"")
		}
		rounds = append(rounds, Round{Opponent: Shape(l[0] - 'A'), Column: int(l[2] - 'X')})
	}
	return rounds, nil
}

// outcome scores: loss 0, draw 3, win 6.
func outcome(me, them Shape) uint64 {
	switch (int(me) - int(them) + 3) % 3 {
	case 0:
		return 3
	case 1:
		return 6
	}
	return 0
}

// Score is the shape score (1-3) plus the outcome score.
func Score(me, them Shape) uint64 {
	return uint64(me) + 1 + outcome(me, them)
}

// Part1 reads the second column as the shape to play.
func Part1(rounds []Round) (puzzle.Result, error) {
	var total uint64
	for _, r := range rounds {
		total += Score(Shape(r.Column), r.Opponent)
	}
	return puzzle.Uint(total), nil
}

// Part2 reads the second column as the outcome: X lose, Y draw, Z win.
func Part2(rounds []Round) (puzzle.Result, error) {
	var total uint64
	for _, r := range rounds {
		// Column 0/1/2 shifts the opponent's shape by -1/0/+1.
		me := Shape((int(r.Opponent) + r.Column + 2) % 3)
		total += Score(me, r.Opponent)
	}
	return puzzle.Uint(total), nil
}
