// Package solvers wires every day into one registry.
package solvers

import (
	"aoc2022/internal/day01"
	"aoc2022/internal/day02"
	"aoc2022/internal/day03"
	"aoc2022/internal/day04"
	"aoc2022/internal/day05"
	"aoc2022/internal/day06"
	"aoc2022/internal/day07"
	"aoc2022/internal/puzzle"
)

// Registry returns a registry holding all days.
func Registry() *puzzle.Registry {
	r := puzzle.NewRegistry()
	r.Register(day01.Puzzle)
	r.Register(day02.Puzzle)
	r.Register(day03.Puzzle)
	r.Register(day04.Puzzle)
	r.Register(day05.Puzzle)
	r.Register(day06.Puzzle)
	r.Register(day07.Puzzle)
	return r
}
