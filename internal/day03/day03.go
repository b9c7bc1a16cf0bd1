// Package day03 solves Rucksack Reorganization.
package day03

import (
	"errors"
	"slices"

	"aoc2022/internal/mergescan"
	"aoc2022/internal/puzzle"
)

// maxPriority is the priority of 'Z'.
const maxPriority = 52

// Sack holds the item priorities of each compartment.
type Sack struct {
	Left, Right []int
}

// NewSack splits items into two equal compartments.
func NewSack(items string) (Sack, error) {
	if len(items)%2 != 0 {
		return Sack{}, errOdd
	}
	prios := make([]int, len(items))
	for i := 0; i < len(items); i++ {
		p := Priority(items[i])
		if p == 0 {
			return Sack{}, errItem
		}
		prios[i] = p
	}
	half := len(items) / 2
	return Sack{Left: prios[:half], Right: prios[half:]}, nil
}

var (
	errOdd  = errors.New("item count must be even")
	errItem = errors.New("items must be ASCII letters")
)

// Priority maps a-z to 1-26 and A-Z to 27-52. Anything else is 0.
func Priority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	}
	return 0
}

// Contains reports whether either compartment holds priority p.
func (s Sack) Contains(p int) bool {
	return slices.Contains(s.Left, p) || slices.Contains(s.Right, p)
}

// Shared returns the priorities found in both compartments, ascending.
func (s Sack) Shared() []int {
	return mergescan.Intersect(s.Left, s.Right)
}

// Puzzle is the registered solver.
var Puzzle = &puzzle.Puzzle[[]Sack]{
	Day:   3,
	Title: "Rucksack Reorganization",
	Load:  Load,
	Part1: Part1,
	Part2: Part2,
}

// Load parses one sack per non-blank line.
func Load(lines []string) ([]Sack, error) {
	var sacks []Sack
	for i, l := range lines {
		if l == "" {
			continue
		}
		s, err := NewSack(l)
		if err != nil {
			return nil, puzzle.Errorf(i, l, "%v", err)
		}
		sacks = append(sacks, s)
	}
	return sacks, nil
}

// Part1 sums the lowest shared priority of each sack.
func Part1(sacks []Sack) (puzzle.Result, error) {
	var total uint64
	for i, s := range sacks {
		shared := s.Shared()
		if len(shared) == 0 {
			return puzzle.Result{}, puzzle.Logicf("shared item", "sack %d has no item in both compartments", i+1)
		}
		total += uint64(shared[0])
	}
	return puzzle.Uint(total), nil
}

// Part2 sums, for each group of three consecutive sacks, the lowest
// priority carried by all three.
func Part2(sacks []Sack) (puzzle.Result, error) {
	if len(sacks)%3 != 0 {
		return puzzle.Result{}, puzzle.Logicf("badge", "%d sacks do not form groups of three", len(sacks))
	}
	var total uint64
	for g := 0; g < len(sacks); g += 3 {
		badge := 0
		for p := 1; p <= maxPriority; p++ {
			if sacks[g].Contains(p) && sacks[g+1].Contains(p) && sacks[g+2].Contains(p) {
				badge = p
				break
			}
		}
		if badge == 0 {
			return puzzle.Result{}, puzzle.Logicf("badge", "group %d has no common item", g/3+1)
		}
		total += uint64(badge)
	}
	return puzzle.Uint(total), nil
}
