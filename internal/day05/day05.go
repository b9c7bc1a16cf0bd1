// Package day05 solves Supply Stacks: a crate drawing followed by crane
// moves.
package day05

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"aoc2022/internal/cargo"
	"aoc2022/internal/puzzle"
)

var moveRE = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// Move relocates N crates between lanes labelled From and To (1-based).
type Move struct {
	N, From, To int
}

// Model is the starting cargo and the move list. Reducers simulate on
// clones, so the starting cargo is never modified.
type Model struct {
	Start *cargo.Cargo
	Moves []Move
}

// Puzzle is the registered solver.
var Puzzle = &puzzle.Puzzle[*Model]{
	Day:   5,
	Title: "Supply Stacks",
	Load:  Load,
	Part1: Part1,
	Part2: Part2,
}

// Load parses the drawing, the lane label line and the moves.
func Load(lines []string) (*Model, error) {
	label := -1
	for i, l := range lines {
		if isLabelLine(l) {
			label = i
			break
		}
	}
	if label < 0 {
		return nil, &puzzle.ParseError{Reason: "no lane label line found"}
	}
	n, err := parseLabels(lines[label])
	if err != nil {
		return nil, puzzle.Errorf(label, lines[label], "%v", err)
	}

	rows := make([][]byte, 0, label)
	for i := 0; i < label; i++ {
		row, err := parseRow(lines[i], n)
		if err != nil {
			return nil, puzzle.Errorf(i, lines[i], "%v", err)
		}
		rows = append(rows, row)
	}
	seen := make([]bool, n)
	for r, row := range rows {
		for lane, crate := range row {
			if crate != 0 {
				seen[lane] = true
			} else if seen[lane] {
				return nil, puzzle.Errorf(r, lines[r], "lane %d has a gap below a crate", lane+1)
			}
		}
	}
	c := cargo.New(n)
	for r := len(rows) - 1; r >= 0; r-- {
		for lane, crate := range rows[r] {
			if crate != 0 {
				c.Push(lane, crate)
			}
		}
	}

	m := &Model{Start: c}
	for i := label + 1; i < len(lines); i++ {
		l := lines[i]
		if strings.TrimSpace(l) == "" {
			continue
		}
		sub := moveRE.FindStringSubmatch(l)
		if sub == nil {
			return nil, puzzle.Errorf(i, l, "expected \"move <n> from <a> to <b>\"")
		}
		var mv Move
		for k, dst := range []*int{&mv.N, &mv.From, &mv.To} {
			v, err := strconv.Atoi(sub[k+1])
			if err != nil {
				return nil, puzzle.Errorf(i, l, "%v", err)
			}
			*dst = v
		}
		m.Moves = append(m.Moves, mv)
	}
	return m, nil
}

func isLabelLine(l string) bool {
	f := strings.Fields(l)
	if len(f) == 0 {
		return false
	}
	for _, s := range f {
		if _, err := strconv.Atoi(s); err != nil {
			return false
		}
	}
	return true
}

func parseLabels(l string) (int, error) {
	f := strings.Fields(l)
	for i, s := range f {
		if s != strconv.Itoa(i+1) {
			return 0, fmt.Errorf("lane labels must count up from 1, got %q at position %d", s, i+1)
		}
	}
	return len(f), nil
}

// parseRow reads one drawing row of "[X] " cells. Missing crates are 0.
func parseRow(l string, lanes int) ([]byte, error) {
	if len(l) > 4*lanes {
		if strings.TrimSpace(l[4*lanes:]) != "" {
			return nil, fmt.Errorf("row is wider than %d lanes", lanes)
		}
	}
	row := make([]byte, lanes)
	for lane := 0; lane < lanes; lane++ {
		at := 4 * lane
		if at >= len(l) {
			break
		}
		cell := l[at:min(at+3, len(l))]
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if len(cell) != 3 || cell[0] != '[' || cell[2] != ']' || cell[1] == ' ' {
			return nil, fmt.Errorf("lane %d: expected \"[X]\", got %q", lane+1, cell)
		}
		if at+3 < len(l) && l[at+3] != ' ' {
			return nil, fmt.Errorf("lane %d: cells must be separated by a space", lane+1)
		}
		row[lane] = cell[1]
	}
	return row, nil
}

// Part1 simulates the moves one crate at a time.
func Part1(m *Model) (puzzle.Result, error) {
	return simulate(m, cargo.OneByOne)
}

// Part2 simulates the moves lifting each batch at once.
func Part2(m *Model) (puzzle.Result, error) {
	return simulate(m, cargo.Batch)
}

func simulate(m *Model, mode cargo.Mode) (puzzle.Result, error) {
	c := m.Start.Clone()
	for i, mv := range m.Moves {
		if err := c.Move(mv.N, mv.From-1, mv.To-1, mode); err != nil {
			return puzzle.Result{}, puzzle.Logicf("move", "step %d (move %d from %d to %d): %v", i+1, mv.N, mv.From, mv.To, err)
		}
	}
	return puzzle.Text(c.Tops()), nil
}
