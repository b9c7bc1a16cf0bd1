// Package puzzle holds the shared Loader → Model → Reducer pipeline used by
// every day's solver, plus the error taxonomy and the solver registry.
//
// A day is declared as a Puzzle[M] where M is its Model type. The Loader
// turns input lines into M or fails; the two Reducers are pure views over M.
// Solve never hands a partially built Model to a Reducer.
package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"aoc2022/internal/logging"
)

// maxLine bounds a single input line; day 6 feeds one long line.
const maxLine = 1 << 20

// Result is one computed answer.
type Result struct {
	text string
}

// Uint wraps an unsigned answer.
func Uint(v uint64) Result { return Result{text: strconv.FormatUint(v, 10)} }

// Text wraps a string answer.
func Text(s string) Result { return Result{text: s} }

func (r Result) String() string { return r.text }

// Reducer computes one answer from a Model.
type Reducer[M any] func(M) (Result, error)

// Info describes a registered puzzle.
type Info struct {
	Day   int
	Title string
	Parts int
}

// Answers is the output of a full run. Part2 is empty when the puzzle
// defines only one Reducer.
type Answers struct {
	Part1 string
	Part2 string
	Parts int
}

// Lines renders answers the way the CLI prints them.
func (a Answers) Lines() []string {
	out := []string{"part 1: " + a.Part1}
	if a.Parts > 1 {
		out = append(out, "part 2: "+a.Part2)
	}
	return out
}

// Solver is a type-erased Puzzle.
type Solver interface {
	Info() Info
	Solve(r io.Reader) (Answers, error)
}

// Puzzle binds a Loader and its Reducers for one day.
type Puzzle[M any] struct {
	Day   int
	Title string
	Load  func(lines []string) (M, error)
	Part1 Reducer[M]
	Part2 Reducer[M]
}

func (p *Puzzle[M]) Info() Info {
	parts := 1
	if p.Part2 != nil {
		parts = 2
	}
	return Info{Day: p.Day, Title: p.Title, Parts: parts}
}

// Solve reads r once, builds the Model and runs the Reducers in order.
func (p *Puzzle[M]) Solve(r io.Reader) (Answers, error) {
	log := logging.New("puzzle").With("day", p.Day)

	lines, err := ReadLines(r)
	if err != nil {
		return Answers{}, err
	}
	model, err := p.Load(lines)
	if err != nil {
		return Answers{}, fmt.Errorf("day %d: %w", p.Day, err)
	}
	log.Debug("model loaded", "lines", len(lines))

	info := p.Info()
	ans := Answers{Parts: info.Parts}
	res, err := p.Part1(model)
	if err != nil {
		return Answers{}, fmt.Errorf("day %d part 1: %w", p.Day, err)
	}
	ans.Part1 = res.String()
	log.Debug("part solved", "part", 1, "answer", ans.Part1)

	if p.Part2 != nil {
		res, err = p.Part2(model)
		if err != nil {
			return Answers{}, fmt.Errorf("day %d part 2: %w", p.Day, err)
		}
		ans.Part2 = res.String()
		log.Debug("part solved", "part", 2, "answer", ans.Part2)
	}
	return ans, nil
}

// ReadLines splits r into lines without their terminators. A trailing
// newline does not produce an extra empty line.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, &IoError{Err: err}
	}
	return lines, nil
}

// SolveFile runs s over the file at path.
func SolveFile(s Solver, path string) (Answers, error) {
	logging.New("puzzle").Info("reading input", "path", path, "day", s.Info().Day)

	f, err := os.Open(path)
	if err != nil {
		return Answers{}, &IoError{Path: path, Err: err}
	}
	defer f.Close()

	ans, err := s.Solve(f)
	if err != nil {
		var ioErr *IoError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return Answers{}, err
	}
	return ans, nil
}
