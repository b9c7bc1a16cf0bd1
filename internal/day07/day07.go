// Package day07 solves No Space Left On Device: rebuild a directory tree
// from a terminal transcript and reason about directory sizes.
package day07

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"aoc2022/internal/fstree"
	"aoc2022/internal/puzzle"
)

const (
	SmallDirLimit = 100000
	DiskCapacity  = 70000000
	SpaceNeeded   = 30000000
)

var entryRE = regexp.MustCompile(`^(\d+|dir) (\S+)$`)

// Puzzle is the registered solver.
var Puzzle = &puzzle.Puzzle[*fstree.Tree]{
	Day:   7,
	Title: "No Space Left On Device",
	Load:  Load,
	Part1: Part1,
	Part2: Part2,
}

// Load replays the transcript. "$ cd" moves the working directory, "$ ls"
// opens a listing whose "dir <name>" and "<size> <name>" lines become
// children of the working directory.
func Load(lines []string) (*fstree.Tree, error) {
	t := fstree.New()
	cwd := fstree.Root
	listing := false
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if cmd, ok := strings.CutPrefix(l, "$ "); ok {
			listing = false
			switch {
			case cmd == "ls":
				listing = true
			case strings.HasPrefix(cmd, "cd "):
				next, err := t.Child(cwd, strings.TrimSpace(cmd[3:]))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", i+1, err)
				}
				if t.Node(next).Kind != fstree.Dir {
					return nil, fmt.Errorf("line %d: %w", i+1, puzzle.Logicf("cd", "%q is a file", t.Path(next)))
				}
				cwd = next
			default:
				return nil, puzzle.Errorf(i, l, "unknown command")
			}
			continue
		}
		if !listing {
			return nil, puzzle.Errorf(i, l, "output outside of an ls listing")
		}
		sub := entryRE.FindStringSubmatch(l)
		if sub == nil {
			return nil, puzzle.Errorf(i, l, "expected \"dir <name>\" or \"<size> <name>\"")
		}
		kind, size := fstree.Dir, uint64(0)
		if sub[1] != "dir" {
			n, err := strconv.ParseUint(sub[1], 10, 64)
			if err != nil {
				return nil, puzzle.Errorf(i, l, "%v", err)
			}
			kind, size = fstree.File, n
		}
		if _, err := t.AddChild(cwd, sub[2], kind, size); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	t.TotalSize(fstree.Root)
	return t, nil
}

// Part1 sums the totals of directories no larger than SmallDirLimit.
func Part1(t *fstree.Tree) (puzzle.Result, error) {
	var sum uint64
	for _, d := range t.Dirs() {
		if s := t.TotalSize(d); s <= SmallDirLimit {
			sum += s
		}
	}
	return puzzle.Uint(sum), nil
}

// Part2 returns the total of the smallest directory whose deletion leaves
// SpaceNeeded free. It is 0 when enough space is already free.
func Part2(t *fstree.Tree) (puzzle.Result, error) {
	used := t.TotalSize(fstree.Root)
	if used > DiskCapacity {
		return puzzle.Result{}, puzzle.Logicf("free space", "tree uses %d, more than the disk capacity %d", used, DiskCapacity)
	}
	free := DiskCapacity - used
	if free >= SpaceNeeded {
		return puzzle.Uint(0), nil
	}
	need := SpaceNeeded - free
	best := used
	for _, d := range t.Dirs() {
		if s := t.TotalSize(d); s >= need && s < best {
			best = s
		}
	}
	return puzzle.Uint(best), nil
}
