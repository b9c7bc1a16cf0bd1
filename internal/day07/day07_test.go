package day07_test

import (
	"errors"
	"strings"
	"testing"

	"aoc2022/internal/day07"
	"aoc2022/internal/fstree"
	"aoc2022/internal/puzzle"
)

const example = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func load(t *testing.T, in string) *fstree.Tree {
	t.Helper()
	lines, _ := puzzle.ReadLines(strings.NewReader(in))
	tr, err := day07.Load(lines)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

func TestSolve_Example(t *testing.T) {
	ans, err := day07.Puzzle.Solve(strings.NewReader(example))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if ans.Part1 != "95437" || ans.Part2 != "24933642" {
		t.Errorf("got %s / %s, want 95437 / 24933642", ans.Part1, ans.Part2)
	}
}

func TestLoad_Sizes(t *testing.T) {
	tr := load(t, example)
	want := map[string]uint64{"/": 48381165, "/a": 94853, "/a/e": 584, "/d": 24933642}
	for _, d := range tr.Dirs() {
		path := tr.Path(d)
		if got := tr.TotalSize(d); got != want[path] {
			t.Errorf("%s = %d, want %d", path, got, want[path])
		}
	}
}

func TestLoad_RepeatedListing(t *testing.T) {
	tr := load(t, example+"$ cd /\n$ ls\ndir a\n14848514 b.txt\n8504156 c.dat\ndir d\n")
	if got := tr.TotalSize(fstree.Root); got != 48381165 {
		t.Errorf("root = %d after repeated ls", got)
	}
}

func TestLoad_EmptyDirIsDir(t *testing.T) {
	tr := load(t, "$ cd /\n$ ls\ndir empty\n")
	ans, err := day07.Part1(tr)
	if err != nil {
		t.Fatal(err)
	}
	if ans.String() != "0" {
		t.Errorf("part 1 = %s", ans)
	}
	if len(tr.Dirs()) != 2 {
		t.Errorf("Dirs = %d, want 2", len(tr.Dirs()))
	}
}

func TestPart2_NothingToFree(t *testing.T) {
	tr := load(t, "$ ls\n100 a\n")
	ans, err := day07.Part2(tr)
	if err != nil || ans.String() != "0" {
		t.Errorf("part 2 = %s, %v", ans, err)
	}
}

func TestPart2_OverCapacity(t *testing.T) {
	tr := load(t, "$ ls\n70000001 a\n")
	var le *puzzle.LogicError
	if _, err := day07.Part2(tr); !errors.As(err, &le) {
		t.Errorf("want LogicError, got %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		logic bool
	}{
		{"unknown dir", "$ cd /\n$ cd nowhere\n", true},
		{"cd above root", "$ cd ..\n", true},
		{"cd into file", "$ ls\n10 f\n$ cd f\n", true},
		{"unknown command", "$ rm -rf\n", false},
		{"output without ls", "dir a\n", false},
		{"bad entry", "$ ls\nfile a b\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, _ := puzzle.ReadLines(strings.NewReader(tt.in))
			_, err := day07.Load(lines)
			var le *puzzle.LogicError
			var pe *puzzle.ParseError
			switch {
			case tt.logic && !errors.As(err, &le):
				t.Errorf("want LogicError, got %v", err)
			case !tt.logic && !errors.As(err, &pe):
				t.Errorf("want ParseError, got %v", err)
			}
		})
	}
}
