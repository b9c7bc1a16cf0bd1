package manifest

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testdataPath(name string) string {
	_, f, _, _ := runtime.Caller(0)
	dir := filepath.Dir(f)
	return filepath.Join(dir, "testdata", name)
}

func TestLoadFromPath_YAML(t *testing.T) {
	m, err := LoadFromPath(testdataPath("manifest.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	want := []Entry{
		{Day: 1, Input: "day01.txt", Part1: "24000", Part2: "45000"},
		{Day: 6, Input: "/abs/day06.txt", Part1: "5"},
	}
	if diff := cmp.Diff(want, m.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if got, want := m.InputPath(m.Entries[0]), testdataPath("day01.txt"); got != want {
		t.Errorf("InputPath = %q, want %q", got, want)
	}
	if got := m.InputPath(m.Entries[1]); got != "/abs/day06.txt" {
		t.Errorf("absolute InputPath = %q", got)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	m, err := LoadFromPath(testdataPath("manifest.json"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if len(m.Entries) != 1 || m.Entries[0].Day != 4 || m.Entries[0].Part2 != "4" {
		t.Errorf("got %+v", m.Entries)
	}
}

func TestLoad_DetectFormat(t *testing.T) {
	m, err := Load([]byte(`{"entries":[{"day":2,"input":"x"}]}`), "")
	if err != nil || m.Entries[0].Day != 2 {
		t.Errorf("json detect: %+v, %v", m, err)
	}
	m, err = Load([]byte("entries:\n  - day: 3\n    input: y\n"), ".txt")
	if err != nil || m.Entries[0].Day != 3 {
		t.Errorf("yaml detect: %+v, %v", m, err)
	}
	if m.InputPath(m.Entries[0]) != "y" {
		t.Errorf("InputPath without dir = %q", m.InputPath(m.Entries[0]))
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, data, wantErr string
	}{
		{"empty", "entries: []\n", "no entries"},
		{"bad day", "entries:\n  - day: 0\n    input: x\n", "day must be positive"},
		{"no input", "entries:\n  - day: 1\n", "input is required"},
		{"bad yaml", "entries: [\n", "parse manifest yaml"},
		{"bad json", "{", "parse manifest json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data), "")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
