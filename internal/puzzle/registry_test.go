package puzzle_test

import (
	"testing"

	"aoc2022/internal/puzzle"
)

func TestRegistry_Lookup(t *testing.T) {
	r := puzzle.NewRegistry()
	r.Register(sumPuzzle())

	for _, key := range []string{"42", "day42", "DAY42", " 42 "} {
		s, err := r.Lookup(key)
		if err != nil {
			t.Errorf("Lookup(%q): %v", key, err)
			continue
		}
		if s.Info().Day != 42 {
			t.Errorf("Lookup(%q) day = %d", key, s.Info().Day)
		}
	}
	if _, err := r.Lookup("7"); err == nil {
		t.Error("expected error for unregistered day")
	}
	if _, err := r.Lookup("dayx"); err == nil {
		t.Error("expected error for invalid key")
	}
}

func TestRegistry_AllOrdered(t *testing.T) {
	r := puzzle.NewRegistry()
	for _, d := range []int{3, 1, 2} {
		p := sumPuzzle()
		p.Day = d
		r.Register(p)
	}
	all := r.All()
	for i, s := range all {
		if s.Info().Day != i+1 {
			t.Errorf("All()[%d] day = %d", i, s.Info().Day)
		}
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := puzzle.NewRegistry()
	r.Register(sumPuzzle())
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate day")
		}
	}()
	r.Register(sumPuzzle())
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"07", 7, false},
		{"day7", 7, false},
		{"day07", 7, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := puzzle.ParseDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDay(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
