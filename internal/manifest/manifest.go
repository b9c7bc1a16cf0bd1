// Package manifest describes a batch of puzzle runs with optional expected
// answers, loaded from YAML or JSON.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Entry is one run: a day, its input file and the answers it should give.
// Empty expectations are not checked.
type Entry struct {
	Day   int    `json:"day" yaml:"day"`
	Input string `json:"input" yaml:"input"` // relative to the manifest file
	Part1 string `json:"part1,omitempty" yaml:"part1,omitempty"`
	Part2 string `json:"part2,omitempty" yaml:"part2,omitempty"`
}

// Manifest is the list of runs.
type Manifest struct {
	Entries []Entry `json:"entries" yaml:"entries"`

	dir string
}

// Validate checks every entry.
func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return errors.New("manifest has no entries")
	}
	for i, e := range m.Entries {
		if e.Day <= 0 {
			return fmt.Errorf("entry %d: day must be positive, got %d", i+1, e.Day)
		}
		if e.Input == "" {
			return fmt.Errorf("entry %d: input is required", i+1)
		}
	}
	return nil
}

// InputPath resolves e.Input against the manifest's directory.
func (m *Manifest) InputPath(e Entry) string {
	if filepath.IsAbs(e.Input) || m.dir == "" {
		return e.Input
	}
	return filepath.Join(m.dir, e.Input)
}
