// Package display provides human-readable names for day numbers and run
// outcomes.
//
// Rule: numbers are for machines, words are for humans. Use these in CLI
// output and tables; keep raw day numbers for lookups and manifests.
package display

import "fmt"

// DayKey returns the subcommand name for a day, e.g. "day07".
func DayKey(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// Title returns the registered title, or "Day N" for a day nobody
// registered.
func Title(day int, registered string) string {
	if registered != "" {
		return registered
	}
	return fmt.Sprintf("Day %d", day)
}

// Status labels for checked runs.
const (
	StatusOK       = "ok"
	StatusUnset    = "-"
	StatusMismatch = "MISMATCH"
	StatusError    = "ERROR"
)

// Status maps a run outcome to its label. An error wins over a mismatch.
func Status(matched bool, checked bool, err error) string {
	switch {
	case err != nil:
		return StatusError
	case !checked:
		return StatusUnset
	case matched:
		return StatusOK
	}
	return StatusMismatch
}
