package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aoc2022/internal/display"
	"aoc2022/internal/format"
	"aoc2022/internal/logging"
	"aoc2022/internal/manifest"
	"aoc2022/internal/puzzle"
)

// checkResult is one manifest entry after running it.
type checkResult struct {
	entry   manifest.Entry
	title   string
	answers puzzle.Answers
	elapsed time.Duration
	err     error
}

// matched reports whether every expectation that was set holds, and
// whether any expectation was set at all.
func (r checkResult) matched() (ok, checked bool) {
	ok = true
	if r.entry.Part1 != "" {
		checked = true
		ok = ok && r.answers.Part1 == r.entry.Part1
	}
	if r.entry.Part2 != "" {
		checked = true
		ok = ok && r.answers.Part2 == r.entry.Part2
	}
	return ok, checked
}

func newCheckCmd(reg *puzzle.Registry) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Run every entry of a manifest and compare against expected answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := format.ParseMode(mode)
			if err != nil {
				return err
			}
			man, err := manifest.LoadFromPath(args[0])
			if err != nil {
				return err
			}
			results := runManifest(reg, man)

			tb := format.NewTable(m)
			tb.Header("Day", "Title", "Part 1", "Want", "Part 2", "Want", "Status", "Time")
			failed := 0
			for _, r := range results {
				ok, checked := r.matched()
				status := display.Status(ok, checked, r.err)
				if status == display.StatusError || status == display.StatusMismatch {
					failed++
				}
				part1, part2 := r.answers.Part1, r.answers.Part2
				if r.err != nil {
					part1, part2 = format.Truncate(r.err.Error(), 40), ""
				}
				tb.Row(display.DayKey(r.entry.Day), display.Title(r.entry.Day, r.title),
					part1, r.entry.Part1, part2, r.entry.Part2, status, format.FmtDuration(r.elapsed))
			}
			tb.Footer("", "", "", "", "", "PASSED", fmt.Sprintf("%d/%d", len(results)-failed, len(results)), "")
			tb.AlignRight(3, 5, 8)
			if _, err := tb.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d entries failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "format", "ascii", "Table format: ascii or markdown")
	return cmd
}

// runManifest solves entries one after another; each gets its own model.
func runManifest(reg *puzzle.Registry, man *manifest.Manifest) []checkResult {
	log := logging.New("check")
	results := make([]checkResult, 0, len(man.Entries))
	for _, e := range man.Entries {
		r := checkResult{entry: e}
		s, ok := reg.Day(e.Day)
		if !ok {
			r.err = fmt.Errorf("no puzzle registered for day %d", e.Day)
			results = append(results, r)
			continue
		}
		r.title = s.Info().Title
		start := time.Now()
		r.answers, r.err = puzzle.SolveFile(s, man.InputPath(e))
		r.elapsed = time.Since(start)
		if r.err != nil {
			log.Warn("entry failed", "day", e.Day, "error", r.err)
		}
		results = append(results, r)
	}
	return results
}
