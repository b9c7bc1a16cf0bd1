package main

import (
	"github.com/spf13/cobra"

	"aoc2022/internal/display"
	"aoc2022/internal/format"
	"aoc2022/internal/puzzle"
)

func newListCmd(reg *puzzle.Registry) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := format.ParseMode(mode)
			if err != nil {
				return err
			}
			tb := format.NewTable(m)
			tb.Header("Command", "Day", "Title", "Parts")
			for _, s := range reg.All() {
				info := s.Info()
				tb.Row(display.DayKey(info.Day), info.Day, info.Title, info.Parts)
			}
			tb.AlignRight(2)
			_, err = tb.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVar(&mode, "format", "ascii", "Table format: ascii or markdown")
	return cmd
}
