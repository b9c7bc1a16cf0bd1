package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"aoc2022/internal/display"
	"aoc2022/internal/puzzle"
)

// newDayCmd builds the subcommand for one registered day.
func newDayCmd(s puzzle.Solver) *cobra.Command {
	info := s.Info()
	key := display.DayKey(info.Day)
	aliases := []string{strconv.Itoa(info.Day)}
	if short := fmt.Sprintf("day%d", info.Day); short != key {
		aliases = append(aliases, short, fmt.Sprintf("%02d", info.Day))
	}
	return &cobra.Command{
		Use:     key + " <input>",
		Aliases: aliases,
		Short:   info.Title,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveAndPrint(cmd.OutOrStdout(), s, args[0])
		},
	}
}

func newSolveCmd(reg *puzzle.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <day> <input>",
		Short: "Solve one day by number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}
			return solveAndPrint(cmd.OutOrStdout(), s, args[1])
		},
	}
}

// solveAndPrint writes nothing unless every part succeeded.
func solveAndPrint(out io.Writer, s puzzle.Solver, path string) error {
	ans, err := puzzle.SolveFile(s, path)
	if err != nil {
		return err
	}
	for _, l := range ans.Lines() {
		fmt.Fprintln(out, l)
	}
	return nil
}
