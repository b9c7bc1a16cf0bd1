package main

import (
	"github.com/spf13/cobra"

	"aoc2022/internal/logging"
	"aoc2022/internal/solvers"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	reg := solvers.Registry()

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Text puzzle solvers",
		Long:  "aoc reads a puzzle input file, builds its model and prints the\nanswers to part 1 and part 2.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			format, err := logging.ParseFormat(flags.logFormat)
			if err != nil {
				return err
			}
			logging.Init(level, format, cmd.ErrOrStderr())
			cmd.SilenceUsage = true
			return nil
		},
	}
	root.Version = version

	f := root.PersistentFlags()
	f.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")

	for _, s := range reg.All() {
		root.AddCommand(newDayCmd(s))
	}
	root.AddCommand(newSolveCmd(reg))
	root.AddCommand(newListCmd(reg))
	root.AddCommand(newCheckCmd(reg))
	return root
}
