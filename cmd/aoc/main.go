// aoc solves the 2022 text puzzles, one subcommand per day.
//
// Usage:
//
//	aoc day01 <input>            # also: aoc 1 <input>, aoc day1 <input>
//	aoc solve <day> <input>
//	aoc list [--format ascii|markdown]
//	aoc check <manifest.yaml> [--format ascii|markdown]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
