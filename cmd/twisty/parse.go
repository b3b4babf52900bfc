package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twisty/internal/algorithm"
	"github.com/vovakirdan/tui-twisty/internal/puzzle"
)

var flagParseInvert bool

var parseCmd = &cobra.Command{
	Use:   "parse <puzzle> <alg>...",
	Short: "Tokenize an algorithm",
	Long: `Split an algorithm into the move tokens of a puzzle.

Whitespace is ignored, the longest matching token wins and characters that
start no token are dropped.

Examples:
  twisty parse 3x3x3 "RUR'U'"
  twisty parse 3x3x3 "R2' U" --invert
  twisty parse square "/(3,0)/(-3,0)"`,
	Args: cobra.MinimumNArgs(2),
	Run:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&flagParseInvert, "invert", false, "Print the inverse sequence as well")
}

func runParse(_ *cobra.Command, args []string) {
	p := requirePuzzle(args[0], puzzle.DefaultOptions())
	defer p.Dispose()

	tokens := algorithm.Parse(strings.Join(args[1:], " "), p)
	fmt.Println(algorithm.Format(tokens))

	if flagParseInvert {
		inv, err := algorithm.Invert(tokens, p.Inverse)
		if err != nil {
			fail("%v", err)
		}
		fmt.Println(algorithm.Format(inv))
	}
}
