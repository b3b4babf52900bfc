package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
)

var flagMovesInverse bool

var movesCmd = &cobra.Command{
	Use:   "moves <puzzle>",
	Short: "List the move tokens of a puzzle",
	Long: `Print every move token a puzzle accepts, in registry order.

Examples:
  twisty moves 3x3x3
  twisty moves square --inverse`,
	Args: cobra.ExactArgs(1),
	Run:  runMoves,
}

func init() {
	movesCmd.Flags().BoolVar(&flagMovesInverse, "inverse", false, "Print each token with its inverse")
}

func runMoves(_ *cobra.Command, args []string) {
	p := requirePuzzle(args[0], puzzle.DefaultOptions())
	defer p.Dispose()

	moves := p.Moves()
	fmt.Printf("%s: %d moves\n\n", p.Title(), len(moves))

	if !flagMovesInverse {
		const perLine = 12
		for i := 0; i < len(moves); i += perLine {
			fmt.Println("  " + strings.Join(moves[i:min(i+perLine, len(moves))], " "))
		}
		return
	}

	for _, m := range moves {
		inv, _ := p.Inverse(m)
		fmt.Printf("  %-8s %s\n", m, inv)
	}
}
