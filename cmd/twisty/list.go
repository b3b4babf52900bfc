package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long:  `Shows a list of all puzzles registered in twisty.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	puzzles := registry.List()

	if len(puzzles) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range puzzles {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Moves")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, p := range puzzles {
		inst := requirePuzzle(p.ID, puzzle.DefaultOptions())
		fmt.Printf("  %-*s  %-12s  %d\n", maxIDLen, p.ID, p.Title, len(inst.Moves()))
		inst.Dispose()
	}

	fmt.Println()
	fmt.Println("Run 'twisty play <id>' to play a puzzle.")
}
