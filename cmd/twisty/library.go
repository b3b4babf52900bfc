package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twisty/internal/algorithm"
	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/registry"
	"github.com/vovakirdan/tui-twisty/internal/storage"
)

var flagLibraryRuns int

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage saved algorithms",
	Long: `Save, list and delete named algorithms, and show recorded runs.

Examples:
  twisty library save 3x3x3 sexy "RUR'U'"
  twisty library list
  twisty library list skewb
  twisty library delete 3x3x3 sexy
  twisty library runs 3x3x3`,
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <puzzle> <name> <alg>...",
	Short: "Save an algorithm under a name",
	Args:  cobra.MinimumNArgs(3),
	Run:   runLibrarySave,
}

var libraryListCmd = &cobra.Command{
	Use:   "list [puzzle]",
	Short: "List saved algorithms",
	Args:  cobra.MaximumNArgs(1),
	Run:   runLibraryList,
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <puzzle> <name>",
	Short: "Delete a saved algorithm",
	Args:  cobra.ExactArgs(2),
	Run:   runLibraryDelete,
}

var libraryRunsCmd = &cobra.Command{
	Use:   "runs [puzzle]",
	Short: "Show recently recorded runs",
	Args:  cobra.MaximumNArgs(1),
	Run:   runLibraryRuns,
}

func init() {
	libraryRunsCmd.Flags().IntVar(&flagLibraryRuns, "limit", 10, "Number of runs to show")

	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	libraryCmd.AddCommand(libraryRunsCmd)
}

func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening library: %v", err)
	}
	return store
}

func runLibrarySave(_ *cobra.Command, args []string) {
	p := requirePuzzle(args[0], puzzle.DefaultOptions())
	defer p.Dispose()

	tokens := algorithm.Parse(strings.Join(args[2:], " "), p)
	if len(tokens) == 0 {
		fail("no moves of %s in %q", p.ID(), strings.Join(args[2:], " "))
	}

	store := mustOpenStore()
	defer store.Close()

	a, err := store.SaveAlgorithm(p.ID(), args[1], algorithm.Format(tokens))
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Saved %s/%s: %s\n", a.PuzzleID, a.Name, a.Moves)
}

func runLibraryList(_ *cobra.Command, args []string) {
	puzzleID := ""
	if len(args) == 1 {
		puzzleID = args[0]
		if !registry.Exists(puzzleID) {
			fail("unknown puzzle %q", puzzleID)
		}
	}

	store := mustOpenStore()
	defer store.Close()

	algs, err := store.Algorithms(puzzleID)
	if err != nil {
		fail("%v", err)
	}
	if len(algs) == 0 {
		fmt.Println("No saved algorithms.")
		return
	}

	fmt.Printf("  %-8s  %-16s  %s\n", "Puzzle", "Name", "Moves")
	fmt.Printf("  %-8s  %-16s  %s\n", "------", "----", "-----")
	for _, a := range algs {
		fmt.Printf("  %-8s  %-16s  %s\n", a.PuzzleID, a.Name, a.Moves)
	}
}

func runLibraryDelete(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	deleted, err := store.DeleteAlgorithm(args[0], args[1])
	if err != nil {
		fail("%v", err)
	}
	if !deleted {
		fail("no algorithm %q for %s", args[1], args[0])
	}
	fmt.Printf("Deleted %s/%s\n", args[0], args[1])
}

func runLibraryRuns(_ *cobra.Command, args []string) {
	puzzleID := ""
	if len(args) == 1 {
		puzzleID = args[0]
	}

	store := mustOpenStore()
	defer store.Close()

	runs, err := store.RecentRuns(puzzleID, flagLibraryRuns)
	if err != nil {
		fail("%v", err)
	}

	if puzzleID != "" {
		stats, err := store.GetPuzzleStats(puzzleID)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("%s: %d runs, %d moves, %.1f moves per run\n\n", puzzleID, stats.Runs, stats.TotalMoves, stats.AvgMoves)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-5s  %s\n", "Date", "Puzzle", "Moves", "Sequence")
	fmt.Printf("  %-16s  %-8s  %-5s  %s\n", "----", "------", "-----", "--------")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %-5d  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.PuzzleID, r.MoveCount, r.Moves)
	}
}
