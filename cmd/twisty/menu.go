package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twisty/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start twisty with a puzzle picker menu",
	Long: `Start twisty in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to open a puzzle and Tab to
browse the algorithm library. Leaving a puzzle returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Open puzzle
  Tab          - Algorithm library
  Q            - Quit

Examples:
  twisty menu
  twisty menu --fps 30
  twisty menu --db ./twisty.db`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(cmd)
	logger := newLogger()
	store := openStore(logger)
	rt := terminalRuntime(cfg)

	play := func(puzzleID, alg string) {
		settings := cfg
		settings.Puzzle = puzzleID
		err := tui.Run(tui.PlayOptions{
			Config:    settings,
			Runtime:   rt,
			Store:     store,
			SessionID: "local",
			Logger:    logger,
			Algorithm: alg,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		}
		cfg.Puzzle = puzzleID
	}

	for {
		menuResult, err := tui.RunMenu(store, rt, cfg.Puzzle)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rt = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsLibrary {
			lib, libErr := tui.RunLibrary(store, rt.ScreenW, rt.ScreenH)
			if libErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", libErr)
			}
			if lib.Chosen != nil {
				play(lib.Chosen.PuzzleID, lib.Chosen.Moves)
				continue
			}
			if lib.Back {
				continue
			}
			break
		}

		if menuResult.PuzzleID == "" {
			break
		}
		play(menuResult.PuzzleID, "")
	}

	if store != nil {
		store.Close()
	}
}
