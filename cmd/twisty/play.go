package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twisty/internal/platform/tui"
	"github.com/vovakirdan/tui-twisty/internal/registry"
)

var flagPlayAlg string

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Play a puzzle",
	Long: `Open a puzzle in the terminal. Without an argument the configured
puzzle is opened.

Controls:
  Letters      - Turn (R, U, F, r, M, x ...); alt+letter turns the prime
  / \ a d j l  - Square swap and layer twists
  Backspace    - Undo
  : or Enter   - Type an algorithm (@name plays a saved one, >name saves)
  Arrows       - Orbit and tilt the view
  Ctrl+O       - Also show the puzzle from behind
  Tab          - Cycle animation speed
  Ctrl+N       - Next puzzle
  Ctrl+R       - Reset
  Esc/Ctrl+C   - Quit

Examples:
  twisty play
  twisty play skewb
  twisty play 3x3x3 --alg "R U R' U'"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayAlg, "alg", "", "Algorithm to play when the puzzle opens")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadSettings(cmd)
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fail("unknown puzzle %q", args[0])
		}
		cfg.Puzzle = args[0]
	}

	logger := newLogger()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	err := tui.Run(tui.PlayOptions{
		Config:    cfg,
		Runtime:   terminalRuntime(cfg),
		Store:     store,
		SessionID: "local",
		Logger:    logger,
		Algorithm: flagPlayAlg,
	})
	if err != nil {
		fail("running puzzle: %v", err)
	}
}
