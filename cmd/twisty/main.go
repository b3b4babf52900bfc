// twisty is a terminal player for twisty puzzles: a 3x3x3 cube, a skewb
// and a square.
//
// Usage:
//
//	twisty list                       - List available puzzles
//	twisty moves <puzzle>             - List the move tokens of a puzzle
//	twisty parse <puzzle> <alg>       - Tokenize an algorithm
//	twisty run <puzzle> <alg>         - Apply an algorithm headlessly
//	twisty play [puzzle]              - Play a puzzle in the terminal
//	twisty menu                       - Start menu to pick puzzles interactively
//	twisty library save|list|delete   - Manage saved algorithms (runs: history)
//	twisty serve                      - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default from config: 60)
//	--db <path>      - Set database path (default: ~/.twisty/twisty.db)
//	--config <path>  - Use a specific config file
//	--verbose        - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-twisty/internal/config"
	"github.com/vovakirdan/tui-twisty/internal/core"
	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/registry"
	"github.com/vovakirdan/tui-twisty/internal/storage"

	// Import puzzles to register them
	_ "github.com/vovakirdan/tui-twisty/internal/puzzle/cube"
	_ "github.com/vovakirdan/tui-twisty/internal/puzzle/skewb"
	_ "github.com/vovakirdan/tui-twisty/internal/puzzle/square"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twisty",
	Short: "Twisty - turn puzzles in your terminal",
	Long: `Twisty plays and animates twisty puzzles in the terminal.

Available commands:
  list     - Show all available puzzles
  moves    - Show the move tokens of a puzzle
  parse    - Tokenize an algorithm
  run      - Apply an algorithm without a UI
  play     - Play a specific puzzle directly
  menu     - Interactive puzzle picker menu
  library  - Save, list and delete named algorithms
  serve    - Start SSH server for remote play

Examples:
  twisty list
  twisty parse 3x3x3 "RUR'U'"
  twisty run skewb "R L' R' L" --animate
  twisty play square --alg "/ (3,0) /"
  twisty serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twisty/twisty.db", "Path to algorithm library database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = flagFPS
	}
	if err := cfg.Validate(registry.Exists); err != nil {
		fail("%v", err)
	}
	return cfg
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "twisty",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// terminalRuntime sizes the runtime config to the terminal.
func terminalRuntime(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = cfg.FPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}

// openStore opens the library, warning and returning nil on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open algorithm library", "error", err)
		return nil
	}
	return store
}

// requirePuzzle creates a scene-less instance of a registered puzzle.
func requirePuzzle(id string, opts puzzle.Options) puzzle.Puzzle {
	p, err := registry.Create(id, puzzle.NopScene{}, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'twisty list' to see available puzzles.")
		os.Exit(1)
	}
	return p
}
