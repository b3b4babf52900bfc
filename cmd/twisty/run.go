package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twisty/internal/algorithm"
	"github.com/vovakirdan/tui-twisty/internal/player"
	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/storage"
)

var (
	flagRunAnimate bool
	flagRunRecord  bool
)

var runCmd = &cobra.Command{
	Use:   "run <puzzle> <alg>...",
	Short: "Apply an algorithm without a UI",
	Long: `Apply an algorithm to a solved puzzle and print the resulting state.

With --animate every move runs through the animation scheduler at the
configured speed and tick rate, one move after the other.

Examples:
  twisty run 3x3x3 "R U R' U'"
  twisty run skewb "R L' R' L" --animate
  twisty run square "/ (3,0) /" --record`,
	Args: cobra.MinimumNArgs(2),
	Run:  runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagRunAnimate, "animate", false, "Animate moves in real time")
	runCmd.Flags().BoolVar(&flagRunRecord, "record", false, "Store the run in the library database")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg := loadSettings(cmd)
	logger := newLogger()

	opts := cfg.Options()
	opts.Logger = logger
	pl, err := player.New(args[0], puzzle.NopScene{}, opts)
	if err != nil {
		fail("%v", err)
	}
	defer pl.Puzzle().Dispose()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	tokens, err := pl.Play(strings.Join(args[1:], " "), flagRunAnimate)
	if err != nil {
		fail("%v", err)
	}
	if len(tokens) == 0 {
		fail("no moves of %s in %q", args[0], strings.Join(args[1:], " "))
	}

	if err := drive(ctx, pl, time.Second/time.Duration(cfg.FPS), logger.Info); err != nil {
		fail("%v", err)
	}

	p := pl.Puzzle()
	fmt.Printf("puzzle:  %s\n", p.Title())
	fmt.Printf("moves:   %s\n", algorithm.Format(pl.History()))
	fmt.Printf("state:   %s\n", p.State())
	fmt.Printf("solved:  %v\n", p.State().IsSolved())

	if flagRunRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fail("%v", err)
		}
		defer store.Close()
		history := pl.History()
		if _, err := store.RecordRun(storage.Run{
			SessionID: "local",
			PuzzleID:  p.ID(),
			Moves:     algorithm.Format(history),
			MoveCount: len(history),
			Duration:  time.Since(started),
		}); err != nil {
			fail("%v", err)
		}
	}
}

// drive ticks the player until its algorithm is done, reporting each move
// once it has been issued.
func drive(ctx context.Context, pl *player.Player, frame time.Duration, report func(msg any, keyvals ...any)) error {
	reported := 0
	flush := func() {
		history := pl.History()
		for ; reported < len(history); reported++ {
			report("move", "n", reported+1, "token", history[reported])
		}
	}
	flush()
	if !pl.Playing() {
		return nil
	}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for pl.Playing() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			pl.Tick(now)
			flush()
		}
	}
	return nil
}
