// Package player plays algorithms on a puzzle one move at a time.
//
// Each move waits for the previous one to finish animating. The host
// drives the player with Tick, which also ticks the puzzle.
package player

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-twisty/internal/algorithm"
	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/registry"
	"github.com/vovakirdan/tui-twisty/internal/tween"
)

// Errors returned by the player.
var (
	ErrPlaying     = errors.New("player: algorithm in progress")
	ErrNothingUndo = errors.New("player: nothing to undo")
)

// Loader is implemented by scenes that build their piece objects from the
// puzzle's piece descriptions.
type Loader interface {
	Load(pieces []puzzle.PieceInfo)
}

// Player sequences moves on one puzzle at a time.
type Player struct {
	puzzle puzzle.Puzzle
	scene  puzzle.Scene
	opts   puzzle.Options
	logger *log.Logger

	algorithm []string
	position  int
	animated  bool
	playing   bool
	current   *puzzle.Completion

	history []string
}

// New creates a player for the registered puzzle id.
func New(id string, scene puzzle.Scene, opts puzzle.Options) (*Player, error) {
	pl := &Player{scene: scene, opts: opts, logger: opts.Logger}
	if err := pl.SetPuzzle(id); err != nil {
		return nil, err
	}
	return pl, nil
}

// Puzzle returns the current puzzle.
func (pl *Player) Puzzle() puzzle.Puzzle {
	return pl.puzzle
}

// SetPuzzle disposes the current puzzle and replaces it with a new solved
// instance of id, keeping speed and easing.
func (pl *Player) SetPuzzle(id string) error {
	p, err := registry.Create(id, pl.scene, pl.opts)
	if err != nil {
		return err
	}
	if pl.puzzle != nil {
		pl.puzzle.Dispose()
	}
	pl.puzzle = p
	if l, ok := pl.scene.(Loader); ok {
		l.Load(p.Pieces())
	}

	pl.algorithm = nil
	pl.position = 0
	pl.playing = false
	pl.current = nil
	pl.history = nil
	return nil
}

// SetSpeed changes the animation duration of later moves.
func (pl *Player) SetSpeed(d time.Duration) {
	pl.opts.Speed = d
	pl.puzzle.SetSpeed(d)
}

// SetEasing changes the easing of later moves.
func (pl *Player) SetEasing(f tween.EasingFunc) {
	pl.opts.Easing = f
	pl.puzzle.SetEasing(f)
}

// Play parses alg and starts executing it from the first token.
// Unanimated playback finishes before Play returns unless a move is still
// animating, in which case the algorithm starts on a later Tick.
func (pl *Player) Play(alg string, animated bool) ([]string, error) {
	if pl.playing {
		return nil, ErrPlaying
	}
	pl.algorithm = algorithm.Parse(alg, pl.puzzle)
	pl.position = 0
	pl.animated = animated
	pl.playing = true
	pl.debug("play", "tokens", len(pl.algorithm), "animated", animated)

	pl.advance()
	return append([]string(nil), pl.algorithm...), nil
}

// advance issues moves until one is still animating or the algorithm ends.
// A move the puzzle rejects as busy is retried on the next Tick.
func (pl *Player) advance() {
	for pl.position < len(pl.algorithm) {
		if pl.puzzle.Busy() {
			return
		}
		tok := pl.algorithm[pl.position]

		c, err := pl.puzzle.Rotate(tok, pl.animated)
		if err != nil {
			pl.debug("skipping move", "token", tok, "err", err)
			pl.position++
			continue
		}
		if c.Rejected() {
			pl.debug("move rejected, waiting", "token", tok)
			return
		}
		pl.position++
		pl.history = append(pl.history, tok)
		if !c.Resolved() {
			pl.current = c
			return
		}
	}
	pl.current = nil
	pl.playing = false
}

// Tick advances the puzzle animation and starts the next move when the
// previous one has finished.
func (pl *Player) Tick(now time.Time) {
	pl.puzzle.Tick(now)
	if !pl.playing {
		return
	}
	if pl.current != nil {
		if !pl.current.Resolved() {
			return
		}
		pl.current = nil
	}
	pl.advance()
}

// Rotate applies a single move outside of algorithm playback.
func (pl *Player) Rotate(token string, animated bool) (*puzzle.Completion, error) {
	if pl.playing {
		return nil, ErrPlaying
	}
	c, err := pl.puzzle.Rotate(token, animated)
	if err != nil {
		return nil, err
	}
	if !c.Rejected() {
		pl.history = append(pl.history, token)
	}
	return c, nil
}

// Undo applies the inverse of the most recent move.
func (pl *Player) Undo(animated bool) (*puzzle.Completion, error) {
	if pl.playing {
		return nil, ErrPlaying
	}
	if len(pl.history) == 0 {
		return nil, ErrNothingUndo
	}
	last := pl.history[len(pl.history)-1]
	inv, ok := pl.puzzle.Inverse(last)
	if !ok {
		return nil, fmt.Errorf("player: no inverse for %q", last)
	}
	c, err := pl.puzzle.Rotate(inv, animated)
	if err != nil {
		return nil, err
	}
	if !c.Rejected() {
		pl.history = pl.history[:len(pl.history)-1]
	}
	return c, nil
}

// Reset solves the puzzle and clears history. Ignored while playing or
// while a move is animating.
func (pl *Player) Reset() {
	if pl.playing || pl.puzzle.Busy() {
		return
	}
	pl.puzzle.Reset()
	pl.history = nil
	pl.algorithm = nil
	pl.position = 0
}

// Playing reports whether an algorithm is in progress.
func (pl *Player) Playing() bool {
	return pl.playing
}

// Position returns how many tokens of the current algorithm have been
// issued and the algorithm length.
func (pl *Player) Position() (int, int) {
	return pl.position, len(pl.algorithm)
}

// History returns the moves applied since the last reset.
func (pl *Player) History() []string {
	return append([]string(nil), pl.history...)
}

func (pl *Player) debug(msg string, keyvals ...any) {
	if pl.logger != nil {
		pl.logger.Debug(msg, keyvals...)
	}
}
