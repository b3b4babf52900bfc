// Package puzzle models twisty puzzles as tuples of permutations and drives
// the rotations that animate a move.
//
// A variant (cube, skewb, square) supplies a layout, a Planner that turns
// tokens into resolved motions, and piece descriptions. The Driver in this
// package turns that into a Puzzle: it owns the current state, rejects
// moves while one is in flight, and reports incremental rotations to a
// Scene as the host ticks it.
package puzzle

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-twisty/internal/tween"
)

// Puzzle is the interface every variant exposes to hosts.
type Puzzle interface {
	// ID returns the registry id (e.g. "3x3x3", "skewb").
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Rotate applies a move. While another move is animating it returns an
	// already rejected Completion and changes nothing. Unknown tokens
	// return ErrUnknownMove.
	Rotate(token string, animated bool) (*Completion, error)

	// Tick advances the in-flight animation to now.
	Tick(now time.Time)

	// Reset restores the solved state. Ignored while busy.
	Reset()

	// Moves returns every accepted token.
	Moves() []string

	// Inverse returns the token undoing token.
	Inverse(token string) (string, bool)

	// SetSpeed sets the animation duration of subsequent moves.
	SetSpeed(d time.Duration)

	// SetEasing sets the easing of subsequent moves.
	SetEasing(f tween.EasingFunc)

	// State returns the current combinatorial state.
	State() State

	// Busy reports whether a move is animating.
	Busy() bool

	// Pieces describes every physical piece for renderers.
	Pieces() []PieceInfo

	// NormalizesPrimes reports whether algorithm text for this puzzle
	// should have "2'" and "3'" rewritten to "'2" and "'3" before parsing.
	NormalizesPrimes() bool

	// Dispose releases the puzzle. Later rotations return ErrDisposed.
	Dispose()
}

// DefaultSpeed is the default animation duration of one move.
const DefaultSpeed = 500 * time.Millisecond

// Options configure a puzzle instance.
type Options struct {
	Speed  time.Duration
	Easing tween.EasingFunc
	Logger *log.Logger

	// EnforceSwapLegality makes the square reject a swap whose cut line
	// crosses a corner.
	EnforceSwapLegality bool
}

// DefaultOptions returns the default speed and easing with no logger.
func DefaultOptions() Options {
	return Options{
		Speed:  DefaultSpeed,
		Easing: tween.EaseInOutQuad,
	}
}

// Variant describes a puzzle kind for the Driver.
type Variant struct {
	ID               string
	Title            string
	Layout           Layout
	Planner          Planner
	Moves            []string
	Inverse          func(token string) (string, bool)
	NormalizesPrimes bool
	Pieces           []PieceInfo
}
