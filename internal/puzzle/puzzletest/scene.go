// Package puzzletest provides helpers for testing puzzle variants.
package puzzletest

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
)

// Rotation is one recorded Scene.RotatePiece call.
type Rotation struct {
	Piece puzzle.PieceRef
	Axis  puzzle.Vec3
	Delta float64
}

// Scene records every call it receives.
type Scene struct {
	Rotations []Rotation
	Resets    int
}

func (s *Scene) RotatePiece(cat puzzle.Category, piece int, axis puzzle.Vec3, delta float64) {
	s.Rotations = append(s.Rotations, Rotation{
		Piece: puzzle.PieceRef{Category: cat, Index: piece},
		Axis:  axis,
		Delta: delta,
	})
}

func (s *Scene) ResetPieces() {
	s.Resets++
}

// Total returns the summed rotation applied to a piece.
func (s *Scene) Total(cat puzzle.Category, piece int) float64 {
	sum := 0.0
	for _, r := range s.Rotations {
		if r.Piece.Category == cat && r.Piece.Index == piece {
			sum += r.Delta
		}
	}
	return sum
}

// Touched returns the distinct pieces rotated so far, in first-seen order.
func (s *Scene) Touched() []puzzle.PieceRef {
	seen := map[puzzle.PieceRef]bool{}
	var out []puzzle.PieceRef
	for _, r := range s.Rotations {
		if !seen[r.Piece] {
			seen[r.Piece] = true
			out = append(out, r.Piece)
		}
	}
	return out
}

// Clock hands out monotonically increasing synthetic frame times.
type Clock struct {
	Now   time.Time
	Frame time.Duration
}

// NewClock starts a 60 fps clock at an arbitrary fixed instant.
func NewClock() *Clock {
	return &Clock{Now: time.Unix(1_700_000_000, 0), Frame: time.Second / 60}
}

// Next advances the clock by one frame and returns the new time.
func (c *Clock) Next() time.Time {
	c.Now = c.Now.Add(c.Frame)
	return c.Now
}

// RunUntilIdle ticks p until it is no longer busy, failing after limit
// frames.
func RunUntilIdle(t testing.TB, p puzzle.Puzzle, clock *Clock, limit int) int {
	t.Helper()
	frames := 0
	for p.Busy() {
		if frames >= limit {
			t.Fatalf("puzzle still busy after %d frames", limit)
		}
		p.Tick(clock.Next())
		frames++
	}
	return frames
}

// Near reports whether a and b differ by less than 1e-9.
func Near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// Scramble applies tokens to the solved state of v, skipping any move the
// planner refuses.
func Scramble(v puzzle.Variant, tokens ...string) puzzle.State {
	s := puzzle.IdentityState(v.Layout)
	for _, tok := range tokens {
		if plan, err := v.Planner.Plan(s, tok); err == nil {
			s = plan.Next
		}
	}
	return s
}

// Moved returns the distinct pieces a plan rotates.
func Moved(p puzzle.Plan) map[puzzle.PieceRef]bool {
	out := map[puzzle.PieceRef]bool{}
	for _, m := range p.Motions {
		for _, ref := range m.Pieces {
			out[ref] = true
		}
	}
	return out
}

// CheckMaskConsistency plans every token of v from start, then plans its
// inverse from the resulting state, and fails unless both rotate the same
// physical pieces. Tokens the planner refuses from start are skipped.
func CheckMaskConsistency(t *testing.T, v puzzle.Variant, start puzzle.State) {
	t.Helper()
	for _, tok := range v.Moves {
		plan, err := v.Planner.Plan(start, tok)
		if err != nil {
			continue
		}
		inv, ok := v.Inverse(tok)
		if !ok {
			t.Errorf("%s: no inverse", tok)
			continue
		}
		back, err := v.Planner.Plan(plan.Next, inv)
		if err != nil {
			t.Errorf("%s: inverse %s refused: %v", tok, inv, err)
			continue
		}
		if !back.Next.Equal(start) {
			t.Errorf("%s %s does not return to the start state", tok, inv)
		}

		before, after := Moved(plan), Moved(back)
		if len(before) != len(after) {
			t.Errorf("%s moved %d pieces, inverse %s moved %d", tok, len(before), inv, len(after))
			continue
		}
		for ref := range before {
			if !after[ref] {
				t.Errorf("%s moved %v but inverse %s did not", tok, ref, inv)
			}
		}
	}
}
