package square

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/puzzletest"
)

func TestMoves(t *testing.T) {
	moves := Moves()
	require.Len(t, moves, 2+13*13)
	require.Equal(t, []string{"/", "\\", "(-6,-6)", "(-6,-5)"}, moves[:4])
	require.Equal(t, "(6,6)", moves[len(moves)-1])
}

func TestParseTwist(t *testing.T) {
	tests := []struct {
		token string
		x, y  int
		ok    bool
	}{
		{"(1,0)", 1, 0, true},
		{"(-6,6)", -6, 6, true},
		{"(0,0)", 0, 0, true},
		{"(7,0)", 0, 0, false},
		{"(+1,0)", 0, 0, false},
		{"(1, 0)", 0, 0, false},
		{"1,0", 0, 0, false},
		{"(1,0", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			x, y, ok := ParseTwist(tt.token)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.x, x)
			require.Equal(t, tt.y, y)
		})
	}
}

func TestLayerStepPeriod(t *testing.T) {
	for _, delta := range []puzzle.State{topStep, bottomStep} {
		s := puzzle.IdentityState(Layout)
		for i := 1; i < 12; i++ {
			s = s.Apply(delta)
			require.False(t, s.IsSolved())
		}
		require.True(t, s.Apply(delta).IsSolved())
	}
	require.True(t, puzzle.IdentityState(Layout).Apply(swap).Apply(swap).IsSolved())
}

func TestTwistShiftsTopLayer(t *testing.T) {
	p := New(nil, puzzle.DefaultOptions())
	_, err := p.Rotate("(1,0)", false)
	require.NoError(t, err)

	s := p.State()
	ce := puzzle.CategoryCornerAndEdge
	require.Equal(t, 7, s.Occupant(ce, 0))
	require.Equal(t, 0, s.Occupant(ce, 1))
	require.Equal(t, 0, s.Occupant(ce, 2))
	require.Equal(t, 8, s.Occupant(ce, 12), "bottom layer untouched")
}

func TestTwistMotions(t *testing.T) {
	scene := &puzzletest.Scene{}
	p := New(scene, puzzle.DefaultOptions())

	_, err := p.Rotate("(3,-2)", false)
	require.NoError(t, err)

	top, bottom := 0, 0
	for _, r := range scene.Rotations {
		switch r.Axis {
		case topAxis:
			top++
			require.InDelta(t, -math.Pi/2, r.Delta, 1e-12)
			require.Less(t, r.Piece.Index, 8)
		case bottomAxis:
			bottom++
			require.InDelta(t, math.Pi/3, r.Delta, 1e-12)
			require.GreaterOrEqual(t, r.Piece.Index, 8)
		default:
			t.Fatalf("unexpected axis %v", r.Axis)
		}
	}
	require.Equal(t, 8, top)
	require.Equal(t, 8, bottom)
}

func TestZeroTwistIsNoop(t *testing.T) {
	scene := &puzzletest.Scene{}
	p := New(scene, puzzle.DefaultOptions())

	c, err := p.Rotate("(0,0)", true)
	require.NoError(t, err)
	require.True(t, c.Resolved())
	require.False(t, p.Busy())
	require.True(t, p.State().IsSolved())
	require.Empty(t, scene.Rotations)
}

func TestSwapFromSolved(t *testing.T) {
	scene := &puzzletest.Scene{}
	p := New(scene, puzzle.DefaultOptions())

	require.True(t, p.SwapLegal())
	_, err := p.Rotate(Swap, false)
	require.NoError(t, err)

	// Right halves: top pieces 4..7 (slots 6..11), bottom 12..15 (slots
	// 18..23), plus core 0.
	touched := scene.Touched()
	require.Len(t, touched, 9)
	require.Contains(t, touched, puzzle.PieceRef{Category: puzzle.CategoryCore, Index: 0})
	for _, r := range scene.Rotations {
		require.Equal(t, swapAxis, r.Axis)
		require.InDelta(t, -math.Pi, r.Delta, 1e-12)
	}

	s := p.State()
	ce := puzzle.CategoryCornerAndEdge
	require.Equal(t, 15, s.Occupant(ce, 6))
	require.Equal(t, 7, s.Occupant(ce, 18))
}

func TestSwapLegality(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		legal bool
	}{
		{"solved", nil, true},
		{"edge step", []string{"(1,0)"}, true},
		{"corner straddles top cut", []string{"(-1,0)"}, false},
		{"corner straddles bottom cut", []string{"(0,1)"}, false},
		{"bottom edge step", []string{"(0,-1)"}, true},
		{"both aligned", []string{"(3,3)"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(nil, puzzle.DefaultOptions())
			for _, m := range tt.moves {
				_, err := p.Rotate(m, false)
				require.NoError(t, err)
			}
			require.Equal(t, tt.legal, IsSwapLegal(p.State()))
		})
	}
}

func TestEnforcedSwapLegality(t *testing.T) {
	opts := puzzle.DefaultOptions()
	opts.EnforceSwapLegality = true
	p := New(nil, opts)

	_, err := p.Rotate("(-1,0)", false)
	require.NoError(t, err)
	before := p.State()

	_, err = p.Rotate(Swap, false)
	require.True(t, errors.Is(err, puzzle.ErrIllegalMove))
	require.True(t, p.State().Equal(before))

	unenforced := New(nil, puzzle.DefaultOptions())
	_, err = unenforced.Rotate("(-1,0)", false)
	require.NoError(t, err)
	_, err = unenforced.Rotate(Swap, false)
	require.NoError(t, err)
}

func TestInverseRoundTrip(t *testing.T) {
	for _, token := range Moves() {
		p := New(nil, puzzle.DefaultOptions())
		_, err := p.Rotate("(1,2)", false)
		require.NoError(t, err)
		start := p.State()

		inv, ok := p.Inverse(token)
		require.True(t, ok, token)
		_, err = p.Rotate(token, false)
		require.NoError(t, err)
		_, err = p.Rotate(inv, false)
		require.NoError(t, err)
		require.True(t, p.State().Equal(start), "%s %s", token, inv)
	}
}

func TestUnknownToken(t *testing.T) {
	p := New(nil, puzzle.DefaultOptions())
	for _, tok := range []string{"R", "(7,0)", "(1,0", "//"} {
		_, err := p.Rotate(tok, false)
		require.ErrorIs(t, err, puzzle.ErrUnknownMove, tok)
	}
}

func TestAnimatedSwapCommitsEagerly(t *testing.T) {
	p := New(nil, puzzle.DefaultOptions())
	c, err := p.Rotate(SwapInverse, true)
	require.NoError(t, err)
	require.False(t, p.State().IsSolved())

	puzzletest.RunUntilIdle(t, p, puzzletest.NewClock(), 120)
	require.Equal(t, puzzle.StatusCompleted, c.Status())
}

func TestMaskStateConsistency(t *testing.T) {
	v := Variant(false)
	starts := map[string]puzzle.State{
		"solved":    puzzle.IdentityState(Layout),
		"scrambled": puzzletest.Scramble(v, "(1,0)", "/", "(3,3)", "/", "(-2,1)", "/", "(0,-3)"),
		"straddled": puzzletest.Scramble(v, "(-1,0)", "(0,1)"),
	}
	for name, start := range starts {
		t.Run(name, func(t *testing.T) {
			puzzletest.CheckMaskConsistency(t, v, start)
		})
	}
}
