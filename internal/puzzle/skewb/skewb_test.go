package skewb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/puzzletest"
)

func TestMoveCount(t *testing.T) {
	require.Equal(t, 8*4+3*6, Table().Len())
}

func TestPeriods(t *testing.T) {
	tests := []struct {
		gens   []generator
		period int
	}{
		{twists, 3},
		{rotations, 4},
	}
	for _, tt := range tests {
		for _, g := range tt.gens {
			t.Run(g.name, func(t *testing.T) {
				m, err := Table().Get(g.name)
				require.NoError(t, err)
				s := puzzle.IdentityState(Layout)
				for i := 1; i < tt.period; i++ {
					s = s.Apply(m.Delta)
					require.False(t, s.IsSolved())
				}
				require.True(t, s.Apply(m.Delta).IsSolved())
			})
		}
	}
}

func TestTwistSuffixDeltas(t *testing.T) {
	base, _ := Table().Get("F")
	prime, _ := Table().Get("F'")
	double, _ := Table().Get("F2")
	primeDouble, _ := Table().Get("F'2")

	require.True(t, prime.Delta.Equal(base.Delta.Power(2)))
	require.True(t, double.Delta.Equal(prime.Delta))
	require.True(t, primeDouble.Delta.Equal(base.Delta))

	require.InDelta(t, 2*math.Pi/3, base.Angle, 1e-12)
	require.InDelta(t, -2*math.Pi/3, prime.Angle, 1e-12)
	require.InDelta(t, 4*math.Pi/3, double.Angle, 1e-12)
	require.InDelta(t, -4*math.Pi/3, primeDouble.Angle, 1e-12)
}

func TestAxesAreUnit(t *testing.T) {
	for _, token := range Table().Tokens() {
		m, _ := Table().Get(token)
		require.InDelta(t, 1, m.Axis.Len(), 1e-12, token)
	}
	z, _ := Table().Get("z")
	require.Equal(t, puzzle.Vec3{Z: -1}, z.Axis)
}

func TestInverseRoundTrip(t *testing.T) {
	for _, token := range Table().Tokens() {
		p := New(nil, puzzle.DefaultOptions())
		inv, ok := p.Inverse(token)
		require.True(t, ok)
		_, err := p.Rotate(token, false)
		require.NoError(t, err)
		_, err = p.Rotate(inv, false)
		require.NoError(t, err)
		require.True(t, p.State().IsSolved(), "%s %s", token, inv)
	}
}

func TestMaskMatchesMovedSlots(t *testing.T) {
	for _, g := range twists {
		m, _ := Table().Get(g.name)
		for _, cat := range Layout.Categories() {
			for i, v := range m.Delta.Get(cat).Sequence() {
				if v != i {
					require.True(t, m.Mask[cat][i], "%s moves unmasked %s slot %d", g.name, cat, i)
				}
			}
		}
	}
}

func TestTwistRotatesSevenPieces(t *testing.T) {
	scene := &puzzletest.Scene{}
	p := New(scene, puzzle.DefaultOptions())

	_, err := p.Rotate("R", false)
	require.NoError(t, err)
	require.Len(t, scene.Touched(), 7)
}

func TestResetIsIdempotent(t *testing.T) {
	scene := &puzzletest.Scene{}
	p := New(scene, puzzle.DefaultOptions())

	for _, tok := range []string{"R", "f", "x'", "b2"} {
		_, err := p.Rotate(tok, false)
		require.NoError(t, err)
	}
	p.Reset()
	first := p.State()
	p.Reset()

	require.True(t, first.IsSolved())
	require.True(t, p.State().Equal(first))
	require.Equal(t, 2, scene.Resets)
}

func TestMaskStateConsistency(t *testing.T) {
	v := Variant()
	starts := map[string]puzzle.State{
		"solved":    puzzle.IdentityState(Layout),
		"scrambled": puzzletest.Scramble(v, "R", "L'", "f", "B", "y", "r'", "z"),
	}
	for name, start := range starts {
		t.Run(name, func(t *testing.T) {
			puzzletest.CheckMaskConsistency(t, v, start)
		})
	}
}
