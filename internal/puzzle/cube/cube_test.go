package cube

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/puzzletest"
	"github.com/vovakirdan/tui-twisty/internal/registry"
)

func TestMoveCount(t *testing.T) {
	require.Equal(t, 18*6, Table().Len())
	require.Len(t, New(nil, puzzle.DefaultOptions()).Moves(), 108)
}

func TestRFromSolved(t *testing.T) {
	scene := &puzzletest.Scene{}
	c := New(scene, puzzle.DefaultOptions())

	_, err := c.Rotate("R", false)
	require.NoError(t, err)

	require.Equal(t, []int{4, 1, 2, 0, 5, 3, 6, 7}, c.State().Get(puzzle.CategoryCorner).Sequence())

	var corners []int
	for _, ref := range scene.Touched() {
		if ref.Category == puzzle.CategoryCorner {
			corners = append(corners, ref.Index)
		}
	}
	sort.Ints(corners)
	require.Equal(t, []int{0, 3, 4, 5}, corners)

	for _, r := range scene.Rotations {
		require.Equal(t, puzzle.Vec3{X: 1}, r.Axis)
		require.InDelta(t, -math.Pi/2, r.Delta, 1e-12)
	}
}

func TestGeneratorPeriods(t *testing.T) {
	for _, g := range generators {
		t.Run(g.name, func(t *testing.T) {
			m, err := Table().Get(g.name)
			require.NoError(t, err)
			s := puzzle.IdentityState(Layout)
			for i := 1; i <= 4; i++ {
				s = s.Apply(m.Delta)
				if i < 4 {
					require.False(t, s.IsSolved(), "solved after %d turns", i)
				}
			}
			require.True(t, s.IsSolved())
		})
	}
}

func TestInverseRoundTrip(t *testing.T) {
	table := Table()
	for _, token := range table.Tokens() {
		c := New(nil, puzzle.DefaultOptions())
		inv, ok := c.Inverse(token)
		require.True(t, ok, token)

		_, err := c.Rotate(token, false)
		require.NoError(t, err)
		_, err = c.Rotate(inv, false)
		require.NoError(t, err)
		require.True(t, c.State().IsSolved(), "%s %s", token, inv)
	}
}

func TestMaskIsClosedUnderDelta(t *testing.T) {
	for _, token := range Table().Tokens() {
		m, err := Table().Get(token)
		require.NoError(t, err)
		for _, cat := range Layout.Categories() {
			seq := m.Delta.Get(cat).Sequence()
			row := m.Mask[cat]
			for i, v := range seq {
				if !row[i] {
					require.Equal(t, i, v, "%s moves unmasked %s slot %d", token, cat, i)
				} else {
					require.True(t, row[v], "%s maps masked %s slot %d outside the mask", token, cat, i)
				}
			}
		}
	}
}

func TestAnglesFollowSuffix(t *testing.T) {
	tests := map[string]float64{
		"U":   -math.Pi / 2,
		"U'":  math.Pi / 2,
		"U2":  -math.Pi,
		"U'2": math.Pi,
		"U3":  -3 * math.Pi / 2,
		"U'3": 3 * math.Pi / 2,
	}
	for token, want := range tests {
		m, err := Table().Get(token)
		require.NoError(t, err)
		require.InDelta(t, want, m.Angle, 1e-12, token)
	}
}

func TestSliceAxes(t *testing.T) {
	tests := map[string]puzzle.Vec3{
		"M": {X: -1},
		"E": {Y: -1},
		"S": {Z: 1},
		"x": {X: 1},
		"l": {X: -1},
	}
	for token, want := range tests {
		m, err := Table().Get(token)
		require.NoError(t, err)
		require.Equal(t, want, m.Axis, token)
	}
}

func TestSexyMoveOrder(t *testing.T) {
	c := New(nil, puzzle.DefaultOptions())
	for i := 0; i < 6; i++ {
		for _, tok := range []string{"R", "U", "R'", "U'"} {
			_, err := c.Rotate(tok, false)
			require.NoError(t, err)
		}
		if i < 5 {
			require.False(t, c.State().IsSolved())
		}
	}
	require.True(t, c.State().IsSolved())
}

func TestAnimatedRotateResolvesAfterTicks(t *testing.T) {
	scene := &puzzletest.Scene{}
	c := New(scene, puzzle.DefaultOptions())
	clock := puzzletest.NewClock()

	done, err := c.Rotate("F", true)
	require.NoError(t, err)

	rejected, err := c.Rotate("U", true)
	require.NoError(t, err)
	require.True(t, rejected.Rejected())

	frames := puzzletest.RunUntilIdle(t, c, clock, 120)
	require.Greater(t, frames, 1)
	require.True(t, done.Resolved())
	require.False(t, done.Rejected())

	for _, ref := range scene.Touched() {
		require.InDelta(t, -math.Pi/2, scene.Total(ref.Category, ref.Index), 1e-9)
	}

	want := puzzle.IdentityState(Layout)
	m, _ := Table().Get("F")
	require.True(t, c.State().Equal(want.Apply(m.Delta)))
}

func TestRegistered(t *testing.T) {
	p, err := registry.Create(ID, nil, puzzle.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, ID, p.ID())
	require.True(t, p.NormalizesPrimes())
	require.Len(t, p.Pieces(), 26)
}

func TestMaskStateConsistency(t *testing.T) {
	v := Variant()
	starts := map[string]puzzle.State{
		"solved":    puzzle.IdentityState(Layout),
		"scrambled": puzzletest.Scramble(v, "R", "U'", "F2", "M", "d", "x", "B'", "S"),
	}
	for name, start := range starts {
		t.Run(name, func(t *testing.T) {
			puzzletest.CheckMaskConsistency(t, v, start)
		})
	}
}
