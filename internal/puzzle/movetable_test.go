package puzzle

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func ringGenerator() Generator {
	return Generator{
		Name: "R",
		Delta: MustState(ringLayout, map[Category][]int{
			CategoryCorner: {3, 0, 1, 2},
		}),
		Axis:     Vec3{X: 2},
		Angle:    -math.Pi / 2,
		Mask:     Mask{CategoryCenter: Bits(0, 0), CategoryCorner: Bits(1, 1, 1, 1)},
		Suffixes: CubeSuffixes,
	}
}

func TestBuildDerivesSuffixes(t *testing.T) {
	table, err := NewTableBuilder(ringLayout).Add(ringGenerator()).Build()
	require.NoError(t, err)

	require.Equal(t, []string{"R", "R'", "R2", "R'2", "R3", "R'3"}, table.Tokens())

	tests := []struct {
		token string
		power int
		angle float64
	}{
		{"R", 1, -math.Pi / 2},
		{"R'", 3, math.Pi / 2},
		{"R2", 2, -math.Pi},
		{"R'2", 2, math.Pi},
		{"R3", 3, -3 * math.Pi / 2},
		{"R'3", 1, 3 * math.Pi / 2},
	}
	base := ringGenerator().Delta
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			m, err := table.Get(tt.token)
			require.NoError(t, err)
			require.True(t, m.Delta.Equal(base.Power(tt.power)))
			require.InDelta(t, tt.angle, m.Angle, 1e-12)
			require.Equal(t, Vec3{X: 1}, m.Axis)
		})
	}
}

func TestInverseRoundTrip(t *testing.T) {
	table := NewTableBuilder(ringLayout).Add(ringGenerator()).MustBuild()

	for _, token := range table.Tokens() {
		inv, ok := table.Inverse(token)
		require.True(t, ok, token)
		m, _ := table.Get(token)
		mi, _ := table.Get(inv)
		s := IdentityState(ringLayout).Apply(m.Delta).Apply(mi.Delta)
		require.True(t, s.IsSolved(), "%s then %s", token, inv)
	}
}

func TestGetUnknown(t *testing.T) {
	table := NewTableBuilder(ringLayout).Add(ringGenerator()).MustBuild()
	_, err := table.Get("Q")
	require.ErrorIs(t, err, ErrUnknownMove)
}

func TestBuildRejectsInvalidTables(t *testing.T) {
	badMask := ringGenerator()
	badMask.Mask = Mask{CategoryCorner: Bits(1, 1)}

	unknownCat := ringGenerator()
	unknownCat.Mask = Mask{CategoryEdge: Bits(1)}

	badInverse := ringGenerator()
	badInverse.Suffixes = []Suffix{{Text: "", Power: 1, Turns: 1, Inverse: "'"}}

	otherLayout := ringGenerator()
	otherLayout.Delta = IdentityState(Layout{{Category: CategoryCorner, Slots: 4}})

	tests := []struct {
		name string
		gens []Generator
	}{
		{"duplicate", []Generator{ringGenerator(), ringGenerator()}},
		{"mask length", []Generator{badMask}},
		{"mask category", []Generator{unknownCat}},
		{"inverse suffix", []Generator{badInverse}},
		{"delta layout", []Generator{otherLayout}},
		{"unnamed", []Generator{{Delta: IdentityState(ringLayout), Suffixes: CubeSuffixes}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTableBuilder(ringLayout)
			for _, g := range tt.gens {
				b.Add(g)
			}
			_, err := b.Build()
			require.True(t, errors.Is(err, ErrInvalidTable), "err = %v", err)
		})
	}
}

func TestPlanResolvesPiecesBeforeMove(t *testing.T) {
	table := NewTableBuilder(ringLayout).Add(Generator{
		Name: "T",
		Delta: MustState(ringLayout, map[Category][]int{
			CategoryCorner: {1, 0, 2, 3},
		}),
		Axis:     Vec3{Y: 1},
		Angle:    math.Pi,
		Mask:     Mask{CategoryCorner: Bits(1, 1, 0, 0)},
		Suffixes: []Suffix{{Text: "", Power: 1, Turns: 1, Inverse: ""}},
	}).MustBuild()

	s := MustState(ringLayout, map[Category][]int{CategoryCorner: {2, 3, 0, 1}})
	plan, err := table.Plan(s, "T")
	require.NoError(t, err)

	require.Len(t, plan.Motions, 1)
	require.Equal(t, []PieceRef{
		{Category: CategoryCorner, Index: 2},
		{Category: CategoryCorner, Index: 3},
	}, plan.Motions[0].Pieces)
	require.Equal(t, []int{3, 2, 0, 1}, plan.Next.Get(CategoryCorner).Sequence())
}
