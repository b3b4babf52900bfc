package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/cube"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/skewb"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/square"
)

func TestParseCube(t *testing.T) {
	c := cube.New(nil, puzzle.DefaultOptions())

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"no spaces", "RU'R'", []string{"R", "U'", "R'"}},
		{"junk dropped", "R@U", []string{"R", "U"}},
		{"whitespace", " R  U\tR'\nU' ", []string{"R", "U", "R'", "U'"}},
		{"prime after count", "R2'U3'", []string{"R'2", "U'3"}},
		{"longest match", "R'2U'3", []string{"R'2", "U'3"}},
		{"wide and slices", "rMx'", []string{"r", "M", "x'"}},
		{"empty", "", nil},
		{"only junk", "@#!", nil},
		{"unicode junk", "R→U", []string{"R", "U"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Parse(tt.raw, c))
		})
	}
}

func TestParseSkewb(t *testing.T) {
	s := skewb.New(nil, puzzle.DefaultOptions())
	require.Equal(t, []string{"R", "L'", "x'2"}, Parse("R L' x2'", s))
}

func TestParseSquareKeepsPrimesUntouched(t *testing.T) {
	sq := square.New(nil, puzzle.DefaultOptions())

	require.Equal(t,
		[]string{"(1,0)", "/", "(-3,3)", "\\", "(0,-6)"},
		Parse("(1,0)/ (-3, 3) \\(0,-6)", sq))
	require.Equal(t, []string{"/"}, Parse("(9,9)/", sq))
}

func TestEveryTokenParsesToItself(t *testing.T) {
	vocabs := []Vocabulary{
		cube.New(nil, puzzle.DefaultOptions()),
		skewb.New(nil, puzzle.DefaultOptions()),
		square.New(nil, puzzle.DefaultOptions()),
	}
	for _, v := range vocabs {
		for _, tok := range v.Moves() {
			require.Equal(t, []string{tok}, Parse(tok, v))
		}
	}
}

func TestInvert(t *testing.T) {
	c := cube.New(nil, puzzle.DefaultOptions())

	inv, err := Invert([]string{"R", "U", "R'2"}, c.Inverse)
	require.NoError(t, err)
	require.Equal(t, []string{"R2", "U'", "R'"}, inv)

	_, err = Invert([]string{"Q"}, c.Inverse)
	require.ErrorIs(t, err, ErrNoInverse)
}

func TestFormat(t *testing.T) {
	require.Equal(t, "R U R'", Format([]string{"R", "U", "R'"}))
}
