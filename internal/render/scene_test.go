package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-twisty/internal/core"
	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/cube"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/skewb"
	"github.com/vovakirdan/tui-twisty/internal/puzzle/square"
)

func draw(s *Scene) *core.Screen {
	scr := core.NewScreen(72, 24)
	s.Draw(scr, scr.Bounds())
	return scr
}

// visible reports which face colors appear on screen.
func visible(scr *core.Screen) map[rune]bool {
	out := map[rune]bool{}
	for _, f := range "UFRDBL" {
		out[f] = scr.Count(core.FaceColor(f)) > 0
	}
	return out
}

func TestDrawSolvedCube(t *testing.T) {
	s := NewScene(cube.Pieces())
	require.Equal(t, 26, s.Len())

	seen := visible(draw(s))
	assert.Equal(t, map[rune]bool{'U': true, 'F': true, 'R': true, 'D': false, 'B': false, 'L': false}, seen)
}

func TestDrawHoverShowsEveryFace(t *testing.T) {
	s := NewScene(cube.Pieces())
	s.SetHover(true)
	require.True(t, s.Hover())

	scr := draw(s)
	for face, ok := range visible(scr) {
		assert.True(t, ok, "face %c should be visible", face)
	}

	// Both views are framed.
	assert.Equal(t, '┌', scr.Get(0, 0))
	assert.Equal(t, '┐', scr.Get(35, 0))
	assert.Equal(t, '┌', scr.Get(36, 0))
	assert.Equal(t, '┘', scr.Get(71, 23))
}

func TestDrawAfterWholeCubeRotation(t *testing.T) {
	s := NewScene(nil)
	opts := puzzle.DefaultOptions()
	opts.Speed = 0
	c := cube.New(s, opts)
	s.Load(c.Pieces())

	_, err := c.Rotate("y2", true)
	require.NoError(t, err)

	seen := visible(draw(s))
	assert.True(t, seen['U'])
	assert.True(t, seen['B'])
	assert.True(t, seen['L'])
	assert.False(t, seen['F'])
	assert.False(t, seen['R'])

	c.Reset()
	seen = visible(draw(s))
	assert.True(t, seen['F'])
	assert.False(t, seen['B'])
}

func TestRotatePieceNormal(t *testing.T) {
	s := NewScene(cube.Pieces())

	s.RotatePiece(puzzle.CategoryCorner, 0, puzzle.Vec3{X: 1}, -math.Pi/2)
	n, ok := s.Normal(puzzle.CategoryCorner, 0, 'U')
	require.True(t, ok)
	assert.InDelta(t, 0, n.X, 1e-9)
	assert.InDelta(t, 0, n.Y, 1e-9)
	assert.InDelta(t, -1, n.Z, 1e-9)

	// Two halves of a rotation add up.
	s.RotatePiece(puzzle.CategoryCorner, 0, puzzle.Vec3{X: 1}, -math.Pi/4)
	s.RotatePiece(puzzle.CategoryCorner, 0, puzzle.Vec3{X: 1}, -math.Pi/4)
	n, _ = s.Normal(puzzle.CategoryCorner, 0, 'U')
	assert.InDelta(t, -1, n.Y, 1e-9)

	s.ResetPieces()
	n, _ = s.Normal(puzzle.CategoryCorner, 0, 'U')
	assert.InDelta(t, 1, n.Y, 1e-9)
}

func TestUnknownPieceIgnored(t *testing.T) {
	s := NewScene(cube.Pieces())
	s.RotatePiece(puzzle.CategoryCore, 0, puzzle.Vec3{Y: 1}, math.Pi)

	_, ok := s.Normal(puzzle.CategoryCore, 0, 'U')
	assert.False(t, ok)
	_, ok = s.Normal(puzzle.CategoryCenter, 0, 'F')
	assert.False(t, ok, "center U has no F sticker")
}

func TestDrawOtherPuzzles(t *testing.T) {
	for name, pieces := range map[string][]puzzle.PieceInfo{
		"skewb":  skewb.Pieces(),
		"square": square.Pieces(),
	} {
		t.Run(name, func(t *testing.T) {
			seen := visible(draw(NewScene(pieces)))
			assert.True(t, seen['U'])
			assert.True(t, seen['F'])
			assert.True(t, seen['R'])
			assert.False(t, seen['D'])
		})
	}
}

func TestDrawEmptyArea(t *testing.T) {
	s := NewScene(cube.Pieces())
	scr := core.NewScreen(10, 10)
	s.Draw(scr, core.NewRect(0, 0, 0, 0))
	assert.Zero(t, scr.Count(core.FaceColor('U')))
}

func TestCamera(t *testing.T) {
	c := CameraFromRotation([3]float64{30, 30, 0})
	assert.Equal(t, DefaultCamera, c)
	assert.Equal(t, [3]float64{30, 30, 0}, c.Rotation())

	c = c.Rotate(-45, 100)
	assert.InDelta(t, 345, c.Orbit, 1e-9)
	assert.InDelta(t, 89, c.Tilt, 1e-9)

	b := DefaultCamera.Behind()
	assert.InDelta(t, 210, b.Orbit, 1e-9)
	assert.InDelta(t, -30, b.Tilt, 1e-9)

	s := NewScene(nil)
	s.Orbit(10, -5)
	assert.Equal(t, Camera{Tilt: 25, Orbit: 40}, s.Camera())
	s.SetCamera(DefaultCamera)
	assert.Equal(t, DefaultCamera, s.Camera())
}
