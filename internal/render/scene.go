// Package render draws puzzle pieces into a core.Screen. Scene implements
// puzzle.Scene, so a puzzle driver animates it directly: each piece keeps a
// quaternion orientation that world-axis rotations are composed onto.
package render

import (
	"math"

	"github.com/westphae/quaternion"

	"github.com/vovakirdan/tui-twisty/internal/core"
	"github.com/vovakirdan/tui-twisty/internal/puzzle"
)

// StickerRune fills sticker cells.
const StickerRune = '█'

const (
	faceOffset    = 1.5  // distance of the outer faces from the origin
	stickerHalf   = 0.42 // half-size of a cube sticker
	skewbShrink   = 0.88 // skewb stickers are pulled toward their centroid
	viewRadius    = 2.8  // puzzle radius kept inside the viewport
	cellAspect    = 2.0  // terminal cells are about twice as tall as wide
	cullThreshold = 1e-6
)

type pieceKey struct {
	cat   puzzle.Category
	index int
}

type sticker struct {
	face   rune
	color  core.Color
	normal vec
	poly   []vec
}

type piece struct {
	info     puzzle.PieceInfo
	orient   quaternion.Quaternion
	stickers []sticker
}

// Scene holds the oriented pieces of one puzzle and the camera they are
// seen through.
type Scene struct {
	pieces []piece
	index  map[pieceKey]int
	camera Camera
	hover  bool
}

// NewScene creates a scene showing the given pieces from DefaultCamera.
func NewScene(pieces []puzzle.PieceInfo) *Scene {
	s := &Scene{camera: DefaultCamera}
	s.Load(pieces)
	return s
}

// Load replaces the pieces, all at their home orientation. Puzzles without
// edge pieces but with centers are drawn with skewb sticker shapes.
func (s *Scene) Load(pieces []puzzle.PieceInfo) {
	var hasCenter, hasEdge bool
	for _, p := range pieces {
		switch p.Category {
		case puzzle.CategoryCenter:
			hasCenter = true
		case puzzle.CategoryEdge:
			hasEdge = true
		}
	}
	skewb := hasCenter && !hasEdge

	s.pieces = make([]piece, 0, len(pieces))
	s.index = make(map[pieceKey]int, len(pieces))
	for _, info := range pieces {
		s.index[pieceKey{info.Category, info.Index}] = len(s.pieces)
		s.pieces = append(s.pieces, piece{
			info:     info,
			orient:   identity,
			stickers: buildStickers(info, skewb),
		})
	}
}

func buildStickers(info puzzle.PieceInfo, skewb bool) []sticker {
	home := fromPuzzle(info.Home)
	var out []sticker
	for _, face := range info.Name {
		n, ok := puzzle.FaceNormal(face)
		if !ok {
			continue
		}
		normal := fromPuzzle(n)
		var poly []vec
		switch {
		case skewb && info.Category == puzzle.CategoryCenter:
			poly = skewbCenter(normal)
		case skewb:
			poly = skewbCorner(home, normal)
		default:
			poly = cubeSticker(home, normal)
		}
		out = append(out, sticker{face: face, color: core.FaceColor(face), normal: normal, poly: poly})
	}
	return out
}

// cubeSticker is a square on the outer face plane above home.
func cubeSticker(home, n vec) []vec {
	c := add(add(home, scale(n, -dot(home, n))), scale(n, faceOffset))
	u, v := tangents(n)
	u, v = scale(u, stickerHalf), scale(v, stickerHalf)
	return []vec{
		add(c, add(scale(u, -1), scale(v, -1))),
		add(c, add(u, scale(v, -1))),
		add(c, add(u, v)),
		add(c, add(scale(u, -1), v)),
	}
}

// skewbCenter is the diamond joining the edge midpoints of a face.
func skewbCenter(n vec) []vec {
	c := scale(n, faceOffset)
	u, v := tangents(n)
	r := faceOffset * skewbShrink
	return []vec{
		add(c, scale(u, r)),
		add(c, scale(v, r)),
		add(c, scale(u, -r)),
		add(c, scale(v, -r)),
	}
}

// skewbCorner is the triangle cut off a face by the center diamond.
func skewbCorner(home, n vec) []vec {
	p := scale(home, faceOffset)
	u, v := tangents(n)
	a := add(p, scale(u, -faceOffset*dot(home, u)))
	b := add(p, scale(v, -faceOffset*dot(home, v)))
	centroid := scale(add(p, add(a, b)), 1.0/3)
	poly := []vec{p, a, b}
	for i, q := range poly {
		poly[i] = add(centroid, scale(add(q, scale(centroid, -1)), skewbShrink))
	}
	return poly
}

// RotatePiece composes a world-axis rotation onto one piece. Unknown
// pieces are ignored.
func (s *Scene) RotatePiece(cat puzzle.Category, index int, axis puzzle.Vec3, delta float64) {
	i, ok := s.index[pieceKey{cat, index}]
	if !ok {
		return
	}
	p := &s.pieces[i]
	p.orient = quaternion.Unit(quaternion.Prod(axisAngle(fromPuzzle(axis), delta), p.orient))
}

// ResetPieces returns every piece to its home orientation.
func (s *Scene) ResetPieces() {
	for i := range s.pieces {
		s.pieces[i].orient = identity
	}
}

// Len returns the number of pieces.
func (s *Scene) Len() int {
	return len(s.pieces)
}

// Normal returns where the sticker of the given face currently points.
func (s *Scene) Normal(cat puzzle.Category, index int, face rune) (puzzle.Vec3, bool) {
	i, ok := s.index[pieceKey{cat, index}]
	if !ok {
		return puzzle.Vec3{}, false
	}
	p := s.pieces[i]
	for _, st := range p.stickers {
		if st.face == face {
			return toPuzzle(p.orient.RotateVec3(st.normal)), true
		}
	}
	return puzzle.Vec3{}, false
}

// Camera returns the current camera.
func (s *Scene) Camera() Camera {
	return s.camera
}

// SetCamera replaces the camera.
func (s *Scene) SetCamera(c Camera) {
	s.camera = c
}

// Orbit rotates the camera by the given degrees.
func (s *Scene) Orbit(orbit, tilt float64) {
	s.camera = s.camera.Rotate(orbit, tilt)
}

// Hover reports whether the view from behind is drawn too.
func (s *Scene) Hover() bool {
	return s.hover
}

// SetHover toggles the view from behind.
func (s *Scene) SetHover(on bool) {
	s.hover = on
}

// Draw renders the scene into area. With hover on, the area is split and
// the right half shows the puzzle from behind.
func (s *Scene) Draw(scr *core.Screen, area core.Rect) {
	if area.Empty() {
		return
	}
	scr.ClearDepth()
	if !s.hover {
		s.drawView(scr, area, s.camera)
		return
	}
	front, back := area.SplitH()
	scr.DrawBox(front, core.ColorGray)
	scr.DrawBox(back, core.ColorGray)
	s.drawView(scr, front.Inset(1), s.camera)
	s.drawView(scr, back.Inset(1), s.camera.Behind())
}

func (s *Scene) drawView(scr *core.Screen, area core.Rect, cam Camera) {
	if area.Empty() {
		return
	}
	view := cam.view()
	cx, cy := area.Center()
	sy := math.Min(float64(area.H)/(2*viewRadius), float64(area.W)/(2*viewRadius*cellAspect))
	sx := sy * cellAspect

	project := func(v vec) core.Point {
		return core.Point{
			X: float64(cx) + v.X*sx,
			Y: float64(cy) - v.Y*sy,
			Z: v.Z,
		}
	}

	pts := make([]core.Point, 0, 4)
	for _, p := range s.pieces {
		q := quaternion.Prod(view, p.orient)
		for _, st := range p.stickers {
			if q.RotateVec3(st.normal).Z <= cullThreshold {
				continue
			}
			pts = pts[:0]
			for _, corner := range st.poly {
				pts = append(pts, project(q.RotateVec3(corner)))
			}
			fillPolygon(scr, pts, st.color)
		}
	}
}

// fillPolygon fans a convex polygon into triangles. The viewport scale
// keeps the puzzle inside its area, so no clipping is needed.
func fillPolygon(scr *core.Screen, pts []core.Point, color core.Color) {
	for i := 1; i+1 < len(pts); i++ {
		scr.FillTriangle(pts[0], pts[i], pts[i+1], StickerRune, color)
	}
}
