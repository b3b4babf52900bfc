package core

import "math"

// Point is a projected vertex: X and Y in cells, Z as depth.
type Point struct {
	X, Y, Z float64
}

// FillTriangle rasterizes a triangle with depth testing. A cell is covered
// when its center lies inside the triangle; depth is interpolated across it.
func (s *Screen) FillTriangle(a, b, c Point, r rune, col Color) {
	area := edge(a, b, c.X, c.Y)
	if area == 0 {
		return
	}

	minX := Clamp(int(math.Floor(math.Min(a.X, math.Min(b.X, c.X)))), 0, s.width-1)
	maxX := Clamp(int(math.Ceil(math.Max(a.X, math.Max(b.X, c.X)))), 0, s.width-1)
	minY := Clamp(int(math.Floor(math.Min(a.Y, math.Min(b.Y, c.Y)))), 0, s.height-1)
	maxY := Clamp(int(math.Ceil(math.Max(a.Y, math.Max(b.Y, c.Y)))), 0, s.height-1)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			s.Plot(x, y, w0*a.Z+w1*b.Z+w2*c.Z, r, col)
		}
	}
}

// FillQuad rasterizes the convex quad a-b-c-d as two triangles.
func (s *Screen) FillQuad(a, b, c, d Point, r rune, col Color) {
	s.FillTriangle(a, b, c, r, col)
	s.FillTriangle(a, c, d, r, col)
}

// edge is twice the signed area of (a, b, p).
func edge(a, b Point, px, py float64) float64 {
	return (b.X-a.X)*(py-a.Y) - (b.Y-a.Y)*(px-a.X)
}
