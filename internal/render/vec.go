package render

import (
	"math"

	"github.com/westphae/quaternion"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
)

type vec = quaternion.Vec3

func fromPuzzle(v puzzle.Vec3) vec {
	return vec{X: v.X, Y: v.Y, Z: v.Z}
}

func toPuzzle(v vec) puzzle.Vec3 {
	return puzzle.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func add(a, b vec) vec {
	return vec{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

func scale(a vec, k float64) vec {
	return vec{X: a.X * k, Y: a.Y * k, Z: a.Z * k}
}

func dot(a, b vec) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// axisAngle is the rotation by angle radians about a unit axis.
func axisAngle(axis vec, angle float64) quaternion.Quaternion {
	s, c := math.Sincos(angle / 2)
	return quaternion.Quaternion{W: c, X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s}
}

var identity = quaternion.Quaternion{W: 1}

// tangents returns two unit vectors spanning the plane orthogonal to an
// axis-aligned normal.
func tangents(n vec) (vec, vec) {
	switch {
	case math.Abs(n.X) > 0.5:
		return vec{Y: 1}, vec{Z: 1}
	case math.Abs(n.Y) > 0.5:
		return vec{X: 1}, vec{Z: 1}
	default:
		return vec{X: 1}, vec{Y: 1}
	}
}
