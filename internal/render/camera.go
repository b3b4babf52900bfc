package render

import (
	"math"

	"github.com/westphae/quaternion"

	"github.com/vovakirdan/tui-twisty/internal/core"
)

// Camera places the viewer around the puzzle. Angles are in degrees.
type Camera struct {
	Tilt  float64 // rotation about the screen x axis, positive looks down on U
	Orbit float64 // rotation about the puzzle y axis, positive brings R forward
	Roll  float64 // rotation about the view axis
}

// DefaultCamera shows the U, F and R faces.
var DefaultCamera = Camera{Tilt: 30, Orbit: 30}

const maxTilt = 89

// CameraFromRotation builds a camera from an [x, y, z] degree triple as
// stored in the config file.
func CameraFromRotation(r [3]float64) Camera {
	return Camera{Tilt: r[0], Orbit: r[1], Roll: r[2]}
}

// Rotation returns the camera as an [x, y, z] degree triple.
func (c Camera) Rotation() [3]float64 {
	return [3]float64{c.Tilt, c.Orbit, c.Roll}
}

// Rotate orbits and tilts the camera by the given degrees. Tilt stays
// short of the poles and orbit wraps to [0, 360).
func (c Camera) Rotate(orbit, tilt float64) Camera {
	c.Orbit = math.Mod(c.Orbit+orbit, 360)
	if c.Orbit < 0 {
		c.Orbit += 360
	}
	c.Tilt = core.ClampF(c.Tilt+tilt, -maxTilt, maxTilt)
	return c
}

// Behind returns the camera looking at the opposite side of the puzzle.
func (c Camera) Behind() Camera {
	return c.Rotate(180, -2*c.Tilt)
}

// view maps puzzle space into view space, where +Z points at the viewer.
func (c Camera) view() quaternion.Quaternion {
	roll := axisAngle(vec{Z: 1}, radians(c.Roll))
	tilt := axisAngle(vec{X: 1}, radians(c.Tilt))
	orbit := axisAngle(vec{Y: 1}, -radians(c.Orbit))
	return quaternion.Unit(quaternion.Prod(roll, tilt, orbit))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
