package puzzle

import (
	"math"
)

// Vec3 is a rotation axis or position in puzzle space: X right, Y up,
// Z toward the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v multiplied by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Mask marks, per category, the semantic slots a move touches.
type Mask map[Category][]bool

// Bits converts a 0/1 literal into a mask row.
func Bits(bits ...int) []bool {
	out := make([]bool, len(bits))
	for i, b := range bits {
		out[i] = b != 0
	}
	return out
}

// FullMask returns a mask covering every slot of l.
func FullMask(l Layout) Mask {
	m := make(Mask, len(l))
	for _, c := range l {
		row := make([]bool, c.Slots)
		for i := range row {
			row[i] = true
		}
		m[c.Category] = row
	}
	return m
}

// Slots returns the masked slot indices of cat.
func (m Mask) Slots(cat Category) []int {
	var out []int
	for i, on := range m[cat] {
		if on {
			out = append(out, i)
		}
	}
	return out
}

// Resolve returns the physical pieces sitting in masked slots of s, walking
// categories in layout order.
func (m Mask) Resolve(s State) []PieceRef {
	var out []PieceRef
	for _, cat := range s.Layout().Categories() {
		out = append(out, s.Resolve(cat, m.Slots(cat))...)
	}
	return out
}

// Move is one entry of a move table.
type Move struct {
	Token string
	Delta State
	Axis  Vec3    // unit rotation axis
	Angle float64 // signed radians
	Mask  Mask
}

// PieceRef identifies a physical piece.
type PieceRef struct {
	Category Category
	Index    int
}

// Motion is a rigid rotation of a group of pieces about one axis.
type Motion struct {
	Axis   Vec3
	Angle  float64
	Pieces []PieceRef
}

// Plan is a resolved move: the pieces to rotate, resolved against the
// pre-move state, and the state after the move.
type Plan struct {
	Token   string
	Motions []Motion
	Next    State
}

// Planner resolves tokens against a state.
type Planner interface {
	Plan(s State, token string) (Plan, error)
}
