// Package cube implements the 3x3x3 cube: 18 base generators (face turns,
// wide turns, slices and whole-cube rotations), each with six suffix
// variants.
package cube

import (
	"math"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/registry"
)

// ID is the registry id of the cube.
const ID = "3x3x3"

// Layout is center(6) corner(8) edge(12).
// Centers: U F R D B L.
// Corners: UFR UFL UBL UBR DFR DBR DBL DFL.
// Edges: UF UL UB UR FR FL BL BR DF DR DB DL.
var Layout = puzzle.Layout{
	{Category: puzzle.CategoryCenter, Slots: 6},
	{Category: puzzle.CategoryCorner, Slots: 8},
	{Category: puzzle.CategoryEdge, Slots: 12},
}

// quarter is the base angle of one clockwise quarter turn about the
// generator's axis.
const quarter = -math.Pi / 2

type generator struct {
	name                 string
	center, corner, edge []int
	axis                 puzzle.Vec3
	mask                 puzzle.Mask
}

func mask(center, corner, edge []bool) puzzle.Mask {
	return puzzle.Mask{
		puzzle.CategoryCenter: center,
		puzzle.CategoryCorner: corner,
		puzzle.CategoryEdge:   edge,
	}
}

var b = puzzle.Bits

var generators = []generator{
	{"U", nil, []int{3, 0, 1, 2, 4, 5, 6, 7}, []int{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		puzzle.Vec3{Y: 1},
		mask(b(1, 0, 0, 0, 0, 0), b(1, 1, 1, 1, 0, 0, 0, 0), b(1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0))},
	{"F", nil, []int{1, 7, 2, 3, 0, 5, 6, 4}, []int{5, 1, 2, 3, 0, 8, 6, 7, 4, 9, 10, 11},
		puzzle.Vec3{Z: 1},
		mask(b(0, 1, 0, 0, 0, 0), b(1, 1, 0, 0, 1, 0, 0, 1), b(1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0))},
	{"R", nil, []int{4, 1, 2, 0, 5, 3, 6, 7}, []int{0, 1, 2, 4, 9, 5, 6, 3, 8, 7, 10, 11},
		puzzle.Vec3{X: 1},
		mask(b(0, 0, 1, 0, 0, 0), b(1, 0, 0, 1, 1, 1, 0, 0), b(0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0))},
	{"D", nil, []int{0, 1, 2, 3, 7, 4, 5, 6}, []int{0, 1, 2, 3, 4, 5, 6, 7, 11, 8, 9, 10},
		puzzle.Vec3{Y: -1},
		mask(b(0, 0, 0, 1, 0, 0), b(0, 0, 0, 0, 1, 1, 1, 1), b(0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1))},
	{"B", nil, []int{0, 1, 3, 5, 4, 6, 2, 7}, []int{0, 1, 7, 3, 4, 5, 2, 10, 8, 9, 6, 11},
		puzzle.Vec3{Z: -1},
		mask(b(0, 0, 0, 0, 1, 0), b(0, 0, 1, 1, 0, 1, 1, 0), b(0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0))},
	{"L", nil, []int{0, 2, 6, 3, 4, 5, 7, 1}, []int{0, 6, 2, 3, 4, 1, 11, 7, 8, 9, 10, 5},
		puzzle.Vec3{X: -1},
		mask(b(0, 0, 0, 0, 0, 1), b(0, 1, 1, 0, 0, 0, 1, 1), b(0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1))},

	{"u", []int{0, 2, 4, 3, 5, 1}, []int{3, 0, 1, 2, 4, 5, 6, 7}, []int{3, 0, 1, 2, 7, 4, 5, 6, 8, 9, 10, 11},
		puzzle.Vec3{Y: 1},
		mask(b(1, 1, 1, 0, 1, 1), b(1, 1, 1, 1, 0, 0, 0, 0), b(1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0))},
	{"f", []int{5, 1, 0, 2, 4, 3}, []int{1, 7, 2, 3, 0, 5, 6, 4}, []int{5, 11, 2, 1, 0, 8, 6, 7, 4, 3, 10, 9},
		puzzle.Vec3{Z: 1},
		mask(b(1, 1, 1, 1, 0, 1), b(1, 1, 0, 0, 1, 0, 0, 1), b(1, 1, 0, 1, 1, 1, 0, 0, 1, 1, 0, 1))},
	{"r", []int{1, 3, 2, 4, 0, 5}, []int{4, 1, 2, 0, 5, 3, 6, 7}, []int{8, 1, 0, 4, 9, 5, 6, 3, 10, 7, 2, 11},
		puzzle.Vec3{X: 1},
		mask(b(1, 1, 1, 1, 1, 0), b(1, 0, 0, 1, 1, 1, 0, 0), b(1, 0, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0))},
	{"d", []int{0, 5, 1, 3, 2, 4}, []int{0, 1, 2, 3, 7, 4, 5, 6}, []int{0, 1, 2, 3, 5, 6, 7, 4, 11, 8, 9, 10},
		puzzle.Vec3{Y: -1},
		mask(b(0, 1, 1, 1, 1, 1), b(0, 0, 0, 0, 1, 1, 1, 1), b(0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1))},
	{"b", []int{2, 1, 3, 5, 4, 0}, []int{0, 1, 3, 5, 4, 6, 2, 7}, []int{0, 3, 7, 9, 4, 5, 2, 10, 8, 11, 6, 1},
		puzzle.Vec3{Z: -1},
		mask(b(1, 0, 1, 1, 1, 1), b(0, 0, 1, 1, 0, 1, 1, 0), b(0, 1, 1, 1, 0, 0, 1, 1, 0, 1, 1, 1))},
	{"l", []int{4, 0, 2, 1, 3, 5}, []int{0, 2, 6, 3, 4, 5, 7, 1}, []int{2, 6, 10, 3, 4, 1, 11, 7, 0, 9, 8, 5},
		puzzle.Vec3{X: -1},
		mask(b(1, 1, 0, 1, 1, 1), b(0, 1, 1, 0, 0, 0, 1, 1), b(1, 1, 1, 0, 0, 1, 1, 0, 1, 0, 1, 1))},

	{"M", []int{4, 0, 2, 1, 3, 5}, nil, []int{2, 1, 10, 3, 4, 5, 6, 7, 0, 9, 8, 11},
		puzzle.Vec3{X: -1},
		mask(b(1, 1, 0, 1, 1, 0), b(0, 0, 0, 0, 0, 0, 0, 0), b(1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0))},
	{"E", []int{0, 5, 1, 3, 2, 4}, nil, []int{0, 1, 2, 3, 5, 6, 7, 4, 8, 9, 10, 11},
		puzzle.Vec3{Y: -1},
		mask(b(0, 1, 1, 0, 1, 1), b(0, 0, 0, 0, 0, 0, 0, 0), b(0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0))},
	{"S", []int{5, 1, 0, 2, 4, 3}, nil, []int{0, 11, 2, 1, 4, 5, 6, 7, 8, 3, 10, 9},
		puzzle.Vec3{Z: 1},
		mask(b(1, 0, 1, 1, 0, 1), b(0, 0, 0, 0, 0, 0, 0, 0), b(0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1))},

	{"x", []int{1, 3, 2, 4, 0, 5}, []int{4, 7, 1, 0, 5, 3, 2, 6}, []int{8, 5, 0, 4, 9, 11, 1, 3, 10, 7, 2, 6},
		puzzle.Vec3{X: 1}, puzzle.FullMask(Layout)},
	{"y", []int{0, 2, 4, 3, 5, 1}, []int{3, 0, 1, 2, 5, 6, 7, 4}, []int{3, 0, 1, 2, 7, 4, 5, 6, 9, 10, 11, 8},
		puzzle.Vec3{Y: 1}, puzzle.FullMask(Layout)},
	{"z", []int{5, 1, 0, 2, 4, 3}, []int{1, 7, 6, 2, 0, 3, 5, 4}, []int{5, 11, 6, 1, 0, 8, 10, 2, 4, 3, 7, 9},
		puzzle.Vec3{Z: 1}, puzzle.FullMask(Layout)},
}

func buildTable() (*puzzle.MoveTable, error) {
	tb := puzzle.NewTableBuilder(Layout)
	for _, g := range generators {
		seqs := map[puzzle.Category][]int{}
		if g.center != nil {
			seqs[puzzle.CategoryCenter] = g.center
		}
		if g.corner != nil {
			seqs[puzzle.CategoryCorner] = g.corner
		}
		if g.edge != nil {
			seqs[puzzle.CategoryEdge] = g.edge
		}
		delta, err := puzzle.NewState(Layout, seqs)
		if err != nil {
			return nil, err
		}
		tb.Add(puzzle.Generator{
			Name:     g.name,
			Delta:    delta,
			Axis:     g.axis,
			Angle:    quarter,
			Mask:     g.mask,
			Suffixes: puzzle.CubeSuffixes,
		})
	}
	return tb.Build()
}

// Table returns the shared cube move table.
var Table = puzzle.LazyTable(buildTable)

// Pieces describes every cube piece.
func Pieces() []puzzle.PieceInfo {
	var out []puzzle.PieceInfo
	out = append(out, puzzle.NamedPieces(puzzle.CategoryCenter, "U", "F", "R", "D", "B", "L")...)
	out = append(out, puzzle.NamedPieces(puzzle.CategoryCorner,
		"UFR", "UFL", "UBL", "UBR", "DFR", "DBR", "DBL", "DFL")...)
	out = append(out, puzzle.NamedPieces(puzzle.CategoryEdge,
		"UF", "UL", "UB", "UR", "FR", "FL", "BL", "BR", "DF", "DR", "DB", "DL")...)
	return out
}

// Variant returns the cube description for puzzle.NewDriver.
func Variant() puzzle.Variant {
	t := Table()
	return puzzle.Variant{
		ID:               ID,
		Title:            "3x3x3 Cube",
		Layout:           Layout,
		Planner:          t,
		Moves:            t.Tokens(),
		Inverse:          t.Inverse,
		NormalizesPrimes: true,
		Pieces:           Pieces(),
	}
}

// New creates a solved cube.
func New(scene puzzle.Scene, opts puzzle.Options) *puzzle.Driver {
	return puzzle.NewDriver(Variant(), scene, opts)
}

func init() {
	registry.Register(ID, "3x3x3 Cube", func(scene puzzle.Scene, opts puzzle.Options) puzzle.Puzzle {
		return New(scene, opts)
	})
}
