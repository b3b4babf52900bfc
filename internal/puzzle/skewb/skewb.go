// Package skewb implements the corner-turning skewb: eight period 3 axis
// twists through the corners plus x/y/z whole-puzzle rotations.
package skewb

import (
	"math"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/registry"
)

// ID is the registry id of the skewb.
const ID = "skewb"

// Layout is center(6) corner(8).
// Centers: U F R D B L.
// Corners: UFR ULF UBL URB DRF DBR DLB DFL.
var Layout = puzzle.Layout{
	{Category: puzzle.CategoryCenter, Slots: 6},
	{Category: puzzle.CategoryCorner, Slots: 8},
}

const (
	twist    = 2 * math.Pi / 3
	rotation = math.Pi / 2
)

type generator struct {
	name           string
	center, corner []int
	axis           puzzle.Vec3
	mask           puzzle.Mask
}

func mask(center, corner []bool) puzzle.Mask {
	return puzzle.Mask{
		puzzle.CategoryCenter: center,
		puzzle.CategoryCorner: corner,
	}
}

var b = puzzle.Bits

var twists = []generator{
	{"F", []int{1, 2, 0, 3, 4, 5}, []int{0, 4, 2, 1, 3, 5, 6, 7}, puzzle.Vec3{X: -1, Y: -1, Z: -1},
		mask(b(1, 1, 1, 0, 0, 0), b(1, 1, 0, 1, 1, 0, 0, 0))},
	{"L", []int{5, 0, 2, 3, 4, 1}, []int{2, 1, 7, 3, 4, 5, 6, 0}, puzzle.Vec3{X: 1, Y: -1, Z: -1},
		mask(b(1, 1, 0, 0, 0, 1), b(1, 1, 1, 0, 0, 0, 0, 1))},
	{"B", []int{4, 1, 2, 3, 5, 0}, []int{0, 3, 2, 6, 4, 5, 1, 7}, puzzle.Vec3{X: 1, Y: -1, Z: 1},
		mask(b(1, 0, 0, 0, 1, 1), b(0, 1, 1, 1, 0, 0, 1, 0))},
	{"R", []int{2, 1, 4, 3, 0, 5}, []int{5, 1, 0, 3, 4, 2, 6, 7}, puzzle.Vec3{X: -1, Y: -1, Z: 1},
		mask(b(1, 0, 1, 0, 1, 0), b(1, 0, 1, 1, 0, 1, 0, 0))},
	{"f", []int{0, 3, 1, 2, 4, 5}, []int{7, 1, 2, 3, 4, 0, 6, 5}, puzzle.Vec3{X: -1, Y: 1, Z: -1},
		mask(b(0, 1, 1, 1, 0, 0), b(1, 0, 0, 0, 1, 1, 0, 1))},
	{"l", []int{0, 5, 2, 1, 4, 3}, []int{0, 6, 2, 3, 1, 5, 4, 7}, puzzle.Vec3{X: 1, Y: 1, Z: -1},
		mask(b(0, 1, 0, 1, 0, 1), b(0, 1, 0, 0, 1, 0, 1, 1))},
	{"b", []int{0, 1, 2, 5, 3, 4}, []int{0, 1, 5, 3, 4, 7, 6, 2}, puzzle.Vec3{X: 1, Y: 1, Z: 1},
		mask(b(0, 0, 0, 1, 1, 1), b(0, 0, 1, 0, 0, 1, 1, 1))},
	{"r", []int{0, 1, 3, 4, 2, 5}, []int{0, 1, 2, 4, 6, 5, 3, 7}, puzzle.Vec3{X: -1, Y: 1, Z: 1},
		mask(b(0, 0, 1, 1, 1, 0), b(0, 0, 0, 1, 1, 1, 1, 0))},
}

var rotations = []generator{
	{"x", []int{1, 3, 2, 4, 0, 5}, []int{4, 7, 1, 0, 5, 3, 2, 6}, puzzle.Vec3{X: -1}, puzzle.FullMask(Layout)},
	{"y", []int{0, 2, 4, 3, 5, 1}, []int{3, 0, 1, 2, 5, 6, 7, 4}, puzzle.Vec3{Y: -1}, puzzle.FullMask(Layout)},
	{"z", []int{5, 1, 0, 2, 4, 3}, []int{1, 7, 6, 2, 0, 3, 5, 4}, puzzle.Vec3{Z: -1}, puzzle.FullMask(Layout)},
}

func add(tb *puzzle.TableBuilder, gens []generator, angle float64, suffixes []puzzle.Suffix) error {
	for _, g := range gens {
		delta, err := puzzle.NewState(Layout, map[puzzle.Category][]int{
			puzzle.CategoryCenter: g.center,
			puzzle.CategoryCorner: g.corner,
		})
		if err != nil {
			return err
		}
		tb.Add(puzzle.Generator{
			Name:     g.name,
			Delta:    delta,
			Axis:     g.axis,
			Angle:    angle,
			Mask:     g.mask,
			Suffixes: suffixes,
		})
	}
	return nil
}

func buildTable() (*puzzle.MoveTable, error) {
	tb := puzzle.NewTableBuilder(Layout)
	if err := add(tb, twists, twist, puzzle.TwistSuffixes); err != nil {
		return nil, err
	}
	if err := add(tb, rotations, rotation, puzzle.CubeSuffixes); err != nil {
		return nil, err
	}
	return tb.Build()
}

// Table returns the shared skewb move table.
var Table = puzzle.LazyTable(buildTable)

// Pieces describes every skewb piece.
func Pieces() []puzzle.PieceInfo {
	var out []puzzle.PieceInfo
	out = append(out, puzzle.NamedPieces(puzzle.CategoryCenter, "U", "F", "R", "D", "B", "L")...)
	out = append(out, puzzle.NamedPieces(puzzle.CategoryCorner,
		"UFR", "ULF", "UBL", "URB", "DRF", "DBR", "DLB", "DFL")...)
	return out
}

// Variant returns the skewb description for puzzle.NewDriver.
func Variant() puzzle.Variant {
	t := Table()
	return puzzle.Variant{
		ID:               ID,
		Title:            "Skewb",
		Layout:           Layout,
		Planner:          t,
		Moves:            t.Tokens(),
		Inverse:          t.Inverse,
		NormalizesPrimes: true,
		Pieces:           Pieces(),
	}
}

// New creates a solved skewb.
func New(scene puzzle.Scene, opts puzzle.Options) *puzzle.Driver {
	return puzzle.NewDriver(Variant(), scene, opts)
}

func init() {
	registry.Register(ID, "Skewb", func(scene puzzle.Scene, opts puzzle.Options) puzzle.Puzzle {
		return New(scene, opts)
	})
}
