// Package square implements the square: two layers that twist in 30 degree
// steps around the vertical axis and a swap that turns the right half of
// the puzzle by 180 degrees.
//
// The cornerAndEdge category tracks 24 semantic 30 degree slots (0..11 top,
// 12..23 bottom). Corners own two adjacent slots and edges one, so the
// layout maps slots to the 16 physical pieces through an owner table.
package square

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/registry"
)

// ID is the registry id of the square.
const ID = "square"

// Slash tokens.
const (
	Swap        = "/"
	SwapInverse = "\\"
)

// MaxTwist bounds the step count of either layer in a twist token.
const MaxTwist = 6

const (
	topSlots = 12
	allSlots = 24
	step     = -math.Pi / 6
)

// Layout is core(2) cornerAndEdge(24 slots, 16 pieces).
// Pieces: ULF UL UBL UB URB UR UFR UF DFL DL DLB DB DBR DR DRF DF.
var Layout = puzzle.Layout{
	{Category: puzzle.CategoryCore, Slots: 2},
	{
		Category: puzzle.CategoryCornerAndEdge,
		Slots:    allSlots,
		Owners:   []int{0, 0, 1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 8, 8, 9, 10, 10, 11, 12, 12, 13, 14, 14, 15},
	},
}

var (
	// topStep turns the top layer one slot.
	topStep = puzzle.MustState(Layout, map[puzzle.Category][]int{
		puzzle.CategoryCornerAndEdge: {11, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23},
	})
	// bottomStep turns the bottom layer one slot.
	bottomStep = puzzle.MustState(Layout, map[puzzle.Category][]int{
		puzzle.CategoryCornerAndEdge: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 12},
	})
	// swap exchanges the right halves of both layers.
	swap = puzzle.MustState(Layout, map[puzzle.Category][]int{
		puzzle.CategoryCore:          {0, 1},
		puzzle.CategoryCornerAndEdge: {0, 1, 2, 3, 4, 5, 23, 22, 21, 20, 19, 18, 12, 13, 14, 15, 16, 17, 11, 10, 9, 8, 7, 6},
	})
)

var (
	topAxis    = puzzle.Vec3{Y: 1}
	bottomAxis = puzzle.Vec3{Y: -1}
	swapAxis   = puzzle.Vec3{X: 1, Z: 2 - math.Sqrt(3)}.Normalize()
)

var (
	swapSlots   = []int{6, 7, 8, 9, 10, 11, 18, 19, 20, 21, 22, 23}
	topRange    = slotRange(0, topSlots)
	bottomRange = slotRange(topSlots, allSlots)
)

func slotRange(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

// twistMove is a precomputed "(x,y)" token.
type twistMove struct {
	x, y  int
	delta puzzle.State
}

type moveSet struct {
	tokens []string
	twists map[string]twistMove
}

var moves = sync.OnceValue(func() moveSet {
	ms := moveSet{
		tokens: []string{Swap, SwapInverse},
		twists: make(map[string]twistMove),
	}
	for x := -MaxTwist; x <= MaxTwist; x++ {
		for y := -MaxTwist; y <= MaxTwist; y++ {
			token := TwistToken(x, y)
			ms.tokens = append(ms.tokens, token)
			ms.twists[token] = twistMove{
				x:     x,
				y:     y,
				delta: topStep.Power(topSlots + x).Apply(bottomStep.Power(topSlots + y)),
			}
		}
	}
	return ms
})

// TwistToken formats a layer twist token.
func TwistToken(x, y int) string {
	return "(" + strconv.Itoa(x) + "," + strconv.Itoa(y) + ")"
}

// ParseTwist parses a canonical "(x,y)" token.
func ParseTwist(token string) (x, y int, ok bool) {
	inner, found := strings.CutPrefix(token, "(")
	if !found {
		return 0, 0, false
	}
	inner, found = strings.CutSuffix(inner, ")")
	if !found {
		return 0, 0, false
	}
	xs, ys, found := strings.Cut(inner, ",")
	if !found {
		return 0, 0, false
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	if x < -MaxTwist || x > MaxTwist || y < -MaxTwist || y > MaxTwist {
		return 0, 0, false
	}
	if TwistToken(x, y) != token {
		return 0, 0, false
	}
	return x, y, true
}

// IsSwapLegal reports whether a swap would not cut through a corner: the
// pieces on either side of the cut at slots 11/0 and 23/12 must differ.
func IsSwapLegal(s puzzle.State) bool {
	ce := puzzle.CategoryCornerAndEdge
	if s.Occupant(ce, 0) == s.Occupant(ce, 11) {
		return false
	}
	if s.Occupant(ce, 12) == s.Occupant(ce, 23) {
		return false
	}
	return true
}

type planner struct {
	enforceSwap bool
}

func (p planner) Plan(s puzzle.State, token string) (puzzle.Plan, error) {
	switch token {
	case Swap, SwapInverse:
		return p.planSwap(s, token)
	}

	tw, ok := moves().twists[token]
	if !ok {
		return puzzle.Plan{}, fmt.Errorf("%w: %q", puzzle.ErrUnknownMove, token)
	}

	plan := puzzle.Plan{Token: token, Next: s.Apply(tw.delta)}
	if tw.x != 0 {
		plan.Motions = append(plan.Motions, puzzle.Motion{
			Axis:   topAxis,
			Angle:  float64(tw.x) * step,
			Pieces: s.Resolve(puzzle.CategoryCornerAndEdge, topRange),
		})
	}
	if tw.y != 0 {
		plan.Motions = append(plan.Motions, puzzle.Motion{
			Axis:   bottomAxis,
			Angle:  float64(tw.y) * step,
			Pieces: s.Resolve(puzzle.CategoryCornerAndEdge, bottomRange),
		})
	}
	return plan, nil
}

func (p planner) planSwap(s puzzle.State, token string) (puzzle.Plan, error) {
	if p.enforceSwap && !IsSwapLegal(s) {
		return puzzle.Plan{}, fmt.Errorf("%w: %q cuts through a corner", puzzle.ErrIllegalMove, token)
	}

	angle := -math.Pi
	if token == SwapInverse {
		angle = math.Pi
	}
	pieces := s.Resolve(puzzle.CategoryCornerAndEdge, swapSlots)
	pieces = append(pieces, s.Resolve(puzzle.CategoryCore, []int{0})...)

	return puzzle.Plan{
		Token:   token,
		Motions: []puzzle.Motion{{Axis: swapAxis, Angle: angle, Pieces: pieces}},
		Next:    s.Apply(swap),
	}, nil
}

// Inverse returns the token undoing token.
func Inverse(token string) (string, bool) {
	switch token {
	case Swap:
		return SwapInverse, true
	case SwapInverse:
		return Swap, true
	}
	x, y, ok := ParseTwist(token)
	if !ok {
		return "", false
	}
	return TwistToken(-x, -y), true
}

// Moves returns every accepted token: the two swaps followed by all twists.
func Moves() []string {
	return append([]string(nil), moves().tokens...)
}

// Pieces describes every square piece.
func Pieces() []puzzle.PieceInfo {
	var out []puzzle.PieceInfo
	out = append(out, puzzle.NamedPieces(puzzle.CategoryCore, "FRB", "BLF")...)
	out = append(out, puzzle.NamedPieces(puzzle.CategoryCornerAndEdge,
		"ULF", "UL", "UBL", "UB", "URB", "UR", "UFR", "UF",
		"DFL", "DL", "DLB", "DB", "DBR", "DR", "DRF", "DF")...)
	return out
}

// Variant returns the square description for puzzle.NewDriver.
func Variant(enforceSwap bool) puzzle.Variant {
	return puzzle.Variant{
		ID:      ID,
		Title:   "Square",
		Layout:  Layout,
		Planner: planner{enforceSwap: enforceSwap},
		Moves:   Moves(),
		Inverse: Inverse,
		Pieces:  Pieces(),
	}
}

// Puzzle is a square instance.
type Puzzle struct {
	*puzzle.Driver
}

// New creates a solved square.
func New(scene puzzle.Scene, opts puzzle.Options) *Puzzle {
	return &Puzzle{Driver: puzzle.NewDriver(Variant(opts.EnforceSwapLegality), scene, opts)}
}

// SwapLegal reports whether a swap is legal in the current state.
func (p *Puzzle) SwapLegal() bool {
	return IsSwapLegal(p.State())
}

func init() {
	registry.Register(ID, "Square", func(scene puzzle.Scene, opts puzzle.Options) puzzle.Puzzle {
		return New(scene, opts)
	})
}
