package puzzle

import (
	"fmt"
	"sync"
)

// Suffix derives a move variant from a base generator.
type Suffix struct {
	Text    string // appended to the generator name
	Power   int    // times the base delta is composed with itself
	Turns   int    // signed multiple of the base angle
	Inverse string // suffix text of the inverse variant
}

// CubeSuffixes are the variants of a period 4 generator.
var CubeSuffixes = []Suffix{
	{Text: "", Power: 1, Turns: 1, Inverse: "'"},
	{Text: "'", Power: 3, Turns: -1, Inverse: ""},
	{Text: "2", Power: 2, Turns: 2, Inverse: "'2"},
	{Text: "'2", Power: 2, Turns: -2, Inverse: "2"},
	{Text: "3", Power: 3, Turns: 3, Inverse: "'3"},
	{Text: "'3", Power: 1, Turns: -3, Inverse: "3"},
}

// TwistSuffixes are the variants of a period 3 generator.
var TwistSuffixes = []Suffix{
	{Text: "", Power: 1, Turns: 1, Inverse: "'"},
	{Text: "'", Power: 2, Turns: -1, Inverse: ""},
	{Text: "2", Power: 2, Turns: 2, Inverse: "'2"},
	{Text: "'2", Power: 1, Turns: -2, Inverse: "2"},
}

// Generator is a base move from which suffix variants are derived.
type Generator struct {
	Name     string
	Delta    State
	Axis     Vec3
	Angle    float64 // radians per turn
	Mask     Mask
	Suffixes []Suffix
}

// TableBuilder accumulates generators and derives a MoveTable.
type TableBuilder struct {
	layout Layout
	gens   []Generator
}

// NewTableBuilder starts a table over layout.
func NewTableBuilder(l Layout) *TableBuilder {
	return &TableBuilder{layout: l}
}

// Add declares a generator.
func (b *TableBuilder) Add(g Generator) *TableBuilder {
	b.gens = append(b.gens, g)
	return b
}

// Build validates every generator and derives all suffix variants.
func (b *TableBuilder) Build() (*MoveTable, error) {
	t := &MoveTable{
		layout:  b.layout,
		moves:   make(map[string]Move),
		inverse: make(map[string]string),
	}

	for _, g := range b.gens {
		if err := b.validate(g); err != nil {
			return nil, err
		}
		axis := g.Axis.Normalize()
		texts := make(map[string]bool, len(g.Suffixes))
		for _, s := range g.Suffixes {
			texts[s.Text] = true
		}
		for _, s := range g.Suffixes {
			token := g.Name + s.Text
			if _, dup := t.moves[token]; dup {
				return nil, fmt.Errorf("%w: duplicate token %q", ErrInvalidTable, token)
			}
			if !texts[s.Inverse] {
				return nil, fmt.Errorf("%w: %q names undeclared inverse suffix %q", ErrInvalidTable, token, s.Inverse)
			}
			if s.Power < 0 {
				return nil, fmt.Errorf("%w: %q has negative power", ErrInvalidTable, token)
			}
			t.moves[token] = Move{
				Token: token,
				Delta: g.Delta.Power(s.Power),
				Axis:  axis,
				Angle: g.Angle * float64(s.Turns),
				Mask:  g.Mask,
			}
			t.inverse[token] = g.Name + s.Inverse
			t.order = append(t.order, token)
		}
	}
	return t, nil
}

func (b *TableBuilder) validate(g Generator) error {
	if g.Name == "" {
		return fmt.Errorf("%w: unnamed generator", ErrInvalidTable)
	}
	if len(g.Suffixes) == 0 {
		return fmt.Errorf("%w: generator %q has no suffixes", ErrInvalidTable, g.Name)
	}
	if !b.layout.sameShape(g.Delta.Layout()) {
		return fmt.Errorf("%w: generator %q delta built over another layout", ErrInvalidTable, g.Name)
	}
	for cat, row := range g.Mask {
		spec, ok := b.layout.Spec(cat)
		if !ok {
			return fmt.Errorf("%w: generator %q masks unknown category %q", ErrInvalidTable, g.Name, cat)
		}
		if len(row) != spec.Slots {
			return fmt.Errorf("%w: generator %q mask %q has %d slots, want %d",
				ErrInvalidTable, g.Name, cat, len(row), spec.Slots)
		}
	}
	return nil
}

// MustBuild is Build for static tables. Panics on error.
func (b *TableBuilder) MustBuild() *MoveTable {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// MoveTable maps tokens to moves. It is read only once built and safe for
// concurrent use.
type MoveTable struct {
	layout  Layout
	moves   map[string]Move
	inverse map[string]string
	order   []string
}

// Layout returns the layout the table was built over.
func (t *MoveTable) Layout() Layout {
	return t.layout
}

// Get looks up a token.
func (t *MoveTable) Get(token string) (Move, error) {
	m, ok := t.moves[token]
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, token)
	}
	return m, nil
}

// Tokens returns every token in declaration order.
func (t *MoveTable) Tokens() []string {
	return append([]string(nil), t.order...)
}

// Inverse returns the token undoing token.
func (t *MoveTable) Inverse(token string) (string, bool) {
	inv, ok := t.inverse[token]
	return inv, ok
}

// Len returns the number of tokens.
func (t *MoveTable) Len() int {
	return len(t.order)
}

// Plan resolves token against s: pieces come from the masked slots of the
// pre-move state.
func (t *MoveTable) Plan(s State, token string) (Plan, error) {
	m, err := t.Get(token)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Token: token,
		Motions: []Motion{{
			Axis:   m.Axis,
			Angle:  m.Angle,
			Pieces: m.Mask.Resolve(s),
		}},
		Next: s.Apply(m.Delta),
	}, nil
}

// LazyTable builds a table on first use and shares it process wide.
// A table that fails to build panics at first use.
func LazyTable(build func() (*MoveTable, error)) func() *MoveTable {
	return sync.OnceValue(func() *MoveTable {
		t, err := build()
		if err != nil {
			panic(err)
		}
		return t
	})
}
