package puzzle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-twisty/internal/perm"
)

// State is the immutable combinatorial state of a puzzle: one permutation
// per category of its layout. Slot i of a category holds the id of the
// piece currently sitting there.
type State struct {
	layout Layout
	perms  []perm.Permutation
}

// IdentityState returns the solved state of layout.
func IdentityState(l Layout) State {
	perms := make([]perm.Permutation, len(l))
	for i, c := range l {
		perms[i] = perm.Identity(c.Slots)
	}
	return State{layout: l, perms: perms}
}

// NewState builds a state from per-category slot sequences. Categories
// missing from seqs are the identity.
func NewState(l Layout, seqs map[Category][]int) (State, error) {
	s := IdentityState(l)
	for cat, seq := range seqs {
		i, ok := l.Index(cat)
		if !ok {
			return State{}, fmt.Errorf("puzzle: category %q not in layout", cat)
		}
		if len(seq) != l[i].Slots {
			return State{}, fmt.Errorf("puzzle: category %q has %d slots, got %d", cat, l[i].Slots, len(seq))
		}
		p, err := perm.Parse(seq)
		if err != nil {
			return State{}, fmt.Errorf("puzzle: category %q: %w", cat, err)
		}
		s.perms[i] = p
	}
	return s, nil
}

// MustState is NewState for static tables. Panics on error.
func MustState(l Layout, seqs map[Category][]int) State {
	s, err := NewState(l, seqs)
	if err != nil {
		panic(err)
	}
	return s
}

// Layout returns the layout the state was built over.
func (s State) Layout() Layout {
	return s.layout
}

// Apply returns the state reached by applying delta to s. Each category
// composes independently and s is left untouched.
// Panics if delta was built over a different layout.
func (s State) Apply(delta State) State {
	if !s.layout.sameShape(delta.layout) {
		panic("puzzle: apply across different layouts")
	}
	perms := make([]perm.Permutation, len(s.perms))
	for i := range s.perms {
		perms[i] = s.perms[i].Compose(delta.perms[i])
	}
	return State{layout: s.layout, perms: perms}
}

// Power applies s to the identity k times.
func (s State) Power(k int) State {
	perms := make([]perm.Permutation, len(s.perms))
	for i := range s.perms {
		perms[i] = s.perms[i].Power(k)
	}
	return State{layout: s.layout, perms: perms}
}

// Get returns the permutation of cat. Panics on an unknown category.
func (s State) Get(cat Category) perm.Permutation {
	i, ok := s.layout.Index(cat)
	if !ok {
		panic(fmt.Sprintf("puzzle: category %q not in layout", cat))
	}
	return s.perms[i]
}

// Occupant returns the physical piece sitting in slot of cat.
func (s State) Occupant(cat Category, slot int) int {
	i, ok := s.layout.Index(cat)
	if !ok {
		panic(fmt.Sprintf("puzzle: category %q not in layout", cat))
	}
	return s.layout[i].Owner(s.perms[i].At(slot))
}

// Resolve returns the distinct physical pieces occupying slots of cat,
// in slot order.
func (s State) Resolve(cat Category, slots []int) []PieceRef {
	seen := make(map[int]bool, len(slots))
	var out []PieceRef
	for _, slot := range slots {
		p := s.Occupant(cat, slot)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, PieceRef{Category: cat, Index: p})
	}
	return out
}

// Equal reports whether both states hold the same permutations.
func (s State) Equal(other State) bool {
	if !s.layout.sameShape(other.layout) {
		return false
	}
	for i := range s.perms {
		if !s.perms[i].Equal(other.perms[i]) {
			return false
		}
	}
	return true
}

// IsSolved reports whether every category is the identity.
func (s State) IsSolved() bool {
	for _, p := range s.perms {
		if !p.IsIdentity() {
			return false
		}
	}
	return true
}

func (s State) String() string {
	parts := make([]string, len(s.perms))
	for i, p := range s.perms {
		parts[i] = string(s.layout[i].Category) + "=" + p.String()
	}
	return strings.Join(parts, " ")
}
