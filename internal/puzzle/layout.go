package puzzle

// Category names a class of physical pieces. Permutations of different
// categories never cross-index.
type Category string

// Categories used by the built-in variants.
const (
	CategoryCenter        Category = "center"
	CategoryCorner        Category = "corner"
	CategoryEdge          Category = "edge"
	CategoryCore          Category = "core"
	CategoryCornerAndEdge Category = "cornerAndEdge"
)

// CategorySpec describes one category of a puzzle layout.
type CategorySpec struct {
	Category Category
	Slots    int

	// Owners maps a semantic slot to the physical piece that owns it.
	// Nil means slot i belongs to piece i. A piece may own several slots
	// (the square's corners span two 30 degree slots).
	Owners []int
}

// Pieces returns the number of physical pieces in the category.
func (c CategorySpec) Pieces() int {
	if c.Owners == nil {
		return c.Slots
	}
	n := 0
	for _, o := range c.Owners {
		if o+1 > n {
			n = o + 1
		}
	}
	return n
}

// Owner returns the piece that owns slot in the solved state.
func (c CategorySpec) Owner(slot int) int {
	if c.Owners == nil {
		return slot
	}
	return c.Owners[slot]
}

// Layout is the ordered list of categories of a variant.
type Layout []CategorySpec

// Index returns the position of cat in the layout.
func (l Layout) Index(cat Category) (int, bool) {
	for i, c := range l {
		if c.Category == cat {
			return i, true
		}
	}
	return -1, false
}

// Spec returns the category description for cat.
func (l Layout) Spec(cat Category) (CategorySpec, bool) {
	i, ok := l.Index(cat)
	if !ok {
		return CategorySpec{}, false
	}
	return l[i], true
}

// Categories returns the category names in layout order.
func (l Layout) Categories() []Category {
	out := make([]Category, len(l))
	for i, c := range l {
		out[i] = c.Category
	}
	return out
}

func (l Layout) sameShape(other Layout) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i].Category != other[i].Category || l[i].Slots != other[i].Slots {
			return false
		}
	}
	return true
}
