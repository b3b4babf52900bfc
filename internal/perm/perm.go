// Package perm implements immutable permutations of the slot indices
// {0..N-1}. A permutation records, for every slot, which piece currently
// sits there; composing two permutations applies a move to a state.
package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// Permutation is an immutable bijection on {0..Len()-1}.
// The zero value is the empty permutation.
type Permutation struct {
	seq []int
}

// New creates a permutation from the given slot sequence.
// Panics if seq is not a bijection on {0..len(seq)-1}.
func New(seq ...int) Permutation {
	if err := validate(seq); err != nil {
		panic(err)
	}
	return Permutation{seq: append([]int(nil), seq...)}
}

// Parse creates a permutation from seq, returning an error instead of
// panicking when seq is not a bijection.
func Parse(seq []int) (Permutation, error) {
	if err := validate(seq); err != nil {
		return Permutation{}, err
	}
	return Permutation{seq: append([]int(nil), seq...)}, nil
}

// Identity returns the identity permutation of length n.
func Identity(n int) Permutation {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return Permutation{seq: seq}
}

func validate(seq []int) error {
	seen := make([]bool, len(seq))
	for i, v := range seq {
		if v < 0 || v >= len(seq) {
			return fmt.Errorf("perm: slot %d holds %d, out of range [0,%d)", i, v, len(seq))
		}
		if seen[v] {
			return fmt.Errorf("perm: value %d appears twice", v)
		}
		seen[v] = true
	}
	return nil
}

// Len returns the number of slots.
func (p Permutation) Len() int {
	return len(p.seq)
}

// At returns the value held in slot i.
func (p Permutation) At(i int) int {
	return p.seq[i]
}

// Sequence returns a copy of the slot sequence.
func (p Permutation) Sequence() []int {
	return append([]int(nil), p.seq...)
}

// Compose returns p applied through other: result[i] = p[other[i]].
// Composing a state with a move delta yields the post-move state.
// Panics if the lengths differ.
func (p Permutation) Compose(other Permutation) Permutation {
	if len(p.seq) != len(other.seq) {
		panic(fmt.Sprintf("perm: compose length mismatch %d != %d", len(p.seq), len(other.seq)))
	}
	out := make([]int, len(p.seq))
	for i, j := range other.seq {
		out[i] = p.seq[j]
	}
	return Permutation{seq: out}
}

// Power composes p with itself k times. Power(0) is the identity.
// Panics on negative k.
func (p Permutation) Power(k int) Permutation {
	if k < 0 {
		panic("perm: negative power")
	}
	out := Identity(len(p.seq))
	for range k {
		out = out.Compose(p)
	}
	return out
}

// Inverse returns q such that p.Compose(q) is the identity.
func (p Permutation) Inverse() Permutation {
	out := make([]int, len(p.seq))
	for i, v := range p.seq {
		out[v] = i
	}
	return Permutation{seq: out}
}

// Equal reports whether p and other hold the same sequence.
func (p Permutation) Equal(other Permutation) bool {
	if len(p.seq) != len(other.seq) {
		return false
	}
	for i := range p.seq {
		if p.seq[i] != other.seq[i] {
			return false
		}
	}
	return true
}

// IsIdentity reports whether every slot holds its own index.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.seq {
		if i != v {
			return false
		}
	}
	return true
}

func (p Permutation) String() string {
	parts := make([]string, len(p.seq))
	for i, v := range p.seq {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
