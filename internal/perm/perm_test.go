package perm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeConvention(t *testing.T) {
	p := New(2, 0, 1)
	q := New(1, 2, 0)

	// result[i] = p[q[i]]
	require.Equal(t, []int{0, 1, 2}, p.Compose(q).Sequence())
	require.Equal(t, []int{1, 0, 2}, New(0, 1, 2).Compose(New(1, 0, 2)).Sequence())
	require.Equal(t, []int{3, 1, 0, 2}, New(3, 2, 1, 0).Compose(New(0, 2, 3, 1)).Sequence())
}

func TestComposeLeavesOperandsUntouched(t *testing.T) {
	p := New(1, 2, 0)
	q := New(2, 1, 0)
	_ = p.Compose(q)

	require.Equal(t, []int{1, 2, 0}, p.Sequence())
	require.Equal(t, []int{2, 1, 0}, q.Sequence())
}

func TestComposeLengthMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		Identity(3).Compose(Identity(4))
	})
}

func TestNewRejectsNonBijection(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
	}{
		{"duplicate", []int{0, 0, 1}},
		{"out of range", []int{0, 1, 3}},
		{"negative", []int{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() { New(tt.seq...) })
			_, err := Parse(tt.seq)
			require.Error(t, err)
		})
	}
}

func TestSequenceIsCopy(t *testing.T) {
	p := New(1, 0)
	s := p.Sequence()
	s[0] = 0
	require.Equal(t, 1, p.At(0))
}

func TestPowerAndInverse(t *testing.T) {
	cycle := New(1, 2, 3, 0)

	require.True(t, cycle.Power(0).IsIdentity())
	require.True(t, cycle.Power(4).IsIdentity())
	require.False(t, cycle.Power(2).IsIdentity())
	require.True(t, cycle.Power(3).Equal(cycle.Inverse()))
	require.True(t, cycle.Compose(cycle.Inverse()).IsIdentity())
	require.True(t, cycle.Inverse().Compose(cycle).IsIdentity())
}

func TestString(t *testing.T) {
	require.Equal(t, "[2 0 1]", New(2, 0, 1).String())
}
