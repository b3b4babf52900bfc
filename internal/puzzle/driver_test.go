package puzzle

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-twisty/internal/tween"
)

type recorder struct {
	total  map[PieceRef]float64
	calls  int
	resets int
}

func newRecorder() *recorder {
	return &recorder{total: map[PieceRef]float64{}}
}

func (r *recorder) RotatePiece(cat Category, piece int, _ Vec3, delta float64) {
	r.total[PieceRef{Category: cat, Index: piece}] += delta
	r.calls++
}

func (r *recorder) ResetPieces() { r.resets++ }

func ringVariant() Variant {
	table := NewTableBuilder(ringLayout).Add(ringGenerator()).MustBuild()
	return Variant{
		ID:      "ring",
		Title:   "Ring",
		Layout:  ringLayout,
		Planner: table,
		Moves:   table.Tokens(),
		Inverse: table.Inverse,
	}
}

func tickUntilIdle(t *testing.T, d *Driver, start time.Time) time.Time {
	t.Helper()
	now := start
	for i := 0; d.Busy(); i++ {
		require.Less(t, i, 1000, "animation never finished")
		now = now.Add(16 * time.Millisecond)
		d.Tick(now)
	}
	return now
}

func TestRotateUnanimated(t *testing.T) {
	rec := newRecorder()
	d := NewDriver(ringVariant(), rec, DefaultOptions())

	c, err := d.Rotate("R", false)
	require.NoError(t, err)
	require.True(t, c.Resolved())
	require.Equal(t, StatusCompleted, c.Status())
	require.False(t, d.Busy())
	require.Equal(t, []int{3, 0, 1, 2}, d.State().Get(CategoryCorner).Sequence())
	require.Equal(t, 4, rec.calls)
	for i := range 4 {
		require.InDelta(t, -math.Pi/2, rec.total[PieceRef{CategoryCorner, i}], 1e-12)
	}
}

func TestRotateAnimatedReachesExactAngle(t *testing.T) {
	rec := newRecorder()
	d := NewDriver(ringVariant(), rec, DefaultOptions())

	c, err := d.Rotate("R2", true)
	require.NoError(t, err)
	require.False(t, c.Resolved())
	require.True(t, d.Busy())

	tickUntilIdle(t, d, time.Unix(0, 0))

	require.True(t, c.Resolved())
	require.Equal(t, StatusCompleted, c.Status())
	for i := range 4 {
		require.InDelta(t, -math.Pi, rec.total[PieceRef{CategoryCorner, i}], 1e-9)
	}
}

func TestBusyRotateIsRejectedWithoutStateChange(t *testing.T) {
	d := NewDriver(ringVariant(), nil, DefaultOptions())

	first, err := d.Rotate("R", true)
	require.NoError(t, err)
	afterFirst := d.State()

	second, err := d.Rotate("R", true)
	require.NoError(t, err)
	require.True(t, second.Resolved())
	require.True(t, second.Rejected())
	require.True(t, d.State().Equal(afterFirst))

	tickUntilIdle(t, d, time.Unix(0, 0))
	require.Equal(t, StatusCompleted, first.Status())
	require.Equal(t, []int{3, 0, 1, 2}, d.State().Get(CategoryCorner).Sequence())
}

func TestRotateUnknownToken(t *testing.T) {
	d := NewDriver(ringVariant(), nil, DefaultOptions())

	_, err := d.Rotate("Q", true)
	require.True(t, errors.Is(err, ErrUnknownMove))
	require.False(t, d.Busy())
	require.True(t, d.State().IsSolved())
}

func TestResetIgnoredWhileBusy(t *testing.T) {
	rec := newRecorder()
	d := NewDriver(ringVariant(), rec, DefaultOptions())

	_, err := d.Rotate("R", true)
	require.NoError(t, err)
	d.Reset()
	require.Zero(t, rec.resets)
	require.False(t, d.State().IsSolved())

	tickUntilIdle(t, d, time.Unix(0, 0))
	d.Reset()
	d.Reset()
	require.Equal(t, 2, rec.resets)
	require.True(t, d.State().IsSolved())
}

func TestSetSpeedAffectsNextMove(t *testing.T) {
	d := NewDriver(ringVariant(), nil, DefaultOptions())
	d.SetSpeed(100 * time.Millisecond)
	d.SetEasing(tween.Linear)

	_, err := d.Rotate("R", true)
	require.NoError(t, err)

	start := time.Unix(0, 0)
	d.Tick(start)
	d.Tick(start.Add(99 * time.Millisecond))
	require.True(t, d.Busy())
	d.Tick(start.Add(100 * time.Millisecond))
	require.False(t, d.Busy())
}

func TestZeroSpeedAppliesImmediately(t *testing.T) {
	opts := DefaultOptions()
	opts.Speed = 0
	d := NewDriver(ringVariant(), nil, opts)

	c, err := d.Rotate("R", true)
	require.NoError(t, err)
	require.True(t, c.Resolved())
	require.False(t, d.Busy())
}

func TestDisposeReleasesWaiters(t *testing.T) {
	d := NewDriver(ringVariant(), nil, DefaultOptions())

	c, err := d.Rotate("R", true)
	require.NoError(t, err)
	d.Dispose()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	status, err := c.Wait(ctx)
	require.NoError(t, err)
	require.Equal(t, StatusCanceled, status)

	_, err = d.Rotate("R", false)
	require.ErrorIs(t, err, ErrDisposed)
}

func TestCompletionWaitHonorsContext(t *testing.T) {
	d := NewDriver(ringVariant(), nil, DefaultOptions())
	c, err := d.Rotate("R", true)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	status, err := c.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, StatusPending, status)
}
