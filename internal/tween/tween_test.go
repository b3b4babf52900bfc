package tween

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTweenReachesExactTarget(t *testing.T) {
	target := -math.Pi / 2
	var last []float64
	completions := 0

	tw := New([]float64{0}, []float64{target}).
		Duration(500 * time.Millisecond).
		Easing(EaseInOutQuad).
		OnUpdate(func(v []float64) { last = append(last[:0], v...) }).
		OnComplete(func() { completions++ }).
		Start()

	base := time.Unix(0, 0)
	for ms := 0; ms <= 600; ms += 16 {
		tw.Update(base.Add(time.Duration(ms) * time.Millisecond))
	}

	require.Equal(t, StateComplete, tw.State())
	require.Equal(t, 1, completions)
	require.Equal(t, target, last[0])
}

func TestTweenFirstUpdateFixesStartTime(t *testing.T) {
	var got []float64
	tw := New([]float64{0, 10}, []float64{100, 20}).
		Duration(100 * time.Millisecond).
		OnUpdate(func(v []float64) { got = append(got[:0], v...) }).
		Start()

	base := time.Unix(1000, 0)
	tw.Update(base)
	require.Equal(t, []float64{0, 10}, got)

	tw.Update(base.Add(50 * time.Millisecond))
	require.InDelta(t, 50, got[0], 1e-9)
	require.InDelta(t, 15, got[1], 1e-9)
	require.Equal(t, StateRunning, tw.State())
}

func TestTweenDoubleStartIsNoop(t *testing.T) {
	completions := 0
	tw := New([]float64{0}, []float64{1}).
		Duration(10 * time.Millisecond).
		OnComplete(func() { completions++ })

	tw.Start()
	tw.Start()
	require.Equal(t, StateRunning, tw.State())

	base := time.Unix(0, 0)
	tw.Update(base)
	tw.Start()
	tw.Update(base.Add(20 * time.Millisecond))
	tw.Update(base.Add(30 * time.Millisecond))
	tw.Start()

	require.Equal(t, StateComplete, tw.State())
	require.Equal(t, 1, completions)
}

func TestTweenUpdateBeforeStartIsIgnored(t *testing.T) {
	updates := 0
	tw := New([]float64{0}, []float64{1}).OnUpdate(func([]float64) { updates++ })
	tw.Update(time.Now())

	require.Zero(t, updates)
	require.Equal(t, StateIdle, tw.State())
}

func TestZeroDurationCompletesOnFirstUpdate(t *testing.T) {
	done := false
	var got []float64
	tw := New([]float64{3}, []float64{7}).
		Duration(0).
		OnUpdate(func(v []float64) { got = append([]float64(nil), v...) }).
		OnComplete(func() { done = true }).
		Start()
	tw.Update(time.Now())

	require.True(t, done)
	require.Equal(t, []float64{7}, got)
}

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		t.Run(name, func(t *testing.T) {
			f, err := EasingByName(name)
			require.NoError(t, err)
			require.InDelta(t, 0, f(0), 1e-12)
			require.InDelta(t, 1, f(1), 1e-12)
			require.InDelta(t, 0.5, f(0.5), 1e-12)
		})
	}
}

func TestEasingByNameUnknown(t *testing.T) {
	_, err := EasingByName("bounce")
	require.Error(t, err)
}
