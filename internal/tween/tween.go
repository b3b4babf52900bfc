// Package tween interpolates a vector of values over wall-clock time.
//
// A Tween does not own a clock. The host calls Update with the current time
// on every frame (a bubbletea tick, a time.Ticker, or a synthetic clock in
// tests). The first Update after Start fixes the start time; once the
// duration has elapsed the values snap exactly to the target, the update
// callback runs one last time and the completion callback runs once.
package tween

import (
	"time"
)

// State is the lifecycle phase of a Tween.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateComplete
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// DefaultDuration is used when Duration is never called.
const DefaultDuration = time.Second

// Tween animates values from a start vector to an end vector.
type Tween struct {
	from     []float64
	to       []float64
	values   []float64
	duration time.Duration
	easing   EasingFunc

	onUpdate   func(values []float64)
	onComplete func()

	state     State
	startTime time.Time
	started   bool // startTime has been fixed by the first Update
}

// New creates an idle tween from `from` to `to`.
// Panics if the vectors differ in length.
func New(from, to []float64) *Tween {
	if len(from) != len(to) {
		panic("tween: from and to differ in length")
	}
	return &Tween{
		from:     append([]float64(nil), from...),
		to:       append([]float64(nil), to...),
		values:   append([]float64(nil), from...),
		duration: DefaultDuration,
		easing:   Linear,
	}
}

// Duration sets the animation length.
func (t *Tween) Duration(d time.Duration) *Tween {
	t.duration = d
	return t
}

// Easing sets the easing function. Nil keeps the current one.
func (t *Tween) Easing(f EasingFunc) *Tween {
	if f != nil {
		t.easing = f
	}
	return t
}

// OnUpdate registers a callback invoked after every Update with the
// current values. The slice is reused between calls.
func (t *Tween) OnUpdate(f func(values []float64)) *Tween {
	t.onUpdate = f
	return t
}

// OnComplete registers a callback invoked exactly once, after the final
// update.
func (t *Tween) OnComplete(f func()) *Tween {
	t.onComplete = f
	return t
}

// Start begins the animation. Starting a tween that is running or
// complete has no effect.
func (t *Tween) Start() *Tween {
	if t.state != StateIdle {
		return t
	}
	t.state = StateRunning
	return t
}

// Update advances the animation to now. It is a no-op unless running.
func (t *Tween) Update(now time.Time) {
	if t.state != StateRunning {
		return
	}
	if !t.started {
		t.startTime = now
		t.started = true
	}

	elapsed := now.Sub(t.startTime)
	if elapsed >= t.duration {
		copy(t.values, t.to)
		if t.onUpdate != nil {
			t.onUpdate(t.values)
		}
		t.complete()
		return
	}

	y := t.easing(float64(elapsed) / float64(t.duration))
	for i := range t.values {
		t.values[i] = t.from[i] + (t.to[i]-t.from[i])*y
	}
	if t.onUpdate != nil {
		t.onUpdate(t.values)
	}
}

func (t *Tween) complete() {
	t.state = StateComplete
	if t.onComplete != nil {
		t.onComplete()
	}
}

// State returns the current lifecycle phase.
func (t *Tween) State() State {
	return t.state
}
