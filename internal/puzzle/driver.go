package puzzle

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-twisty/internal/tween"
)

// Driver implements Puzzle for any Variant. It is not safe for concurrent
// use; the host calls Rotate and Tick from one goroutine.
type Driver struct {
	variant Variant
	scene   Scene
	opts    Options

	state    State
	busy     bool
	disposed bool

	active  *tween.Tween
	pending *Completion
}

// NewDriver creates a puzzle in the solved state. A nil scene discards
// rotations.
func NewDriver(v Variant, scene Scene, opts Options) *Driver {
	if scene == nil {
		scene = NopScene{}
	}
	if opts.Easing == nil {
		opts.Easing = tween.EaseInOutQuad
	}
	if opts.Speed < 0 {
		opts.Speed = 0
	}
	return &Driver{
		variant: v,
		scene:   scene,
		opts:    opts,
		state:   IdentityState(v.Layout),
	}
}

func (d *Driver) ID() string    { return d.variant.ID }
func (d *Driver) Title() string { return d.variant.Title }

// Rotate resolves token against the current state, commits the next state
// and either rotates the pieces at once or starts an animation.
func (d *Driver) Rotate(token string, animated bool) (*Completion, error) {
	if d.disposed {
		return nil, ErrDisposed
	}
	if d.busy {
		d.debug("move rejected, busy", "token", token)
		return resolved(token, StatusRejected), nil
	}

	plan, err := d.variant.Planner.Plan(d.state, token)
	if err != nil {
		d.debug("move failed", "token", token, "err", err)
		return nil, fmt.Errorf("%s: rotate: %w", d.variant.ID, err)
	}
	d.state = plan.Next

	if !animated || d.opts.Speed == 0 || len(plan.Motions) == 0 {
		for _, m := range plan.Motions {
			d.rotate(m, m.Angle)
		}
		d.debug("move applied", "token", token)
		return resolved(token, StatusCompleted), nil
	}

	from := make([]float64, len(plan.Motions))
	to := make([]float64, len(plan.Motions))
	for i, m := range plan.Motions {
		to[i] = m.Angle
	}
	applied := make([]float64, len(plan.Motions))
	c := newCompletion(token)

	d.busy = true
	d.pending = c
	d.active = tween.New(from, to).
		Duration(d.opts.Speed).
		Easing(d.opts.Easing).
		OnUpdate(func(values []float64) {
			for i, m := range plan.Motions {
				delta := values[i] - applied[i]
				applied[i] = values[i]
				if delta != 0 {
					d.rotate(m, delta)
				}
			}
		}).
		OnComplete(func() {
			d.busy = false
			d.active = nil
			d.pending = nil
			d.debug("move animated", "token", token)
			c.resolve(StatusCompleted)
		}).
		Start()

	return c, nil
}

func (d *Driver) rotate(m Motion, delta float64) {
	for _, p := range m.Pieces {
		d.scene.RotatePiece(p.Category, p.Index, m.Axis, delta)
	}
}

// Tick advances the in-flight animation.
func (d *Driver) Tick(now time.Time) {
	if d.active != nil {
		d.active.Update(now)
	}
}

// Reset restores the solved state and piece orientations unless a move is
// in flight.
func (d *Driver) Reset() {
	if d.busy || d.disposed {
		return
	}
	d.state = IdentityState(d.variant.Layout)
	d.scene.ResetPieces()
}

func (d *Driver) Moves() []string {
	return append([]string(nil), d.variant.Moves...)
}

func (d *Driver) Inverse(token string) (string, bool) {
	if d.variant.Inverse == nil {
		return "", false
	}
	return d.variant.Inverse(token)
}

func (d *Driver) SetSpeed(speed time.Duration) {
	if speed < 0 {
		speed = 0
	}
	d.opts.Speed = speed
}

func (d *Driver) SetEasing(f tween.EasingFunc) {
	if f != nil {
		d.opts.Easing = f
	}
}

// Speed returns the configured animation duration.
func (d *Driver) Speed() time.Duration {
	return d.opts.Speed
}

func (d *Driver) State() State           { return d.state }
func (d *Driver) Busy() bool             { return d.busy }
func (d *Driver) NormalizesPrimes() bool { return d.variant.NormalizesPrimes }
func (d *Driver) Pieces() []PieceInfo    { return append([]PieceInfo(nil), d.variant.Pieces...) }
func (d *Driver) Layout() Layout         { return d.variant.Layout }
func (d *Driver) Options() Options       { return d.opts }

// Dispose stops any animation. A pending completion resolves as canceled
// so waiters are released.
func (d *Driver) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.active = nil
	d.busy = false
	if d.pending != nil {
		d.pending.resolve(StatusCanceled)
		d.pending = nil
	}
}

func (d *Driver) debug(msg string, keyvals ...any) {
	if d.opts.Logger == nil {
		return
	}
	d.opts.Logger.Debug(msg, append([]any{"puzzle", d.variant.ID}, keyvals...)...)
}
