package puzzle

import (
	"context"
	"sync"
)

// Status is the outcome of a Rotate call.
type Status int

const (
	StatusPending Status = iota
	// StatusCompleted means the move was applied and its animation, if
	// any, has finished.
	StatusCompleted
	// StatusRejected means the puzzle was busy and the move had no effect
	// on the state.
	StatusRejected
	// StatusCanceled means the puzzle was disposed while the move was
	// animating. The state change had already been committed.
	StatusCanceled
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	case StatusRejected:
		return "rejected"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Completion resolves exactly once when a rotation finishes or is
// rejected. It is safe to wait on from another goroutine.
type Completion struct {
	token  string
	done   chan struct{}
	once   sync.Once
	mu     sync.Mutex
	status Status
}

func newCompletion(token string) *Completion {
	return &Completion{token: token, done: make(chan struct{})}
}

func resolved(token string, status Status) *Completion {
	c := newCompletion(token)
	c.resolve(status)
	return c
}

func (c *Completion) resolve(status Status) {
	c.once.Do(func() {
		c.mu.Lock()
		c.status = status
		c.mu.Unlock()
		close(c.done)
	})
}

// Token returns the move this completion belongs to.
func (c *Completion) Token() string {
	return c.token
}

// Done returns a channel closed on resolution.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Status returns the current status.
func (c *Completion) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Resolved reports whether the completion has resolved.
func (c *Completion) Resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Rejected reports whether the rotation was rejected.
func (c *Completion) Rejected() bool {
	return c.Status() == StatusRejected
}

// Wait blocks until resolution or until ctx is done. The puzzle must be
// ticked from another goroutine for an animated move to resolve.
func (c *Completion) Wait(ctx context.Context) (Status, error) {
	select {
	case <-c.done:
		return c.Status(), nil
	case <-ctx.Done():
		return StatusPending, ctx.Err()
	}
}
