package registration

import (
	"context"
	"errors"
	"maps"
	"sync"
)

// Registrar creates a user account upstream.
//
// Register returns nil on success, a *ValidationFailure when the user API
// rejected individual fields, and any other error otherwise.
type Registrar interface {
	Register(ctx context.Context, user NewUser) error
}

// RegistrarFunc adapts a function to Registrar.
type RegistrarFunc func(ctx context.Context, user NewUser) error

// Register calls f.
func (f RegistrarFunc) Register(ctx context.Context, user NewUser) error {
	return f(ctx, user)
}

// Snapshot is an immutable view of a controller used for rendering.
type Snapshot struct {
	Fields FormFields
	// Errors holds server-reported and cleared-on-edit messages keyed by field.
	Errors map[string]string
	State  State
	// MismatchKey is set when the password confirmation differs.
	MismatchKey string
	CanSubmit   bool
	// LastErr is the failure from the most recent submission, if any.
	LastErr error
}

// Error returns the message recorded for field.
func (s Snapshot) Error(field Field) string {
	return s.Errors[string(field)]
}

// Controller drives one sign-up form from idle to a resolved submission.
//
// A Controller is safe for concurrent use. The lock is never held while the
// registrar runs; the pending state alone keeps at most one request in flight.
type Controller struct {
	registrar Registrar

	mu      sync.Mutex
	fields  FormFields
	errors  map[string]string
	state   State
	lastErr error
}

// NewController returns an idle controller with empty fields.
func NewController(registrar Registrar) *Controller {
	return &Controller{
		registrar: registrar,
		errors:    map[string]string{},
		state:     StateIdle,
	}
}

// Snapshot returns the current form state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	mismatch, _ := Mismatch(c.fields.Password, c.fields.ConfirmPassword)
	return Snapshot{
		Fields:      c.fields,
		Errors:      maps.Clone(c.errors),
		State:       c.state,
		MismatchKey: mismatch,
		CanSubmit:   CanSubmit(c.fields, c.state),
		LastErr:     c.lastErr,
	}
}

// EditField stores value for field and clears any error reported for it.
//
// Edits are accepted while a submission is pending. A failed form returns to
// idle. Once the form succeeded it no longer changes.
func (c *Controller) EditField(field Field, value string) (Snapshot, error) {
	if _, ok := ParseField(string(field)); !ok {
		return c.Snapshot(), ErrUnknownField
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Terminal() {
		return c.snapshotLocked(), ErrSubmitted
	}
	c.fields = c.fields.With(field, value)
	delete(c.errors, string(field))
	if c.state == StateFailed {
		c.state = StateIdle
		c.lastErr = nil
	}
	return c.snapshotLocked(), nil
}

// Submit sends the form to the registrar once and records the outcome.
//
// It returns ErrSubmissionPending without calling the registrar when another
// submission is in flight and ErrCannotSubmit when the submit control is
// disabled. Upstream failures are not returned; they are reflected in the
// snapshot state and errors.
//
// The registrar runs on a context detached from ctx cancellation: once a
// request has been sent its result is always applied.
func (c *Controller) Submit(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	switch {
	case c.state == StatePending:
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrSubmissionPending
	case c.state.Terminal():
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrSubmitted
	case !CanSubmit(c.fields, c.state):
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrCannotSubmit
	}
	c.state = StatePending
	c.lastErr = nil
	user := c.fields.NewUser()
	registrar := c.registrar
	c.mu.Unlock()

	var err error
	if registrar == nil {
		err = &TransportFailure{Cause: errors.New("registrar is not configured")}
	} else {
		err = registrar.Register(context.WithoutCancel(ctx), user)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolveLocked(err)
	return c.snapshotLocked(), nil
}

func (c *Controller) resolveLocked(err error) {
	if err == nil {
		c.state = StateSucceeded
		c.errors = map[string]string{}
		return
	}
	c.state = StateFailed
	c.lastErr = err
	if fieldErrors, ok := AsValidationFailure(err); ok && fieldErrors != nil {
		c.errors = fieldErrors
		return
	}
	c.errors = map[string]string{}
}
