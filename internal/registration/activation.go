package registration

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Activator activates an account upstream by token.
type Activator interface {
	Activate(ctx context.Context, token string) error
}

// ActivatorFunc adapts a function to Activator.
type ActivatorFunc func(ctx context.Context, token string) error

// Activate calls f.
func (f ActivatorFunc) Activate(ctx context.Context, token string) error {
	return f(ctx, token)
}

// ActivationState is the state of one activation attempt.
type ActivationState int

const (
	ActivationPending ActivationState = iota
	ActivationActivated
	ActivationFailed
)

func (s ActivationState) String() string {
	switch s {
	case ActivationPending:
		return "pending"
	case ActivationActivated:
		return "activated"
	case ActivationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Activation issues a single activation request for a token.
//
// It starts pending and resolves exactly once; later Run calls return the
// recorded outcome without contacting the activator again.
type Activation struct {
	token string

	once  sync.Once
	mu    sync.Mutex
	state ActivationState
	err   error
}

// NewActivation returns a pending activation for token.
func NewActivation(token string) *Activation {
	return &Activation{token: strings.TrimSpace(token)}
}

// Token returns the activation token.
func (a *Activation) Token() string {
	return a.token
}

// State returns the current activation state.
func (a *Activation) State() ActivationState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Err returns the failure recorded by Run, if any.
func (a *Activation) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Run performs the activation request and returns the resolved state.
func (a *Activation) Run(ctx context.Context, activator Activator) ActivationState {
	a.once.Do(func() {
		var err error
		switch {
		case a.token == "":
			err = &TransportFailure{Cause: errors.New("activation token is required")}
		case activator == nil:
			err = &TransportFailure{Cause: errors.New("activator is not configured")}
		default:
			err = activator.Activate(context.WithoutCancel(ctx), a.token)
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		if err != nil {
			a.state = ActivationFailed
			a.err = err
			return
		}
		a.state = ActivationActivated
	})
	return a.State()
}
