// Package state tracks the protocol lifecycle of a client connection as a
// finite state machine. The machine is observational: it records which phase
// the session is in and logs traffic that arrives out of order, but it never
// blocks a request. Responses stay a pure function of method and params.
package state

// file: internal/mcp/state/state.go

import (
	"context"

	"github.com/cockroachdb/errors"
	lfsm "github.com/looplab/fsm"

	"github.com/DiscreteTom/shinkuro-go/internal/logging"
)

// Lifecycle phases of a client session.
const (
	PhaseUninitialized = "uninitialized"
	PhaseInitializing  = "initializing"
	PhaseReady         = "ready"
)

// Lifecycle events driven by protocol messages.
const (
	eventInitialize  = "initialize"
	eventInitialized = "initialized"
)

// Lifecycle is the session state machine. Safe for concurrent use; the
// underlying machine serializes its own transitions.
type Lifecycle struct {
	machine *lfsm.FSM
	logger  logging.Logger
}

// NewLifecycle creates a session lifecycle machine in the uninitialized phase.
func NewLifecycle(logger logging.Logger) *Lifecycle {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	machine := lfsm.NewFSM(
		PhaseUninitialized,
		lfsm.Events{
			{Name: eventInitialize, Src: []string{PhaseUninitialized}, Dst: PhaseInitializing},
			{Name: eventInitialized, Src: []string{PhaseInitializing}, Dst: PhaseReady},
		},
		lfsm.Callbacks{},
	)
	return &Lifecycle{
		machine: machine,
		logger:  logger.WithField("component", "lifecycle"),
	}
}

// Phase returns the current lifecycle phase.
func (l *Lifecycle) Phase() string {
	return l.machine.Current()
}

// Observe records a protocol message against the lifecycle. Handshake
// messages drive transitions; anything else arriving before the session is
// ready is logged as out of order. Observe never rejects a message.
func (l *Lifecycle) Observe(ctx context.Context, method string) {
	switch method {
	case "initialize":
		l.fire(ctx, eventInitialize, method)
	case "notifications/initialized":
		l.fire(ctx, eventInitialized, method)
	default:
		if phase := l.machine.Current(); phase != PhaseReady {
			l.logger.Debug("Message received before the session handshake completed.",
				"method", method, "phase", phase)
		}
	}
}

// fire attempts a lifecycle transition and logs failures instead of
// propagating them.
func (l *Lifecycle) fire(ctx context.Context, event, method string) {
	if err := l.machine.Event(ctx, event); err != nil {
		var invalidErr lfsm.InvalidEventError
		var noTransitionErr lfsm.NoTransitionError
		if errors.As(err, &invalidErr) || errors.As(err, &noTransitionErr) {
			l.logger.Debug("Out-of-order lifecycle message.",
				"method", method, "phase", l.machine.Current())
			return
		}
		l.logger.Warn("Lifecycle transition failed.", "method", method, "error", err)
		return
	}
	l.logger.Debug("Lifecycle phase changed.", "method", method, "phase", l.machine.Current())
}
