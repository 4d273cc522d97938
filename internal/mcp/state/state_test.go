// Package state tests the session lifecycle machine.
package state

// file: internal/mcp/state/state_test.go

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DiscreteTom/shinkuro-go/internal/logging"
)

// TestLifecycle_HandshakeAdvancesPhases verifies the happy-path transitions.
func TestLifecycle_HandshakeAdvancesPhases(t *testing.T) {
	l := NewLifecycle(logging.GetNoopLogger())
	ctx := context.Background()

	assert.Equal(t, PhaseUninitialized, l.Phase())

	l.Observe(ctx, "initialize")
	assert.Equal(t, PhaseInitializing, l.Phase())

	l.Observe(ctx, "notifications/initialized")
	assert.Equal(t, PhaseReady, l.Phase())
}

// TestLifecycle_OutOfOrderMessages_DoNotChangePhase verifies the machine is
// purely observational.
func TestLifecycle_OutOfOrderMessages_DoNotChangePhase(t *testing.T) {
	l := NewLifecycle(logging.GetNoopLogger())
	ctx := context.Background()

	// Initialized before initialize is ignored.
	l.Observe(ctx, "notifications/initialized")
	assert.Equal(t, PhaseUninitialized, l.Phase())

	// Regular traffic never drives transitions.
	l.Observe(ctx, "prompts/list")
	assert.Equal(t, PhaseUninitialized, l.Phase())

	// A repeated initialize after the handshake stays in ready.
	l.Observe(ctx, "initialize")
	l.Observe(ctx, "notifications/initialized")
	l.Observe(ctx, "initialize")
	assert.Equal(t, PhaseReady, l.Phase())
}
