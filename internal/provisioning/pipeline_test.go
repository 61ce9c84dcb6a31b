package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podup/podup/internal/config"
	"github.com/podup/podup/internal/platform/runpod"
)

// stubPhase is a scripted Phase for pipeline tests.
type stubPhase struct {
	name    string
	running StateName
	failed  StateName
	err     error
	calls   *[]string
}

func (p stubPhase) Name() string       { return p.name }
func (p stubPhase) Running() StateName { return p.running }
func (p stubPhase) Failed() StateName  { return p.failed }

func (p stubPhase) Provision(ctx *Context) error {
	if p.calls != nil {
		*p.calls = append(*p.calls, p.name)
	}
	return p.err
}

func pipelineContext(t *testing.T) *Context {
	t.Helper()
	spec := &config.PodSpec{PodName: "test pod"}
	ctx := NewContext(context.Background(), spec, config.LoadTimeouts(), &runpod.MockClient{}, NewMockObserver())
	return ctx
}

func TestRunPhases_AllSucceed_EndsInDone(t *testing.T) {
	ctx := pipelineContext(t)

	var calls []string
	phases := []Phase{
		stubPhase{name: "one", running: StateCreating, failed: StateCreateFailed, calls: &calls},
		stubPhase{name: "two", running: StateAwaitingNetwork, failed: StateNetworkTimeout, calls: &calls},
	}

	err := RunPhases(ctx, phases)

	require.NoError(t, err)
	assert.Equal(t, StateDone, ctx.State.Current)
	assert.Equal(t, []string{"one", "two"}, calls)
}

func TestRunPhases_FailureEntersPhaseFailureState(t *testing.T) {
	ctx := pipelineContext(t)
	boom := errors.New("boom")

	var calls []string
	phases := []Phase{
		stubPhase{name: "one", running: StateCreating, failed: StateCreateFailed, calls: &calls},
		stubPhase{name: "two", running: StateAwaitingNetwork, failed: StateNetworkTimeout, err: boom, calls: &calls},
		stubPhase{name: "three", running: StateSettingUp, failed: StateSetupFailed, calls: &calls},
	}

	err := RunPhases(ctx, phases)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "two phase failed")
	assert.Equal(t, StateNetworkTimeout, ctx.State.Current)
	assert.Equal(t, []string{"one", "two"}, calls, "phases after a failure must not run")
}

func TestRunPhases_EmitsStateEvents(t *testing.T) {
	ctx := pipelineContext(t)
	obs := ctx.Observer.(*MockObserver)

	phases := []Phase{
		stubPhase{name: "one", running: StateCreating, failed: StateCreateFailed},
		stubPhase{name: "two", running: StateAwaitingNetwork, failed: StateNetworkTimeout, err: errors.New("boom")},
	}

	_ = RunPhases(ctx, phases)

	entered := obs.eventsOfType(EventStateEntered)
	require.Len(t, entered, 2)
	assert.Equal(t, StateCreating, entered[0].State)
	assert.Equal(t, StateAwaitingNetwork, entered[1].State)

	failed := obs.eventsOfType(EventStateFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, StateNetworkTimeout, failed[0].State)
}
