package provisioning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/podup/podup/internal/setup"
	"github.com/podup/podup/internal/util/async"
)

// SetupPhase runs the two remote setup tracks concurrently: the
// Python environment build and the editor extension install. The
// tracks are independent; neither waits for or cancels the other. An
// environment failure fails the phase, extension problems degrade to
// a recorded warning.
type SetupPhase struct{}

func (SetupPhase) Name() string       { return "setup" }
func (SetupPhase) Running() StateName { return StateSettingUp }
func (SetupPhase) Failed() StateName  { return StateSetupFailed }

func (SetupPhase) Provision(ctx *Context) error {
	remote, err := ctx.Remote()
	if err != nil {
		return fmt.Errorf("failed to build SSH client: %w", err)
	}
	exec := &timeoutExecutor{remote: remote, timeout: ctx.Timeouts.SetupCommand}

	tasks := []async.Task{
		{Name: "environment", Func: func(tctx context.Context) error {
			return runEnvironmentTrack(ctx, tctx, exec)
		}},
		{Name: "extensions", Func: func(tctx context.Context) error {
			return runExtensionTrack(ctx, tctx, exec)
		}},
	}

	outcomes := async.Join(ctx, tasks)
	return async.FirstError(outcomes)
}

// runEnvironmentTrack builds the remote virtualenv. Its results go
// into the state even on failure so the report can show how far the
// sequence got.
func runEnvironmentTrack(ctx *Context, tctx context.Context, exec setup.Executor) error {
	commands := setup.EnvironmentCommands(ctx.Spec.VenvPath, ctx.Spec.RequirementsFile)
	results, err := setup.NewRunner(exec).Run(tctx, commands)
	ctx.State.SetupResults = results
	ctx.State.SetupErr = err

	for _, r := range results {
		ctx.Observer.Event(Event{
			Type:    EventSetupCommand,
			State:   StateSettingUp,
			Message: fmt.Sprintf("exit %d: %s", r.ExitCode, r.Command),
		})
	}
	return err
}

// runExtensionTrack installs editor extensions. A missing code-server
// and individual install failures are recorded as warnings, never as
// phase errors.
func runExtensionTrack(ctx *Context, tctx context.Context, exec setup.Executor) error {
	results, err := setup.NewInstaller(exec).Install(tctx, ctx.Spec.Extensions)
	ctx.State.ExtensionResults = results

	switch {
	case errors.Is(err, setup.ErrCodeServerUnavailable):
		ctx.State.ExtensionWarning = err.Error()
	case err != nil:
		ctx.State.ExtensionWarning = fmt.Sprintf("extension installation aborted: %v", err)
	default:
		failed := 0
		for _, r := range results {
			if !r.Installed {
				failed++
			}
		}
		if failed > 0 {
			ctx.State.ExtensionWarning = fmt.Sprintf("%d of %d extensions failed to install", failed, len(results))
		}
	}

	if ctx.State.ExtensionWarning != "" {
		ctx.Observer.Event(Event{
			Type:    EventSetupWarning,
			State:   StateSettingUp,
			Message: ctx.State.ExtensionWarning,
		})
	}
	return nil
}

// timeoutExecutor bounds each remote command with its own deadline.
type timeoutExecutor struct {
	remote  Remote
	timeout time.Duration
}

func (t *timeoutExecutor) Execute(ctx context.Context, command string) (string, int, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	return t.remote.Execute(ctx, command)
}
