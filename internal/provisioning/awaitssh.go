package provisioning

import (
	"context"
	"fmt"

	"github.com/podup/podup/internal/util/poll"
)

// AwaitSSHPhase waits for the pod's SSH daemon to accept connections.
// The instance being network-ready does not mean sshd is up; the gap
// is usually seconds but can be minutes on slow image pulls.
type AwaitSSHPhase struct{}

func (AwaitSSHPhase) Name() string       { return "await-ssh" }
func (AwaitSSHPhase) Running() StateName { return StateAwaitingSSH }
func (AwaitSSHPhase) Failed() StateName  { return StateSSHTimeout }

func (AwaitSSHPhase) Provision(ctx *Context) error {
	remote, err := ctx.Remote()
	if err != nil {
		return fmt.Errorf("failed to build SSH client: %w", err)
	}

	check := func(cctx context.Context) poll.Status[struct{}] {
		ctx.State.SSHAttempts++
		if err := remote.Ping(cctx); err != nil {
			return poll.NotReady[struct{}]()
		}
		return poll.Ready(struct{}{})
	}

	if _, err := poll.Until(ctx, check,
		poll.WithInterval(ctx.Timeouts.PollInterval),
		poll.WithTimeout(ctx.Timeouts.SSHReady),
		poll.WithMaxAttempts(ctx.Timeouts.MaxAttempts),
	); err != nil {
		return fmt.Errorf("pod %s never became reachable at %s:%d: %w", ctx.State.Pod.ID, ctx.State.SSHIP, ctx.State.SSHPort, err)
	}

	ctx.Observer.Printf("SSH reachable at %s:%d after %d attempts", ctx.State.SSHIP, ctx.State.SSHPort, ctx.State.SSHAttempts)
	return nil
}
