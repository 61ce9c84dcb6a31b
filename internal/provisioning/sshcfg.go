package provisioning

import (
	"fmt"

	"github.com/podup/podup/internal/sshconfig"
)

// SSHConfigPhase upserts the host alias for the pod into the local
// SSH client configuration. The write is idempotent and leaves every
// unrelated Host block untouched, so a crash between write and
// connect only costs a rewrite of the same block on the next run.
type SSHConfigPhase struct{}

func (SSHConfigPhase) Name() string       { return "ssh-config" }
func (SSHConfigPhase) Running() StateName { return StateConfiguringSSH }
func (SSHConfigPhase) Failed() StateName  { return StateConfigFailed }

func (SSHConfigPhase) Provision(ctx *Context) error {
	path, err := ctx.ConfigPath()
	if err != nil {
		return err
	}

	alias := ctx.Spec.SSHHostName()
	entry := sshconfig.Entry{
		Alias:        alias,
		HostName:     ctx.State.SSHIP,
		Port:         ctx.State.SSHPort,
		User:         "root",
		IdentityFile: ctx.Spec.IdentityFile,
	}

	if err := sshconfig.Upsert(path, entry); err != nil {
		return fmt.Errorf("failed to update %s: %w", path, err)
	}
	ctx.State.Alias = alias

	ctx.Observer.Event(Event{
		Type:     EventConfigWritten,
		State:    StateConfiguringSSH,
		Resource: alias,
		Message:  fmt.Sprintf("host %s -> %s:%d written to %s", alias, ctx.State.SSHIP, ctx.State.SSHPort, path),
	})
	return nil
}
