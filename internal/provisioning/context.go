package provisioning

import (
	"context"

	"github.com/podup/podup/internal/config"
	"github.com/podup/podup/internal/platform/runpod"
	"github.com/podup/podup/internal/platform/ssh"
	"github.com/podup/podup/internal/sshconfig"
)

// Context carries everything a phase needs: the standard context for
// cancellation, the pod spec, timeouts, the RunPod API client, the
// shared state and the observer.
type Context struct {
	context.Context

	Spec     *config.PodSpec
	Timeouts *config.Timeouts
	API      runpod.Client
	State    *State
	Observer Observer

	// SSHConfigPath is the SSH client config file to upsert the host
	// alias into. Empty means the user default (~/.ssh/config).
	SSHConfigPath string

	// NewRemote builds the command channel to the pod once its SSH
	// endpoint is known. Tests substitute a fake here.
	NewRemote func(host string, port int) (Remote, error)

	remote Remote
}

// NewContext builds a provisioning context with production defaults.
func NewContext(ctx context.Context, spec *config.PodSpec, timeouts *config.Timeouts, api runpod.Client, obs Observer) *Context {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Context{
		Context:  ctx,
		Spec:     spec,
		Timeouts: timeouts,
		API:      api,
		State:    NewState(),
		Observer: obs,
		NewRemote: func(host string, port int) (Remote, error) {
			return ssh.NewClient(&ssh.Config{
				Host:         host,
				Port:         port,
				IdentityFile: spec.IdentityFile,
				DialTimeout:  timeouts.SSHDial,
			})
		},
	}
}

// Remote returns the command channel to the pod, creating it on first
// use from the endpoint recorded in the state.
func (c *Context) Remote() (Remote, error) {
	if c.remote != nil {
		return c.remote, nil
	}
	r, err := c.NewRemote(c.State.SSHIP, c.State.SSHPort)
	if err != nil {
		return nil, err
	}
	c.remote = r
	return r, nil
}

// ConfigPath returns the SSH config path to write to.
func (c *Context) ConfigPath() (string, error) {
	if c.SSHConfigPath != "" {
		return c.SSHConfigPath, nil
	}
	return sshconfig.DefaultPath()
}
