package provisioning

import (
	"context"
	"fmt"

	"github.com/podup/podup/internal/platform/runpod"
	"github.com/podup/podup/internal/util/poll"
)

// sshEndpoint is what the network wait produces: the public address
// mapped to the pod's SSH daemon.
type sshEndpoint struct {
	IP   string
	Port int
}

// NetworkPhase polls the API until the pod reports a public SSH
// endpoint. Transient API errors and incomplete pods count as
// not-ready; a pod that lands in a terminal non-running status aborts
// the wait immediately.
type NetworkPhase struct{}

func (NetworkPhase) Name() string       { return "network" }
func (NetworkPhase) Running() StateName { return StateAwaitingNetwork }
func (NetworkPhase) Failed() StateName  { return StateNetworkTimeout }

func (NetworkPhase) Provision(ctx *Context) error {
	podID := ctx.State.Pod.ID

	check := func(cctx context.Context) poll.Status[sshEndpoint] {
		ctx.State.NetworkAttempts++

		pod, err := ctx.API.GetPod(cctx, podID)
		if err != nil {
			// The API flaking does not mean the pod is gone.
			ctx.Observer.Event(Event{
				Type:     EventPodPolling,
				State:    StateAwaitingNetwork,
				Resource: podID,
				Message:  fmt.Sprintf("poll %d: %v", ctx.State.NetworkAttempts, err),
			})
			return poll.NotReady[sshEndpoint]()
		}
		if pod == nil {
			return poll.NotReady[sshEndpoint]()
		}
		ctx.State.Pod = pod

		if pod.DesiredStatus.Terminal() {
			return poll.Failed[sshEndpoint](fmt.Errorf("pod %s entered status %s while waiting for network", podID, pod.DesiredStatus))
		}

		if ip, port, ok := pod.SSHEndpoint(); ok && pod.DesiredStatus == runpod.StatusRunning {
			return poll.Ready(sshEndpoint{IP: ip, Port: port})
		}

		ctx.Observer.Event(Event{
			Type:     EventPodPolling,
			State:    StateAwaitingNetwork,
			Resource: podID,
			Message:  fmt.Sprintf("poll %d: status=%s, no public SSH endpoint yet", ctx.State.NetworkAttempts, pod.DesiredStatus),
		})
		return poll.NotReady[sshEndpoint]()
	}

	ep, err := poll.Until(ctx, check,
		poll.WithInterval(ctx.Timeouts.PollInterval),
		poll.WithTimeout(ctx.Timeouts.PodReady),
		poll.WithMaxAttempts(ctx.Timeouts.MaxAttempts),
	)
	if err != nil {
		return err
	}

	ctx.State.SSHIP = ep.IP
	ctx.State.SSHPort = ep.Port

	ctx.Observer.Event(Event{
		Type:     EventPodReady,
		State:    StateAwaitingNetwork,
		Resource: podID,
		Message:  fmt.Sprintf("SSH endpoint %s:%d up after %d polls", ep.IP, ep.Port, ctx.State.NetworkAttempts),
	})
	return nil
}
