package provisioning

import (
	"fmt"
	"strings"

	"github.com/podup/podup/internal/platform/runpod"
)

// CreatePhase resolves the deployment parameters and sends the pod
// deploy request. Creation is single-shot: capacity and validation
// failures end the run in CreateFailed without a retry.
type CreatePhase struct{}

func (CreatePhase) Name() string       { return "create" }
func (CreatePhase) Running() StateName { return StateCreating }
func (CreatePhase) Failed() StateName  { return StateCreateFailed }

func (CreatePhase) Provision(ctx *Context) error {
	spec := ctx.Spec

	publicKey, err := ctx.API.GetSSHPublicKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch account SSH keys: %w", err)
	}
	if strings.TrimSpace(publicKey) == "" {
		return fmt.Errorf("no SSH public key registered on the account; add one in the provider console first")
	}

	dataCenter := spec.DataCenterID
	if dataCenter == "" && spec.NetworkVolumeID != "" {
		dataCenter, err = resolveVolumeDataCenter(ctx, spec.NetworkVolumeID)
		if err != nil {
			return err
		}
	}
	ctx.State.DataCenter = dataCenter

	ctx.Observer.Event(Event{
		Type:     EventPodCreating,
		State:    StateCreating,
		Resource: spec.PodName,
		Message:  fmt.Sprintf("deploying %dx %s", spec.GPUCount, spec.GPUType),
		Fields:   map[string]string{"datacenter": dataCenter},
	})

	pod, err := ctx.API.CreatePod(ctx, ctx.createOpts(publicKey, dataCenter))
	if err != nil {
		return err
	}
	ctx.State.Pod = pod

	ctx.Observer.Event(Event{
		Type:     EventPodCreated,
		State:    StateCreating,
		Resource: pod.ID,
		Message:  "deploy request accepted",
	})
	return nil
}

func (c *Context) createOpts(publicKey, dataCenter string) runpod.CreatePodOpts {
	return runpod.CreatePodOpts{
		Name:            c.Spec.PodName,
		GPUTypeID:       c.Spec.GPUType,
		GPUCount:        c.Spec.GPUCount,
		TemplateID:      c.Spec.TemplateID,
		NetworkVolumeID: c.Spec.NetworkVolumeID,
		DataCenterID:    dataCenter,
		CloudType:       c.Spec.CloudType,
		PublicKey:       publicKey,
	}
}

// resolveVolumeDataCenter derives the datacenter from the network
// volume's location so the pod lands next to its storage.
func resolveVolumeDataCenter(ctx *Context, volumeID string) (string, error) {
	volumes, err := ctx.API.ListNetworkVolumes(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list network volumes: %w", err)
	}
	for _, v := range volumes {
		if v.ID == volumeID {
			return v.DataCenterID, nil
		}
	}
	return "", fmt.Errorf("network volume %q not found on account", volumeID)
}
