package runpod

import "context"

// PodProvisioner defines the interface for pod lifecycle operations.
type PodProvisioner interface {
	// CreatePod creates a new on-demand pod. Creation is single-shot:
	// capacity and validation failures are returned to the caller
	// without retry.
	CreatePod(ctx context.Context, opts CreatePodOpts) (*Pod, error)

	// GetPod returns the pod with the given id, or nil if the API does
	// not know it (yet).
	GetPod(ctx context.Context, id string) (*Pod, error)

	// TerminatePod terminates the pod with the given id.
	TerminatePod(ctx context.Context, id string) error
}

// AccountReader defines read-only account queries.
type AccountReader interface {
	// GetSSHPublicKeys returns the public keys registered on the
	// account, in authorized_keys format.
	GetSSHPublicKeys(ctx context.Context) (string, error)

	// ListNetworkVolumes returns the account's network volumes.
	ListNetworkVolumes(ctx context.Context) ([]NetworkVolume, error)

	// ListGPUTypes returns all GPU types the provider knows about.
	ListGPUTypes(ctx context.Context) ([]GPUType, error)

	// ListPods returns the account's pods.
	ListPods(ctx context.Context) ([]Pod, error)
}

// Client combines all RunPod API interfaces.
type Client interface {
	PodProvisioner
	AccountReader
}
