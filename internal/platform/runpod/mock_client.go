package runpod

import "context"

// MockClient is a mock implementation of Client. Each method delegates
// to the corresponding Func field when set and returns a benign
// default otherwise.
//
// It lives in a non-test file so tests in other packages (provisioning,
// the command handlers) can share it; production code never constructs
// one.
type MockClient struct {
	CreatePodFunc          func(ctx context.Context, opts CreatePodOpts) (*Pod, error)
	GetPodFunc             func(ctx context.Context, id string) (*Pod, error)
	TerminatePodFunc       func(ctx context.Context, id string) error
	GetSSHPublicKeysFunc   func(ctx context.Context) (string, error)
	ListNetworkVolumesFunc func(ctx context.Context) ([]NetworkVolume, error)
	ListGPUTypesFunc       func(ctx context.Context) ([]GPUType, error)
	ListPodsFunc           func(ctx context.Context) ([]Pod, error)
}

var _ Client = (*MockClient)(nil)

// CreatePod mocks pod creation.
func (m *MockClient) CreatePod(ctx context.Context, opts CreatePodOpts) (*Pod, error) {
	if m.CreatePodFunc != nil {
		return m.CreatePodFunc(ctx, opts)
	}
	return &Pod{ID: "mock-pod", Name: opts.Name, DesiredStatus: StatusRunning}, nil
}

// GetPod mocks pod lookup.
func (m *MockClient) GetPod(ctx context.Context, id string) (*Pod, error) {
	if m.GetPodFunc != nil {
		return m.GetPodFunc(ctx, id)
	}
	return &Pod{ID: id, DesiredStatus: StatusRunning}, nil
}

// TerminatePod mocks pod termination.
func (m *MockClient) TerminatePod(ctx context.Context, id string) error {
	if m.TerminatePodFunc != nil {
		return m.TerminatePodFunc(ctx, id)
	}
	return nil
}

// GetSSHPublicKeys mocks key retrieval.
func (m *MockClient) GetSSHPublicKeys(ctx context.Context) (string, error) {
	if m.GetSSHPublicKeysFunc != nil {
		return m.GetSSHPublicKeysFunc(ctx)
	}
	return "ssh-ed25519 AAAA mock@host", nil
}

// ListNetworkVolumes mocks volume listing.
func (m *MockClient) ListNetworkVolumes(ctx context.Context) ([]NetworkVolume, error) {
	if m.ListNetworkVolumesFunc != nil {
		return m.ListNetworkVolumesFunc(ctx)
	}
	return nil, nil
}

// ListGPUTypes mocks GPU type listing.
func (m *MockClient) ListGPUTypes(ctx context.Context) ([]GPUType, error) {
	if m.ListGPUTypesFunc != nil {
		return m.ListGPUTypesFunc(ctx)
	}
	return nil, nil
}

// ListPods mocks pod listing.
func (m *MockClient) ListPods(ctx context.Context) ([]Pod, error) {
	if m.ListPodsFunc != nil {
		return m.ListPodsFunc(ctx)
	}
	return nil, nil
}
