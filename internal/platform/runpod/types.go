package runpod

// Status is a pod's lifecycle status as reported by the API.
type Status string

const (
	StatusRunning    Status = "RUNNING"
	StatusExited     Status = "EXITED"
	StatusTerminated Status = "TERMINATED"
	StatusFailed     Status = "FAILED"
)

// Terminal reports whether the status is one a pod cannot leave.
// Polling a pod in a terminal non-running state is pointless.
func (s Status) Terminal() bool {
	return s == StatusExited || s == StatusTerminated || s == StatusFailed
}

// Pod is a provisioned GPU instance.
type Pod struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	DesiredStatus  Status   `json:"desiredStatus"`
	ImageName      string   `json:"imageName"`
	GPUDisplayName string   `json:"-"`
	Machine        *Machine `json:"machine"`
	Runtime        *Runtime `json:"runtime"`
}

// Machine carries machine-level metadata for a pod.
type Machine struct {
	GPUDisplayName string `json:"gpuDisplayName"`
}

// Runtime is present only once the pod's container is up.
type Runtime struct {
	UptimeInSeconds int    `json:"uptimeInSeconds"`
	Ports           []Port `json:"ports"`
}

// Port is a single exposed port mapping.
type Port struct {
	IP          string `json:"ip"`
	IsIPPublic  bool   `json:"isIpPublic"`
	PrivatePort int    `json:"privatePort"`
	PublicPort  int    `json:"publicPort"`
	Type        string `json:"type"`
}

// SSHEndpoint returns the public IP and port mapped to the pod's SSH
// daemon. ok is false until the runtime reports a public mapping for
// private port 22.
func (p *Pod) SSHEndpoint() (ip string, port int, ok bool) {
	if p == nil || p.Runtime == nil {
		return "", 0, false
	}
	for _, pt := range p.Runtime.Ports {
		if pt.PrivatePort == 22 && pt.IsIPPublic {
			return pt.IP, pt.PublicPort, true
		}
	}
	return "", 0, false
}

// GPUType describes an available GPU model.
type GPUType struct {
	ID             string `json:"id"`
	DisplayName    string `json:"displayName"`
	MemoryInGb     int    `json:"memoryInGb"`
	CommunityCloud bool   `json:"communityCloud"`
	SecureCloud    bool   `json:"secureCloud"`
}

// NetworkVolume is a persistent volume pinned to a datacenter.
type NetworkVolume struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DataCenterID string `json:"dataCenterId"`
	Size         int    `json:"size"`
}

// EnvVar is a key/value environment variable injected at creation.
type EnvVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CreatePodOpts holds all parameters for creating a pod.
//
// PublicKey is mandatory: injecting the account's SSH public keys as
// the PUBLIC_KEY environment variable is the only mechanism by which
// API-created pods get SSH access.
type CreatePodOpts struct {
	Name            string
	GPUTypeID       string
	GPUCount        int
	TemplateID      string
	NetworkVolumeID string
	DataCenterID    string
	CloudType       string
	PublicKey       string
}
