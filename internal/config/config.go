package config

import (
	"fmt"
	"path"
	"strings"
)

// PodSpec holds the user-supplied pod specification. It is created
// once per run from a validated YAML file and read-only thereafter.
type PodSpec struct {
	// PodName is the display name of the pod. The SSH host alias is
	// derived from it via SSHHostName.
	PodName string `mapstructure:"pod_name" yaml:"pod_name"`

	// GPUType is the provider's exact GPU type identifier, e.g.
	// "NVIDIA A100 80GB PCIe". Use `podup gpus` to discover values.
	GPUType string `mapstructure:"gpu_type" yaml:"gpu_type"`

	// GPUCount is the number of GPUs to attach. Default: 1.
	GPUCount int `mapstructure:"num_gpus" yaml:"num_gpus"`

	// DiskSpaceGB is advisory; with a template the template controls
	// the container disk.
	DiskSpaceGB int `mapstructure:"disk_space_gb" yaml:"disk_space_gb,omitempty"`

	// TemplateID identifies the pod template to deploy.
	TemplateID string `mapstructure:"template_id" yaml:"template_id"`

	// NetworkVolumeID optionally attaches a network volume. When set
	// and DataCenterID is empty, the datacenter is derived from the
	// volume's location.
	NetworkVolumeID string `mapstructure:"network_volume_id" yaml:"network_volume_id,omitempty"`

	// DataCenterID optionally pins the pod to a datacenter. Used
	// verbatim when present.
	DataCenterID string `mapstructure:"datacenter_id" yaml:"datacenter_id,omitempty"`

	// CloudType selects the provider cloud tier. Default: ALL.
	CloudType string `mapstructure:"cloud_type" yaml:"cloud_type,omitempty"`

	// VenvPath is the absolute remote path of the Python virtual
	// environment to create. Default: /workspace/.venv.
	VenvPath string `mapstructure:"venv_path" yaml:"venv_path"`

	// RequirementsFile is an optional absolute remote path to a pip
	// requirements file. When empty, dependency installation is
	// skipped.
	RequirementsFile string `mapstructure:"requirements_file" yaml:"requirements_file,omitempty"`

	// Extensions lists VS Code extension identifiers to install on the
	// remote editor server. May be empty.
	Extensions []string `mapstructure:"vscode_extensions" yaml:"vscode_extensions,omitempty"`

	// IdentityFile is the local SSH private key used to reach the pod.
	// Default: ~/.ssh/id_ed25519.
	IdentityFile string `mapstructure:"identity_file" yaml:"identity_file,omitempty"`
}

// SSHHostName returns the SSH-safe host alias derived from the pod
// name: every whitespace run becomes a single dash. The derivation is
// a pure function; the pod name itself is never mutated.
func (s *PodSpec) SSHHostName() string {
	return SSHSafeName(s.PodName)
}

// SSHSafeName collapses every whitespace run in name into a single
// dash. Terminate re-derives the alias from the provider's pod name,
// so it must use the same derivation as SSHHostName.
func SSHSafeName(name string) string {
	return strings.Join(strings.Fields(name), "-")
}

// Validate checks the spec for the invariants the orchestrator relies
// on.
func (s *PodSpec) Validate() error {
	if strings.TrimSpace(s.PodName) == "" {
		return fmt.Errorf("pod_name is required")
	}
	if s.GPUType == "" {
		return fmt.Errorf("gpu_type is required (run `podup gpus` to list identifiers)")
	}
	if s.GPUCount < 1 {
		return fmt.Errorf("num_gpus must be a positive integer, got %d", s.GPUCount)
	}
	if s.TemplateID == "" {
		return fmt.Errorf("template_id is required")
	}
	if s.NetworkVolumeID == "" && s.DataCenterID == "" {
		return fmt.Errorf("either network_volume_id or datacenter_id must be set")
	}
	if !path.IsAbs(s.VenvPath) {
		return fmt.Errorf("venv_path must be an absolute remote path, got %q", s.VenvPath)
	}
	if s.RequirementsFile != "" && !path.IsAbs(s.RequirementsFile) {
		return fmt.Errorf("requirements_file must be an absolute remote path, got %q", s.RequirementsFile)
	}
	return nil
}
