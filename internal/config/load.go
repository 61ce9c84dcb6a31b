package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the spec file looked up in the working directory
// when no path is given.
const DefaultFileName = "podup.yaml"

// LoadFile reads and parses a pod specification from a YAML file,
// applies defaults, and validates it.
func LoadFile(path string) (*PodSpec, error) {
	// #nosec G304 -- path is user-supplied on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var spec PodSpec
	if err := mapstructure.Decode(raw, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode spec: %w", err)
	}

	applyDefaults(&spec)

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("spec validation failed: %w", err)
	}
	return &spec, nil
}

// FindSpecFile resolves the spec path: an explicit path wins, else
// podup.yaml in the current directory.
func FindSpecFile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if _, err := os.Stat(DefaultFileName); err != nil {
		return "", fmt.Errorf("no spec file given and %s not found (run `podup init` to create one)", DefaultFileName)
	}
	return DefaultFileName, nil
}

func applyDefaults(spec *PodSpec) {
	if spec.GPUCount == 0 {
		spec.GPUCount = 1
	}
	if spec.CloudType == "" {
		spec.CloudType = "ALL"
	}
	if spec.VenvPath == "" {
		spec.VenvPath = "/workspace/.venv"
	}
	if spec.IdentityFile == "" {
		spec.IdentityFile = "~/.ssh/id_ed25519"
	}
}
