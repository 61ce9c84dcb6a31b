package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const specHeader = `# podup pod specification
# Discover gpu_type values with: podup gpus
# Discover datacenters and volumes with: podup datacenters
`

// marshalSpec renders a spec as commented YAML.
func marshalSpec(spec *PodSpec) ([]byte, error) {
	body, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal spec: %w", err)
	}
	return append([]byte(specHeader), body...), nil
}
