package config

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/podup/podup/internal/platform/runpod"
)

// GPUTypeOptions builds wizard select options from the provider's GPU
// listing, sorted by display name. Returns nil when the listing is
// empty, in which case the wizard falls back to a free-form input.
func GPUTypeOptions(gpus []runpod.GPUType) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, gpu := range gpus {
		label := fmt.Sprintf("%s (%d GB)", gpu.DisplayName, gpu.MemoryInGb)
		opts = append(opts, huh.NewOption(label, gpu.ID))
	}
	sort.Slice(opts, func(i, j int) bool {
		return opts[i].Key < opts[j].Key
	})
	return opts
}

// VolumeOptions builds wizard select options from the account's
// network volumes. An explicit "none" option is always included.
func VolumeOptions(volumes []runpod.NetworkVolume) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("none (pin a datacenter instead)", "")}
	for _, vol := range volumes {
		label := fmt.Sprintf("%s (%s, %d GB)", vol.Name, vol.DataCenterID, vol.Size)
		opts = append(opts, huh.NewOption(label, vol.ID))
	}
	return opts
}

// RunWizard collects a pod specification interactively. gpuOptions and
// volumeOptions may be nil when the API was not reachable; the
// affected questions degrade to free-form inputs.
func RunWizard(ctx context.Context, gpuOptions []huh.Option[string], volumeOptions []huh.Option[string]) (*PodSpec, error) {
	spec := &PodSpec{}
	gpuCount := "1"
	extensions := ""

	fields := []huh.Field{
		huh.NewInput().
			Title("Pod name").
			Description("Display name; the SSH alias replaces spaces with dashes").
			Validate(requireNonEmpty("pod name")).
			Value(&spec.PodName),
	}

	if len(gpuOptions) > 0 {
		fields = append(fields, huh.NewSelect[string]().
			Title("GPU type").
			Options(gpuOptions...).
			Value(&spec.GPUType))
	} else {
		fields = append(fields, huh.NewInput().
			Title("GPU type id").
			Description("Exact provider identifier, e.g. NVIDIA A100 80GB PCIe").
			Validate(requireNonEmpty("gpu type")).
			Value(&spec.GPUType))
	}

	fields = append(fields,
		huh.NewInput().
			Title("GPU count").
			Validate(func(s string) error {
				n, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil || n < 1 {
					return fmt.Errorf("must be a positive integer")
				}
				return nil
			}).
			Value(&gpuCount),
		huh.NewInput().
			Title("Template id").
			Validate(requireNonEmpty("template id")).
			Value(&spec.TemplateID),
	)

	if len(volumeOptions) > 0 {
		fields = append(fields, huh.NewSelect[string]().
			Title("Network volume").
			Options(volumeOptions...).
			Value(&spec.NetworkVolumeID))
	} else {
		fields = append(fields, huh.NewInput().
			Title("Network volume id (optional)").
			Value(&spec.NetworkVolumeID))
	}

	fields = append(fields,
		huh.NewInput().
			Title("Datacenter id (optional)").
			Description("Leave empty to derive from the network volume").
			Value(&spec.DataCenterID),
		huh.NewInput().
			Title("Virtualenv path").
			Placeholder("/workspace/.venv").
			Value(&spec.VenvPath),
		huh.NewInput().
			Title("Requirements file (optional remote path)").
			Value(&spec.RequirementsFile),
		huh.NewText().
			Title("VS Code extensions (one per line, optional)").
			Value(&extensions),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard aborted: %w", err)
	}

	spec.GPUCount, _ = strconv.Atoi(strings.TrimSpace(gpuCount))
	for _, line := range strings.Split(extensions, "\n") {
		if ext := strings.TrimSpace(line); ext != "" {
			spec.Extensions = append(spec.Extensions, ext)
		}
	}
	applyDefaults(spec)

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func requireNonEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", what)
		}
		return nil
	}
}

// WriteSpecFile marshals the spec to YAML at path. Fails if the file
// already exists; an existing spec is never overwritten silently.
func WriteSpecFile(path string, spec *PodSpec) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := marshalSpec(spec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- spec holds no secrets
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
