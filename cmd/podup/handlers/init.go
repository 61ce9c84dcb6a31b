package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/podup/podup/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive spec wizard.
	runWizard = config.RunWizard

	// writeSpecFile writes the spec to a file.
	writeSpecFile = config.WriteSpecFile
)

// Init runs the specification wizard and writes the result to a file.
//
// GPU types and network volumes are fetched from the account when an
// API key is available; without one the wizard falls back to free-form
// inputs. Discovery failures are downgraded to the same fallback so
// init works offline.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		return fmt.Errorf("%s already exists; move it away or pick another output with -o", outputPath)
	}

	printWelcome()

	gpuOptions, volumeOptions := discoverOptions(ctx)

	spec, err := runWizard(ctx, gpuOptions, volumeOptions)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeSpecFile(outputPath, spec); err != nil {
		return fmt.Errorf("failed to write spec: %w", err)
	}

	printInitSuccess(outputPath, spec)

	return nil
}

// discoverOptions queries the account for GPU types and network
// volumes. Both lists are best-effort.
func discoverOptions(ctx context.Context) ([]huh.Option[string], []huh.Option[string]) {
	api, err := apiClient()
	if err != nil {
		fmt.Printf("Note: %v; identifiers must be entered by hand.\n\n", err)
		return nil, nil
	}

	var gpuOptions, volumeOptions []huh.Option[string]
	if gpus, err := api.ListGPUTypes(ctx); err == nil {
		gpuOptions = config.GPUTypeOptions(gpus)
	}
	if volumes, err := api.ListNetworkVolumes(ctx); err == nil {
		volumeOptions = config.VolumeOptions(volumes)
	}
	return gpuOptions, volumeOptions
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("podup - GPU pods for remote development")
	fmt.Println("=======================================")
	fmt.Println()
	fmt.Println("This wizard creates a pod specification with sensible defaults.")
	fmt.Println("Edit the generated YAML any time; 'podup up' re-reads it on each run.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, spec *config.PodSpec) {
	fmt.Println()
	fmt.Println("Specification saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Pod Summary")
	fmt.Println("-----------")
	fmt.Printf("  Name:       %s\n", spec.PodName)
	fmt.Printf("  SSH alias:  %s\n", spec.SSHHostName())
	fmt.Printf("  GPU:        %d x %s\n", spec.GPUCount, spec.GPUType)
	if spec.NetworkVolumeID != "" {
		fmt.Printf("  Volume:     %s\n", spec.NetworkVolumeID)
	}
	if spec.DataCenterID != "" {
		fmt.Printf("  Location:   %s\n", spec.DataCenterID)
	}
	fmt.Printf("  Venv:       %s\n", spec.VenvPath)
	if len(spec.Extensions) > 0 {
		fmt.Printf("  Extensions: %d\n", len(spec.Extensions))
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. export RUNPOD_API_KEY=... (or put it in .env)")
	fmt.Printf("  2. podup up -c %s\n", outputPath)
	fmt.Printf("  3. ssh %s\n", spec.SSHHostName())
	fmt.Println()
}
