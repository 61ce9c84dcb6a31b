package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/podup/podup/internal/config"
	"github.com/podup/podup/internal/provisioning"
	"github.com/podup/podup/internal/setup"
)

// Factory function variables for up - can be replaced in tests.
var (
	// findSpecFile locates the pod specification file.
	findSpecFile = config.FindSpecFile

	// loadSpecFile loads and validates the pod specification.
	loadSpecFile = config.LoadFile

	// loadTimeouts loads timeout configuration from the environment.
	loadTimeouts = config.LoadTimeouts

	// provision runs the provisioning pipeline.
	provision = provisioning.Provision

	// newObserver creates the run observer.
	newObserver = func() provisioning.Observer {
		return provisioning.NewConsoleObserver()
	}

	// writeSettingsTemplate writes the editor settings template.
	writeSettingsTemplate = setup.WriteEditorSettingsTemplate
)

// Up provisions a GPU pod and prepares it for remote development.
//
// The workflow:
//  1. Loads and validates the pod specification (auto-detects podup.yaml)
//  2. Initializes the RunPod client using RUNPOD_API_KEY
//  3. Creates the pod and waits for its public SSH endpoint
//  4. Writes the Host alias into the SSH config
//  5. Waits for sshd and runs the two remote setup tracks
//  6. Prints the provisioning report
//
// The report is printed even when provisioning fails partway: a pod
// that exists keeps costing money, so the user always sees what was
// created and how to reach or terminate it.
func Up(ctx context.Context, configPath string) error {
	path, err := findSpecFile(configPath)
	if err != nil {
		return fmt.Errorf("no spec file found: %w\nRun 'podup init' to create one", err)
	}

	spec, err := loadSpecFile(path)
	if err != nil {
		return err
	}

	api, err := apiClient()
	if err != nil {
		return err
	}

	log.Printf("Provisioning pod: %s", spec.PodName)

	runID := uuid.NewString()[:8]
	observer := newObserver().WithFields(map[string]string{
		"run": runID,
		"pod": spec.SSHHostName(),
	})

	pctx := provisioning.NewContext(ctx, spec, loadTimeouts(), api, observer)
	report, provErr := provision(pctx)

	fmt.Print(renderReport(report))

	if provErr != nil {
		return provErr
	}

	if templatePath, err := writeSettingsTemplate(".", spec.VenvPath); err != nil {
		log.Printf("Warning: could not write editor settings template: %v", err)
	} else {
		fmt.Printf("  Editor settings template: %s\n\n", templatePath)
	}

	return nil
}
