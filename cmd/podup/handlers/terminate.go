package handlers

import (
	"context"
	"fmt"

	"github.com/podup/podup/internal/config"
	"github.com/podup/podup/internal/sshconfig"
)

// Factory function variables for terminate - can be replaced in tests.
var (
	// sshConfigPath resolves the SSH config file.
	sshConfigPath = sshconfig.DefaultPath

	// removeSSHEntry removes a Host block from the SSH config.
	removeSSHEntry = sshconfig.Remove
)

// Terminate terminates a pod and removes its SSH alias.
//
// The alias is derived from the pod's name the same way provisioning
// derived it, so the block written by 'podup up' is the one removed.
// A failed alias removal is reported but does not fail the command:
// the pod is already gone and a stale Host block is harmless.
func Terminate(ctx context.Context, podID string, keepSSHConfig bool) error {
	api, err := apiClient()
	if err != nil {
		return err
	}

	pod, err := api.GetPod(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to look up pod %s: %w", podID, err)
	}

	if err := api.TerminatePod(ctx, podID); err != nil {
		return fmt.Errorf("failed to terminate pod %s: %w", podID, err)
	}
	fmt.Printf("Pod %s terminated.\n", podID)

	if keepSSHConfig || pod == nil || pod.Name == "" {
		return nil
	}

	alias := config.SSHSafeName(pod.Name)
	path, err := sshConfigPath()
	if err != nil {
		fmt.Printf("Warning: could not resolve SSH config: %v\n", err)
		return nil
	}
	if err := removeSSHEntry(path, alias); err != nil {
		fmt.Printf("Warning: could not remove Host %s from %s: %v\n", alias, path, err)
		return nil
	}
	fmt.Printf("Removed Host %s from %s.\n", alias, path)
	return nil
}
