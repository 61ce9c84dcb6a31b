package commands

import (
	"github.com/spf13/cobra"

	"github.com/podup/podup/cmd/podup/handlers"
)

// Up returns the command for provisioning a GPU pod.
//
// This command handles the complete provisioning workflow: loading the
// pod specification, creating the pod, waiting for its public SSH
// endpoint, writing the SSH host alias, and running remote setup.
//
// Optional flags:
//
//	--config, -c: Path to pod specification YAML file (default: auto-detect podup.yaml)
//
// Environment variables:
//
//	RUNPOD_API_KEY: RunPod API key (required, also read from .env)
func Up() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create a pod and get it ready for remote development",
		Long: `Create a GPU pod and get it ready for remote development.

This command creates the pod on RunPod, waits until it is reachable
over SSH, writes a Host alias into your SSH config, builds the Python
virtual environment on the remote, and installs your editor extensions.

If no config file is specified, it looks for podup.yaml in the current
directory. Use 'podup init' to create one.

Examples:
  # Provision using podup.yaml in current directory
  podup up

  # Provision using a specific spec file
  podup up -c trainer.yaml

  # Re-run after a setup failure; the pod is reused via its SSH alias
  podup up`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to pod specification file (default: podup.yaml)")

	return cmd
}
