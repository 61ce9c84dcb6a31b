package commands

import (
	"github.com/spf13/cobra"

	"github.com/podup/podup/cmd/podup/handlers"
)

// Init returns the command for interactively creating a pod
// specification.
//
// This command guides users through creating a podup.yaml using an
// interactive wizard. GPU types and network volumes are fetched from
// the account when an API key is available, so the prompts offer real
// choices instead of free-form identifiers.
//
// Flags:
//
//	--output, -o: Path to output file (default "podup.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a pod specification",
		Long: `Interactively create a pod specification file.

This command asks about:

  - Pod identity (name)
  - GPU type and count
  - Pod template
  - Storage (network volume or datacenter)
  - Python environment (venv path, requirements file)
  - Editor extensions to install

With RUNPOD_API_KEY set, GPU types and network volumes are listed
from your account. Without it, identifiers are entered by hand.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "podup.yaml", "Path to output file")

	return cmd
}
