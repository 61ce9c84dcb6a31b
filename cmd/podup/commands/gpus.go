package commands

import (
	"github.com/spf13/cobra"

	"github.com/podup/podup/cmd/podup/handlers"
)

// Gpus returns the command listing available GPU types.
func Gpus() *cobra.Command {
	return &cobra.Command{
		Use:   "gpus",
		Short: "List available GPU types",
		Long: `List the GPU types the provider offers.

The identifier in the first column is the value to use for gpu_type
in the pod specification.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Gpus(cmd.Context())
		},
	}
}
