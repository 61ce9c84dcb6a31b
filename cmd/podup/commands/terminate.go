package commands

import (
	"github.com/spf13/cobra"

	"github.com/podup/podup/cmd/podup/handlers"
)

// Terminate returns the command for terminating a pod.
//
// Termination is the user's explicit decision; provisioning failures
// never trigger it automatically.
func Terminate() *cobra.Command {
	var keepSSHConfig bool

	cmd := &cobra.Command{
		Use:   "terminate <pod-id>",
		Short: "Terminate a pod and remove its SSH alias",
		Long: `Terminate a pod.

The pod's Host block is also removed from your SSH config, unless
--keep-ssh-config is given. Use 'podup pods' to find pod ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Terminate(cmd.Context(), args[0], keepSSHConfig)
		},
	}

	cmd.Flags().BoolVar(&keepSSHConfig, "keep-ssh-config", false, "Leave the pod's Host block in the SSH config")

	return cmd
}
