package commands

import (
	"github.com/spf13/cobra"

	"github.com/podup/podup/cmd/podup/handlers"
)

// Datacenters returns the command listing the account's network
// volumes and their datacenters.
func Datacenters() *cobra.Command {
	return &cobra.Command{
		Use:   "datacenters",
		Short: "List your network volumes and their datacenters",
		Long: `List the network volumes on your account.

A pod attached to a network volume is placed in the volume's
datacenter, so this doubles as the list of usable locations for
volume-backed pods.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Datacenters(cmd.Context())
		},
	}
}
