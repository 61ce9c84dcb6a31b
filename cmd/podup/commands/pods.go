package commands

import (
	"github.com/spf13/cobra"

	"github.com/podup/podup/cmd/podup/handlers"
)

// Pods returns the command listing the account's pods.
func Pods() *cobra.Command {
	return &cobra.Command{
		Use:   "pods",
		Short: "List your pods",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Pods(cmd.Context())
		},
	}
}
