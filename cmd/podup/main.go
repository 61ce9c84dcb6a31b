// Package main is the entry point for the podup CLI.
//
// podup provisions GPU pods on RunPod and gets them ready for remote
// development: it creates the pod, waits for its public SSH endpoint,
// writes an SSH host alias, and prepares the Python environment and
// editor extensions on the remote.
//
// Commands: up, init, gpus, datacenters, pods, terminate.
//
// For detailed usage information, run:
//
//	podup --help
package main

import (
	"fmt"
	"os"

	"github.com/podup/podup/cmd/podup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
