// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/podup/podup/internal/platform/runpod"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadDotenv loads a .env file from the working directory.
	loadDotenv = godotenv.Load

	// getenv reads an environment variable.
	getenv = os.Getenv

	// newAPIClient creates a RunPod API client.
	newAPIClient = func(apiKey string) runpod.Client {
		return runpod.NewRealClient(apiKey)
	}
)

// apiClient builds an API client from the environment. A .env file in
// the working directory is honored but never required.
func apiClient() (runpod.Client, error) {
	_ = loadDotenv()

	key := getenv("RUNPOD_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("RUNPOD_API_KEY is not set; export it or put it in a .env file")
	}
	return newAPIClient(key), nil
}
