package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	PodReady     time.Duration // Total budget for the pod to report Running with a public IP
	SSHReady     time.Duration // Total budget for SSH to become reachable
	PollInterval time.Duration // Delay between readiness checks
	SSHDial      time.Duration // Single SSH connection attempt
	SetupCommand time.Duration // Single remote setup command
	MaxAttempts  int           // Upper bound on readiness checks per wait
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is
// used.
//
// Environment Variables:
//   - PODUP_TIMEOUT_POD_READY (default: 10m)
//   - PODUP_TIMEOUT_SSH_READY (default: 5m)
//   - PODUP_POLL_INTERVAL (default: 5s)
//   - PODUP_TIMEOUT_SSH_DIAL (default: 10s)
//   - PODUP_TIMEOUT_SETUP_COMMAND (default: 15m)
//   - PODUP_POLL_MAX_ATTEMPTS (default: 120)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		PodReady:     parseDuration("PODUP_TIMEOUT_POD_READY", 10*time.Minute),
		SSHReady:     parseDuration("PODUP_TIMEOUT_SSH_READY", 5*time.Minute),
		PollInterval: parseDuration("PODUP_POLL_INTERVAL", 5*time.Second),
		SSHDial:      parseDuration("PODUP_TIMEOUT_SSH_DIAL", 10*time.Second),
		SetupCommand: parseDuration("PODUP_TIMEOUT_SETUP_COMMAND", 15*time.Minute),
		MaxAttempts:  parseInt("PODUP_POLL_MAX_ATTEMPTS", 120),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is
// returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is
// returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
