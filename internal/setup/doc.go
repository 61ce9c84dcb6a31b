// Package setup prepares a freshly provisioned pod for development:
// building the Python environment over SSH and installing editor
// extensions against the remote code server. The two tracks are
// independent and are run concurrently by the orchestrator.
package setup
