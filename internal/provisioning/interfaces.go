package provisioning

import "context"

// Phase represents a single step of the provisioning pipeline. Each
// phase declares the state it runs in and the failure state it
// transitions to on error; the pipeline performs the transitions.
type Phase interface {
	// Name returns a short human-readable phase name.
	Name() string

	// Running returns the state the machine is in while the phase runs.
	Running() StateName

	// Failed returns the absorbing state entered when the phase errors.
	Failed() StateName

	// Provision executes the phase, reading from and writing to the
	// shared state carried by ctx.
	Provision(ctx *Context) error
}

// Remote is a command channel to a provisioned pod. A Remote is
// created once the SSH endpoint is known and is reused by the
// readiness probe and both setup tracks.
type Remote interface {
	// Ping verifies reachability by establishing and closing a
	// connection without running a command.
	Ping(ctx context.Context) error

	// Execute runs a command and returns its combined output and exit
	// code. A non-zero exit code is not an error; err is reserved for
	// transport failures.
	Execute(ctx context.Context, command string) (string, int, error)
}
