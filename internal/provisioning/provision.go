package provisioning

import "time"

// DefaultPhases returns the full provisioning pipeline in execution
// order.
func DefaultPhases() []Phase {
	return []Phase{
		CreatePhase{},
		NetworkPhase{},
		SSHConfigPhase{},
		AwaitSSHPhase{},
		SetupPhase{},
	}
}

// Provision runs the full pipeline and always returns a report, even
// when provisioning fails partway. A created pod is never rolled back
// on failure: billing already started and a reachable-but-unconfigured
// pod is more useful than no pod.
func Provision(ctx *Context) (*Report, error) {
	start := time.Now()
	err := RunPhases(ctx, DefaultPhases())
	return buildReport(ctx, err, time.Since(start)), err
}
