package provisioning

import (
	"time"

	"github.com/podup/podup/internal/setup"
)

// Outcome classifies how far a provisioning run got.
type Outcome string

const (
	// OutcomeReady means the pod is up, reachable and fully set up.
	OutcomeReady Outcome = "ready"
	// OutcomeReachable means the pod is up and SSH works but remote
	// setup failed; the user can connect and finish by hand.
	OutcomeReachable Outcome = "reachable"
	// OutcomeUnreachable means a pod may exist but was never usable.
	OutcomeUnreachable Outcome = "unreachable"
	// OutcomeNone means no pod was created at all.
	OutcomeNone Outcome = "none"
)

// Report summarizes a provisioning run for the user. It is produced
// whether the run succeeded or failed; on failure it says how far the
// machine got and what exists now.
type Report struct {
	Outcome    Outcome
	FinalState StateName

	PodID      string
	PodName    string
	GPU        string
	DataCenter string

	Alias string
	SSHIP string
	Port  int

	NetworkAttempts int
	SSHAttempts     int

	SetupResults     []setup.CommandResult
	SetupErr         error
	ExtensionResults []setup.ExtensionResult
	ExtensionWarning string

	Elapsed time.Duration
	Err     error
}

// buildReport derives the report from the final state of a run.
func buildReport(ctx *Context, runErr error, elapsed time.Duration) *Report {
	s := ctx.State
	r := &Report{
		FinalState:       s.Current,
		PodName:          ctx.Spec.PodName,
		DataCenter:       s.DataCenter,
		Alias:            s.Alias,
		SSHIP:            s.SSHIP,
		Port:             s.SSHPort,
		NetworkAttempts:  s.NetworkAttempts,
		SSHAttempts:      s.SSHAttempts,
		SetupResults:     s.SetupResults,
		SetupErr:         s.SetupErr,
		ExtensionResults: s.ExtensionResults,
		ExtensionWarning: s.ExtensionWarning,
		Elapsed:          elapsed,
		Err:              runErr,
	}
	if s.Pod != nil {
		r.PodID = s.Pod.ID
		r.GPU = s.Pod.GPUDisplayName
		if r.GPU == "" && s.Pod.Machine != nil {
			r.GPU = s.Pod.Machine.GPUDisplayName
		}
	}
	r.Outcome = classify(s)
	return r
}

func classify(s *State) Outcome {
	switch s.Current {
	case StateDone:
		return OutcomeReady
	case StateSetupFailed:
		return OutcomeReachable
	case StateCreateFailed:
		return OutcomeNone
	default:
		return OutcomeUnreachable
	}
}
