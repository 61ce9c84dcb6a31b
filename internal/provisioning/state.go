package provisioning

import (
	"github.com/podup/podup/internal/platform/runpod"
	"github.com/podup/podup/internal/setup"
)

// StateName identifies a state of the provisioning state machine.
type StateName string

const (
	StateRequested       StateName = "Requested"
	StateCreating        StateName = "Creating"
	StateAwaitingNetwork StateName = "AwaitingNetwork"
	StateConfiguringSSH  StateName = "ConfiguringSSH"
	StateAwaitingSSH     StateName = "AwaitingSSH"
	StateSettingUp       StateName = "SettingUp"
	StateDone            StateName = "Done"

	// Absorbing failure states.
	StateCreateFailed   StateName = "CreateFailed"
	StateNetworkTimeout StateName = "NetworkTimeout"
	StateConfigFailed   StateName = "ConfigFailed"
	StateSSHTimeout     StateName = "SSHTimeout"
	StateSetupFailed    StateName = "SetupFailed"
)

// Terminal reports whether the machine can leave this state.
func (s StateName) Terminal() bool {
	switch s {
	case StateDone, StateCreateFailed, StateNetworkTimeout, StateConfigFailed, StateSSHTimeout, StateSetupFailed:
		return true
	}
	return false
}

// State holds the shared results of provisioning phases. It is
// progressively populated as each phase completes and is passed to
// subsequent phases that need earlier results. It is owned by exactly
// one run and never cached across runs.
type State struct {
	Current StateName

	// Creation results.
	Pod        *runpod.Pod
	DataCenter string // resolved datacenter id, may be empty

	// Network readiness results.
	SSHIP           string
	SSHPort         int
	NetworkAttempts int

	// SSH configuration results.
	Alias string

	// SSH readiness results.
	SSHAttempts int

	// Setup track results. The two tracks write disjoint fields
	// concurrently.
	SetupResults     []setup.CommandResult
	SetupErr         error
	ExtensionResults []setup.ExtensionResult
	ExtensionWarning string
}

// NewState creates the initial provisioning state.
func NewState() *State {
	return &State{Current: StateRequested}
}
