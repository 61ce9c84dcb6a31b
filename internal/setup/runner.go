package setup

import (
	"context"
	"fmt"
	"strings"
)

// Executor runs a command on the remote host. It returns the combined
// output and the remote exit code; err is non-nil only for
// transport-level failures. Implemented by *ssh.Client.
type Executor interface {
	Execute(ctx context.Context, command string) (output string, exitCode int, err error)
}

// CommandResult records the outcome of one remote command.
type CommandResult struct {
	Command  string
	ExitCode int
	Output   string
}

// SetupError reports the first failing command of a setup run,
// carrying its captured output verbatim.
type SetupError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *SetupError) Error() string {
	msg := fmt.Sprintf("setup command failed (exit %d): %s", e.ExitCode, e.Command)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

// EnvironmentCommands builds the ordered command sequence that
// prepares the Python environment: create the virtualenv, upgrade pip,
// and install requirements when a requirements file is configured.
func EnvironmentCommands(venvPath, requirementsFile string) []string {
	commands := []string{
		fmt.Sprintf("python3 -m venv %s", venvPath),
		fmt.Sprintf("%s/bin/pip install --upgrade pip", venvPath),
	}
	if requirementsFile != "" {
		commands = append(commands, fmt.Sprintf(
			"if [ -f %[1]s ]; then %[2]s/bin/pip install -r %[1]s; else echo 'requirements file not found: %[1]s' >&2; exit 1; fi",
			requirementsFile, venvPath))
	}
	return commands
}

// Runner executes an ordered command sequence on a remote host with
// fail-fast semantics.
type Runner struct {
	exec Executor
}

// NewRunner creates a Runner on top of an executor.
func NewRunner(exec Executor) *Runner {
	return &Runner{exec: exec}
}

// Run executes the commands in order, stopping at the first failure.
// The returned results cover every command that ran, including the
// failing one; commands after a failure are never attempted. Partial
// remote state (for example a virtualenv without its requirements) is
// deliberately left in place for inspection.
func (r *Runner) Run(ctx context.Context, commands []string) ([]CommandResult, error) {
	var results []CommandResult

	for _, command := range commands {
		output, exitCode, err := r.exec.Execute(ctx, command)
		if err != nil {
			results = append(results, CommandResult{Command: command, ExitCode: -1, Output: output})
			return results, &SetupError{Command: command, ExitCode: -1, Output: err.Error()}
		}

		results = append(results, CommandResult{Command: command, ExitCode: exitCode, Output: output})
		if exitCode != 0 {
			return results, &SetupError{Command: command, ExitCode: exitCode, Output: output}
		}
	}
	return results, nil
}
