package setup

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// scriptedExecutor replays canned responses keyed by command substring.
type scriptedExecutor struct {
	calls     []string
	responses map[string]scriptedResponse
}

type scriptedResponse struct {
	output   string
	exitCode int
	err      error
}

func (s *scriptedExecutor) Execute(_ context.Context, command string) (string, int, error) {
	s.calls = append(s.calls, command)
	for key, resp := range s.responses {
		if strings.Contains(command, key) {
			return resp.output, resp.exitCode, resp.err
		}
	}
	return "", 0, nil
}

func TestEnvironmentCommands(t *testing.T) {
	t.Parallel()

	withReqs := EnvironmentCommands("/workspace/.venv", "/workspace/requirements.txt")
	if len(withReqs) != 3 {
		t.Fatalf("expected 3 commands, got %d: %v", len(withReqs), withReqs)
	}
	if withReqs[0] != "python3 -m venv /workspace/.venv" {
		t.Errorf("unexpected venv command: %q", withReqs[0])
	}
	if !strings.Contains(withReqs[1], "pip install --upgrade pip") {
		t.Errorf("unexpected pip upgrade command: %q", withReqs[1])
	}
	if !strings.Contains(withReqs[2], "pip install -r /workspace/requirements.txt") {
		t.Errorf("unexpected requirements command: %q", withReqs[2])
	}

	withoutReqs := EnvironmentCommands("/workspace/.venv", "")
	if len(withoutReqs) != 2 {
		t.Errorf("expected 2 commands without requirements file, got %d", len(withoutReqs))
	}
}

func TestRunner_AllSucceed(t *testing.T) {
	t.Parallel()
	exec := &scriptedExecutor{responses: map[string]scriptedResponse{
		"venv": {output: "created"},
	}}

	results, err := NewRunner(exec).Run(context.Background(), []string{"python3 -m venv /v", "echo ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Output != "created" || results[0].ExitCode != 0 {
		t.Errorf("unexpected first result: %+v", results[0])
	}
}

func TestRunner_FailFast(t *testing.T) {
	t.Parallel()
	exec := &scriptedExecutor{responses: map[string]scriptedResponse{
		"c2": {output: "boom", exitCode: 1},
	}}

	results, err := NewRunner(exec).Run(context.Background(), []string{"c1", "c2", "c3"})
	if err == nil {
		t.Fatal("expected error from failing command")
	}

	var setupErr *SetupError
	if !errors.As(err, &setupErr) {
		t.Fatalf("expected *SetupError, got %T", err)
	}
	if setupErr.Command != "c2" || setupErr.ExitCode != 1 || setupErr.Output != "boom" {
		t.Errorf("error must carry the failing command verbatim: %+v", setupErr)
	}

	// c1 and c2 have outcomes; c3 never executed.
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", len(results), results)
	}
	if len(exec.calls) != 2 {
		t.Errorf("expected 2 executions, got %d: %v", len(exec.calls), exec.calls)
	}
	for _, call := range exec.calls {
		if call == "c3" {
			t.Error("c3 must never execute after c2 failed")
		}
	}
}

func TestRunner_TransportFailure(t *testing.T) {
	t.Parallel()
	exec := &scriptedExecutor{responses: map[string]scriptedResponse{
		"c1": {err: errors.New("connection reset")},
	}}

	results, err := NewRunner(exec).Run(context.Background(), []string{"c1", "c2"})
	var setupErr *SetupError
	if !errors.As(err, &setupErr) {
		t.Fatalf("expected *SetupError, got %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected only the failing command in results, got %d", len(results))
	}
	if len(exec.calls) != 1 {
		t.Errorf("expected no execution after transport failure, got %v", exec.calls)
	}
}
