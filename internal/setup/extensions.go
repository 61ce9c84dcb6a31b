package setup

import (
	"context"
	"errors"
	"fmt"
)

// ErrCodeServerUnavailable reports that no code-server binary was
// found on the remote, so extension installation degraded to a single
// warning instead of one failure per extension. The editor installs
// its server the first time the user connects.
var ErrCodeServerUnavailable = errors.New("no code-server found on remote; connect once with your editor and re-run extension installation")

// codeServerProbe exits zero when a VS Code or Cursor server binary is
// present on the remote.
const codeServerProbe = `find ~/.vscode-server/bin ~/.cursor-server/bin -name 'code-server' -o -name 'cursor-server' 2>/dev/null | grep -q .`

// installTemplate locates the server binary and installs one
// extension with it.
const installTemplate = `CODE_SERVER=$(find ~/.vscode-server/bin ~/.cursor-server/bin -name 'code-server' -o -name 'cursor-server' 2>/dev/null | head -1)
if [ -n "$CODE_SERVER" ]; then
    "$CODE_SERVER" --install-extension %s 2>&1
else
    echo "code-server binary disappeared" >&2
    exit 1
fi`

// ExtensionResult records the outcome of one extension install.
type ExtensionResult struct {
	ID        string
	Installed bool
	Output    string
	Err       error
}

// Installer installs editor extensions against a remote code server.
type Installer struct {
	exec Executor
}

// NewInstaller creates an Installer on top of an executor.
func NewInstaller(exec Executor) *Installer {
	return &Installer{exec: exec}
}

// Install installs the given extensions one by one. Extensions are
// independent: a failure is recorded and the next one is attempted.
// When the remote has no code server at all, ErrCodeServerUnavailable
// is returned with no per-extension results; availability is probed
// once, up front. An empty id list returns (nil, nil) without touching
// the remote.
func (i *Installer) Install(ctx context.Context, ids []string) ([]ExtensionResult, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	_, exitCode, err := i.exec.Execute(ctx, codeServerProbe)
	if err != nil {
		return nil, fmt.Errorf("failed to probe for code-server: %w", err)
	}
	if exitCode != 0 {
		return nil, ErrCodeServerUnavailable
	}

	results := make([]ExtensionResult, 0, len(ids))
	for _, id := range ids {
		output, exitCode, err := i.exec.Execute(ctx, fmt.Sprintf(installTemplate, id))
		switch {
		case err != nil:
			results = append(results, ExtensionResult{ID: id, Output: output, Err: err})
		case exitCode != 0:
			results = append(results, ExtensionResult{
				ID: id, Output: output,
				Err: fmt.Errorf("install exited with code %d", exitCode),
			})
		default:
			results = append(results, ExtensionResult{ID: id, Installed: true, Output: output})
		}
	}
	return results, nil
}
