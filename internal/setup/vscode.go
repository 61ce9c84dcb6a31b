package setup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteEditorSettingsTemplate writes .vscode/settings.json.template in
// dir, pointing the Python interpreter at the remote virtualenv. The
// user copies it into the remote workspace's .vscode/settings.json.
func WriteEditorSettingsTemplate(dir, venvPath string) (string, error) {
	settings := map[string]any{
		"python.defaultInterpreterPath":       venvPath + "/bin/python",
		"python.terminal.activateEnvironment": true,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal settings: %w", err)
	}

	vscodeDir := filepath.Join(dir, ".vscode")
	if err := os.MkdirAll(vscodeDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", vscodeDir, err)
	}

	path := filepath.Join(vscodeDir, "settings.json.template")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { // #nosec G306 -- workspace settings
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
