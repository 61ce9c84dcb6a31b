package sshconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry describes a single Host block.
type Entry struct {
	Alias        string
	HostName     string
	Port         int
	User         string
	IdentityFile string
}

// DefaultPath returns the user's SSH client configuration file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ssh", "config"), nil
}

// Upsert inserts or replaces the Host block for e.Alias in the file at
// path, creating the file if it does not exist. Any existing block
// whose alias matches exactly is removed before the fresh block is
// appended, so repeated calls with the same entry leave the file
// byte-identical. StrictHostKeyChecking is always written as
// accept-new: pods are ephemeral and present a new host key on every
// recreation.
func Upsert(path string, e Entry) error {
	if e.Alias == "" {
		return fmt.Errorf("entry alias cannot be empty")
	}
	if strings.ContainsAny(e.Alias, " \t") {
		return fmt.Errorf("entry alias %q must not contain whitespace", e.Alias)
	}

	content, err := readFile(path)
	if err != nil {
		return err
	}

	kept := removeBlock(content, e.Alias)
	updated := appendBlock(kept, renderBlock(e))
	return writeAtomic(path, updated)
}

// Remove deletes the Host block for alias, leaving every other block
// untouched. A missing file or missing block is not an error.
func Remove(path, alias string) error {
	content, err := readFile(path)
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}
	return writeAtomic(path, removeBlock(content, alias))
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the caller's own config file
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read ssh config: %w", err)
	}
	return string(data), nil
}

// removeBlock drops the block whose Host line names alias exactly.
// A block spans from its Host line up to (not including) the next
// Host line. Lines outside any matching block pass through verbatim,
// preserving the user's formatting for unrelated hosts.
func removeBlock(content, alias string) string {
	lines := strings.Split(content, "\n")
	var kept []string
	skipping := false

	for _, line := range lines {
		if name, ok := hostLine(line); ok {
			skipping = name == alias
		}
		if !skipping {
			kept = append(kept, line)
		}
	}

	return strings.TrimRight(strings.Join(kept, "\n"), "\n")
}

// hostLine returns the alias of a "Host <alias>" line, or ok=false for
// any other line.
func hostLine(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Host") {
		return "", false
	}
	// Multi-alias Host lines are left alone; this tool only manages
	// single-alias blocks that it wrote itself.
	if len(fields) != 2 {
		return "", false
	}
	return fields[1], true
}

func renderBlock(e Entry) string {
	user := e.User
	if user == "" {
		user = "root"
	}
	identity := e.IdentityFile
	if identity == "" {
		identity = "~/.ssh/id_ed25519"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Host %s\n", e.Alias)
	fmt.Fprintf(&b, "    HostName %s\n", e.HostName)
	fmt.Fprintf(&b, "    Port %d\n", e.Port)
	fmt.Fprintf(&b, "    User %s\n", user)
	fmt.Fprintf(&b, "    IdentityFile %s\n", identity)
	b.WriteString("    StrictHostKeyChecking accept-new\n")
	return b.String()
}

func appendBlock(content, block string) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return block
	}
	return content + "\n\n" + block
}

// writeAtomic writes content to path via a temp file in the same
// directory followed by a rename, so concurrent readers never observe
// a partially written file.
func writeAtomic(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
