package sshconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func configPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".ssh", "config")
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	return string(data)
}

func TestUpsert_CreatesFile(t *testing.T) {
	t.Parallel()
	path := configPath(t)

	err := Upsert(path, Entry{Alias: "my-pod", HostName: "1.2.3.4", Port: 22})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := read(t, path)
	for _, want := range []string{
		"Host my-pod",
		"HostName 1.2.3.4",
		"Port 22",
		"User root",
		"IdentityFile ~/.ssh/id_ed25519",
		"StrictHostKeyChecking accept-new",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("expected config to contain %q, got:\n%s", want, content)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat config: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}
}

func TestUpsert_ReplacesExistingBlock(t *testing.T) {
	t.Parallel()
	path := configPath(t)

	if err := Upsert(path, Entry{Alias: "pod", HostName: "1.1.1.1", Port: 22}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := Upsert(path, Entry{Alias: "pod", HostName: "2.2.2.2", Port: 40022}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	content := read(t, path)
	if strings.Count(content, "Host pod\n") != 1 {
		t.Errorf("expected exactly one block for pod, got:\n%s", content)
	}
	if strings.Contains(content, "1.1.1.1") {
		t.Errorf("old hostname survived the replacement:\n%s", content)
	}
	if !strings.Contains(content, "HostName 2.2.2.2") || !strings.Contains(content, "Port 40022") {
		t.Errorf("new endpoint missing:\n%s", content)
	}
}

func TestUpsert_Idempotent(t *testing.T) {
	t.Parallel()
	path := configPath(t)
	entry := Entry{Alias: "pod", HostName: "5.6.7.8", Port: 12345}

	if err := Upsert(path, entry); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	first := read(t, path)

	if err := Upsert(path, entry); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	second := read(t, path)

	if first != second {
		t.Errorf("repeated upsert changed the file:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}
}

func TestUpsert_LeavesOtherBlocksUntouched(t *testing.T) {
	t.Parallel()
	path := configPath(t)

	existing := "# personal hosts\nHost bastion\n    HostName bastion.example.com\n    Port 2222\n    User deploy\n"
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(existing), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Upsert(path, Entry{Alias: "gpu-pod", HostName: "9.9.9.9", Port: 22}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	content := read(t, path)
	bastionRegion := "# personal hosts\nHost bastion\n    HostName bastion.example.com\n    Port 2222\n    User deploy"
	if !strings.Contains(content, bastionRegion) {
		t.Errorf("bastion block was altered:\n%s", content)
	}
	if !strings.Contains(content, "Host gpu-pod") {
		t.Errorf("new block missing:\n%s", content)
	}

	// Removing the managed block must restore the foreign region verbatim.
	if err := Remove(path, "gpu-pod"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	content = read(t, path)
	if !strings.Contains(content, bastionRegion) {
		t.Errorf("bastion block was altered by remove:\n%s", content)
	}
	if strings.Contains(content, "gpu-pod") {
		t.Errorf("managed block survived remove:\n%s", content)
	}
}

func TestRemove_MissingFileAndAlias(t *testing.T) {
	t.Parallel()
	path := configPath(t)

	if err := Remove(path, "nothing"); err != nil {
		t.Errorf("remove on missing file: %v", err)
	}

	if err := Upsert(path, Entry{Alias: "pod", HostName: "1.2.3.4", Port: 22}); err != nil {
		t.Fatal(err)
	}
	before := read(t, path)
	if err := Remove(path, "other"); err != nil {
		t.Errorf("remove of missing alias: %v", err)
	}
	if after := read(t, path); after != before {
		t.Errorf("remove of missing alias changed the file:\n%s", after)
	}
}

func TestUpsert_RejectsWhitespaceAlias(t *testing.T) {
	t.Parallel()
	err := Upsert(configPath(t), Entry{Alias: "my pod", HostName: "1.2.3.4", Port: 22})
	if err == nil {
		t.Fatal("expected error for alias containing whitespace")
	}
}
