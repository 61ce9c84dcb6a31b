package ssh

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

const (
	defaultPort        = 22
	defaultUser        = "root"
	defaultDialTimeout = 10 * time.Second
)

// Config holds SSH client configuration.
type Config struct {
	Host string
	Port int
	User string

	// IdentityFile is the path to the private key. A leading "~/" is
	// expanded against the user's home directory. If empty,
	// ~/.ssh/id_ed25519 is used.
	IdentityFile string

	// DialTimeout bounds the TCP connect and handshake for a single
	// attempt. If zero, defaultDialTimeout is used.
	DialTimeout time.Duration

	// HostKeyCallback handles host key verification. If nil,
	// ssh.InsecureIgnoreHostKey() is used.
	HostKeyCallback ssh.HostKeyCallback
}

// Client executes commands on a remote host. The private key is
// parsed once during construction; connections are created on demand
// per call.
type Client struct {
	config *Config
	signer ssh.Signer
}

// NewClient creates a new SSH client and validates the private key.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("config host cannot be empty")
	}

	configCopy := *cfg
	if configCopy.Port == 0 {
		configCopy.Port = defaultPort
	}
	if configCopy.User == "" {
		configCopy.User = defaultUser
	}
	if configCopy.IdentityFile == "" {
		configCopy.IdentityFile = "~/.ssh/id_ed25519"
	}
	if configCopy.DialTimeout == 0 {
		configCopy.DialTimeout = defaultDialTimeout
	}
	if configCopy.HostKeyCallback == nil {
		configCopy.HostKeyCallback = ssh.InsecureIgnoreHostKey() // #nosec G106 -- ephemeral pods
	}

	keyPath, err := expandHome(configCopy.IdentityFile)
	if err != nil {
		return nil, err
	}
	key, err := os.ReadFile(keyPath) // #nosec G304 -- user-supplied identity file
	if err != nil {
		return nil, fmt.Errorf("failed to read identity file %s: %w", keyPath, err)
	}
	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %s: %w", keyPath, err)
	}

	return &Client{config: &configCopy, signer: signer}, nil
}

// Ping establishes a connection and immediately closes it. A nil
// return means the SSH handshake succeeded.
func (c *Client) Ping(ctx context.Context) error {
	client, err := c.connect(ctx)
	if err != nil {
		return err
	}
	return client.Close()
}

// Execute runs a command on the remote host. It returns the combined
// stdout/stderr output and the remote exit code. err is non-nil only
// for transport-level failures; a command exiting non-zero is reported
// through the exit code, not the error.
func (c *Client) Execute(ctx context.Context, command string) (string, int, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return "", -1, err
	}
	defer func() { _ = client.Close() }()

	session, err := client.NewSession()
	if err != nil {
		return "", -1, fmt.Errorf("failed to create SSH session on %s: %w", c.config.Host, err)
	}
	defer func() { _ = session.Close() }()

	output, err := session.CombinedOutput(command)
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			return string(output), exitErr.ExitStatus(), nil
		}
		return string(output), -1, fmt.Errorf("command failed on %s: %w", c.config.Host, err)
	}
	return string(output), 0, nil
}

// connect dials a single connection, honoring ctx for the TCP phase.
func (c *Client) connect(ctx context.Context) (*ssh.Client, error) {
	addr := net.JoinHostPort(c.config.Host, fmt.Sprintf("%d", c.config.Port))
	clientConfig := &ssh.ClientConfig{
		User:            c.config.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(c.signer)},
		HostKeyCallback: c.config.HostKeyCallback,
		Timeout:         c.config.DialTimeout,
	}

	dialer := net.Dialer{Timeout: c.config.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("SSH handshake with %s failed: %w", addr, err)
	}
	return ssh.NewClient(sshConn, chans, reqs), nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
