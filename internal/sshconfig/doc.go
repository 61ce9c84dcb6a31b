// Package sshconfig edits per-host blocks in an OpenSSH client
// configuration file. Writes are atomic (write-temp-then-rename) and
// scoped to a single host alias; blocks for other aliases are never
// touched.
package sshconfig
