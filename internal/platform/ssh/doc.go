// Package ssh executes commands on a remote pod over SSH.
//
// Connections are established per call with a bounded dial timeout and
// no internal retry; waiting for the endpoint to become reachable is
// the caller's concern. Host key verification is disabled: pods are
// ephemeral and present a fresh host key on every recreation.
package ssh
