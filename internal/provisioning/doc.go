// Package provisioning drives the pod lifecycle from creation to a
// developer-ready state.
//
// The run is a strictly forward state machine:
//
//	Requested → Creating → AwaitingNetwork → ConfiguringSSH →
//	AwaitingSSH → SettingUp → Done
//
// with absorbing failure states reachable from each in-progress state.
// Phases run sequentially; within SettingUp the Python environment
// build and the editor extension install run concurrently and are both
// joined before Done.
//
// Nothing is ever rolled back: an aborted or failed run leaves the
// created pod and any written SSH config entry in place. Teardown is
// an explicit, separate operation.
package provisioning
