// Package async provides helpers for running independent tasks
// concurrently and collecting every task's outcome.
package async
