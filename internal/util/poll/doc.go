// Package poll provides a bounded polling primitive for waiting on
// external resources to become ready.
package poll
