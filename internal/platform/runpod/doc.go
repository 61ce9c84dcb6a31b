// Package runpod provides a wrapper around the RunPod GraphQL API with
// typed operations, error classification, and transport-level retries.
//
// # Architecture
//
//   - client.go: interfaces consumed by the rest of the codebase
//   - types.go: API object types (pods, GPU types, network volumes)
//   - real_client.go: GraphQL implementation over retryable HTTP
//   - errors.go: error classification (capacity, invalid spec, transient)
//   - mock_client.go: hand-rolled mock for tests
package runpod
