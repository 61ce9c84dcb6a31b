package runpod

import (
	"errors"
	"fmt"
	"strings"
)

// NoCapacityError reports that the provider has no instances available
// for the requested GPU type/count/datacenter combination. The exact
// GPU type string is preserved so the user can cross-check it against
// the GPU discovery listing.
type NoCapacityError struct {
	GPUType    string
	Count      int
	DataCenter string
}

func (e *NoCapacityError) Error() string {
	msg := fmt.Sprintf("no capacity for %dx %q", e.Count, e.GPUType)
	if e.DataCenter != "" {
		msg += fmt.Sprintf(" in %s", e.DataCenter)
	}
	return msg
}

// InvalidSpecError reports a malformed template or volume reference.
type InvalidSpecError struct {
	Field  string
	Value  string
	Detail string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Detail)
}

// APIError is a transient API failure (network error, 5xx, rate
// limit). The client does not retry beyond transport-level retries;
// whether to re-run is the caller's decision.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("runpod API error: %s", strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("runpod API error: status %d", e.StatusCode)
}

// IsNoCapacity reports whether err is a capacity failure.
func IsNoCapacity(err error) bool {
	var nc *NoCapacityError
	return errors.As(err, &nc)
}

// IsInvalidSpec reports whether err is a spec validation failure.
func IsInvalidSpec(err error) bool {
	var is *InvalidSpecError
	return errors.As(err, &is)
}

// IsTransient reports whether err is a retryable API failure.
func IsTransient(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// capacity-related fragments observed in podFindAndDeployOnDemand
// error messages.
var noCapacityFragments = []string{
	"no longer any instances available",
	"no instances currently available",
	"not enough free gpus",
	"no capacity",
}

var invalidSpecFragments = []string{
	"template",
	"network volume",
	"does not exist",
	"not found",
	"invalid",
}

// classifyCreateError maps a GraphQL error from pod creation onto the
// typed error taxonomy. Unrecognized messages are treated as
// transient.
func classifyCreateError(messages []string, opts CreatePodOpts) error {
	joined := strings.ToLower(strings.Join(messages, "; "))

	for _, frag := range noCapacityFragments {
		if strings.Contains(joined, frag) {
			return &NoCapacityError{
				GPUType:    opts.GPUTypeID,
				Count:      opts.GPUCount,
				DataCenter: opts.DataCenterID,
			}
		}
	}
	for _, frag := range invalidSpecFragments {
		if strings.Contains(joined, frag) {
			field, value := "template_id", opts.TemplateID
			if strings.Contains(joined, "volume") {
				field, value = "network_volume_id", opts.NetworkVolumeID
			}
			return &InvalidSpecError{Field: field, Value: value, Detail: strings.Join(messages, "; ")}
		}
	}
	return &APIError{Messages: messages}
}
