package provisioning

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal logging surface phases may use directly.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during
// provisioning. Implementations must be safe for concurrent use: the
// SettingUp phase emits events from two goroutines. ConsoleObserver
// satisfies this via the standard log package.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType         // Type of event
	State     StateName         // State the machine is in when the event fires
	Message   string            // Human-readable message
	Resource  string            // Resource name/ID if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventStateEntered indicates the machine transitioned into a state.
	EventStateEntered EventType = "state.entered"
	// EventStateFailed indicates the machine entered a failure state.
	EventStateFailed EventType = "state.failed"

	// EventPodCreating indicates a pod deploy request is being sent.
	EventPodCreating EventType = "pod.creating"
	// EventPodCreated indicates the pod deploy request was accepted.
	EventPodCreated EventType = "pod.created"
	// EventPodPolling indicates a readiness poll attempt.
	EventPodPolling EventType = "pod.polling"
	// EventPodReady indicates the pod exposes a public SSH endpoint.
	EventPodReady EventType = "pod.ready"

	// EventConfigWritten indicates the SSH config alias was upserted.
	EventConfigWritten EventType = "sshconfig.written"

	// EventSetupCommand indicates a remote setup command ran.
	EventSetupCommand EventType = "setup.command"
	// EventSetupWarning indicates a non-fatal setup problem.
	EventSetupWarning EventType = "setup.warning"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		contextFields: make(map[string]string),
	}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements the Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	log.Print(o.formatEvent(event))
}

// WithFields implements the Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string)
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &ConsoleObserver{
		contextFields: newFields,
	}
}

// formatEvent formats an event for console output.
func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.State != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.State))
	}

	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// NopObserver discards all output. Useful in tests.
type NopObserver struct{}

// Printf implements the Logger interface.
func (NopObserver) Printf(string, ...interface{}) {}

// Event implements the Observer interface.
func (NopObserver) Event(Event) {}

// WithFields implements the Observer interface.
func (n NopObserver) WithFields(map[string]string) Observer { return n }
