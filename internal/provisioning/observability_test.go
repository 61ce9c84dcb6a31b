package provisioning

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockObserver is a test implementation of Observer that records events.
// The setup phase emits events from two goroutines at once, so recording
// is guarded by a mutex.
type MockObserver struct {
	mu       sync.Mutex
	events   []Event
	messages []string
	fields   map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		events:   make([]Event, 0),
		messages: make([]string, 0),
		fields:   make(map[string]string),
	}
}

func (m *MockObserver) Printf(format string, v ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, format)
}

func (m *MockObserver) Event(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockObserver) WithFields(fields map[string]string) Observer {
	newObserver := NewMockObserver()
	for k, v := range m.fields {
		newObserver.fields[k] = v
	}
	for k, v := range fields {
		newObserver.fields[k] = v
	}
	return newObserver
}

func (m *MockObserver) eventsOfType(t EventType) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Event
	for _, e := range m.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func TestConsoleObserver_Event(t *testing.T) {
	observer := NewConsoleObserver()

	event := Event{
		Type:     EventPodCreated,
		State:    StateCreating,
		Resource: "pod-123",
		Message:  "deploy request accepted",
		Fields: map[string]string{
			"datacenter": "US-KS-2",
		},
	}

	// Should not panic
	observer.Event(event)
}

func TestConsoleObserver_WithFields(t *testing.T) {
	observer := NewConsoleObserver()

	contextualObserver := observer.WithFields(map[string]string{
		"pod": "trainer",
		"run": "abc123",
	})

	assert.NotNil(t, contextualObserver)
}

func TestConsoleObserver_FormatEvent(t *testing.T) {
	observer := NewConsoleObserver()

	msg := observer.formatEvent(Event{
		Type:     EventPodReady,
		State:    StateAwaitingNetwork,
		Resource: "pod-123",
		Message:  "SSH endpoint up",
	})

	assert.Contains(t, msg, "pod.ready")
	assert.Contains(t, msg, "[AwaitingNetwork]")
	assert.Contains(t, msg, "resource=pod-123")
	assert.Contains(t, msg, "SSH endpoint up")
}

func TestMockObserver_WithFields_MergesParent(t *testing.T) {
	obs := NewMockObserver()

	child1 := obs.WithFields(map[string]string{"a": "1"}).(*MockObserver)
	child2 := child1.WithFields(map[string]string{"b": "2"}).(*MockObserver)

	assert.Equal(t, "1", child2.fields["a"])
	assert.Equal(t, "2", child2.fields["b"])
}

func TestMockObserver_ConcurrentRecording(t *testing.T) {
	obs := NewMockObserver()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				obs.Event(Event{Type: EventSetupCommand, State: StateSettingUp})
				obs.Printf("setup step %d", j)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, obs.eventsOfType(EventSetupCommand), 100)
}

func TestStateName_Terminal(t *testing.T) {
	terminal := []StateName{
		StateDone, StateCreateFailed, StateNetworkTimeout,
		StateConfigFailed, StateSSHTimeout, StateSetupFailed,
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), "state %s should be terminal", s)
	}

	active := []StateName{
		StateRequested, StateCreating, StateAwaitingNetwork,
		StateConfiguringSSH, StateAwaitingSSH, StateSettingUp,
	}
	for _, s := range active {
		assert.False(t, s.Terminal(), "state %s should not be terminal", s)
	}
}
