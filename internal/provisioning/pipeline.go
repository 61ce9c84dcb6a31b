package provisioning

import (
	"fmt"
	"time"
)

// RunPhases executes the provisioning phases sequentially, performing
// the state transitions on the shared state. On success the machine
// ends in Done; on the first phase error it ends in that phase's
// failure state and the wrapped error is returned. Transitions are
// strictly forward and failure states are absorbing.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.State.Current = phase.Running()
		ctx.Observer.Event(Event{
			Type:    EventStateEntered,
			State:   phase.Running(),
			Message: fmt.Sprintf("[%s] starting", name),
		})

		if err := phase.Provision(ctx); err != nil {
			ctx.State.Current = phase.Failed()
			ctx.Observer.Event(Event{
				Type:    EventStateFailed,
				State:   phase.Failed(),
				Message: fmt.Sprintf("[%s] failed: %v", name, err),
			})
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.Printf("[%s] completed in %v", name, time.Since(phaseStart).Round(time.Millisecond))
	}

	ctx.State.Current = StateDone
	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
