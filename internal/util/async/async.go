package async

import "context"

// Task represents a named asynchronous operation.
type Task struct {
	Name string
	Func func(context.Context) error
}

// Outcome holds the result of a single task.
type Outcome struct {
	Name string
	Err  error
}

// Join starts all tasks concurrently, waits for every one of them to
// finish, and returns their outcomes in task order. One task failing
// never cancels or suppresses a sibling; callers that need fail-fast
// semantics should inspect the outcomes themselves.
func Join(ctx context.Context, tasks []Task) []Outcome {
	if len(tasks) == 0 {
		return nil
	}

	errs := make([]error, len(tasks))
	done := make(chan struct{}, len(tasks))

	for i, task := range tasks {
		go func(i int, task Task) {
			errs[i] = task.Func(ctx)
			done <- struct{}{}
		}(i, task)
	}

	for range tasks {
		<-done
	}

	outcomes := make([]Outcome, len(tasks))
	for i, task := range tasks {
		outcomes[i] = Outcome{Name: task.Name, Err: errs[i]}
	}
	return outcomes
}

// FirstError returns the first non-nil error among the outcomes, in
// task order, or nil if every task succeeded.
func FirstError(outcomes []Outcome) error {
	for _, o := range outcomes {
		if o.Err != nil {
			return o.Err
		}
	}
	return nil
}
