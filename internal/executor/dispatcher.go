package executor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spachava753/aocharness/internal/models"
)

// Dispatcher invokes solution implementations and times them.
type Dispatcher struct{}

// NewDispatcher creates a new dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Invoke calls impl with input and records its output and wall-clock time.
// Only the call itself is timed. A panicking implementation does not unwind
// the caller: the panic is recorded on the result as an invocation failure.
func (d *Dispatcher) Invoke(impl models.Implementation, input []string) models.InvocationResult {
	result := models.InvocationResult{
		Implementation: impl,
		StartedAt:      time.Now(),
	}

	output, err := call(impl, input)

	result.EndedAt = time.Now()
	result.Elapsed = result.EndedAt.Sub(result.StartedAt)
	result.Output = output
	result.Error = err

	if err != nil {
		slog.Debug("implementation failed", "name", impl.Name, "error", err.Message)
	} else {
		slog.Debug("implementation returned", "name", impl.Name, "elapsed", result.Elapsed)
	}
	return result
}

// Call is Invoke for the single-run path: a failed invocation is also
// returned as an error.
func (d *Dispatcher) Call(impl models.Implementation, input []string) (models.InvocationResult, error) {
	result := d.Invoke(impl, input)
	if result.Failed() {
		return result, fmt.Errorf("invoking %s: %w", impl.Name, result.Error)
	}
	return result, nil
}

func call(impl models.Implementation, input []string) (output string, failure *models.Error) {
	if impl.Solve == nil {
		return "", models.Errorf(models.ErrInvocationFailure, "%s has no solve function", impl.Name)
	}

	defer func() {
		if r := recover(); r != nil {
			failure = models.Errorf(models.ErrInvocationFailure, "%v", r)
			if err, ok := r.(error); ok {
				failure.Err = err
			}
		}
	}()

	return impl.Solve(input), nil
}
