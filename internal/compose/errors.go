package compose

import (
	"errors"
	"fmt"
)

// ExitInterrupted is the exit code reported when the user interrupts a
// compose command.
const ExitInterrupted = 130

// ErrInterrupted is wrapped by CommandError when the context was cancelled
// while docker compose was running.
var ErrInterrupted = errors.New("interrupted")

// CommandError wraps a failed docker compose invocation with the service
// and action that produced it.
type CommandError struct {
	Service  string
	Action   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Action, e.Service, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code carried by err: 130 when
// interrupted, the compose exit code for a CommandError, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrInterrupted) {
		return ExitInterrupted
	}
	var ce *CommandError
	if errors.As(err, &ce) && ce.ExitCode > 0 {
		return ce.ExitCode
	}
	return 1
}
