package docker

import (
	"fmt"
	"strings"
)

// SpawnError is returned when the runtime binary could not be started at all.
type SpawnError struct {
	Binary string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute %s command: %v", e.Binary, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// CommandError is returned when the runtime exited with a non-zero status.
// Its message is the captured standard error.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if strings.TrimSpace(e.Stderr) != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
}

// DecodeError is returned when runtime output does not have the expected shape.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
