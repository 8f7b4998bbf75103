package emulator

import (
	"errors"
	"fmt"
)

// ErrToolNotFound is the generic "no such key" sentinel wrapped by
// ToolNotFoundError, for callers that match with errors.Is.
var ErrToolNotFound = errors.New("tool not found")

// ToolNotFoundError is returned by Call when no mock is registered for the
// requested tool name. It unwraps to ErrToolNotFound.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("no mock registered for tool %q", e.Tool)
}

func (e *ToolNotFoundError) Unwrap() error {
	return ErrToolNotFound
}
