package handoff

import (
	"errors"
	"fmt"
	"os"
)

// Handoff transfers control to the program at path.
type Handoff interface {
	// Exec runs path with the full argument vector argv (argv[0] included).
	// It returns only if the target could not be started.
	Exec(path string, argv []string) error
}

// Shell-convention exit statuses for a target that could not be started.
const (
	ExitNotExecutable = 126
	ExitNotFound      = 127
)

// Error reports that a handoff target could not be started.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot execute %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode returns 127 when the target does not exist and 126 for any other
// start failure.
func (e *Error) ExitCode() int {
	if errors.Is(e.Err, os.ErrNotExist) {
		return ExitNotFound
	}
	return ExitNotExecutable
}

func environ(env []string) []string {
	if env == nil {
		return os.Environ()
	}
	return env
}
