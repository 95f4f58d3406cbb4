package dispatch

import (
	"errors"
	"fmt"
)

// Outcome is the terminal result of one Dispatch call.
type Outcome int

const (
	// OutcomeUsage means usage text was printed.
	OutcomeUsage Outcome = iota
	// OutcomeInstall means control was handed to the install script.
	OutcomeInstall
	// OutcomeUninstall means control was handed to the uninstall script.
	OutcomeUninstall
	// OutcomeRuntime means control was handed to the installed runtime.
	OutcomeRuntime
	// OutcomeNotInitialized means a runtime command was issued before init.
	OutcomeNotInitialized
	// OutcomeArchiveNotFound means init found no app archive to install.
	OutcomeArchiveNotFound
	// OutcomeError means a handoff target could not be started or the
	// distribution directory could not be read.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUsage:
		return "usage"
	case OutcomeInstall:
		return "install"
	case OutcomeUninstall:
		return "uninstall"
	case OutcomeRuntime:
		return "runtime"
	case OutcomeNotInitialized:
		return "not-initialized"
	case OutcomeArchiveNotFound:
		return "archive-not-found"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrNotInitialized is wrapped by the ExitError returned when a runtime
// command is issued before the runtime is installed.
var ErrNotInitialized = errors.New("runtime is not initialized")

// ExitError carries the process exit status for a failed invocation. The
// user-facing message has already been written when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return fmt.Sprintf("exit status %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }
