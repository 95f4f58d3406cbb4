package handoff

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Spawn hands off by running the target as a child process and exiting with
// its status. The child shares the terminal's process group, so interrupts
// reach it directly.
type Spawn struct {
	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env is the child's environment; nil inherits os.Environ().
	Env []string
	// Exit terminates the process; defaults to os.Exit. Tests substitute a
	// recorder, in which case Exec returns nil after Exit returns.
	Exit func(code int)
}

// Exec starts the child, waits for it and exits with its status.
func (s Spawn) Exec(path string, argv []string) error {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    environ(s.Env),
		Stdin:  s.Stdin,
		Stdout: s.Stdout,
		Stderr: s.Stderr,
	}
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return &Error{Path: path, Err: err}
	}

	err := cmd.Wait()

	exit := s.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(exitStatus(err))
	return nil
}

// exitStatus maps a Wait result to a process exit status. A child killed by
// a signal has no status of its own and is reported as 1.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
	}
	return 1
}
