//go:build unix

package handoff

import "golang.org/x/sys/unix"

// Replace hands off by replacing the current process image.
type Replace struct {
	// Env is the target's environment; nil inherits os.Environ().
	Env []string
}

// Exec calls execve. It never returns on success.
func (r Replace) Exec(path string, argv []string) error {
	err := unix.Exec(path, argv, environ(r.Env))
	return &Error{Path: path, Err: err}
}

// Default returns the platform's preferred Handoff.
func Default() Handoff {
	return Replace{}
}
