package runtime

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bbr88/tabdump/bootstrap/internal/branding"
	"github.com/bbr88/tabdump/bootstrap/internal/platform"
	"github.com/spf13/afero"
)

// State is the initialization state inferred from the filesystem.
type State int

const (
	// StateUninitialized means the runtime executable is absent or cannot be executed.
	StateUninitialized State = iota
	// StateInitialized means the runtime executable is present and executable.
	StateInitialized
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateUninitialized:
		return "uninitialized"
	default:
		return "unknown"
	}
}

// DefaultPath returns the installed runtime path, $HOME/.local/bin/tabdump.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.RuntimeDir(), branding.CLIName()), nil
}

// Delegate forwards commands to the installed runtime.
type Delegate struct {
	fs   afero.Fs
	path string
}

// NewDelegate returns a Delegate for the runtime executable at path. An
// empty path is never initialized.
func NewDelegate(fs afero.Fs, path string) *Delegate {
	return &Delegate{fs: fs, path: path}
}

// Path returns the runtime executable path.
func (d *Delegate) Path() string {
	return d.path
}

// State reports whether the runtime exists and is executable.
func (d *Delegate) State() State {
	if d.path == "" {
		return StateUninitialized
	}
	if !platform.IsExecutablePath(d.fs, d.path) {
		return StateUninitialized
	}
	return StateInitialized
}

// Argv returns the argument vector that hands command and its arguments to
// the runtime: [path, command, args...]. Order and count are preserved.
func (d *Delegate) Argv(command string, args []string) []string {
	argv := make([]string, 0, 2+len(args))
	argv = append(argv, d.path, command)
	return append(argv, args...)
}
