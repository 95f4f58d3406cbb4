package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// executablePath is os.Executable; tests replace it.
var executablePath = os.Executable

// ExecutableDir returns the directory containing the running binary with
// all symlinks resolved. Homebrew links <prefix>/bin/tabdump into a shared
// bin directory, so the unresolved path would point at the wrong prefix.
func ExecutableDir() (string, error) {
	self, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(self)
	if err != nil {
		return "", fmt.Errorf("resolving executable %s: %w", self, err)
	}
	return filepath.Dir(resolved), nil
}
