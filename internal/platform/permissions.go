package platform

import (
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// IsExecutable reports whether info describes a file the current platform
// would let us exec. Directories never qualify. On Windows, which does not
// support Unix-style permission bits, every regular file qualifies.
func IsExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return info.Mode().IsRegular()
	}
	return info.Mode().Perm()&0o111 != 0
}

// IsExecutablePath reports whether path on fs can be executed by the current
// user. On the host filesystem the kernel has the final say; other
// filesystems only have permission bits to go on.
func IsExecutablePath(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil || !IsExecutable(info) {
		return false
	}
	if _, ok := fs.(*afero.OsFs); ok {
		return canExecute(path)
	}
	return true
}
