//go:build unix

package platform

import "golang.org/x/sys/unix"

// canExecute asks the kernel whether the invoking user may execute path,
// taking ownership, group membership and ACLs into account.
func canExecute(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
