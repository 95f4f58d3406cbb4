// Package platform provides the small set of OS-dependent filesystem checks
// the bootstrap needs: whether a file may be executed, and where the running
// binary really lives once package-manager symlinks are resolved. On Unix
// systems a file on disk is executable when access(2) grants X_OK to the
// invoking user; in-memory filesystems fall back to the execute bits.
// Windows has no such bits, so any regular file counts.
package platform
