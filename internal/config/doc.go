// Package config resolves the filesystem layout the bootstrap depends on:
// the libexec directory shipped with the package, the distribution
// directory holding app archives, the install and uninstall scripts, and
// the user-level runtime path. Values come from TABDUMP_* environment
// variables, then from an optional libexec/bootstrap.yaml validated against
// an embedded JSON schema, then from built-in defaults.
package config
