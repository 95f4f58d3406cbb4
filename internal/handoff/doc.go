// Package handoff transfers control of the process to an external program.
//
// A handoff is terminal: once the target starts, the bootstrap does no
// further work and its exit status is the target's. On Unix this is a real
// process replacement (execve). Elsewhere the target runs as a child with
// inherited stdio, and the parent exits with the child's status as soon as
// it finishes.
package handoff
